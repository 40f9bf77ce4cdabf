// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fasta reads FASTA-formatted protein databases into a
// compact byte arena, so that every parsed record can borrow its name
// and sequence from a single allocation rather than own a copy.
package fasta

import (
	"fmt"
	"io"
	"os"
)

// Record describes one parsed FASTA entry as a pair of slices
// borrowing from an Arena returned alongside it. Name excludes the
// leading '>' and any trailing line terminator; Seq has had all
// whitespace stripped.
type Record struct {
	Name []byte
	Seq  []byte
}

// Arena is the backing buffer for a set of Records returned by Read
// or ReadFrom. Each record occupies, in file order, header bytes |
// 0x00 | sequence bytes | 0x00.
type Arena struct {
	buf []byte
}

// Bytes returns the arena's backing buffer.
func (a *Arena) Bytes() []byte { return a.buf }

// Read parses the FASTA file at path.
func Read(path string) (*Arena, []Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("pepdex/fasta: open %s: %w", path, err)
	}
	defer f.Close()
	arena, recs, err := ReadFrom(f)
	if err != nil {
		return nil, nil, fmt.Errorf("pepdex/fasta: read %s: %w", path, err)
	}
	return arena, recs, nil
}

// entry is a record still under construction, holding its own
// allocations until the final arena size is known.
type entry struct {
	name []byte
	seq  []byte
}

// parseState is a FASTA scan state, run byte-wise over the input so
// that a '>' is recognized as starting a new entry wherever it
// occurs, not only at the start of a scanner-delimited line.
type parseState int

const (
	stateStart parseState = iota
	stateName
	stateSequence
)

// ReadFrom parses FASTA-formatted data from r the same way Read does.
// A '>' starts a new entry wherever it is seen while accumulating a
// name or sequence, including one encountered mid-sequence with no
// preceding line terminator; this matches common FASTA practice of
// tolerating unterminated records. An empty input yields an empty,
// non-error result.
func ReadFrom(r io.Reader) (*Arena, []Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("error during sequence read: %w", err)
	}

	var entries []entry
	var cur *entry
	state := stateStart
	for _, b := range raw {
		switch state {
		case stateStart:
			if b == '>' {
				entries = append(entries, entry{})
				cur = &entries[len(entries)-1]
				state = stateName
			}
			// Bytes preceding the first '>' are not part of any
			// entry and are ignored.
		case stateName:
			if b == '\n' {
				state = stateSequence
				continue
			}
			if b == '\r' {
				// CR bytes on a header line are dropped, so a CRLF
				// terminator leaves no trailing CR in the name.
				continue
			}
			cur.name = append(cur.name, b)
		case stateSequence:
			switch b {
			case '>':
				entries = append(entries, entry{})
				cur = &entries[len(entries)-1]
				state = stateName
			case ' ', '\t', '\r', '\n':
				// Whitespace is stripped from sequence lines
				// wherever it occurs, not only at line boundaries.
			default:
				cur.seq = append(cur.seq, b)
			}
		}
	}

	size := 0
	for _, e := range entries {
		size += len(e.name) + 1 + len(e.seq) + 1
	}
	buf := make([]byte, size)
	recs := make([]Record, len(entries))
	off := 0
	for i, e := range entries {
		nameStart := off
		off += copy(buf[off:], e.name)
		nameEnd := off
		buf[off] = 0
		off++

		seqStart := off
		off += copy(buf[off:], e.seq)
		seqEnd := off
		buf[off] = 0
		off++

		recs[i] = Record{
			Name: buf[nameStart:nameEnd:nameEnd],
			Seq:  buf[seqStart:seqEnd:seqEnd],
		}
	}
	return &Arena{buf: buf}, recs, nil
}
