// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protein holds the parsed, immutable set of proteins a
// QuerySurface is built from, optionally augmented with
// reversed-sequence decoys.
package protein

import (
	"fmt"
	"log"

	"github.com/biogo/biogo/alphabet"

	"github.com/kortschak/pepdex/fasta"
)

// Protein is a single named protein sequence, borrowing its bytes
// from a Store's arenas. It remains valid for the lifetime of the
// owning Store.
type Protein struct {
	Name []byte
	Seq  []byte
}

// Len returns the protein's sequence length.
func (p *Protein) Len() int { return len(p.Seq) }

// IoError reports a failure opening or reading the FASTA database.
type IoError struct {
	Path  string
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("pepdex: io error reading %s: %v", e.Path, e.Cause)
}

func (e *IoError) Unwrap() error { return e.Cause }

// Store owns every arena backing the Proteins it was built from and
// is never mutated after construction.
type Store struct {
	targetArena *fasta.Arena
	decoyArena  []byte
	prots       []Protein
	numTargets  int
}

// Open parses the FASTA file at path into a Store. When appendDecoy
// is true, a reversed-sequence decoy protein is appended for every
// target, named "DECOY_"+original name; decoys are appended after all
// targets.
func Open(path string, appendDecoy bool) (*Store, error) {
	arena, recs, err := fasta.Read(path)
	if err != nil {
		return nil, &IoError{Path: path, Cause: err}
	}
	return newStore(arena, recs, appendDecoy), nil
}

func newStore(arena *fasta.Arena, recs []fasta.Record, appendDecoy bool) *Store {
	s := &Store{targetArena: arena, numTargets: len(recs)}
	s.prots = make([]Protein, len(recs), len(recs)*2)
	for i, r := range recs {
		p := Protein{Name: r.Name, Seq: r.Seq}
		if n := countInvalid(p.Seq); n > 0 {
			log.Printf("protein %s: %d of %d residues are outside the protein alphabet and will be dropped during digestion", p.Name, n, len(p.Seq))
		}
		s.prots[i] = p
	}
	if appendDecoy {
		s.appendDecoys()
	}
	return s
}

// countInvalid reports how many bytes of seq are not valid protein
// alphabet letters. This is diagnostic only: spec.md treats
// unrecognized residues as silently intractable during digestion
// (they become zero-mass segments), never as a parse failure, so
// countInvalid only drives a log line, not an error.
func countInvalid(seq []byte) int {
	n := 0
	for _, b := range seq {
		if !alphabet.Protein.IsValid(alphabet.Letter(b)) {
			n++
		}
	}
	return n
}

// appendDecoys builds the decoy arena and appends one decoy Protein
// per target, in target order.
func (s *Store) appendDecoys() {
	targets := s.prots[:s.numTargets]
	const prefix = "DECOY_"

	size := 0
	for _, p := range targets {
		size += len(prefix) + len(p.Name) + 1 + len(p.Seq) + 1
	}
	buf := make([]byte, size)

	off := 0
	for _, p := range targets {
		nameStart := off
		off += copy(buf[off:], prefix)
		off += copy(buf[off:], p.Name)
		nameEnd := off
		buf[off] = 0
		off++

		seqStart := off
		for i := len(p.Seq) - 1; i >= 0; i-- {
			buf[off] = p.Seq[i]
			off++
		}
		seqEnd := off
		buf[off] = 0
		off++

		s.prots = append(s.prots, Protein{
			Name: buf[nameStart:nameEnd:nameEnd],
			Seq:  buf[seqStart:seqEnd:seqEnd],
		})
	}
	s.decoyArena = buf
}

// Proteins returns every protein, targets first in file order,
// followed by decoys (if any) in the same order as their targets.
// The returned slice shares storage with the Store and must not be
// mutated.
func (s *Store) Proteins() []Protein { return s.prots }

// Len returns the total number of proteins, targets plus decoys.
func (s *Store) Len() int { return len(s.prots) }

// NumTargets returns the number of target (non-decoy) proteins.
func (s *Store) NumTargets() int { return s.numTargets }
