// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store marshals peptide records into a mass-ordered
// modernc.org/kv database, the same device used upstream to persist
// BLAST hit coordinates into a genomic-coordinate-ordered database.
// Here the ordering key is monoisotopic mass rather than genomic
// position; it exists purely so a built index can be inspected or
// re-scanned in mass order without re-digesting, and is never
// consulted by the in-memory query surface.
package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"modernc.org/kv"

	"github.com/kortschak/pepdex/peptide"
	"github.com/kortschak/pepdex/protein"
)

var order = binary.BigEndian

// ByMass is a kv compare function ordering snapshot keys by ascending
// monoisotopic mass, breaking ties by protein index and offset to
// guarantee key uniqueness.
func ByMass(x, y []byte) int {
	if bytes.Equal(x, y) {
		return 0
	}
	kx := unmarshalKey(x)
	ky := unmarshalKey(y)

	switch {
	case kx.mass < ky.mass:
		return -1
	case kx.mass > ky.mass:
		return 1
	}
	switch {
	case kx.proteinIndex < ky.proteinIndex:
		return -1
	case kx.proteinIndex > ky.proteinIndex:
		return 1
	}
	switch {
	case kx.offset < ky.offset:
		return -1
	case kx.offset > ky.offset:
		return 1
	}
	panic("unreachable")
}

type key struct {
	mass         float64
	proteinIndex int64
	offset       int64
}

func marshalKey(mass float64, proteinIndex, offset int) []byte {
	var buf bytes.Buffer
	var b [8]byte
	order.PutUint64(b[:], math.Float64bits(mass))
	buf.Write(b[:])
	order.PutUint64(b[:], uint64(proteinIndex))
	buf.Write(b[:])
	order.PutUint64(b[:], uint64(offset))
	buf.Write(b[:])
	return buf.Bytes()
}

func unmarshalKey(data []byte) key {
	n64 := binary.Size(uint64(0))
	var k key
	k.mass = math.Float64frombits(order.Uint64(data[:n64]))
	data = data[n64:]
	k.proteinIndex = int64(order.Uint64(data[:n64]))
	data = data[n64:]
	k.offset = int64(order.Uint64(data[:n64]))
	return k
}

// Record is the JSON-encoded value stored for each key. It omits
// sequence bytes, which are recoverable by slicing the normalized
// protein sequence at [Offset, Offset+SequenceLen).
type Record struct {
	SequenceLen  int
	Mass         float64
	ProteinIndex int
	Offset       int
	NTerm        byte
	CTerm        byte
}

// WriteSnapshot writes every peptide in peps to a newly created
// modernc.org/kv database at path, ordered by ByMass, committing
// every 100 records the way the upstream region-merging pass batches
// its transactions.
func WriteSnapshot(path string, peps []*peptide.Peptide, prots []protein.Protein) (err error) {
	opts := &kv.Options{Compare: ByMass}
	db, err := kv.Create(path, opts)
	if err != nil {
		return fmt.Errorf("pepdex/store: create %s: %w", path, err)
	}
	defer func() {
		cerr := db.Close()
		if err == nil {
			err = cerr
		}
	}()

	proteinIndex := make(map[*protein.Protein]int, len(prots))
	for i := range prots {
		proteinIndex[&prots[i]] = i
	}

	const batch = 100
	inTx := false
	for i, pep := range peps {
		if i%batch == 0 {
			if err = db.BeginTransaction(); err != nil {
				return fmt.Errorf("pepdex/store: begin tx: %w", err)
			}
			inTx = true
		}

		pi := proteinIndex[pep.Protein]
		rec := Record{
			SequenceLen:  pep.Len(),
			Mass:         pep.Mass,
			ProteinIndex: pi,
			Offset:       pep.Offset,
			NTerm:        pep.NTerm,
			CTerm:        pep.CTerm,
		}
		v, jerr := json.Marshal(rec)
		if jerr != nil {
			return fmt.Errorf("pepdex/store: marshal record: %w", jerr)
		}
		if err = db.Set(marshalKey(pep.Mass, pi, pep.Offset), v); err != nil {
			return fmt.Errorf("pepdex/store: set: %w", err)
		}

		if i%batch == batch-1 {
			if err = db.Commit(); err != nil {
				return fmt.Errorf("pepdex/store: commit tx: %w", err)
			}
			inTx = false
		}
	}
	if inTx {
		if err = db.Commit(); err != nil {
			return fmt.Errorf("pepdex/store: commit final tx: %w", err)
		}
	}
	return nil
}

// OpenSnapshot opens a snapshot written by WriteSnapshot for
// sequential scanning in ascending mass order.
func OpenSnapshot(path string) (*kv.DB, error) {
	opts := &kv.Options{Compare: ByMass}
	db, err := kv.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("pepdex/store: open %s: %w", path, err)
	}
	return db, nil
}
