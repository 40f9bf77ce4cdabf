// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"encoding/json"
	"io"
	"path/filepath"
	"testing"

	"github.com/kortschak/pepdex/peptide"
	"github.com/kortschak/pepdex/protein"
)

func TestWriteAndScanSnapshotInMassOrder(t *testing.T) {
	prots := []protein.Protein{
		{Name: []byte("P1"), Seq: []byte("MALKRGPPK")},
	}
	peps := []*peptide.Peptide{
		{Seq: []byte("GPPK"), Mass: 397.2, Protein: &prots[0], Offset: 5, NTerm: 'R', CTerm: '-'},
		{Seq: []byte("MALK"), Mass: 461.3, Protein: &prots[0], Offset: 0, NTerm: '-', CTerm: 'R'},
		{Seq: []byte("R"), Mass: 174.1, Protein: &prots[0], Offset: 4, NTerm: 'K', CTerm: 'G'},
	}

	path := filepath.Join(t.TempDir(), "snapshot.db")
	if err := WriteSnapshot(path, peps, prots); err != nil {
		t.Fatalf("WriteSnapshot: unexpected error: %v", err)
	}

	db, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot: unexpected error: %v", err)
	}
	defer db.Close()

	var masses []float64
	it, err := db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			t.Fatal("SeekFirst: unexpected empty snapshot")
		}
		t.Fatalf("SeekFirst: unexpected error: %v", err)
	}
	for {
		_, v, err := it.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("Next: unexpected error: %v", err)
		}
		var rec Record
		if err := json.Unmarshal(v, &rec); err != nil {
			t.Fatalf("Unmarshal: unexpected error: %v", err)
		}
		masses = append(masses, rec.Mass)
	}

	if len(masses) != len(peps) {
		t.Fatalf("scanned %d records, want %d", len(masses), len(peps))
	}
	for i := 1; i < len(masses); i++ {
		if masses[i-1] > masses[i] {
			t.Fatalf("snapshot not mass-ordered at %d: %v > %v", i, masses[i-1], masses[i])
		}
	}
}
