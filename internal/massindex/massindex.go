// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package massindex flags target peptides whose mass tolerance
// window overlaps some decoy peptide's mass tolerance window, using
// the same interval.IntTree containment structure the upstream
// repeat finder uses to cull BLAST hits nested inside higher-scoring
// hits.
package massindex

import (
	"github.com/biogo/store/interval"

	"github.com/kortschak/pepdex/peptide"
)

// scale converts a mass window in Da into integer coordinates
// interval.IntTree can index. Six decimal places of resolution is far
// finer than any realistic mass tolerance.
const scale = 1e6

type massWindow struct {
	uid  uintptr
	low  int
	high int
}

// Overlap reports whether b overlaps the receiver's window.
func (w massWindow) Overlap(b interval.IntRange) bool {
	return w.low <= b.End && b.Start <= w.high
}

func (w massWindow) ID() uintptr { return w.uid }

func (w massWindow) Range() interval.IntRange {
	return interval.IntRange{Start: w.low, End: w.high}
}

func window(mass, tol float64) (low, high int) {
	return int((mass - tol) * scale), int((mass + tol) * scale)
}

// AmbiguousTargets returns every target peptide whose mass window
// [mass-tol, mass+tol] overlaps the mass window of some decoy
// peptide. It is an optional diagnostic a search engine backend can
// use to flag precursor masses ambiguous between target and decoy
// space.
func AmbiguousTargets(targets, decoys []*peptide.Peptide, tol float64) ([]*peptide.Peptide, error) {
	var tree interval.IntTree
	for i, d := range decoys {
		low, high := window(d.Mass, tol)
		err := tree.Insert(massWindow{uid: uintptr(i), low: low, high: high}, true)
		if err != nil {
			return nil, err
		}
	}
	tree.AdjustRanges()

	var ambiguous []*peptide.Peptide
	for _, tgt := range targets {
		low, high := window(tgt.Mass, tol)
		if len(tree.Get(massWindow{low: low, high: high})) > 0 {
			ambiguous = append(ambiguous, tgt)
		}
	}
	return ambiguous, nil
}
