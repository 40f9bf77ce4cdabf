// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index holds the final, immutable, mass-sorted peptide
// array and answers half-open mass-range queries over it by binary
// search.
package index

import (
	"sort"

	"github.com/kortschak/pepdex/peptide"
)

// Index is an immutable, ascending-mass-sorted collection of
// deduplicated peptides.
type Index struct {
	peptides []*peptide.Peptide
}

// Build sorts peps by ascending mass, breaking ties by keeping their
// relative order stable (so a deterministic dedup insertion order
// becomes a deterministic tie-break), and returns the finalized
// Index. Build takes ownership of peps.
func Build(peps []*peptide.Peptide) *Index {
	sort.SliceStable(peps, func(i, j int) bool {
		return peps[i].Mass < peps[j].Mass
	})
	return &Index{peptides: peps}
}

// Len returns the number of peptides in the index.
func (x *Index) Len() int { return len(x.peptides) }

// At returns the peptide at position i, 0 <= i < Len().
func (x *Index) At(i int) *peptide.Peptide { return x.peptides[i] }

// All returns every peptide in ascending mass order. The returned
// slice shares storage with the Index and must not be mutated.
func (x *Index) All() []*peptide.Peptide { return x.peptides }

// LowerBound returns the index of the first peptide with mass >= m,
// or Len() if there is none.
func (x *Index) LowerBound(m float64) int {
	return sort.Search(len(x.peptides), func(i int) bool {
		return x.peptides[i].Mass >= m
	})
}

// UpperBound returns the index of the first peptide with mass > m,
// or Len() if there is none.
func (x *Index) UpperBound(m float64) int {
	return sort.Search(len(x.peptides), func(i int) bool {
		return x.peptides[i].Mass > m
	})
}

// Range returns every peptide with mass in [lo, hi], in ascending
// mass order. If lo > hi the result is empty rather than undefined.
func (x *Index) Range(lo, hi float64) []*peptide.Peptide {
	if lo > hi {
		return nil
	}
	i := x.LowerBound(lo)
	j := x.UpperBound(hi)
	if j < i {
		return nil
	}
	return x.peptides[i:j]
}
