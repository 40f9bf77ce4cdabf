// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digest

import "github.com/kortschak/pepdex/peptide"

// Pool deduplicates peptides by normalized sequence bytes while
// digestion is in progress. The first peptide seen for a given
// sequence is kept.
type Pool struct {
	seen  map[string]struct{}
	order []*peptide.Peptide
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{seen: make(map[string]struct{})}
}

// Add inserts pep into the pool unless a peptide with the same
// sequence bytes has already been added.
func (p *Pool) Add(pep *peptide.Peptide) {
	key := string(pep.Seq)
	if _, ok := p.seen[key]; ok {
		return
	}
	p.seen[key] = struct{}{}
	p.order = append(p.order, pep)
}

// Merge appends every peptide of other not already present in p, in
// other's insertion order. It is used to reduce per-worker pools from
// parallel digestion into one pool without changing the deterministic
// first-seen tie-break.
func (p *Pool) Merge(other *Pool) {
	for _, pep := range other.order {
		p.Add(pep)
	}
}

// Peptides returns every distinct peptide added to the pool, in
// first-seen order.
func (p *Pool) Peptides() []*peptide.Peptide { return p.order }
