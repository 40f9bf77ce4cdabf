// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package digest performs in-silico enzymatic digestion of a protein
// list, computing theoretical peptide masses from the aamass table
// and emitting candidates into a dedup Pool.
package digest

import "github.com/kortschak/pepdex/protein"

// Arena holds every protein's I→L normalized sequence, contiguously
// and null-terminated, in protein order. Peptide.Seq slices alias
// stable positions within it for the arena's lifetime.
type Arena struct {
	buf    []byte
	starts []int
}

// NewArena builds an Arena covering every protein in prots, in order.
func NewArena(prots []protein.Protein) *Arena {
	size := 0
	for _, p := range prots {
		size += len(p.Seq) + 1
	}
	buf := make([]byte, size)
	starts := make([]int, len(prots))

	off := 0
	for i, p := range prots {
		starts[i] = off
		for _, b := range p.Seq {
			if b == 'I' {
				b = 'L'
			}
			buf[off] = b
			off++
		}
		buf[off] = 0
		off++
	}
	return &Arena{buf: buf, starts: starts}
}

// Normalized returns the I→L normalized sequence of protein i, whose
// untouched length is length.
func (a *Arena) Normalized(i, length int) []byte {
	start := a.starts[i]
	return a.buf[start : start+length : start+length]
}
