// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peptide defines the candidate peptide record produced by
// digestion and held by the mass index.
package peptide

import "github.com/kortschak/pepdex/protein"

// Peptide is one candidate tryptic peptide: a substring of a
// protein's I→L normalized sequence, together with its computed
// monoisotopic mass and cleavage termini.
//
// Seq borrows from a digest arena rather than from Protein.Seq: it is
// I→L normalized, so it may differ from the corresponding bytes of
// the originating protein's untouched sequence.
type Peptide struct {
	Seq     []byte
	NTerm   byte
	CTerm   byte
	Mass    float64
	Protein *protein.Protein
	Offset  int
}

// Len returns the peptide's sequence length.
func (p *Peptide) Len() int { return len(p.Seq) }
