// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aamass provides monoisotopic masses for the twenty
// proteinogenic amino acids, with the fixed carbamidomethyl-C
// modification applied to cysteine.
package aamass

// Water is the mass, in Da, added once per peptide to convert a sum
// of residue masses into a neutral peptide mass.
const Water = 18.01528

// Carbamidomethyl is the fixed modification mass, in Da, applied to
// every cysteine residue.
const Carbamidomethyl = 57.021464

var table [26]float64
var present [26]bool

func set(r byte, m float64) {
	table[r-'A'] = m
	present[r-'A'] = true
}

func init() {
	set('G', 57.02147)
	set('A', 71.03712)
	set('S', 87.03203)
	set('P', 97.05277)
	set('V', 99.06842)
	set('T', 101.04768)
	set('C', 103.00919+Carbamidomethyl)
	set('L', 113.08407)
	set('N', 114.04293)
	set('D', 115.02695)
	set('Q', 128.05858)
	set('K', 128.09497)
	set('E', 129.04260)
	set('M', 131.04049)
	set('H', 137.05891)
	set('F', 147.06842)
	set('R', 156.10112)
	set('Y', 163.06333)
	set('W', 186.07932)
	// I is deliberately absent: digestion always runs against an
	// I→L normalized sequence, so a raw I reaching this table
	// indicates unnormalized input and must be reported unknown,
	// the same as J, B, Z, X, U, O and lowercase letters.
}

// Mass reports the monoisotopic mass of residue r and whether r is a
// recognized upper-case residue letter. Unrecognized residues report
// ok=false; callers use this to implement the zero-mass sentinel for
// intractable segments.
func Mass(r byte) (m float64, ok bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	return table[r-'A'], present[r-'A']
}
