// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package digest

import (
	"github.com/kortschak/pepdex/aamass"
	"github.com/kortschak/pepdex/enzyme"
	"github.com/kortschak/pepdex/peptide"
	"github.com/kortschak/pepdex/protein"
)

// Digest produces every candidate peptide for protein p, whose
// normSeq is its I→L normalized sequence, and inserts those whose
// mass falls in [minMass, maxMass] into pool. enz supplies the
// cleavage rule and missedCleavages bounds how many cleavage sites a
// single peptide may span beyond its first.
func Digest(p *protein.Protein, normSeq []byte, enz enzyme.Enzyme, missedCleavages int, minMass, maxMass float64, pool *Pool) {
	sites := cleavageSites(normSeq, enz)
	segMass := segmentMasses(normSeq, sites)
	L := len(normSeq)

	for i := range sites {
		start := sites[i]
		sum := 0.0
		for k := 0; k <= missedCleavages && i+k < len(sites); k++ {
			m := segMass[i+k]
			if m == 0 {
				// An intractable residue anywhere in this segment
				// poisons every peptide that would include it, at
				// this and every larger missed-cleavage count.
				break
			}
			sum += m

			last := i+k+1 >= len(sites)
			end := L
			if !last {
				end = sites[i+k+1]
			}

			mass := aamass.Water + sum
			if mass < minMass || mass > maxMass {
				if last {
					break
				}
				continue
			}

			nTerm := byte('-')
			if start != 0 {
				nTerm = normSeq[start-1]
			}
			cTerm := byte('-')
			if !last {
				cTerm = normSeq[end]
			}

			pool.Add(&peptide.Peptide{
				Seq:     normSeq[start:end:end],
				NTerm:   nTerm,
				CTerm:   cTerm,
				Mass:    mass,
				Protein: p,
				Offset:  start,
			})

			if last {
				break
			}
		}
	}
}

// cleavageSites returns the strictly ascending list of cleavage start
// indices for seq under enz, always including 0. The sequence's
// length is the implicit final terminator and is not included.
func cleavageSites(seq []byte, enz enzyme.Enzyme) []int {
	sites := make([]int, 1, len(seq)/2+1)
	sites[0] = 0
	for i := 1; i < len(seq); i++ {
		if enz.CleavesBetween(seq[i-1], seq[i]) {
			sites = append(sites, i)
		}
	}
	return sites
}

// segmentMasses computes, for each consecutive pair of sites
// (with len(seq) as the implicit final terminator), the sum of
// per-residue masses over that segment. A segment containing any
// residue absent from the mass table is recorded as 0, the sentinel
// for "intractable".
func segmentMasses(seq []byte, sites []int) []float64 {
	L := len(seq)
	masses := make([]float64, len(sites))
	for i, s := range sites {
		end := L
		if i+1 < len(sites) {
			end = sites[i+1]
		}
		masses[i] = segmentMass(seq[s:end])
	}
	return masses
}

func segmentMass(seg []byte) float64 {
	sum := 0.0
	for _, r := range seg {
		m, ok := aamass.Mass(r)
		if !ok {
			return 0
		}
		sum += m
	}
	return sum
}
