// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aamass

import "testing"

func TestMassKnownResidues(t *testing.T) {
	for _, r := range []byte("ACDEFGHKLMNPQRSTVWY") {
		m, ok := Mass(r)
		if !ok {
			t.Errorf("residue %q: want known, got unknown", r)
		}
		if m <= 0 {
			t.Errorf("residue %q: want positive mass, got %v", r, m)
		}
	}
}

func TestMassUnknownResidues(t *testing.T) {
	for _, r := range []byte{'I', 'J', 'B', 'Z', 'X', 'U', 'O', 'a', '*'} {
		if _, ok := Mass(r); ok {
			t.Errorf("residue %q: want unknown, got known", r)
		}
	}
}

func TestCysteineCarriesFixedModification(t *testing.T) {
	m, ok := Mass('C')
	if !ok {
		t.Fatal("C: want known")
	}
	want := 103.00919 + Carbamidomethyl
	if m != want {
		t.Errorf("C mass = %v, want %v", m, want)
	}
}
