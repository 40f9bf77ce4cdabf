// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enzyme

import "testing"

func TestTrypsinCleavesBetween(t *testing.T) {
	cases := []struct {
		prev, next byte
		want       bool
	}{
		{'K', 'G', true},
		{'R', 'G', true},
		{'K', 'P', false},
		{'R', 'P', false},
		{'A', 'G', false},
	}
	for _, c := range cases {
		got := Trypsin.CleavesBetween(c.prev, c.next)
		if got != c.want {
			t.Errorf("CleavesBetween(%q, %q) = %v, want %v", c.prev, c.next, got, c.want)
		}
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup("trypsin")
	if err != nil {
		t.Fatalf("Lookup(trypsin): unexpected error: %v", err)
	}
	if e.Name() != "trypsin" {
		t.Errorf("Name() = %q, want trypsin", e.Name())
	}

	_, err = Lookup("chymotrypsin")
	if err == nil {
		t.Fatal("Lookup(chymotrypsin): want error, got nil")
	}
	var want *EnzymeUnsupported
	if _, ok := err.(*EnzymeUnsupported); !ok {
		t.Errorf("Lookup(chymotrypsin): error type = %T, want %T", err, want)
	}
}
