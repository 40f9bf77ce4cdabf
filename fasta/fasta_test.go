// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fasta

import (
	"strings"
	"testing"
)

func TestReadFromBasic(t *testing.T) {
	const in = ">P1 description one\nMAIK\r\nRGPPK\n>P2\nACDE\n"
	_, recs, err := ReadFrom(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadFrom: unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	if got := string(recs[0].Name); got != "P1 description one" {
		t.Errorf("recs[0].Name = %q, want %q", got, "P1 description one")
	}
	if got := string(recs[0].Seq); got != "MAIKRGPPK" {
		t.Errorf("recs[0].Seq = %q, want %q", got, "MAIKRGPPK")
	}
	if got := string(recs[1].Name); got != "P2" {
		t.Errorf("recs[1].Name = %q, want %q", got, "P2")
	}
	if got := string(recs[1].Seq); got != "ACDE" {
		t.Errorf("recs[1].Seq = %q, want %q", got, "ACDE")
	}
}

func TestReadFromEmpty(t *testing.T) {
	_, recs, err := ReadFrom(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadFrom: unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("len(recs) = %d, want 0", len(recs))
	}
}

func TestReadFromToleratesUnterminatedEntry(t *testing.T) {
	// A '>' seen mid-sequence starts a new entry even without a
	// preceding blank line or other separator.
	const in = ">P1\nMAKK>P2\nACDE\n"
	_, recs, err := ReadFrom(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadFrom: unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	if got := string(recs[0].Seq); got != "MAKK" {
		t.Errorf("recs[0].Seq = %q, want %q", got, "MAKK")
	}
}

func TestReadFromStripsWhitespace(t *testing.T) {
	const in = ">P1\nMA KK\t\nRG\n"
	_, recs, err := ReadFrom(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadFrom: unexpected error: %v", err)
	}
	if got := string(recs[0].Seq); got != "MAKKRG" {
		t.Errorf("recs[0].Seq = %q, want %q", got, "MAKKRG")
	}
}

func TestReadFromArenaSizedExactly(t *testing.T) {
	const in = ">P1\nMAKK\n>P2\nRGPPK\n>P3\nACDEFG\n"
	arena, recs, err := ReadFrom(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadFrom: unexpected error: %v", err)
	}
	want := 0
	for _, r := range recs {
		want += len(r.Name) + 1 + len(r.Seq) + 1
	}
	if got := len(arena.Bytes()); got != want {
		t.Errorf("len(arena.Bytes()) = %d, want %d", got, want)
	}
}
