// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package protein

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.fasta")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestOpenNoDecoy(t *testing.T) {
	path := writeFixture(t, ">P1\nMAIKRGPPK\n>P2\nACDEFG\n")
	s, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.NumTargets() != 2 {
		t.Fatalf("NumTargets() = %d, want 2", s.NumTargets())
	}
}

func TestOpenWithDecoy(t *testing.T) {
	path := writeFixture(t, ">P1\nMAIKRGPPK\n>P2\nACDEFG\n")
	s, err := Open(path, true)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	if want := 4; s.Len() != want {
		t.Fatalf("Len() = %d, want %d", s.Len(), want)
	}
	prots := s.Proteins()
	for i := 0; i < s.NumTargets(); i++ {
		target := prots[i]
		decoy := prots[s.NumTargets()+i]

		wantName := "DECOY_" + string(target.Name)
		if got := string(decoy.Name); got != wantName {
			t.Errorf("decoy %d name = %q, want %q", i, got, wantName)
		}

		if got := string(decoy.Seq); got != reverse(string(target.Seq)) {
			t.Errorf("decoy %d seq = %q, want reverse of %q", i, got, target.Seq)
		}
	}
}

func TestOpenEmptyFileIsNotAnError(t *testing.T) {
	path := writeFixture(t, "")
	s, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open: unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestOpenMissingFileIsIoError(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.fasta"), false)
	if err == nil {
		t.Fatal("Open: want error, got nil")
	}
	if _, ok := err.(*IoError); !ok {
		t.Errorf("Open: error type = %T, want *IoError", err)
	}
}

func reverse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := len(s) - 1; i >= 0; i-- {
		b.WriteByte(s[i])
	}
	return b.String()
}
