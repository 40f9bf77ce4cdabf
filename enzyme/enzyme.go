// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enzyme models proteolytic cleavage rules as predicates over
// the residue pair flanking a candidate cleavage site, so that new
// enzymes can be added without touching the digester loop.
package enzyme

import "fmt"

// Enzyme is a proteolytic cleavage rule.
type Enzyme interface {
	// CleavesBetween reports whether the enzyme cleaves the peptide
	// bond between the residue prev and the following residue next.
	CleavesBetween(prev, next byte) bool
	// Name returns the enzyme's canonical, lower-case name.
	Name() string
}

type trypsin struct{}

// CleavesBetween implements Enzyme for trypsin: cleaves C-terminal to
// K or R unless the following residue is P.
func (trypsin) CleavesBetween(prev, next byte) bool {
	return (prev == 'K' || prev == 'R') && next != 'P'
}

func (trypsin) Name() string { return "trypsin" }

// Trypsin is the builtin trypsin cleavage rule.
var Trypsin Enzyme = trypsin{}

var byName = map[string]Enzyme{
	Trypsin.Name(): Trypsin,
}

// Lookup returns the registered Enzyme for name, or an
// *EnzymeUnsupported error if no enzyme is registered under that name.
func Lookup(name string) (Enzyme, error) {
	e, ok := byName[name]
	if !ok {
		return nil, &EnzymeUnsupported{Name: name}
	}
	return e, nil
}

// EnzymeUnsupported reports that an unknown enzyme name was requested.
type EnzymeUnsupported struct {
	Name string
}

func (e *EnzymeUnsupported) Error() string {
	return fmt.Sprintf("pepdex: unsupported enzyme %q", e.Name)
}
