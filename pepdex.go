// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pepdex builds an in-memory, read-only index of tryptic
// peptides digested from a FASTA protein database, organized for
// efficient retrieval of every peptide whose monoisotopic mass falls
// within a query interval. It is the reference database backend for
// a mass-spectrometry peptide search engine: given an observed
// precursor mass, callers iterate the candidate peptides whose
// theoretical mass matches.
package pepdex

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/kortschak/pepdex/digest"
	"github.com/kortschak/pepdex/enzyme"
	"github.com/kortschak/pepdex/index"
	"github.com/kortschak/pepdex/internal/massindex"
	"github.com/kortschak/pepdex/internal/store"
	"github.com/kortschak/pepdex/peptide"
	"github.com/kortschak/pepdex/protein"
)

var decoyPrefix = []byte("DECOY_")

// IoError reports a failure opening or reading the FASTA database.
type IoError = protein.IoError

// EnzymeUnsupported reports that an unknown enzyme name was requested.
type EnzymeUnsupported = enzyme.EnzymeUnsupported

// ConfigError reports an invalid construction parameter.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("pepdex: invalid configuration: %s", e.Reason)
}

// Config holds QuerySurface construction parameters.
type Config struct {
	// Filename is the FASTA protein database path. Required.
	Filename string
	// AppendDecoy, when true, appends a reversed-sequence decoy for
	// every target protein.
	AppendDecoy bool
	// Enzyme names the digestion enzyme. "trypsin" is the only
	// enzyme registered by default.
	Enzyme string
	// MaxMissedCleavages bounds how many cleavage sites a single
	// peptide may span beyond its first.
	MaxMissedCleavages int
	// MinMass and MaxMass bound the monoisotopic mass of retained
	// peptides; both are inclusive.
	MinMass, MaxMass float64
}

// DefaultConfig returns the spec-mandated default parameters.
// Filename is left empty; callers must set it before calling Open.
func DefaultConfig() Config {
	return Config{
		Enzyme:  enzyme.Trypsin.Name(),
		MinMass: 600.0,
		MaxMass: 5000.0,
	}
}

// QuerySurface is the top-level, read-only peptide mass index built
// from a FASTA protein database. Once Open returns successfully, the
// query methods (Size, At, All, Range, Proteins and Stats) are pure
// functions of their arguments and the immutable index; Snapshot
// writes to disk and, like AmbiguousTargets, may return an error.
type QuerySurface struct {
	store *protein.Store
	arena *digest.Arena
	index *index.Index
}

// Open builds a QuerySurface from cfg. Construction parses the FASTA
// file, optionally appends decoys, digests every protein, deduplicates
// and sorts the resulting peptides by mass, and returns the result.
// All failures occur here, as *IoError, *ConfigError or
// *EnzymeUnsupported; no partially built index is ever returned.
func Open(cfg Config) (*QuerySurface, error) {
	if cfg.MinMass <= 0 || cfg.MinMass > cfg.MaxMass {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid mass bounds [%g, %g]", cfg.MinMass, cfg.MaxMass)}
	}
	if cfg.MaxMissedCleavages < 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("negative max missed cleavages %d", cfg.MaxMissedCleavages)}
	}
	enz, err := enzyme.Lookup(cfg.Enzyme)
	if err != nil {
		return nil, err
	}

	st, err := protein.Open(cfg.Filename, cfg.AppendDecoy)
	if err != nil {
		return nil, err
	}

	prots := st.Proteins()
	arena := digest.NewArena(prots)
	pool := digestAll(prots, arena, enz, cfg.MaxMissedCleavages, cfg.MinMass, cfg.MaxMass)
	idx := index.Build(pool.Peptides())

	return &QuerySurface{store: st, arena: arena, index: idx}, nil
}

// digestAll runs Digest across every protein, sharded over a worker
// per CPU, then reduces the per-worker pools into a single pool in a
// fixed worker order. Static, index-ordered sharding (rather than a
// work-stealing queue) keeps the reduction — and so the final
// dedup/sort order — deterministic for a given input and worker
// count, satisfying the "equivalent ordering" requirement on optional
// parallel digestion.
func digestAll(prots []protein.Protein, arena *digest.Arena, enz enzyme.Enzyme, missed int, minMass, maxMass float64) *digest.Pool {
	n := len(prots)
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (n + workers - 1) / workers
	pools := make([]*digest.Pool, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		pools[w] = digest.NewPool()
		start := w * chunk
		if start >= n {
			continue
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int, pool *digest.Pool) {
			defer wg.Done()
			for i := start; i < end; i++ {
				normSeq := arena.Normalized(i, prots[i].Len())
				digest.Digest(&prots[i], normSeq, enz, missed, minMass, maxMass, pool)
			}
		}(start, end, pools[w])
	}
	wg.Wait()

	merged := digest.NewPool()
	for _, p := range pools {
		merged.Merge(p)
	}
	return merged
}

// Size returns the number of peptides in the index.
func (q *QuerySurface) Size() int { return q.index.Len() }

// At returns the peptide at position i, 0 <= i < Size().
func (q *QuerySurface) At(i int) *peptide.Peptide { return q.index.At(i) }

// All returns every peptide, in ascending mass order.
func (q *QuerySurface) All() []*peptide.Peptide { return q.index.All() }

// Range returns every peptide with mass in [lo, hi], in ascending
// mass order. If lo > hi the result is empty.
func (q *QuerySurface) Range(lo, hi float64) []*peptide.Peptide { return q.index.Range(lo, hi) }

// Proteins returns every protein in the database, targets followed
// by decoys (if any).
func (q *QuerySurface) Proteins() []protein.Protein { return q.store.Proteins() }

// Stats summarizes a constructed QuerySurface.
type Stats struct {
	NumProteins int
	NumTargets  int
	NumDecoys   int
	NumPeptides int
	MeanMass    float64
	StdDevMass  float64
}

// Stats computes summary statistics over the built index.
func (q *QuerySurface) Stats() Stats {
	masses := make([]float64, q.index.Len())
	for i := range masses {
		masses[i] = q.index.At(i).Mass
	}
	mean, std := stat.MeanStdDev(masses, nil)
	return Stats{
		NumProteins: q.store.Len(),
		NumTargets:  q.store.NumTargets(),
		NumDecoys:   q.store.Len() - q.store.NumTargets(),
		NumPeptides: q.index.Len(),
		MeanMass:    mean,
		StdDevMass:  std,
	}
}

// AmbiguousTargets returns every target peptide whose mass window
// [mass-tol, mass+tol] overlaps the same window of some decoy
// peptide, built with AppendDecoy set. It is a diagnostic for flagging
// precursor masses a downstream search would be unable to assign to
// target or decoy space unambiguously; it has no effect on Range,
// Size, At or All, which always see the full index.
func (q *QuerySurface) AmbiguousTargets(tol float64) ([]*peptide.Peptide, error) {
	var targets, decoys []*peptide.Peptide
	for _, p := range q.index.All() {
		if bytes.HasPrefix(p.Protein.Name, decoyPrefix) {
			decoys = append(decoys, p)
			continue
		}
		targets = append(targets, p)
	}
	return massindex.AmbiguousTargets(targets, decoys, tol)
}

// Snapshot writes every peptide in the index to a modernc.org/kv
// database at path, ordered by ascending mass, so it can later be
// inspected with cmd/pepdex-audit without re-digesting. This is an
// opt-in, derived artifact: the in-memory index itself is never
// persisted, and nothing in QuerySurface ever reads a snapshot back.
func (q *QuerySurface) Snapshot(path string) error {
	return store.WriteSnapshot(path, q.index.All(), q.store.Proteins())
}
