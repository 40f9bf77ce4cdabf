// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pepdex builds an in-memory tryptic peptide mass index from a FASTA
// protein database. With no -masses file it reports summary
// statistics for the built index; given a file of observed precursor
// masses, one per line, it streams the candidate peptides within
// tolerance of each.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kortschak/pepdex"
)

func main() {
	fastaPath := flag.String("fasta", "", "specify FASTA database path (required)")
	decoy := flag.Bool("decoy", false, "specify to append reversed-sequence decoys")
	enz := flag.String("enzyme", "trypsin", "specify digestion enzyme")
	missed := flag.Int("missed", 0, "specify maximum missed cleavages")
	minMass := flag.Float64("min", 600.0, "specify minimum peptide mass")
	maxMass := flag.Float64("max", 5000.0, "specify maximum peptide mass")
	masses := flag.String("masses", "", "specify file of observed precursor masses, one per line")
	tol := flag.Float64("tol", 0.02, "specify mass tolerance in Da for -masses lookups")
	snapshot := flag.String("snapshot", "", "specify modernc.org/kv snapshot output path")
	jsonOut := flag.Bool("json", false, "specify json format for match output")
	ambiguous := flag.Float64("ambiguous-tol", 0, "specify Da tolerance for reporting target peptides ambiguous with a decoy mass (requires -decoy; 0 disables)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `Usage of %[1]s:
  $ %[1]s -fasta <db.fasta> [options] >out.tsv

Options:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fastaPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.Println(os.Args)

	cfg := pepdex.DefaultConfig()
	cfg.Filename = *fastaPath
	cfg.AppendDecoy = *decoy
	cfg.Enzyme = *enz
	cfg.MaxMissedCleavages = *missed
	cfg.MinMass = *minMass
	cfg.MaxMass = *maxMass

	log.Println("building peptide index")
	qs, err := pepdex.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("indexed %d peptides", qs.Size())

	if *snapshot != "" {
		log.Printf("writing snapshot to %s", *snapshot)
		if err := qs.Snapshot(*snapshot); err != nil {
			log.Fatal(err)
		}
	}

	if *ambiguous > 0 {
		if !*decoy {
			log.Fatal("-ambiguous-tol requires -decoy")
		}
		amb, err := qs.AmbiguousTargets(*ambiguous)
		if err != nil {
			log.Fatalf("failed to compute ambiguous targets: %v", err)
		}
		log.Printf("%d of %d peptides are mass-ambiguous with a decoy within %g Da", len(amb), qs.Size(), *ambiguous)
		enc := json.NewEncoder(os.Stdout)
		for _, p := range amb {
			if err := enc.Encode(match{Sequence: string(p.Seq), Mass: p.Mass, NTerm: string(p.NTerm), CTerm: string(p.CTerm), Protein: string(p.Protein.Name)}); err != nil {
				log.Fatalf("failed to write match: %v", err)
			}
		}
		return
	}

	if *masses == "" {
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(qs.Stats()); err != nil {
			log.Fatalf("failed to write stats: %v", err)
		}
		return
	}

	if err := reportMatches(qs, *masses, *tol, *jsonOut); err != nil {
		log.Fatal(err)
	}
}

// match is one candidate peptide reported against an observed
// precursor mass.
type match struct {
	ObservedMass float64 `json:"observedMass"`
	Sequence     string  `json:"sequence"`
	Mass         float64 `json:"mass"`
	NTerm        string  `json:"nTerm"`
	CTerm        string  `json:"cTerm"`
	Protein      string  `json:"protein"`
}

func reportMatches(qs *pepdex.QuerySurface, massesPath string, tol float64, jsonOut bool) error {
	f, err := os.Open(massesPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", massesPath, err)
	}
	defer f.Close()

	var enc *json.Encoder
	if jsonOut {
		enc = json.NewEncoder(os.Stdout)
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		mObs, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("parse observed mass %q: %w", line, err)
		}
		for _, p := range qs.Range(mObs-tol, mObs+tol) {
			if enc != nil {
				m := match{
					ObservedMass: mObs,
					Sequence:     string(p.Seq),
					Mass:         p.Mass,
					NTerm:        string(p.NTerm),
					CTerm:        string(p.CTerm),
					Protein:      string(p.Protein.Name),
				}
				if err := enc.Encode(m); err != nil {
					return fmt.Errorf("write match: %w", err)
				}
				continue
			}
			fmt.Printf("%g\t%s\t%g\t%c\t%c\t%s\n", mObs, p.Seq, p.Mass, p.NTerm, p.CTerm, p.Protein.Name)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read mass list: %w", err)
	}
	return nil
}
