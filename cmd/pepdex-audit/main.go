// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The pepdex-audit command dumps a snapshot database written by
// QuerySurface.Snapshot as a JSON stream on stdout, one object per
// peptide record, in ascending mass order.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/kortschak/pepdex/internal/store"
)

func main() {
	path := flag.String("db", "", "specify snapshot db file to audit (required)")
	flag.Parse()
	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	db, err := store.OpenSnapshot(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	enc := json.NewEncoder(os.Stdout)

	it, err := db.SeekFirst()
	if err != nil {
		if err == io.EOF {
			return
		}
		log.Fatal(err)
	}
	for {
		_, v, err := it.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Fatal(err)
		}
		var rec store.Record
		if err := json.Unmarshal(v, &rec); err != nil {
			log.Fatal(err)
		}
		if err := enc.Encode(rec); err != nil {
			log.Fatalf("failed to write record: %v", err)
		}
	}
}
