// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package genbank implements a reader for GenBank flat-file records.
//
// # Reading
//
// A record is read in three stages, in fixed order: metadata, features,
// origin. Construct a Parser from a file path or an io.ReadSeeker and call
// the stage methods in that order:
//
//	p, err := genbank.Open(path)
//	if err != nil {
//	   log.Fatalf("Open failed: %v", err)
//	}
//	defer p.Close()
//
//	md, err := p.ParseMetadata()
//	fs, err := p.ParseFeatures()
//	sq, err := p.ParseOrigin()
//
// Each stage leaves the cursor positioned at the keyword that opens the
// next section, so any stage can be skipped without being materialized:
//
//	if err := p.SkipMetadata(); err != nil {
//	   log.Fatalf("Skip failed: %v", err)
//	}
//	fs, err := p.ParseFeatures()
//
// To read a whole record in one call, use ParseRecord (or ParseFile, which
// also manages the file handle).
//
// # Cursor discipline
//
// All reading is built on two layers. A LineCursor wraps the input stream
// and supports exact position capture and restore; every lookahead either
// claims the line it read or rewinds to the captured position, never
// leaving the cursor partially advanced. A KeywordReader sits above it and
// recognizes keyword lines at column 0, with required reads, non-fatal
// optional probes, and continuation-line joining at the fixed 12-column
// indent.
//
// # Locations and sequences
//
// Feature coordinates are parsed by the location subpackage, which turns
// expressions such as join(1..5,complement(10..20)) into a Location tree
// that can extract its residues from a seq.Sequence, including
// reverse-strand extraction for complement terms.
package genbank
