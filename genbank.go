// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import (
	"io"

	"github.com/creachadair/genbank/seq"
)

// A Parser reads one GenBank record from a stream in three stages:
// metadata, features, origin. The stages share a single cursor and must be
// invoked in that order; each stage leaves the cursor at the keyword that
// opens the next section, so a stage may be replaced by its Skip
// counterpart without materializing anything.
type Parser struct {
	cur *LineCursor
	kr  *KeywordReader
}

// NewParser constructs a Parser that consumes input from r.
func NewParser(r io.ReadSeeker) *Parser {
	cur := NewLineCursor(r)
	return &Parser{cur: cur, kr: NewKeywordReader(cur)}
}

// Open opens the file at path and returns a Parser that owns it. The
// caller must call Close when the parser is no longer needed.
func Open(path string) (*Parser, error) {
	cur, err := OpenLineCursor(path)
	if err != nil {
		return nil, err
	}
	return &Parser{cur: cur, kr: NewKeywordReader(cur)}, nil
}

// Cursor returns the parser's line cursor.
func (p *Parser) Cursor() *LineCursor { return p.cur }

// Keywords returns the parser's keyword reader.
func (p *Parser) Keywords() *KeywordReader { return p.kr }

// SkipMetadata advances the cursor to the FEATURES keyword without
// materializing the metadata.
func (p *Parser) SkipMetadata() error { return p.kr.AdvanceUntil("FEATURES") }

// SkipFeatures advances the cursor to the ORIGIN keyword without
// materializing the feature table.
func (p *Parser) SkipFeatures() error { return p.kr.AdvanceUntil("ORIGIN") }

// SkipOrigin advances the cursor to the record terminator "//" without
// materializing the sequence.
func (p *Parser) SkipOrigin() error { return p.kr.AdvanceUntil("//") }

// Close releases the underlying stream.
func (p *Parser) Close() error { return p.cur.Close() }

// A Record is a fully materialized GenBank record.
type Record struct {
	Metadata *Metadata
	Features []*Feature
	Sequence *seq.Sequence
}

// ParseRecord drives the three stages in order and returns the assembled
// record. The sequence is labelled with the record's accession, so remote
// locations naming it resolve without an alternate sequence.
func (p *Parser) ParseRecord() (*Record, error) {
	md, err := p.ParseMetadata()
	if err != nil {
		return nil, err
	}
	fs, err := p.ParseFeatures()
	if err != nil {
		return nil, err
	}
	sq, err := p.ParseOrigin()
	if err != nil {
		return nil, err
	}
	sq.SetAccession(md.Accession)
	return &Record{Metadata: md, Features: fs, Sequence: sq}, nil
}

// ParseFile opens the file at path, parses one record from it, and closes
// the file on every path.
func ParseFile(path string) (*Record, error) {
	p, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ParseRecord()
}
