// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import (
	"fmt"
	"slices"
	"strconv"
)

// Metadata holds the flat header fields of a record, from LOCUS through
// the last REFERENCE block.
type Metadata struct {
	LocusName    string
	Length       int    // sequence length in base pairs, from LOCUS
	MoleculeType string // e.g. DNA, mRNA; "" if absent
	Topology     string // linear or circular; "" if absent
	Division     string // GenBank division code
	Updated      string // last-modification date, as written

	Definition string
	Accession  string
	Version    []string // the VERSION line tokens
	Keywords   string
	Source     string
	Organism   string

	Publications []Publication
}

// A Publication is one REFERENCE block of the record header.
type Publication struct {
	Reference string
	Authors   string
	Title     string
	Journal   string
	PubMed    string // "" if the block has no PUBMED line
}

// ParseMetadata parses the record header, from LOCUS up to (but not
// including) the FEATURES keyword. Optional DBLINK and COMMENT sections
// are consumed but not retained.
func (p *Parser) ParseMetadata() (*Metadata, error) {
	md := new(Metadata)
	if err := p.parseLocus(md); err != nil {
		return nil, err
	}
	var err error
	if md.Definition, err = p.kr.Multiline("DEFINITION", " "); err != nil {
		return nil, err
	}
	accession, err := p.kr.Fields("ACCESSION")
	if err != nil {
		return nil, err
	}
	if len(accession) == 0 {
		return nil, &MalformedRecordError{Reason: "empty ACCESSION"}
	}
	md.Accession = accession[0]
	if md.Version, err = p.kr.Fields("VERSION"); err != nil {
		return nil, err
	}
	p.kr.OptionalMultiline("DBLINK", " ") // present in some records; discarded
	if md.Keywords, err = p.kr.Multiline("KEYWORDS", " "); err != nil {
		return nil, err
	}
	if md.Source, err = p.kr.Value("SOURCE"); err != nil {
		return nil, err
	}
	if md.Organism, err = p.kr.Multiline("ORGANISM", "\n"); err != nil {
		return nil, err
	}
	if err := p.parsePublications(md); err != nil {
		return nil, err
	}
	p.kr.OptionalMultiline("COMMENT", " ") // discarded
	return md, nil
}

// parseLocus parses the LOCUS line. After dropping the "bp" unit token the
// line has six fields: name, length, molecule type, topology, division,
// date. The topology is optional in older records and is padded with "".
func (p *Parser) parseLocus(md *Metadata) error {
	fields, err := p.kr.Fields("LOCUS")
	if err != nil {
		return err
	}
	if len(fields) < 6 {
		return &MalformedRecordError{Reason: fmt.Sprintf("short LOCUS line (%d fields)", len(fields))}
	}
	fields = slices.Delete(fields, 2, 3) // the "bp" unit
	if len(fields) == 5 {
		fields = slices.Insert(fields, 3, "")
	}
	if len(fields) != 6 {
		return &MalformedRecordError{Reason: fmt.Sprintf("long LOCUS line (%d fields)", len(fields)+1)}
	}
	md.LocusName = fields[0]
	if md.Length, err = strconv.Atoi(fields[1]); err != nil {
		return &MalformedRecordError{Reason: fmt.Sprintf("invalid LOCUS length %q", fields[1])}
	}
	md.MoleculeType = fields[2]
	md.Topology = fields[3]
	md.Division = fields[4]
	md.Updated = fields[5]
	return nil
}

// parsePublications reads REFERENCE blocks until none remain. AUTHORS,
// TITLE, and JOURNAL are required within a block; PUBMED is optional.
func (p *Parser) parsePublications(md *Metadata) error {
	for {
		ref, ok := p.kr.OptionalMultiline("REFERENCE", " ")
		if !ok {
			return nil
		}
		pub := Publication{Reference: ref}
		var err error
		if pub.Authors, err = p.kr.Multiline("AUTHORS", " "); err != nil {
			return err
		}
		if pub.Title, err = p.kr.Multiline("TITLE", " "); err != nil {
			return err
		}
		if pub.Journal, err = p.kr.Multiline("JOURNAL", " "); err != nil {
			return err
		}
		pub.PubMed, _ = p.kr.OptionalMultiline("PUBMED", " ")
		md.Publications = append(md.Publications, pub)
	}
}
