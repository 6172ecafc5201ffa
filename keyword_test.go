// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/creachadair/genbank"
	"github.com/google/go-cmp/cmp"
)

func newKeywords(input string) *genbank.KeywordReader {
	return genbank.NewKeywordReader(genbank.NewLineCursor(strings.NewReader(input)))
}

func TestValue(t *testing.T) {
	k := newKeywords("ACCESSION   U49845\nVERSION     U49845.1  GI:1293613\n")
	got, err := k.Value("ACCESSION")
	if err != nil {
		t.Fatalf("Value: unexpected error: %v", err)
	}
	if got != "U49845" {
		t.Errorf("Value: got %q, want %q", got, "U49845")
	}

	fields, err := k.Fields("VERSION")
	if err != nil {
		t.Fatalf("Fields: unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"U49845.1", "GI:1293613"}, fields); diff != "" {
		t.Errorf("Fields: (-want, +got)\n%s", diff)
	}
}

func TestValueWrongKeyword(t *testing.T) {
	k := newKeywords("SOURCE      baker's yeast\n")
	got, err := k.Value("ACCESSION")
	var kerr *genbank.UnexpectedKeywordError
	if !errors.As(err, &kerr) {
		t.Fatalf("Value: got (%q, %v), want *UnexpectedKeywordError", got, err)
	}
	if kerr.Keyword != "ACCESSION" {
		t.Errorf("Keyword: got %q, want %q", kerr.Keyword, "ACCESSION")
	}
}

func TestOptional(t *testing.T) {
	k := newKeywords("KEYWORDS    .\nSOURCE      baker's yeast\n")

	// An absent keyword rewinds; the present keyword still reads cleanly.
	if got, ok := k.Optional("DBLINK"); ok {
		t.Errorf("Optional(DBLINK): unexpectedly claimed %q", got)
	}
	got, ok := k.Optional("KEYWORDS")
	if !ok || got != "." {
		t.Errorf("Optional(KEYWORDS): got (%q, %v), want (%q, true)", got, ok, ".")
	}
	if got, err := k.Value("SOURCE"); err != nil || got != "baker's yeast" {
		t.Errorf("Value(SOURCE): got (%q, %v)", got, err)
	}
}

func TestMultiline(t *testing.T) {
	const input = "DEFINITION  Saccharomyces cerevisiae TCP1-beta gene, partial cds; and Axl2p\n" +
		"            (AXL2) and Rev7p (REV7) genes, complete cds.\n" +
		"ACCESSION   U49845\n"

	k := newKeywords(input)
	got, err := k.Multiline("DEFINITION", " ")
	if err != nil {
		t.Fatalf("Multiline: unexpected error: %v", err)
	}
	want := "Saccharomyces cerevisiae TCP1-beta gene, partial cds; and Axl2p" +
		" (AXL2) and Rev7p (REV7) genes, complete cds."
	if got != want {
		t.Errorf("Multiline: got %q, want %q", got, want)
	}

	// The continuation lines were consumed, not left for the next stage.
	if got, err := k.Value("ACCESSION"); err != nil || got != "U49845" {
		t.Errorf("Value(ACCESSION): got (%q, %v)", got, err)
	}
}

func TestMultilineDelimiter(t *testing.T) {
	const input = "  ORGANISM  Saccharomyces cerevisiae\n" +
		"            Eukaryota; Fungi; Ascomycota; Saccharomycetes.\n"

	k := newKeywords(input)
	got, err := k.Multiline("ORGANISM", "\n")
	if err != nil {
		t.Fatalf("Multiline: unexpected error: %v", err)
	}
	want := "Saccharomyces cerevisiae\nEukaryota; Fungi; Ascomycota; Saccharomycetes."
	if got != want {
		t.Errorf("Multiline: got %q, want %q", got, want)
	}
}

func TestAdvanceUntil(t *testing.T) {
	const input = "LOCUS       X 10 bp DNA PLN 01-JAN-2000\n" +
		"DEFINITION  stuff.\n" +
		"FEATURES             Location/Qualifiers\n"

	k := newKeywords(input)
	if err := k.AdvanceUntil("FEATURES"); err != nil {
		t.Fatalf("AdvanceUntil: unexpected error: %v", err)
	}

	// The matching line itself is still readable.
	if err := k.Expect("FEATURES"); err != nil {
		t.Errorf("Expect(FEATURES): unexpected error: %v", err)
	}
}

func TestAdvanceUntilMissing(t *testing.T) {
	k := newKeywords("LOCUS       X 10 bp DNA PLN 01-JAN-2000\n")
	err := k.AdvanceUntil("ORIGIN")
	var merr *genbank.MalformedRecordError
	if !errors.As(err, &merr) {
		t.Fatalf("AdvanceUntil: got %v, want *MalformedRecordError", err)
	}
}
