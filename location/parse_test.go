// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package location_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/creachadair/genbank/location"
	"github.com/google/go-cmp/cmp"
)

func TestParseLeaves(t *testing.T) {
	tests := []struct {
		input string
		want  location.Location
	}{
		// Single bases
		{"1", &location.SingleBase{Pos: 1}},
		{"467", &location.SingleBase{Pos: 467}},

		// Ranges, with and without fuzziness markers
		{"5..10", &location.Range{First: 5, Second: 10}},
		{"<5..10", &location.Range{First: 5, Second: 10, CanBeLesser: true}},
		{"5..>10", &location.Range{First: 5, Second: 10, CanBeGreater: true}},
		{"<1..>9000", &location.Range{First: 1, Second: 9000, CanBeLesser: true, CanBeGreater: true}},
		{"7..7", &location.Range{First: 7, Second: 7}},

		// Adjoining pairs
		{"5^6", &location.Adjoining{First: 5, Second: 6, Subtype: location.Endonucleolytic}},
		{"10^1", &location.Adjoining{First: 10, Second: 1, Subtype: location.Circular}},

		// Remote references wrap any other variant
		{"J00194.1:1..150", &location.Remote{
			Accession: "J00194.1",
			Inner:     &location.Range{First: 1, Second: 150},
		}},
		{"U49845:42", &location.Remote{
			Accession: "U49845",
			Inner:     &location.SingleBase{Pos: 42},
		}},
	}
	for _, test := range tests {
		got, err := location.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Parse(%q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

// Formatting a parsed location must reproduce the input, including
// fuzziness markers.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"1",
		"467",
		"5..10",
		"<5..10",
		"5..>10",
		"<1..>9000",
		"5^6",
		"10^1",
		"J00194.1:1..150",
		"join(1..5,10..20)",
		"join(1..5,complement(10..20))",
		"complement(10..20)",
		"complement(join(1..5,10..20))",
	}
	for _, input := range inputs {
		loc, err := location.Parse(input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", input, err)
			continue
		}
		if got := loc.String(); got != input {
			t.Errorf("Parse(%q).String(): got %q", input, got)
		}
	}
}

func TestParseFunctions(t *testing.T) {
	t.Run("JoinTwoParts", func(t *testing.T) {
		loc, err := location.Parse("join(1..5,complement(10..20))")
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		want := &location.Joined{Parts: []location.Location{
			&location.Range{First: 1, Second: 5},
			&location.Complement{Inner: &location.Range{First: 10, Second: 20}},
		}}
		if diff := cmp.Diff(want, loc); diff != "" {
			t.Errorf("Parse: (-want, +got)\n%s", diff)
		}
	})

	t.Run("ComplementOverJoin", func(t *testing.T) {
		// The inner join is a single argument, so the arity rule holds.
		loc, err := location.Parse("complement(join(1..5,10..20))")
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		want := &location.Complement{Inner: &location.Joined{Parts: []location.Location{
			&location.Range{First: 1, Second: 5},
			&location.Range{First: 10, Second: 20},
		}}}
		if diff := cmp.Diff(want, loc); diff != "" {
			t.Errorf("Parse: (-want, +got)\n%s", diff)
		}
	})

	t.Run("ComplementArity", func(t *testing.T) {
		got, err := location.Parse("complement(1..5,10..20)")
		var merr *location.MalformedLocationError
		if !errors.As(err, &merr) {
			t.Fatalf("Parse: got (%v, %v), want *MalformedLocationError", got, err)
		}
	})

	t.Run("JoinSinglePart", func(t *testing.T) {
		loc, err := location.Parse("join(3..9)")
		if err != nil {
			t.Fatalf("Parse: unexpected error: %v", err)
		}
		want := &location.Joined{Parts: []location.Location{
			&location.Range{First: 3, Second: 9},
		}}
		if diff := cmp.Diff(want, loc); diff != "" {
			t.Errorf("Parse: (-want, +got)\n%s", diff)
		}
	})
}

func TestParseErrors(t *testing.T) {
	malformed := []string{
		"1..5,10..15",             // top-level comma outside join
		"complement",              // function name without parentheses
		"join 1..5",               // parenthesis must immediately follow
		"complement(1..5,10..20)", // wrong arity
		"5^7",                     // adjoining coordinates not adjacent
		"1..2..3",                 // too many range delimiters
		"a:b:c",                   // too many remote delimiters
		":1..5",                   // empty accession
		"9..5",                    // range end precedes start
	}
	for _, input := range malformed {
		got, err := location.Parse(input)
		var merr *location.MalformedLocationError
		if !errors.As(err, &merr) {
			t.Errorf("Parse(%q): got (%v, %v), want *MalformedLocationError", input, got, err)
		}
	}

	coords := []string{
		"abc",
		"12a",
		"x..5",
		"5..y",
		"5..",
		"^2",
		"0", // coordinates are 1-based
		"-3..5",
	}
	for _, input := range coords {
		got, err := location.Parse(input)
		var cerr *location.CoordinateError
		if !errors.As(err, &cerr) {
			t.Errorf("Parse(%q): got (%v, %v), want *CoordinateError", input, got, err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		if _, err := location.Parse("join(1..5,complement(10..20),U49845:42)"); err != nil {
			b.Fatal(err)
		}
	}
}

func ExampleParse() {
	loc, err := location.Parse("join(1..5,complement(10..20))")
	if err != nil {
		panic(err)
	}
	fmt.Println(loc, loc.Len())
	// Output: join(1..5,complement(10..20)) 16
}
