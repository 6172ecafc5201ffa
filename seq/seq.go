// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package seq defines a container for nucleotide residue sequences with
// 1-based coordinate slicing and strand complement operations.
package seq

import (
	"fmt"
	"strings"
)

// A Sequence is an immutable string of nucleotide residues, optionally
// labelled with the accession of the record it was read from. Residues are
// stored uppercased.
type Sequence struct {
	residues  string
	accession string
}

// New constructs a Sequence from the given residue text. The text is
// uppercased; it is not otherwise validated until an operation that depends
// on the alphabet (such as ReverseComplement) is invoked.
func New(residues string) *Sequence {
	return &Sequence{residues: strings.ToUpper(residues)}
}

// String returns the residue text of s.
func (s *Sequence) String() string { return s.residues }

// Len reports the number of residues in s.
func (s *Sequence) Len() int { return len(s.residues) }

// Accession returns the accession label of s, or "" if none is set.
func (s *Sequence) Accession() string { return s.accession }

// SetAccession labels s with the given accession.
func (s *Sequence) SetAccession(accession string) { s.accession = accession }

// Range returns the residues from position first to position second,
// inclusive, counting from 1. It reports a *BoundsError if the positions do
// not denote a range inside s.
func (s *Sequence) Range(first, second int) (string, error) {
	if first < 1 || second < first || second > len(s.residues) {
		return "", &BoundsError{First: first, Second: second, Len: len(s.residues)}
	}
	return s.residues[first-1 : second], nil
}

// ReverseComplement returns the reverse complement of s, reading the
// residues 3'→5' and mapping each base to its complement. The residues must
// be pure DNA (A/T/C/G) or pure RNA (A/U/C/G); any other residue reports a
// *AlphabetError. The complement of A is T for DNA input and U for RNA.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	pair := byte('T')
	if strings.ContainsRune(s.residues, 'U') {
		pair = 'U'
	}
	buf := make([]byte, len(s.residues))
	for i := 0; i < len(s.residues); i++ {
		var m byte
		switch ch := s.residues[i]; ch {
		case 'A':
			m = pair
		case pair:
			m = 'A'
		case 'C':
			m = 'G'
		case 'G':
			m = 'C'
		default:
			return nil, &AlphabetError{Residue: ch}
		}
		buf[len(buf)-i-1] = m
	}
	return &Sequence{residues: string(buf), accession: s.accession}, nil
}

// BoundsError is reported when a coordinate range does not fit inside the
// residues of a Sequence.
type BoundsError struct {
	First, Second int // the requested range, 1-based inclusive
	Len           int // the length of the sequence
}

// Error satisfies the error interface.
func (b *BoundsError) Error() string {
	return fmt.Sprintf("range %d..%d outside sequence of length %d", b.First, b.Second, b.Len)
}

// AlphabetError is reported when a residue is neither DNA nor RNA.
type AlphabetError struct {
	Residue byte // the offending residue
}

// Error satisfies the error interface.
func (a *AlphabetError) Error() string {
	return fmt.Sprintf("invalid residue %q: want DNA or RNA", a.Residue)
}
