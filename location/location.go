// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package location implements the GenBank feature location grammar and a
// coordinate model for extracting the selected residues from a sequence.
//
// A location expression such as
//
//	join(1..5,complement(10..20))
//
// is parsed by Parse into a tree of Location values. Each variant of the
// tree knows how to report its coordinate span, its residue count, and how
// to extract its residues from a seq.Sequence, including reverse-strand
// biology for complement terms.
package location

import (
	"strconv"
	"strings"

	"github.com/creachadair/genbank/seq"
)

// A Location selects one or more residue ranges of a sequence.
type Location interface {
	// String renders the location in GenBank syntax. Parsing the result
	// yields an equivalent location.
	String() string

	// Len reports the number of residues the location covers.
	Len() int

	// ToSequence extracts the residues selected by the location from s,
	// 1-based and inclusive at both ends. A remote location that names an
	// accession other than that of s is resolved against alt; pass nil if no
	// alternate sequence is available.
	ToSequence(s, alt *seq.Sequence) (string, error)
}

// Ranged is the subset of locations that cover a single contiguous span.
// Every variant implements Ranged except *Joined, which exposes an ordered
// list of spans via its Ranges method instead.
type Ranged interface {
	Location

	// Span reports the first and second coordinate of the location.
	Span() (first, second int)
}

// A Span is a (first, second) coordinate pair, 1-based and inclusive.
type Span struct {
	First, Second int
}

// Contains reports whether other begins strictly inside l. The endpoints of
// l are not contained.
func Contains(l, other Ranged) bool {
	lf, ls := l.Span()
	of, _ := other.Span()
	return lf < of && of < ls
}

// IsLeft reports whether other lies to the left of l. A location contained
// in l is neither left nor right of it.
func IsLeft(l, other Ranged) bool {
	if Contains(l, other) {
		return false
	}
	lf, _ := l.Span()
	of, _ := other.Span()
	return of < lf
}

// IsRight reports whether other lies to the right of l. A location contained
// in l is neither left nor right of it.
func IsRight(l, other Ranged) bool {
	if Contains(l, other) {
		return false
	}
	_, ls := l.Span()
	of, _ := other.Span()
	return of > ls
}

// Diff reports the size of the gap between l and other, or 0 if other is
// contained in l.
func Diff(l, other Ranged) int {
	if Contains(l, other) {
		return 0
	}
	lf, ls := l.Span()
	of, _ := other.Span()
	if of < lf {
		return lf - of
	}
	return of - ls
}

// A SingleBase is a location naming one residue position.
type SingleBase struct {
	Pos int // the position, 1-based
}

// Span satisfies the Ranged interface.
func (s *SingleBase) Span() (first, second int) { return s.Pos, s.Pos }

// Len reports the number of residues covered, always 1.
func (s *SingleBase) Len() int { return 1 }

func (s *SingleBase) String() string { return strconv.Itoa(s.Pos) }

// ToSequence satisfies the Location interface.
func (s *SingleBase) ToSequence(sq, alt *seq.Sequence) (string, error) {
	return spanResidues(s, sq)
}

// A Range is a contiguous run of residues from First to Second, inclusive.
// The fuzziness flags record a leading "<" or trailing ">" marker; they do
// not change the numeric coordinates.
type Range struct {
	First, Second int
	CanBeLesser   bool // the true start may precede First ("<")
	CanBeGreater  bool // the true end may follow Second (">")
}

// Span satisfies the Ranged interface.
func (r *Range) Span() (first, second int) { return r.First, r.Second }

// Len reports the number of residues covered.
func (r *Range) Len() int { return r.Second - r.First + 1 }

func (r *Range) String() string {
	var sb strings.Builder
	if r.CanBeLesser {
		sb.WriteByte('<')
	}
	sb.WriteString(strconv.Itoa(r.First))
	sb.WriteString("..")
	if r.CanBeGreater {
		sb.WriteByte('>')
	}
	sb.WriteString(strconv.Itoa(r.Second))
	return sb.String()
}

// ToSequence satisfies the Location interface.
func (r *Range) ToSequence(sq, alt *seq.Sequence) (string, error) {
	return spanResidues(r, sq)
}

// AdjoiningType distinguishes the two legal relations between the
// coordinates of an Adjoining location.
type AdjoiningType int

const (
	Endonucleolytic AdjoiningType = 1 + iota // second == first+1
	Circular                                 // second == 1
)

func (t AdjoiningType) String() string {
	switch t {
	case Endonucleolytic:
		return "endonucleolytic"
	case Circular:
		return "circular"
	}
	return "invalid"
}

// An Adjoining location names the bond between two residues, written
// first^second. The second coordinate is either first+1 (an endonucleolytic
// cleavage site) or 1 (the origin of a circular molecule).
type Adjoining struct {
	First, Second int
	Subtype       AdjoiningType
}

// Span satisfies the Ranged interface.
func (a *Adjoining) Span() (first, second int) { return a.First, a.Second }

// Len reports the number of residues covered, always 2.
func (a *Adjoining) Len() int { return 2 }

func (a *Adjoining) String() string {
	return strconv.Itoa(a.First) + "^" + strconv.Itoa(a.Second)
}

// ToSequence satisfies the Location interface.
func (a *Adjoining) ToSequence(sq, alt *seq.Sequence) (string, error) {
	return spanResidues(a, sq)
}

// A Remote is a location on another record, written accession:location.
// Span, Len, and extraction delegate to the inner location.
type Remote struct {
	Accession string
	Inner     Location
}

// Span satisfies the Ranged interface by delegating to the inner location.
// It panics if the inner location is a *Joined, which has no single span.
func (r *Remote) Span() (first, second int) { return r.Inner.(Ranged).Span() }

// Len reports the number of residues covered by the inner location.
func (r *Remote) Len() int { return r.Inner.Len() }

func (r *Remote) String() string { return r.Accession + ":" + r.Inner.String() }

// ToSequence resolves the accession against sq, then alt, and extracts the
// inner location from whichever matches. If neither sequence carries the
// accession it reports a *UnresolvedAccessionError.
func (r *Remote) ToSequence(sq, alt *seq.Sequence) (string, error) {
	if sq != nil && sq.Accession() == r.Accession {
		return r.Inner.ToSequence(sq, nil)
	}
	if alt != nil && alt.Accession() == r.Accession {
		return r.Inner.ToSequence(alt, nil)
	}
	return "", &UnresolvedAccessionError{Accession: r.Accession}
}

// A Joined is an ordered concatenation of locations, written join(...).
// It does not cover a single contiguous span, so it does not implement
// Ranged; use Ranges to visit the spans of its parts in declared order.
type Joined struct {
	Parts []Location
}

// Ranges returns the spans of the parts of j in declared order.
func (j *Joined) Ranges() []Span {
	spans := make([]Span, len(j.Parts))
	for i, p := range j.Parts {
		first, second := p.(Ranged).Span()
		spans[i] = Span{First: first, Second: second}
	}
	return spans
}

// Inverse returns the ranges of the sequence that j does not cover: the gap
// before each part, and the tail between the final part and total. For a
// coding sequence these are the intronic regions. It reports ErrGenomeLength
// if total is not positive.
func (j *Joined) Inverse(total int) ([]*Range, error) {
	if total < 1 {
		return nil, ErrGenomeLength
	}
	var out []*Range
	next := 1
	for _, sp := range j.Ranges() {
		if sp.First > next {
			out = append(out, &Range{First: next, Second: sp.First - 1})
		}
		next = sp.Second + 1
	}
	if total >= next {
		out = append(out, &Range{First: next, Second: total})
	}
	return out, nil
}

// Len reports the total number of residues covered by the parts of j.
func (j *Joined) Len() int {
	var n int
	for _, p := range j.Parts {
		n += p.Len()
	}
	return n
}

func (j *Joined) String() string {
	parts := make([]string, len(j.Parts))
	for i, p := range j.Parts {
		parts[i] = p.String()
	}
	return "join(" + strings.Join(parts, ",") + ")"
}

// ToSequence extracts each part in declared order and concatenates the
// results.
func (j *Joined) ToSequence(sq, alt *seq.Sequence) (string, error) {
	var sb strings.Builder
	for _, p := range j.Parts {
		part, err := p.ToSequence(sq, alt)
		if err != nil {
			return "", err
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}

// A Complement is the reverse-strand projection of its inner location,
// written complement(...). Coordinate inversion depends on the length of
// the containing sequence, which is supplied at use time; the same
// Complement value may be applied to sequences of different lengths.
type Complement struct {
	Inner Location
}

// Span satisfies the Ranged interface by delegating to the inner location.
// It panics if the inner location is a *Joined, which has no single span.
func (c *Complement) Span() (first, second int) { return c.Inner.(Ranged).Span() }

// Len reports the number of residues covered by the inner location.
func (c *Complement) Len() int { return c.Inner.Len() }

func (c *Complement) String() string { return "complement(" + c.Inner.String() + ")" }

// Invert reflects the inner coordinates onto the opposite strand of a
// sequence of the given total length. A single span (first, second) maps to
// (total-second+1, total-second+1+(second-first)), preserving its length.
// When the inner location is a join, each part is inverted in place and a
// new join of the results is returned. It reports ErrGenomeLength if total
// is not positive.
func (c *Complement) Invert(total int) (Location, error) {
	if total < 1 {
		return nil, ErrGenomeLength
	}
	if j, ok := c.Inner.(*Joined); ok {
		parts := make([]Location, len(j.Parts))
		for i, sp := range j.Ranges() {
			parts[i] = invertSpan(sp, total)
		}
		return &Joined{Parts: parts}, nil
	}
	first, second := c.Inner.(Ranged).Span()
	return invertSpan(Span{First: first, Second: second}, total), nil
}

func invertSpan(sp Span, total int) *Range {
	first := total - sp.Second + 1
	return &Range{First: first, Second: first + (sp.Second - sp.First)}
}

// ToSequence extracts the reverse-strand residues of the inner location:
// the coordinates are inverted for the length of sq and the inverted
// location is read from the reverse complement of sq.
func (c *Complement) ToSequence(sq, alt *seq.Sequence) (string, error) {
	inv, err := c.Invert(sq.Len())
	if err != nil {
		return "", err
	}
	rc, err := sq.ReverseComplement()
	if err != nil {
		return "", err
	}
	return inv.ToSequence(rc, alt)
}

// spanResidues extracts the single span of l from sq.
func spanResidues(l Ranged, sq *seq.Sequence) (string, error) {
	first, second := l.Span()
	return sq.Range(first, second)
}
