// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package location

import (
	"strconv"
	"strings"

	"go4.org/mem"
)

// The composing functions of the grammar, tried in order by prefix match.
var functions = []struct {
	name   string
	oneArg bool
}{
	{"complement", true},
	{"join", false},
}

// Parse parses a GenBank location expression into a Location tree.
//
// The grammar admits four leaf syntaxes (a single base "42", a range
// "3..9" with optional "<"/">" fuzziness markers, an adjoining pair "5^6",
// and a remote reference "J00194.1:1..150") and two composing functions,
// join(...) and complement(...). A bare expression must be singular: a
// top-level comma is only legal inside an explicit join.
//
// Errors are reported as *MalformedLocationError for grammar violations and
// *CoordinateError for coordinate tokens that are not positive integers.
func Parse(text string) (Location, error) {
	segs := splitArgs(strings.TrimSpace(text))
	if len(segs) > 1 {
		return nil, &MalformedLocationError{Text: text, Reason: "multiple top-level segments"}
	}
	loc, ok, err := parseFunc(segs[0], true)
	if err != nil {
		return nil, err
	} else if ok {
		return loc, nil
	}
	return parseLeaf(segs[0])
}

// parseFunc tries to parse text as a call to one of the composing
// functions. The second result reports whether a function name matched;
// when it is false the caller should fall back to the leaf syntaxes.
// Function calls nest only one level: the direct arguments of a top-level
// call may themselves be calls, their arguments may not.
func parseFunc(text string, top bool) (Location, bool, error) {
	for _, fn := range functions {
		if !mem.HasPrefix(mem.S(text), mem.S(fn.name)) {
			continue
		}
		rest := strings.TrimLeft(text[len(fn.name):], " \t")
		if rest == "" || rest[0] != '(' {
			return nil, false, &MalformedLocationError{
				Text: text, Reason: `expected "(" after ` + fn.name,
			}
		}
		args := splitArgs(rest[1:])
		if fn.oneArg && len(args) > 1 {
			return nil, false, &MalformedLocationError{
				Text: text, Reason: "1 argument allowed for " + fn.name,
			}
		}
		parts := make([]Location, len(args))
		for i, arg := range args {
			if top {
				sub, ok, err := parseFunc(arg, false)
				if err != nil {
					return nil, false, err
				} else if ok {
					parts[i] = sub
					continue
				}
			}
			leaf, err := parseLeaf(arg)
			if err != nil {
				return nil, false, err
			}
			parts[i] = leaf
		}
		if fn.oneArg {
			return &Complement{Inner: parts[0]}, true, nil
		}
		return &Joined{Parts: parts}, true, nil
	}
	return nil, false, nil
}

// parseLeaf parses text as one of the leaf syntaxes, chosen by the first
// delimiter found: ":" remote, ".." range, "^" adjoining, else single base.
func parseLeaf(text string) (Location, error) {
	switch {
	case strings.Contains(text, ":"):
		return parseRemote(text)
	case strings.Contains(text, ".."):
		return parseRange(text)
	case strings.Contains(text, "^"):
		return parseAdjoining(text)
	}
	pos, err := parseCoord(text)
	if err != nil {
		return nil, err
	}
	return &SingleBase{Pos: pos}, nil
}

func parseRemote(text string) (Location, error) {
	parts := strings.Split(text, ":")
	if len(parts) > 2 {
		return nil, &MalformedLocationError{Text: text, Reason: `too many ":" delimiters`}
	}
	accession := strings.TrimSpace(parts[0])
	if accession == "" {
		return nil, &MalformedLocationError{Text: text, Reason: "expected accession string"}
	}
	inner, err := Parse(parts[1])
	if err != nil {
		return nil, err
	}
	return &Remote{Accession: accession, Inner: inner}, nil
}

func parseRange(text string) (Location, error) {
	parts := strings.Split(text, "..")
	if len(parts) > 2 {
		return nil, &MalformedLocationError{Text: text, Reason: `too many ".." delimiters`}
	}
	r := new(Range)
	left, right := parts[0], parts[1]
	if strings.HasPrefix(left, "<") {
		r.CanBeLesser = true
		left = left[1:]
	}
	if strings.HasPrefix(right, ">") {
		r.CanBeGreater = true
		right = right[1:]
	}
	var err error
	if r.First, err = parseCoord(left); err != nil {
		return nil, err
	}
	if r.Second, err = parseCoord(right); err != nil {
		return nil, err
	}
	if r.Second < r.First {
		return nil, &MalformedLocationError{Text: text, Reason: "range end precedes start"}
	}
	return r, nil
}

func parseAdjoining(text string) (Location, error) {
	parts := strings.Split(text, "^")
	if len(parts) > 2 {
		return nil, &MalformedLocationError{Text: text, Reason: `too many "^" delimiters`}
	}
	first, err := parseCoord(parts[0])
	if err != nil {
		return nil, err
	}
	second, err := parseCoord(parts[1])
	if err != nil {
		return nil, err
	}
	a := &Adjoining{First: first, Second: second}
	switch {
	case second == 1:
		a.Subtype = Circular
	case second == first+1:
		a.Subtype = Endonucleolytic
	default:
		return nil, &MalformedLocationError{
			Text:   text,
			Reason: "invalid adjoining location: " + strconv.Itoa(first) + "^" + strconv.Itoa(second),
		}
	}
	return a, nil
}

// parseCoord converts a coordinate token to a positive integer.
func parseCoord(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 1 {
		return 0, &CoordinateError{Text: text}
	}
	return v, nil
}

// splitArgs splits text into top-level comma-separated segments. Commas
// inside parentheses do not split, and an unbalanced ")" terminates the
// scan: the caller has already stripped the opening parenthesis of the
// enclosing call, so the matching ")" marks the end of its argument list.
func splitArgs(text string) []string {
	var args []string
	var buf strings.Builder
	depth := 0

scan:
	for _, ch := range text {
		switch {
		case ch == '(':
			depth++
			buf.WriteRune(ch)
		case ch == ')' && depth != 0:
			depth--
			buf.WriteRune(ch)
		case ch == ')':
			break scan
		case ch == ',' && depth == 0:
			args = append(args, strings.TrimSpace(buf.String()))
			buf.Reset()
		default:
			buf.WriteRune(ch)
		}
	}
	return append(args, strings.TrimSpace(buf.String()))
}
