// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package location

import (
	"errors"
	"fmt"
)

// ErrGenomeLength is reported when a coordinate inversion is requested for
// a non-positive total sequence length.
var ErrGenomeLength = errors.New("genome length must be positive")

// MalformedLocationError is reported when a location expression violates
// the grammar: a bare top-level comma, a function name without parentheses,
// wrong function arity, too many delimiters in a leaf, or an adjoining pair
// whose coordinates are not adjacent.
type MalformedLocationError struct {
	Text   string // the offending expression
	Reason string // why it was rejected
}

// Error satisfies the error interface.
func (m *MalformedLocationError) Error() string {
	return fmt.Sprintf("malformed location %q: %s", m.Text, m.Reason)
}

// CoordinateError is reported when a coordinate token is not a positive
// integer.
type CoordinateError struct {
	Text string // the offending token
}

// Error satisfies the error interface.
func (c *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: want positive integer", c.Text)
}

// UnresolvedAccessionError is reported when a remote location's accession
// matches neither the primary nor the alternate sequence.
type UnresolvedAccessionError struct {
	Accession string
}

// Error satisfies the error interface.
func (u *UnresolvedAccessionError) Error() string {
	return fmt.Sprintf("accession %q matches no available sequence", u.Accession)
}
