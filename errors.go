// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import "fmt"

// UnexpectedKeywordError is reported when a required keyword read finds a
// line that does not begin with the wanted keyword.
type UnexpectedKeywordError struct {
	Keyword string // the keyword that was required
	Line    string // the line that was found, trimmed
}

// Error satisfies the error interface.
func (u *UnexpectedKeywordError) Error() string {
	return fmt.Sprintf("got %q, want keyword %q", u.Line, u.Keyword)
}

// MalformedRecordError is reported when the record is structurally broken:
// a required section keyword is never found before the end of the input, a
// feature line does not have a name and a location, or a quoted attribute
// value is never closed.
type MalformedRecordError struct {
	Reason string
}

// Error satisfies the error interface.
func (m *MalformedRecordError) Error() string { return "malformed record: " + m.Reason }
