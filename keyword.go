// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import "strings"

// continuationIndent is the fixed indentation of keyword continuation
// lines (DEFINITION, KEYWORDS, ORGANISM, AUTHORS, TITLE, JOURNAL, and so
// on).
const continuationIndent = 12

// A KeywordReader reads keyword-introduced fields from a LineCursor. A
// keyword is a token at column 0 of a logical line; its value is the
// remainder of the line, possibly extended by continuation lines at the
// fixed 12-column indent.
//
// Required reads (Expect, Value, Fields, Multiline) fail with a
// *UnexpectedKeywordError when the keyword is absent. Optional probes
// (Optional, OptionalMultiline) rewind the cursor exactly and report false
// instead; absence is a normal outcome, not an error.
type KeywordReader struct {
	cur *LineCursor
}

// NewKeywordReader constructs a KeywordReader over c.
func NewKeywordReader(c *LineCursor) *KeywordReader { return &KeywordReader{cur: c} }

// Cursor returns the underlying line cursor.
func (k *KeywordReader) Cursor() *LineCursor { return k.cur }

// Expect reads one line and verifies that it begins with keyword. The rest
// of the line is discarded.
func (k *KeywordReader) Expect(keyword string) error {
	_, err := k.Value(keyword)
	return err
}

// Value reads one line beginning with keyword and returns the remainder of
// the line with the keyword and surrounding whitespace removed.
func (k *KeywordReader) Value(keyword string) (string, error) {
	line := strings.TrimSpace(k.cur.ReadLine())
	if line == "" || !strings.HasPrefix(line, keyword) {
		return "", &UnexpectedKeywordError{Keyword: keyword, Line: line}
	}
	return strings.TrimSpace(line[len(keyword):]), nil
}

// Fields is like Value but tokenizes the remainder on runs of whitespace.
func (k *KeywordReader) Fields(keyword string) ([]string, error) {
	value, err := k.Value(keyword)
	if err != nil {
		return nil, err
	}
	return strings.Fields(value), nil
}

// Optional probes for a line beginning with keyword. If the next logical
// line does not begin with it, the cursor is rewound to its position
// before the probe and Optional reports false.
func (k *KeywordReader) Optional(keyword string) (string, bool) {
	pos := k.cur.Pos()
	line := strings.TrimSpace(k.cur.ReadLine())
	if line == "" || !strings.HasPrefix(line, keyword) {
		k.cur.Seek(pos)
		return "", false
	}
	return strings.TrimSpace(line[len(keyword):]), true
}

// Multiline reads a required keyword value and joins any continuation
// lines onto it, separated by delim.
func (k *KeywordReader) Multiline(keyword, delim string) (string, error) {
	seed, err := k.Value(keyword)
	if err != nil {
		return "", err
	}
	return k.appendContinuations(seed, delim), nil
}

// OptionalMultiline is like Multiline for an optional keyword. If the
// keyword is absent the cursor is rewound and OptionalMultiline reports
// false.
func (k *KeywordReader) OptionalMultiline(keyword, delim string) (string, bool) {
	seed, ok := k.Optional(keyword)
	if !ok {
		return "", false
	}
	return k.appendContinuations(seed, delim), true
}

func (k *KeywordReader) appendContinuations(base, delim string) string {
	for {
		line, ok := k.cur.PeekContinuation(continuationIndent)
		if !ok {
			return base
		}
		base += delim + strings.TrimSpace(line)
	}
}

// AdvanceUntil reads lines until one begins with keyword, then rewinds to
// just before that line so the next read sees it. Reaching the end of the
// input first is fatal: the record is structurally broken, and
// AdvanceUntil reports a *MalformedRecordError (or the cursor's I/O error,
// if reading failed).
func (k *KeywordReader) AdvanceUntil(keyword string) error {
	for {
		pos := k.cur.Pos()
		line := k.cur.ReadLine()
		if line == "" {
			if err := k.cur.Err(); err != nil {
				return err
			}
			return &MalformedRecordError{Reason: "keyword " + keyword + " not found"}
		}
		if strings.HasPrefix(strings.TrimSpace(line), keyword) {
			k.cur.Seek(pos)
			return nil
		}
	}
}
