// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// A LineCursor reads a line-oriented stream one logical line at a time,
// skipping blank lines, and supports exact position capture and restore.
// A rewind must always target a position previously returned by Pos; the
// cursor never seeks into unread territory.
//
// I/O failures are sticky: once a read or seek fails, ReadLine returns ""
// and the error is available from Err. End of input is not an error; it is
// reported as an empty line.
type LineCursor struct {
	r   io.ReadSeeker
	br  *bufio.Reader
	off int64     // byte offset of the next unread byte
	err error     // sticky I/O error
	c   io.Closer // closed by Close, if the cursor owns the stream
}

// NewLineCursor constructs a LineCursor that consumes input from r.
func NewLineCursor(r io.ReadSeeker) *LineCursor {
	return &LineCursor{r: r, br: bufio.NewReader(r)}
}

// OpenLineCursor opens the file at path and returns a cursor that owns it.
// The caller must call Close when the cursor is no longer needed.
func OpenLineCursor(path string) (*LineCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	c := NewLineCursor(f)
	c.c = f
	return c, nil
}

// ReadLine returns the next line containing non-whitespace content, with
// its line terminator removed but leading indentation intact. Lines that
// are empty or all whitespace are skipped, never returned. At the end of
// the input, or after an I/O failure, ReadLine returns "".
func (c *LineCursor) ReadLine() string {
	for c.err == nil {
		line, err := c.br.ReadString('\n')
		c.off += int64(len(line))
		if err != nil && err != io.EOF {
			c.err = err
			return ""
		}
		if line == "" {
			return "" // end of input
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			return line
		}
		if err == io.EOF {
			return ""
		}
	}
	return ""
}

// Pos reports the position of the next unread line, suitable for a later
// call to Seek.
func (c *LineCursor) Pos() int64 { return c.off }

// Seek rewinds the cursor to pos, which must be a value previously
// returned by Pos. A failure of the underlying stream is sticky and is
// reported by Err.
func (c *LineCursor) Seek(pos int64) {
	if c.err != nil {
		return
	}
	if _, err := c.r.Seek(pos, io.SeekStart); err != nil {
		c.err = err
		return
	}
	c.br.Reset(c.r)
	c.off = pos
}

// PeekContinuation reads one logical line and returns it if it begins with
// indent columns of whitespace. Otherwise the cursor is rewound to its
// position before the read and PeekContinuation reports false: a failed
// probe never consumes the line it could not claim.
func (c *LineCursor) PeekContinuation(indent int) (string, bool) {
	pos := c.Pos()
	line := c.ReadLine()
	if line != "" && strings.HasPrefix(line, strings.Repeat(" ", indent)) {
		return line, true
	}
	c.Seek(pos)
	return "", false
}

// Err returns the first I/O error encountered by the cursor, or nil.
// End of input is not an error.
func (c *LineCursor) Err() error { return c.err }

// Close releases the underlying stream if the cursor owns it.
func (c *LineCursor) Close() error {
	if c.c != nil {
		return c.c.Close()
	}
	return nil
}
