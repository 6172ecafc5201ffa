// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import (
	"fmt"
	"strings"

	"github.com/creachadair/genbank/location"
)

// featureIndent is the fixed indentation of a feature-table entry. A line
// opens a new feature exactly when it carries this indent and a non-blank
// character in the following column; anything deeper belongs to the
// current feature, anything shallower ends the table.
const featureIndent = 5

const featurePrefix = "     " // featureIndent spaces

// A Feature is one entry of the FEATURES table: a name (such as CDS or
// gene), a location, and an ordered set of /key=value attributes.
type Feature struct {
	Name         string
	Location     location.Location
	LocationText string // the location as written in the record

	keys  []string
	attrs map[string]string
}

// Attr returns the value of the named attribute and whether it is present.
func (f *Feature) Attr(key string) (string, bool) {
	v, ok := f.attrs[key]
	return v, ok
}

// HasAttr reports whether the named attribute is present.
func (f *Feature) HasAttr(key string) bool { _, ok := f.attrs[key]; return ok }

// SetAttr sets the named attribute. A new key is appended to the attribute
// order; setting an existing key overwrites its value in place.
func (f *Feature) SetAttr(key, value string) {
	if f.attrs == nil {
		f.attrs = make(map[string]string)
	}
	if _, ok := f.attrs[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.attrs[key] = value
}

// AttrNames returns the attribute keys in insertion order.
func (f *Feature) AttrNames() []string { return f.keys }

// ParseFeatures parses the FEATURES table. On success the cursor is left
// at the first line after the table (the start of the next section), so a
// subsequent stage can read it.
//
// A feature whose location cannot be parsed stops the stage; the features
// assembled so far are returned alongside the error, which preserves its
// concrete type (such as *location.MalformedLocationError) for hosts that
// apply per-feature policy.
func (p *Parser) ParseFeatures() ([]*Feature, error) {
	if err := p.kr.Expect("FEATURES"); err != nil {
		return nil, err
	}
	var features []*Feature
	pos := p.cur.Pos()
	line := p.cur.ReadLine()
	for isFeatureLine(line) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return features, &MalformedRecordError{
				Reason: fmt.Sprintf("feature line %q: want name and location", strings.TrimSpace(line)),
			}
		}
		f := &Feature{Name: fields[0], LocationText: fields[1]}
		loc, err := location.Parse(fields[1])
		if err != nil {
			return features, err
		}
		f.Location = loc
		if err := p.parseAttributes(f); err != nil {
			return features, err
		}
		features = append(features, f)
		pos = p.cur.Pos()
		line = p.cur.ReadLine()
	}
	p.cur.Seek(pos)
	return features, nil
}

// isFeatureLine reports whether line opens a new feature-table entry.
func isFeatureLine(line string) bool {
	if len(line) <= featureIndent || !strings.HasPrefix(line, featurePrefix) {
		return false
	}
	return line[featureIndent] != ' ' && line[featureIndent] != '\t'
}

// parseAttributes reads the /key=value lines following a feature entry.
// A value beginning with a double quote is accumulated across lines until
// the closing quote, each joined with a single space.
func (p *Parser) parseAttributes(f *Feature) error {
	for {
		attr, ok := p.kr.Optional("/")
		if !ok {
			return nil
		}
		key, value, _ := strings.Cut(attr, "=")
		if strings.HasPrefix(value, `"`) {
			v, err := p.readQuoted(value)
			if err != nil {
				return err
			}
			value = v
		}
		f.SetAttr(key, value)
	}
}

func (p *Parser) readQuoted(value string) (string, error) {
	v := value[1:]
	for v == "" || !strings.HasSuffix(v, `"`) {
		line := p.cur.ReadLine()
		if line == "" {
			return "", &MalformedRecordError{Reason: "unterminated quoted attribute value"}
		}
		v += " " + strings.TrimSpace(line)
	}
	return strings.TrimSuffix(v, `"`), nil
}
