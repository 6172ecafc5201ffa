// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package genbank

import (
	"strings"

	"github.com/creachadair/genbank/seq"
)

// ParseOrigin parses the ORIGIN section into a Sequence. Each residue line
// begins with a numeric offset token followed by whitespace-separated
// residue chunks; the chunks are concatenated and uppercased. The section
// ends at the first line that does not begin with a digit, and the cursor
// is rewound to that line so the record terminator remains readable.
func (p *Parser) ParseOrigin() (*seq.Sequence, error) {
	if err := p.kr.Expect("ORIGIN"); err != nil {
		return nil, err
	}
	var sb strings.Builder
	for {
		pos := p.cur.Pos()
		line := strings.TrimSpace(p.cur.ReadLine())
		if line == "" || line[0] < '0' || line[0] > '9' {
			p.cur.Seek(pos)
			break
		}
		fields := strings.Fields(line)
		for _, chunk := range fields[1:] {
			sb.WriteString(chunk)
		}
	}
	if err := p.cur.Err(); err != nil {
		return nil, err
	}
	return seq.New(sb.String()), nil
}
