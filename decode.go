package csvline

import (
	"strings"
)

// parseLine splits line into fields. Errors are returned unwrapped;
// Decode attaches the DeserializeError kind.
func (lc *LineCodec) parseLine(line string) ([]string, error) {
	if lc == nil {
		return nil, ErrInvalidDialect
	}
	if err := lc.validate(); err != nil {
		return nil, err
	}

	line = trimTerminator(line)
	fields := make([]string, 0, strings.Count(line, string(lc.comma))+1)
	if line == "" {
		return fields, nil
	}

	var buf []byte
	pos := 0
	for {
		if pos < len(line) && line[pos] == lc.quote {
			open := pos
			pos++
			buf = buf[:0]
			for {
				idx := strings.IndexByte(line[pos:], lc.quote)
				if idx < 0 {
					return nil, &ParseError{Column: open + 1, Err: ErrUnterminatedQuote}
				}
				buf = append(buf, line[pos:pos+idx]...)
				pos += idx + 1
				// Doubled quote is a literal quote.
				if pos < len(line) && line[pos] == lc.quote {
					buf = append(buf, lc.quote)
					pos++
					continue
				}
				break
			}
			fields = append(fields, string(buf))

			if pos == len(line) {
				return fields, nil
			}
			if line[pos] != lc.comma {
				return nil, &ParseError{Column: pos + 1, Err: ErrExtraneousQuote}
			}
			pos++
			continue
		}

		end := strings.IndexByte(line[pos:], lc.comma)
		field := line[pos:]
		if end >= 0 {
			field = line[pos : pos+end]
		}
		for i := 0; i < len(field); i++ {
			switch field[i] {
			case lc.quote:
				return nil, &ParseError{Column: pos + i + 1, Err: ErrBareQuote}
			case '\n', '\r':
				return nil, &ParseError{Column: pos + i + 1, Err: ErrMultipleRecords}
			}
		}
		fields = append(fields, field)

		if end < 0 {
			return fields, nil
		}
		pos += end + 1
	}
}

// trimTerminator drops a single trailing \n, \r\n or \r.
func trimTerminator(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2]
	case strings.HasSuffix(line, "\n"), strings.HasSuffix(line, "\r"):
		return line[:len(line)-1]
	}
	return line
}
