package csvline

// AppendLine appends the CSV encoding of fields, including the line
// terminator, to dst and returns the extended buffer. On error dst is
// returned unchanged along with a *SerializeError.
func (lc *LineCodec) AppendLine(dst []byte, fields []string) ([]byte, error) {
	if lc == nil {
		return dst, newSerializeError(len(fields), ErrInvalidDialect)
	}
	if err := lc.validate(); err != nil {
		return dst, newSerializeError(len(fields), err)
	}

	out := dst
	for i, field := range fields {
		if i > 0 {
			out = append(out, lc.comma)
		}
		if lc.needsQuote(field, len(fields)) {
			out = appendQuoted(out, field, lc.quote)
		} else {
			out = append(out, field...)
		}
	}

	if lc.useCRLF {
		out = append(out, '\r', '\n')
	} else {
		out = append(out, '\n')
	}
	return out, nil
}

// needsQuote reports whether field must be enclosed in quotes.
// A lone empty field is quoted so the row differs from the empty row.
func (lc *LineCodec) needsQuote(field string, width int) bool {
	if lc.alwaysQuote {
		return true
	}
	if field == "" {
		return width == 1
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case lc.comma, lc.quote, '\n', '\r':
			return true
		case ' ', '\t':
			if lc.quoteWhitespace {
				return true
			}
		}
	}
	return false
}

// appendQuoted writes field between quotes, doubling embedded quotes.
func appendQuoted(dst []byte, field string, quote byte) []byte {
	dst = append(dst, quote)
	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] != quote {
			continue
		}
		dst = append(dst, field[start:i]...)
		dst = append(dst, quote, quote)
		start = i + 1
	}
	dst = append(dst, field[start:]...)
	return append(dst, quote)
}

// encodedSizeHint estimates the encoded length of fields without quoting.
func encodedSizeHint(fields []string) int {
	n := len(fields) + 2
	for _, f := range fields {
		n += len(f)
	}
	return n
}
