package csvline

import (
	"context"
	"fmt"
	"time"
)

// EncodeAll encodes every row and concatenates the lines, producing the
// content of a CSV file. The first failing row aborts the call.
func (lc *LineCodec) EncodeAll(rows [][]string) (string, error) {
	start := time.Now()
	var buf []byte
	for i, row := range rows {
		var err error
		buf, err = lc.AppendLine(buf, row)
		if err != nil {
			err = fmt.Errorf("row %d: %w", i+1, err)
			emitTableEncoded(context.Background(), i, len(buf), time.Since(start), err)
			return "", err
		}
	}
	emitTableEncoded(context.Background(), len(rows), len(buf), time.Since(start), nil)
	return string(buf), nil
}

// DecodeAll splits content into records and decodes each one. Blank lines
// are skipped. Errors report the 1-based line number of the record.
func (lc *LineCodec) DecodeAll(content string) ([][]string, error) {
	start := time.Now()
	quote := byte('"')
	if lc != nil && lc.quote != 0 {
		quote = lc.quote
	}

	var rows [][]string
	lineNo := 1
	for _, line := range SplitLines(content, quote) {
		n := lineNo
		lineNo += countNewlines(line) + 1
		if line == "" || line == "\r" {
			continue
		}
		fields, err := lc.parseLine(line)
		if err == nil && lc.fieldsPerRecord > 0 && len(fields) != lc.fieldsPerRecord {
			err = fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), lc.fieldsPerRecord)
		}
		if err != nil {
			err = fmt.Errorf("line %d: %w", n, newDeserializeError(line, err))
			emitTableDecoded(context.Background(), len(rows), len(content), time.Since(start), err)
			return nil, err
		}
		rows = append(rows, fields)
	}
	emitTableDecoded(context.Background(), len(rows), len(content), time.Since(start), nil)
	return rows, nil
}

// SplitLines splits content on newlines that are outside quoted fields.
// Newlines are not included in the returned lines; a trailing newline does
// not produce a final empty line.
func SplitLines(content string, quote byte) []string {
	var lines []string
	inQuotes := false
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case quote:
			inQuotes = !inQuotes
		case '\n':
			if !inQuotes {
				lines = append(lines, content[start:i])
				start = i + 1
			}
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

func countNewlines(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}

// Table is a header row followed by records.
type Table struct {
	Header  []string
	Records [][]string
}

// NewTable treats the first row as the header.
func NewTable(rows [][]string) Table {
	if len(rows) == 0 {
		return Table{}
	}
	return Table{Header: rows[0], Records: rows[1:]}
}

// Rows returns the header followed by the records.
func (t Table) Rows() [][]string {
	if t.Header == nil && len(t.Records) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(t.Records)+1)
	rows = append(rows, t.Header)
	return append(rows, t.Records...)
}

// Maps keys every record by the header. A header naming a column twice
// fails with ErrDuplicateColumn; records whose width differs from the
// header fail with ErrFieldCount.
func (t Table) Maps() ([]map[string]string, error) {
	if err := checkHeader(t.Header); err != nil {
		return nil, err
	}
	out := make([]map[string]string, 0, len(t.Records))
	for i, rec := range t.Records {
		if len(rec) != len(t.Header) {
			return nil, fmt.Errorf("record %d: %w: got %d, want %d", i+1, ErrFieldCount, len(rec), len(t.Header))
		}
		m := make(map[string]string, len(rec))
		for j, v := range rec {
			m[t.Header[j]] = v
		}
		out = append(out, m)
	}
	return out, nil
}

// checkHeader rejects headers that name a column more than once.
func checkHeader(header []string) error {
	seen := make(map[string]int, len(header))
	for i, name := range header {
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateColumn, name, prev+1, i+1)
		}
		seen[name] = i
	}
	return nil
}
