package csvline

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// ContentType is the MIME type reported by LineCodec.
const ContentType = "text/csv"

// LineCodec converts between a single row of string fields and one CSV line.
//
// A LineCodec is immutable once built and safe for concurrent use. The zero
// value is not usable; obtain one from New or use the package-level Encode
// and Decode functions, which share a codec with the default dialect.
type LineCodec struct {
	comma           byte
	quote           byte
	useCRLF         bool
	alwaysQuote     bool
	quoteWhitespace bool
	fieldsPerRecord int
}

// Option configures a LineCodec.
type Option func(*LineCodec)

// WithComma sets the field delimiter. Default is ','. The delimiter must be
// an ASCII byte other than \r and \n.
func WithComma(c byte) Option {
	return func(lc *LineCodec) { lc.comma = c }
}

// WithQuote sets the quote character. Default is '"'.
func WithQuote(q byte) Option {
	return func(lc *LineCodec) { lc.quote = q }
}

// WithCRLF terminates encoded lines with \r\n instead of \n.
func WithCRLF() Option {
	return func(lc *LineCodec) { lc.useCRLF = true }
}

// WithAlwaysQuote quotes every field regardless of content.
func WithAlwaysQuote() Option {
	return func(lc *LineCodec) { lc.alwaysQuote = true }
}

// WithQuoteWhitespace also quotes fields containing a space or a tab.
func WithQuoteWhitespace() Option {
	return func(lc *LineCodec) { lc.quoteWhitespace = true }
}

// WithFieldsPerRecord makes Decode reject rows whose width differs from n.
// Zero or a negative n disables the check.
func WithFieldsPerRecord(n int) Option {
	return func(lc *LineCodec) { lc.fieldsPerRecord = n }
}

// New builds a LineCodec. The default dialect is RFC 4180: comma
// delimiter, double-quote quoting, \n terminator.
func New(opts ...Option) (*LineCodec, error) {
	lc := &LineCodec{comma: ',', quote: '"'}
	for _, opt := range opts {
		opt(lc)
	}
	if err := lc.validate(); err != nil {
		return nil, err
	}
	return lc, nil
}

func (lc *LineCodec) validate() error {
	if lc.comma == 0 || lc.quote == 0 {
		return fmt.Errorf("%w: delimiter and quote must be set", ErrInvalidDialect)
	}
	if lc.comma == lc.quote {
		return fmt.Errorf("%w: delimiter and quote are both %q", ErrInvalidDialect, lc.comma)
	}
	for _, b := range []byte{lc.comma, lc.quote} {
		if b == '\n' || b == '\r' || b >= utf8.RuneSelf {
			return fmt.Errorf("%w: %q cannot be a delimiter or quote", ErrInvalidDialect, b)
		}
	}
	return nil
}

// ContentType returns the MIME type for CSV.
func (lc *LineCodec) ContentType() string {
	return ContentType
}

// Encode formats fields as one CSV line terminated by a newline.
// It fails only with a *SerializeError.
func (lc *LineCodec) Encode(fields []string) (string, error) {
	start := time.Now()
	buf, err := lc.AppendLine(make([]byte, 0, encodedSizeHint(fields)), fields)
	emitLineEncoded(context.Background(), len(fields), len(buf), time.Since(start), err)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Decode parses one CSV line, with or without its trailing newline, into
// fields. It fails only with a *DeserializeError.
func (lc *LineCodec) Decode(line string) ([]string, error) {
	start := time.Now()
	fields, err := lc.parseLine(line)
	if err == nil && lc.fieldsPerRecord > 0 && len(fields) != lc.fieldsPerRecord {
		err = fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), lc.fieldsPerRecord)
	}
	if err != nil {
		fields = nil
		err = newDeserializeError(line, err)
	}
	emitLineDecoded(context.Background(), len(fields), len(line), time.Since(start), err)
	return fields, err
}

var defaultCodec = &LineCodec{comma: ',', quote: '"'}

// Default returns the shared codec used by Encode and Decode.
func Default() *LineCodec {
	return defaultCodec
}

// Encode formats fields as one RFC 4180 line using the default dialect.
func Encode(fields []string) (string, error) {
	return defaultCodec.Encode(fields)
}

// Decode parses one RFC 4180 line using the default dialect.
func Decode(line string) ([]string, error) {
	return defaultCodec.Decode(line)
}
