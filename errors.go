package csvline

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrSerialize indicates a row could not be formatted as a CSV line.
	ErrSerialize = errors.New("csv serialize failed")

	// ErrDeserialize indicates a line could not be parsed into a row.
	ErrDeserialize = errors.New("csv deserialize failed")

	// ErrInvalidDialect indicates the delimiter or quote configuration is unusable.
	ErrInvalidDialect = errors.New("invalid dialect")

	// ErrBareQuote indicates a quote inside an unquoted field.
	ErrBareQuote = errors.New("bare quote in non-quoted field")

	// ErrUnterminatedQuote indicates a quoted field is not closed before the end of the line.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")

	// ErrExtraneousQuote indicates data between a closing quote and the next delimiter.
	ErrExtraneousQuote = errors.New("extraneous data after quoted field")

	// ErrMultipleRecords indicates a line holds more than one record.
	ErrMultipleRecords = errors.New("line contains more than one record")

	// ErrFieldCount indicates a row has an unexpected number of fields.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrUnsupportedType indicates a value the codec cannot marshal or unmarshal.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownColumn indicates a rule references a column missing from the header.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDuplicateColumn indicates a header names the same column twice.
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrMissingEncryptor indicates a required encryptor was not registered.
	ErrMissingEncryptor = errors.New("missing encryptor")

	// ErrMissingHasher indicates a required hasher was not registered.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingMasker indicates a required masker was not registered.
	ErrMissingMasker = errors.New("missing masker")

	// ErrEncrypt indicates encryption of a column failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates decryption of a column failed.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrHash indicates hashing of a column failed.
	ErrHash = errors.New("hash failed")
)

// SerializeError reports a row that could not be encoded.
// It matches both ErrSerialize and its Cause under errors.Is.
type SerializeError struct {
	Fields int   // Number of fields in the rejected row
	Cause  error // Underlying failure
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("%s: row of %d fields: %v", ErrSerialize.Error(), e.Fields, e.Cause)
}

func (e *SerializeError) Unwrap() []error {
	return []error{ErrSerialize, e.Cause}
}

// DeserializeError reports a line that could not be decoded.
// It matches both ErrDeserialize and its Cause under errors.Is.
type DeserializeError struct {
	Line  string // Offending input, truncated for display
	Cause error  // Underlying failure, usually a *ParseError
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("%s: %v (input %q)", ErrDeserialize.Error(), e.Cause, e.Line)
}

func (e *DeserializeError) Unwrap() []error {
	return []error{ErrDeserialize, e.Cause}
}

// ParseError locates a parsing failure within a single line.
type ParseError struct {
	Column int   // 1-based byte column
	Err    error // One of the quoting sentinels
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %d: %v", e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with context about the column and algorithm.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrMissingEncryptor, etc.)
	Column    string // Column that triggered the error
	Algorithm string // Algorithm or type that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Column != "" && e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q (column %s)", e.Err.Error(), e.Algorithm, e.Column)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	if e.Column != "" {
		return fmt.Sprintf("%s (column %s)", e.Err.Error(), e.Column)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents a failure while transforming a column value.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrEncrypt, ErrDecrypt, ErrHash)
	Column    string // Column that failed
	Operation string // encrypt, decrypt or hash
	Cause     error  // Original error from the capability
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s column %s: %v", e.Operation, e.Column, e.Cause)
	}
	return fmt.Sprintf("%s column %s", e.Operation, e.Column)
}

func (e *TransformError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

const maxErrorInput = 64

func newSerializeError(fields int, cause error) error {
	return &SerializeError{Fields: fields, Cause: cause}
}

func newDeserializeError(line string, cause error) error {
	if len(line) > maxErrorInput {
		line = line[:maxErrorInput] + "..."
	}
	return &DeserializeError{Line: line, Cause: cause}
}

func newConfigError(sentinel error, algorithm, column string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Column:    column,
	}
}

func newTransformError(sentinel error, operation, column string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Column:    column,
		Operation: operation,
		Cause:     cause,
	}
}
