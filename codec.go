package csvline

import (
	"fmt"
)

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "text/csv").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

var _ Codec = (*LineCodec)(nil)

// Marshal encodes a row ([]string) as one line, or a table ([][]string,
// Table, *Table) as one line per row.
//
// An empty row inside a table encodes as a blank line, and Unmarshal into
// *[][]string or *Table skips blank lines, so empty rows do not survive a
// table round trip. A single empty row marshaled on its own does.
func (lc *LineCodec) Marshal(v any) ([]byte, error) {
	switch val := v.(type) {
	case []string:
		return lc.AppendLine(nil, val)
	case [][]string:
		s, err := lc.EncodeAll(val)
		return []byte(s), err
	case Table:
		s, err := lc.EncodeAll(val.Rows())
		return []byte(s), err
	case *Table:
		if val == nil {
			return nil, newSerializeError(0, fmt.Errorf("%w: nil *Table", ErrUnsupportedType))
		}
		s, err := lc.EncodeAll(val.Rows())
		return []byte(s), err
	default:
		return nil, newSerializeError(0, fmt.Errorf("%w: %T", ErrUnsupportedType, v))
	}
}

// Unmarshal decodes data into *[]string (a single line), *[][]string or
// *Table (whole content).
func (lc *LineCodec) Unmarshal(data []byte, v any) error {
	switch dst := v.(type) {
	case *[]string:
		if dst == nil {
			break
		}
		fields, err := lc.Decode(string(data))
		if err != nil {
			return err
		}
		*dst = fields
		return nil
	case *[][]string:
		if dst == nil {
			break
		}
		rows, err := lc.DecodeAll(string(data))
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	case *Table:
		if dst == nil {
			break
		}
		rows, err := lc.DecodeAll(string(data))
		if err != nil {
			return err
		}
		*dst = NewTable(rows)
		return nil
	}
	return newDeserializeError(string(data), fmt.Errorf("%w: %T", ErrUnsupportedType, v))
}
