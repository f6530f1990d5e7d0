package csvline

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	sentinel.Tag("csv")
	sentinel.Tag("receive.hash")
	sentinel.Tag("load.decrypt")
	sentinel.Tag("store.encrypt")
	sentinel.Tag("send.mask")
	sentinel.Tag("send.redact")
}

// columnBinding maps one struct field onto one row position.
type columnBinding struct {
	name  string
	field string
	index []int
	kind  reflect.Kind
	bits  int
	tags  map[string]string
}

// typeBindings is the column layout of a struct type.
type typeBindings struct {
	typeName string
	columns  []columnBinding
}

var bindingCache sync.Map // reflect.Type -> *typeBindings

// bindingsFor returns the cached column layout of T.
func bindingsFor[T any]() (*typeBindings, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := bindingCache.Load(typ); ok {
		return cached.(*typeBindings), nil
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, typ)
	}

	meta := sentinel.Scan[T]()
	tb := &typeBindings{typeName: meta.TypeName}
	seen := make(map[string]string, len(meta.Fields))

	for _, field := range meta.Fields {
		tag, tagged := field.Tags["csv"]
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}

		kind, bits, ok := scalarKind(field.ReflectType)
		if !ok {
			if tagged {
				return nil, fmt.Errorf("%w: field %s of type %s", ErrUnsupportedType, field.Name, field.ReflectType)
			}
			continue
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: column %q bound by %s and %s", ErrInvalidTag, name, prev, field.Name)
		}
		seen[name] = field.Name

		tb.columns = append(tb.columns, columnBinding{
			name:  name,
			field: field.Name,
			index: append([]int{}, field.Index...),
			kind:  kind,
			bits:  bits,
			tags:  field.Tags,
		})
	}

	actual, _ := bindingCache.LoadOrStore(typ, tb)
	return actual.(*typeBindings), nil
}

// scalarKind reports the kind and bit size of the scalar types a column
// can hold.
func scalarKind(rt reflect.Type) (reflect.Kind, int, bool) {
	switch k := rt.Kind(); k {
	case reflect.String, reflect.Bool:
		return k, 0, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return k, rt.Bits(), true
	}
	return reflect.Invalid, 0, false
}

func (tb *typeBindings) header() []string {
	h := make([]string, len(tb.columns))
	for i, c := range tb.columns {
		h[i] = c.name
	}
	return h
}

// Header returns the column names of T in field order.
func Header[T any]() ([]string, error) {
	tb, err := bindingsFor[T]()
	if err != nil {
		return nil, err
	}
	return tb.header(), nil
}

// MarshalRow converts v into a row following the layout of Header[T].
func MarshalRow[T any](v T) ([]string, error) {
	tb, err := bindingsFor[T]()
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(&v).Elem()
	row := make([]string, len(tb.columns))
	for i, c := range tb.columns {
		f := rv.FieldByIndex(c.index)
		switch c.kind {
		case reflect.String:
			row[i] = f.String()
		case reflect.Bool:
			row[i] = strconv.FormatBool(f.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			row[i] = strconv.FormatInt(f.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			row[i] = strconv.FormatUint(f.Uint(), 10)
		case reflect.Float32, reflect.Float64:
			row[i] = strconv.FormatFloat(f.Float(), 'g', -1, c.bits)
		}
	}
	return row, nil
}

// UnmarshalRow builds a T from a row laid out as Header[T].
func UnmarshalRow[T any](row []string) (T, error) {
	var out T
	tb, err := bindingsFor[T]()
	if err != nil {
		return out, err
	}
	if len(row) != len(tb.columns) {
		return out, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(row), len(tb.columns))
	}

	rv := reflect.ValueOf(&out).Elem()
	for i, c := range tb.columns {
		if err := setScalar(rv.FieldByIndex(c.index), c, row[i]); err != nil {
			return out, fmt.Errorf("column %s: %w", c.name, err)
		}
	}
	return out, nil
}

func setScalar(f reflect.Value, c columnBinding, s string) error {
	switch c.kind {
	case reflect.String:
		f.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		f.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, c.bits)
		if err != nil {
			return err
		}
		f.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, c.bits)
		if err != nil {
			return err
		}
		f.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, c.bits)
		if err != nil {
			return err
		}
		f.SetFloat(n)
	}
	return nil
}
