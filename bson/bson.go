// Package bson provides a BSON codec implementation.
//
// Slices are written as a stream of concatenated documents, one per
// element, the layout produced by mongodump. Records of type
// map[string]string are written with their keys sorted so the output is
// reproducible.
package bson

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/zoobzio/csvline"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrTruncated indicates a document stream ends inside a document.
var ErrTruncated = errors.New("bson: truncated document stream")

// minDocSize is the length prefix plus the terminating null byte.
const minDocSize = 5

var docType = reflect.TypeOf(bson.D{})

// bsonCodec implements csvline.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() csvline.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON. A slice becomes a document stream; any other
// value must marshal to a single document.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || !isStream(rv.Type()) {
		return marshalDoc(v)
	}

	var out []byte
	for i := 0; i < rv.Len(); i++ {
		doc, err := marshalDoc(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		out = append(out, doc...)
	}
	return out, nil
}

// Unmarshal decodes BSON data into v. A pointer to a slice reads a
// document stream, appending one element per document.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || !isStream(rv.Elem().Type()) {
		return bson.Unmarshal(data, v)
	}

	slice := rv.Elem()
	out := reflect.MakeSlice(slice.Type(), 0, 0)
	for n := 1; len(data) > 0; n++ {
		doc, rest, err := nextDoc(data)
		if err != nil {
			return fmt.Errorf("document %d: %w", n, err)
		}
		elem := reflect.New(slice.Type().Elem())
		if err := bson.Unmarshal(doc, elem.Interface()); err != nil {
			return fmt.Errorf("document %d: %w", n, err)
		}
		out = reflect.Append(out, elem.Elem())
		data = rest
	}
	slice.Set(out)
	return nil
}

// isStream reports whether values of t are written as a document stream.
// Byte slices and bson.D are single documents.
func isStream(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Slice {
		return false
	}
	return t != docType && t.Elem().Kind() != reflect.Uint8
}

func marshalDoc(v any) ([]byte, error) {
	if rec, ok := v.(map[string]string); ok {
		return bson.Marshal(sortedDoc(rec))
	}
	return bson.Marshal(v)
}

func sortedDoc(rec map[string]string) bson.D {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := make(bson.D, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, bson.E{Key: k, Value: rec[k]})
	}
	return doc
}

// nextDoc splits the first length-prefixed document off data.
func nextDoc(data []byte) (bson.Raw, []byte, error) {
	if len(data) < minDocSize {
		return nil, nil, ErrTruncated
	}
	size := int(binary.LittleEndian.Uint32(data))
	if size < minDocSize || size > len(data) {
		return nil, nil, ErrTruncated
	}
	doc := bson.Raw(data[:size])
	if err := doc.Validate(); err != nil {
		return nil, nil, err
	}
	return doc, data[size:], nil
}
