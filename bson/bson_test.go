package bson

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestMarshalRecordsAsStream(t *testing.T) {
	c := New()

	records := []map[string]string{
		{"id": "1", "first_name": "Annabell", "email": "abentinck0@mapy.cz"},
		{"id": "2", "first_name": "Cilka", "email": "cmerrill1@illinois.edu"},
	}

	data, err := c.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	// Two length-prefixed documents back to back.
	first := int(binary.LittleEndian.Uint32(data))
	second := int(binary.LittleEndian.Uint32(data[first:]))
	if first+second != len(data) {
		t.Errorf("stream of %d bytes holds documents of %d and %d bytes", len(data), first, second)
	}

	var restored []map[string]string
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if diff := cmp.Diff(records, restored); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalEmptyStream(t *testing.T) {
	c := New()

	data, err := c.Marshal([]map[string]string{})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Marshal(empty) = %d bytes, want 0", len(data))
	}

	restored := []map[string]string{{"stale": "x"}}
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(restored) != 0 {
		t.Errorf("Unmarshal(empty) = %v, want no records", restored)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	c := New()

	records := []map[string]string{{"a": "1", "b": "2", "c": "3", "d": "4", "e": "5"}}
	first, err := c.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	for i := 0; i < 20; i++ {
		next, err := c.Marshal(records)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		if !bytes.Equal(first, next) {
			t.Fatal("Marshal() output should not depend on map iteration order")
		}
	}
}

func TestMarshalUnmarshalSingleDocument(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `bson:"name"`
		Value int    `bson:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalTruncatedStream(t *testing.T) {
	c := New()

	data, err := c.Marshal([]map[string]string{{"id": "1"}, {"id": "2"}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored []map[string]string
	err = c.Unmarshal(data[:len(data)-3], &restored)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Unmarshal(truncated) error = %v, want ErrTruncated", err)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	if err := c.Unmarshal([]byte("invalid bson"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}

	var records []map[string]string
	if err := c.Unmarshal([]byte("invalid bson"), &records); err == nil {
		t.Error("Unmarshal(invalid stream) should return error")
	}
}
