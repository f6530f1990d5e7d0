package yaml

import (
	"testing"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalRecords(t *testing.T) {
	c := New()

	records := []map[string]string{
		{"id": "1", "email": "abentinck0@mapy.cz"},
	}

	data, err := c.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	want := "- email: abentinck0@mapy.cz\n  id: \"1\"\n"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}

	var restored []map[string]string
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(restored) != 1 || restored[0]["id"] != "1" {
		t.Errorf("round-trip failed: got %v", restored)
	}
}

func TestMarshalNil(t *testing.T) {
	c := New()

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null\n" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null\n")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v []map[string]string
	if err := c.Unmarshal([]byte("- id: [unclosed"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
