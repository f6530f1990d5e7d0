package csvline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/csvline"
	"github.com/zoobzio/csvline/bson"
	"github.com/zoobzio/csvline/json"
	"github.com/zoobzio/csvline/msgpack"
	csvtest "github.com/zoobzio/csvline/testing"
	"github.com/zoobzio/csvline/yaml"
)

func TestTranscode(t *testing.T) {
	codecs := []csvline.Codec{json.New(), yaml.New(), msgpack.New(), bson.New()}

	for _, c := range codecs {
		t.Run(c.ContentType(), func(t *testing.T) {
			data, err := csvline.Transcode(context.Background(), csvline.Default(), csvtest.PeopleCSV, c)
			if err != nil {
				t.Fatalf("Transcode() error: %v", err)
			}

			var records []map[string]string
			if err := c.Unmarshal(data, &records); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if len(records) != 10 {
				t.Fatalf("records = %d, want 10", len(records))
			}
			if got := records[3]["email"]; got != "ppickthorne3@macromedia.com" {
				t.Errorf("records[3][email] = %q", got)
			}
			if got := records[9]["ip_address"]; got != "45.210.112.131" {
				t.Errorf("records[9][ip_address] = %q", got)
			}
		})
	}
}

func TestTranscode_JSONExact(t *testing.T) {
	content := "id,note\n1,\"a, b\"\n"

	data, err := csvline.Transcode(context.Background(), csvline.Default(), content, json.New())
	if err != nil {
		t.Fatalf("Transcode() error: %v", err)
	}
	if want := `[{"id":"1","note":"a, b"}]`; string(data) != want {
		t.Errorf("Transcode() = %s, want %s", data, want)
	}
}

func TestTranscode_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := csvline.Transcode(ctx, csvline.Default(), "a,b\n1\n", json.New()); !errors.Is(err, csvline.ErrFieldCount) {
		t.Errorf("ragged table error = %v, want ErrFieldCount", err)
	}
	if _, err := csvline.Transcode(ctx, csvline.Default(), "a,b\n\"1,2\n", json.New()); !errors.Is(err, csvline.ErrUnterminatedQuote) {
		t.Errorf("malformed table error = %v, want ErrUnterminatedQuote", err)
	}
	if _, err := csvline.Transcode(ctx, csvline.Default(), "id,id\n1,2\n", json.New()); !errors.Is(err, csvline.ErrDuplicateColumn) {
		t.Errorf("duplicate header error = %v, want ErrDuplicateColumn", err)
	}
	if _, err := csvline.Transcode(ctx, csvline.Default(), "a\n", nil); !errors.Is(err, csvline.ErrUnsupportedType) {
		t.Errorf("nil codec error = %v, want ErrUnsupportedType", err)
	}
}
