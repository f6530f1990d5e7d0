package csvline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zoobzio/csvline"
	csvtest "github.com/zoobzio/csvline/testing"
)

func TestPersonHeaderMatchesFixture(t *testing.T) {
	header, err := csvline.Header[csvtest.Person]()
	if err != nil {
		t.Fatalf("Header() error: %v", err)
	}
	if diff := cmp.Diff(csvtest.PeopleRows()[0], header); diff != "" {
		t.Errorf("Header() mismatch (-want +got):\n%s", diff)
	}
}

func TestPersonStoreLoad(t *testing.T) {
	ctx := context.Background()
	proc, err := csvline.NewProcessorFor[csvtest.Person](nil)
	if err != nil {
		t.Fatalf("NewProcessorFor() error: %v", err)
	}
	proc.SetEncryptor(csvline.EncryptAES, csvtest.TestEncryptor(t))

	for _, record := range csvtest.PeopleRows()[1:] {
		person, err := csvline.UnmarshalRow[csvtest.Person](record)
		if err != nil {
			t.Fatalf("UnmarshalRow(%q) error: %v", record, err)
		}

		row, err := csvline.MarshalRow(person)
		if err != nil {
			t.Fatalf("MarshalRow() error: %v", err)
		}
		stored, err := proc.Store(ctx, row)
		if err != nil {
			t.Fatalf("Store() error: %v", err)
		}
		if strings.Contains(stored, person.Email) {
			t.Errorf("stored line leaks email: %q", stored)
		}

		loaded, err := proc.Load(ctx, stored)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		back, err := csvline.UnmarshalRow[csvtest.Person](loaded)
		if err != nil {
			t.Fatalf("UnmarshalRow() error: %v", err)
		}
		if back != person {
			t.Errorf("Load(Store(p)) = %+v, want %+v", back, person)
		}
	}
}

func TestPersonSend(t *testing.T) {
	proc, err := csvline.NewProcessorFor[csvtest.Person](nil)
	if err != nil {
		t.Fatalf("NewProcessorFor() error: %v", err)
	}
	proc.SetEncryptor(csvline.EncryptAES, csvtest.TestEncryptor(t))

	line, err := proc.Send(context.Background(), csvtest.PeopleRows()[1])
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}

	want := "1,A*******,B*******,a***@mapy.cz,Female,58.61.xxx.xxx\n"
	if line != want {
		t.Errorf("Send() = %q, want %q", line, want)
	}
}

func TestPersonMissingEncryptor(t *testing.T) {
	proc, err := csvline.NewProcessorFor[csvtest.Person](nil)
	if err != nil {
		t.Fatalf("NewProcessorFor() error: %v", err)
	}

	_, err = proc.Send(context.Background(), csvtest.PeopleRows()[1])
	if !errors.Is(err, csvline.ErrMissingEncryptor) {
		t.Errorf("Send() error = %v, want ErrMissingEncryptor", err)
	}
}
