package csvline

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSSNMasker(t *testing.T) {
	m := SSNMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"123-45-6789", "***-**-6789"},
		{"123456789", "***-**-6789"},
		{"12-34-5678", "***-**-5678"},
		{"123", "***"}, // Too short
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("SSNMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestEmailMasker(t *testing.T) {
	m := EmailMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"alice@example.com", "a***@example.com"},
		{"abentinck0@mapy.cz", "a***@mapy.cz"},
		{"a@b.com", "a***@b.com"},
		{"noatsign", "********"},
		{"@nolocal.com", "************"},
		{"élodie@example.fr", "é***@example.fr"},
		{"ñoño", "****"},
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("EmailMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
		if !utf8.ValidString(result) {
			t.Errorf("EmailMasker(%q) produced invalid UTF-8 %q", tt.input, result)
		}
	}
}

func TestPhoneMasker(t *testing.T) {
	m := PhoneMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"(555) 123-4567", "***-***-4567"},
		{"555-123-4567", "***-***-4567"},
		{"+1 555 123 4567", "***-***-4567"},
		{"123-4567", "***-4567"},
		{"123", "***"}, // Too short
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("PhoneMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCardMasker(t *testing.T) {
	m := CardMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"4111111111111111", "************1111"},
		{"4111-1111-1111-1111", "************1111"},
		{"378282246310005", "***********0005"},
		{"12", "**"},
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("CardMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestIPMasker(t *testing.T) {
	m := IPMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"192.168.1.100", "192.168.xxx.xxx"},
		{"58.61.141.234", "58.61.xxx.xxx"},
		{"2001:db8::1", "2001:0db8:0000:0000:xxxx:xxxx:xxxx:xxxx"},
		{"not-an-ip", "*********"},
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("IPMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestNameMasker(t *testing.T) {
	m := NameMasker()

	tests := []struct {
		input    string
		expected string
	}{
		{"John Smith", "J*** S****"},
		{"Annabell", "A*******"},
		{"  Mary   Jane ", "M*** J***"},
		{"Żaneta", "Ż*****"},
		{"", ""},
	}

	for _, tt := range tests {
		result := m.Mask(tt.input)
		if result != tt.expected {
			t.Errorf("NameMasker(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestMaskerFunc(t *testing.T) {
	m := MaskerFunc(strings.ToUpper)
	if got := m.Mask("abc"); got != "ABC" {
		t.Errorf("MaskerFunc.Mask() = %q, want %q", got, "ABC")
	}
}

func TestBuiltinMaskers(t *testing.T) {
	maskers := builtinMaskers()
	for mt := range maskerFactories {
		if _, ok := maskers[mt]; !ok {
			t.Errorf("no builtin masker for %q", mt)
		}
	}
}
