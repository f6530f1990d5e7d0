package csvline

import (
	"net/netip"
	"strings"
	"unicode/utf8"
)

// MaskType represents a known data format with masking rules.
type MaskType string

const (
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskIP    MaskType = "ip"    // 192.168.1.100 -> 192.168.xxx.xxx
	MaskName  MaskType = "name"  // John Smith -> J*** S****
	MaskPhone MaskType = "phone" // (555) 123-4567 -> ***-***-4567
	MaskCard  MaskType = "card"  // 4111111111111111 -> ************1111
	MaskSSN   MaskType = "ssn"   // 123-45-6789 -> ***-**-6789
)

// Masker applies content-aware masking to a column value.
type Masker interface {
	Mask(value string) string
}

// MaskerFunc adapts a plain function to the Masker interface.
type MaskerFunc func(value string) string

// Mask calls f(value).
func (f MaskerFunc) Mask(value string) string {
	return f(value)
}

// EmailMasker keeps the first character of the local part and the domain.
func EmailMasker() Masker {
	return MaskerFunc(func(value string) string {
		at := strings.LastIndexByte(value, '@')
		if at < 1 {
			return stars(utf8.RuneCountInString(value))
		}
		_, n := utf8.DecodeRuneInString(value)
		return value[:n] + "***" + value[at:]
	})
}

// IPMasker keeps the network half of an address: the first two IPv4
// octets or the first four IPv6 groups.
func IPMasker() Masker {
	return MaskerFunc(func(value string) string {
		addr, err := netip.ParseAddr(value)
		if err != nil {
			return stars(len(value))
		}
		if addr.Is4() {
			return prefixOctets(value) + "xxx.xxx"
		}
		groups := strings.Split(addr.StringExpanded(), ":")
		return strings.Join(groups[:4], ":") + ":xxxx:xxxx:xxxx:xxxx"
	})
}

// prefixOctets returns "a.b." for an IPv4 string "a.b.c.d".
func prefixOctets(v4 string) string {
	dots := 0
	for i := 0; i < len(v4); i++ {
		if v4[i] == '.' {
			dots++
			if dots == 2 {
				return v4[:i+1]
			}
		}
	}
	return v4
}

// NameMasker keeps the first letter of every word.
func NameMasker() Masker {
	return MaskerFunc(func(value string) string {
		words := strings.Fields(value)
		for i, w := range words {
			r := []rune(w)
			words[i] = string(r[0]) + stars(len(r)-1)
		}
		return strings.Join(words, " ")
	})
}

// PhoneMasker keeps the last four digits.
func PhoneMasker() Masker {
	return lastFourMasker(func(digits, last4 string) string {
		if len(digits) >= 10 {
			return "***-***-" + last4
		}
		return "***-" + last4
	})
}

// CardMasker keeps the last four digits of a card number.
func CardMasker() Masker {
	return lastFourMasker(func(digits, last4 string) string {
		return stars(len(digits)-4) + last4
	})
}

// SSNMasker keeps the last four digits of a Social Security Number.
func SSNMasker() Masker {
	return lastFourMasker(func(_, last4 string) string {
		return "***-**-" + last4
	})
}

// lastFourMasker extracts digits and hands them to format when at least
// four are present; shorter values are masked entirely.
func lastFourMasker(format func(digits, last4 string) string) Masker {
	return MaskerFunc(func(value string) string {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, value)
		if len(digits) < 4 {
			return stars(len(value))
		}
		return format(digits, digits[len(digits)-4:])
	})
}

func stars(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("*", n)
}

var maskerFactories = map[MaskType]func() Masker{
	MaskEmail: EmailMasker,
	MaskIP:    IPMasker,
	MaskName:  NameMasker,
	MaskPhone: PhoneMasker,
	MaskCard:  CardMasker,
	MaskSSN:   SSNMasker,
}

func builtinMaskers() map[MaskType]Masker {
	maskers := make(map[MaskType]Masker, len(maskerFactories))
	for mt, build := range maskerFactories {
		maskers[mt] = build()
	}
	return maskers
}
