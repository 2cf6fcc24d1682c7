// Package phone provides phone number formatting utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Style selects the rendering applied to a successfully parsed number.
type Style int

const (
	// StyleNational renders numbers in the national convention, e.g. "(650) 253-0000".
	StyleNational Style = iota
	// StyleInternational renders numbers with the calling code, e.g. "+1 650-253-0000".
	StyleInternational
	// StyleE164 renders numbers compactly, e.g. "+16502530000".
	StyleE164
)

// ParseStyle maps a config string to a Style. Unknown values fall back to
// national.
func ParseStyle(s string) Style {
	switch strings.ToLower(s) {
	case "international", "intl":
		return StyleInternational
	case "e164":
		return StyleE164
	default:
		return StyleNational
	}
}

func (s Style) format() phonenumbers.PhoneNumberFormat {
	switch s {
	case StyleInternational:
		return phonenumbers.INTERNATIONAL
	case StyleE164:
		return phonenumbers.E164
	default:
		return phonenumbers.NATIONAL
	}
}

// RegionFormatter builds a formatter for the given ISO-3166 region. The
// returned function reports ok=false when the input does not parse as a
// valid number for that region; it never panics on malformed input.
func RegionFormatter(region string, style Style) func(raw string) (string, bool) {
	numberFormat := style.format()
	return func(raw string) (string, bool) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return "", false
		}

		number, err := phonenumbers.Parse(trimmed, region)
		if err != nil {
			return "", false
		}
		if !phonenumbers.IsValidNumberForRegion(number, region) {
			return "", false
		}

		return phonenumbers.Format(number, numberFormat), true
	}
}
