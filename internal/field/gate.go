package field

import "phonefield/internal/country"

// Outcome is the result of one blur-time format attempt. Display and
// ErrorText are mutually exclusive: a successful format sets Display and
// clears the error, a failed one clears Display and sets the error.
type Outcome struct {
	Display    string
	HasDisplay bool
	ErrorText  string
	// CountryDetail carries the country-level error message, when the
	// country defines one, as supplementary detail. The field-level
	// ErrorText stays authoritative for display.
	CountryDetail string
}

// formatOnCommit runs the active country's formatter over the raw input.
// Formatter failure is an expected outcome, never an error value.
func formatOnCommit(raw string, active country.Country, fieldError string) Outcome {
	if active.Format != nil {
		if formatted, ok := active.Format(raw); ok {
			return Outcome{Display: formatted, HasDisplay: true}
		}
	}
	return Outcome{
		ErrorText:     fieldError,
		CountryDetail: active.ErrorMessage,
	}
}
