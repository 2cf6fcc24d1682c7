package field

import (
	"testing"

	"phonefield/internal/country"
	"phonefield/platform/apperr"
	"phonefield/platform/validator"
)

const fieldError = "Please enter a valid phone number"

// tenDigits formats exactly ten digits, rejecting everything else.
func tenDigits(raw string) (string, bool) {
	if len(raw) == 10 {
		return "(xxx) xxx-xxxx", true
	}
	return "", false
}

func newTestState(t *testing.T, cfg Config, countries []country.Country) *State {
	t.Helper()
	reg, err := country.NewRegistry(countries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := NewState(cfg, reg, validator.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func defaultCountries() []country.Country {
	return []country.Country{
		{Flag: "🇨🇦", Name: "Canada", CallingCode: "+1", Format: tenDigits},
		{Flag: "🇨🇲", Name: "Cameroon", CallingCode: "+237", Format: tenDigits, ErrorMessage: "Cameroonian numbers have nine digits"},
	}
}

func defaultConfig() Config {
	return Config{Label: "Phone number", ErrorText: fieldError}
}

func TestNewStateValidatesConfig(t *testing.T) {
	reg, err := country.NewRegistry(defaultCountries())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"MissingLabel", Config{ErrorText: fieldError}},
		{"MissingErrorText", Config{Label: "Phone number"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewState(tc.cfg, reg, validator.New()); !apperr.Is(err, apperr.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	if _, err := NewState(defaultConfig(), nil, validator.New()); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("expected validation error for nil registry, got %v", err)
	}
}

func TestOpenResetsSearch(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Open()
	s.Search("Cam")
	if len(s.Candidates()) != 1 {
		t.Fatalf("expected 1 candidate after search, got %d", len(s.Candidates()))
	}

	// Close leaves the stale query in place; reopening clears it.
	s.Close()
	s.Open()

	if s.Query() != "" {
		t.Errorf("expected query reset on open, got %q", s.Query())
	}
	if len(s.Candidates()) != 2 {
		t.Errorf("expected full registry on open, got %d candidates", len(s.Candidates()))
	}
	if !s.PopoverOpen() {
		t.Error("expected popover open")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Open()
	s.Search("Cam")
	s.Open()

	if s.Query() != "Cam" {
		t.Errorf("open on an open popover must not reset the query, got %q", s.Query())
	}
}

func TestSearchIgnoredWhileClosed(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Search("Cam")

	if s.Query() != "" {
		t.Errorf("expected search to be ignored while closed, got query %q", s.Query())
	}
}

func TestSearchLastQueryWins(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Open()
	s.Search("Ca")
	s.Search("Cam")

	if s.Query() != "Cam" {
		t.Errorf("expected last query to win, got %q", s.Query())
	}
	got := s.Candidates()
	if len(got) != 1 || got[0].CountryName != "Cameroon" {
		t.Errorf("expected candidates for last query only, got %v", got)
	}
}

func TestSelectResolvesAgainstFullRegistry(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Open()
	s.Search("Cam")
	// Cameroon is at position 0 of the filtered list but index 1 of the
	// registry; selection must land on the registry index.
	if err := s.Select("Cameroon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.ActiveIndex() != 1 {
		t.Errorf("expected registry index 1, got %d", s.ActiveIndex())
	}
	if s.Active().Name != "Cameroon" {
		t.Errorf("expected Cameroon active, got %q", s.Active().Name)
	}
	if s.PopoverOpen() {
		t.Error("expected popover closed after select")
	}
	if s.ButtonLabel() != "Cameroon (+237)" {
		t.Errorf("unexpected button label %q", s.ButtonLabel())
	}
}

func TestSelectUnknownCountryRejectsWithoutMutation(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Open()
	s.Search("Cam")

	err := s.Select("Canada") // filtered out, so not a current candidate
	if !apperr.Is(err, apperr.KindContract) {
		t.Fatalf("expected contract violation, got %v", err)
	}

	if s.ActiveIndex() != 0 {
		t.Errorf("expected active index untouched, got %d", s.ActiveIndex())
	}
	if !s.PopoverOpen() {
		t.Error("expected popover still open after rejected select")
	}
}

func TestSelectLeavesFormattingOutcomeAlone(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.TypePhone("5551234567")
	s.CommitPhone()
	if _, ok := s.DisplayValue(); !ok {
		t.Fatal("expected a display value")
	}

	s.Open()
	if err := s.Select("Cameroon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.DisplayValue(); !ok {
		t.Error("select must not clear the display value")
	}
	if s.ValidationError() != "" {
		t.Errorf("select must not set an error, got %q", s.ValidationError())
	}
}

func TestCommitPhoneSuccess(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.TypePhone("5551234567")
	s.CommitPhone()

	display, ok := s.DisplayValue()
	if !ok || display != "(xxx) xxx-xxxx" {
		t.Errorf("expected formatted display, got (%q, %v)", display, ok)
	}
	if s.ValidationError() != "" {
		t.Errorf("expected no error, got %q", s.ValidationError())
	}
	if s.DisplayedValue() != "(xxx) xxx-xxxx" {
		t.Errorf("expected displayed value to be the formatted number, got %q", s.DisplayedValue())
	}
}

func TestCommitPhoneFailure(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.TypePhone("555")
	out := s.CommitPhone()

	if _, ok := s.DisplayValue(); ok {
		t.Error("expected no display value on failure")
	}
	if s.ValidationError() != fieldError {
		t.Errorf("expected field-level error text, got %q", s.ValidationError())
	}
	if s.DisplayedValue() != "555" {
		t.Errorf("expected raw input displayed on failure, got %q", s.DisplayedValue())
	}
	if out.CountryDetail != "" {
		t.Errorf("Canada defines no country message, got %q", out.CountryDetail)
	}
}

func TestCommitPhoneFailureCarriesCountryDetail(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Open()
	if err := s.Select("Cameroon"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.TypePhone("555")
	out := s.CommitPhone()

	// The field-level text stays authoritative; the country message is
	// supplementary detail only.
	if s.ValidationError() != fieldError {
		t.Errorf("expected field-level error text, got %q", s.ValidationError())
	}
	if out.CountryDetail != "Cameroonian numbers have nine digits" {
		t.Errorf("unexpected country detail %q", out.CountryDetail)
	}
}

func TestCommitOverwritesPriorOutcome(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.TypePhone("555")
	s.CommitPhone()
	if s.ValidationError() == "" {
		t.Fatal("expected an error after the short input")
	}

	s.TypePhone("5551234567")
	s.CommitPhone()
	if s.ValidationError() != "" {
		t.Error("a successful commit must clear the error")
	}

	s.TypePhone("12")
	s.CommitPhone()
	if _, ok := s.DisplayValue(); ok {
		t.Error("a failed commit must clear the display value")
	}
}

func TestOptionalFieldCommitsEmptyInputCleanly(t *testing.T) {
	cfg := defaultConfig()
	cfg.Optional = true
	s := newTestState(t, cfg, defaultCountries())

	s.TypePhone("555")
	s.CommitPhone()
	if s.ValidationError() == "" {
		t.Fatal("a non-empty invalid input still errors on an optional field")
	}

	s.TypePhone("")
	s.CommitPhone()
	if s.ValidationError() != "" {
		t.Errorf("expected no error for empty optional field, got %q", s.ValidationError())
	}
	if _, ok := s.DisplayValue(); ok {
		t.Error("expected no display value for empty optional field")
	}
}

func TestFixedModeSingleCountry(t *testing.T) {
	s := newTestState(t, defaultConfig(), []country.Country{
		{Flag: "🇺🇸", Name: "USA", CallingCode: "+1", Format: tenDigits},
	})

	if s.Mode() != ModeFixed {
		t.Fatal("expected fixed mode for a single-country registry")
	}
	if s.ButtonLabel() != "USA" {
		t.Errorf("expected bare name label, got %q", s.ButtonLabel())
	}

	s.Open()
	if s.PopoverOpen() {
		t.Error("open must be unreachable on a fixed control")
	}
	if err := s.Select("USA"); !apperr.Is(err, apperr.KindContract) {
		t.Errorf("expected contract violation, got %v", err)
	}

	// Formatting still works without the picker.
	s.TypePhone("5551234567")
	s.CommitPhone()
	if display, ok := s.DisplayValue(); !ok || display != "(xxx) xxx-xxxx" {
		t.Errorf("expected formatted display, got (%q, %v)", display, ok)
	}
}

func TestToggle(t *testing.T) {
	s := newTestState(t, defaultConfig(), defaultCountries())

	s.Toggle()
	if !s.PopoverOpen() {
		t.Fatal("expected toggle to open")
	}
	s.Toggle()
	if s.PopoverOpen() {
		t.Fatal("expected toggle to close")
	}
}
