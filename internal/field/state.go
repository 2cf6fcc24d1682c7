// Package field implements the state machine behind the phone field control:
// country search and selection, and blur-time phone formatting. It is pure
// state; rendering and event sources live in internal/tui.
package field

import (
	"fmt"
	"strings"

	"phonefield/internal/country"
	"phonefield/platform/apperr"
	"phonefield/platform/validator"
)

// Mode is the structural variant of the control, decided once at
// construction from the registry size.
type Mode int

const (
	// ModeSelectable shows the country picker.
	ModeSelectable Mode = iota
	// ModeFixed is the degenerate single-country variant: the popover and
	// its transitions are unreachable.
	ModeFixed
)

// State holds the control's mutable state. All mutation goes through the
// transition methods; the zero value is not usable, construct with NewState.
//
// Transitions run synchronously on the event loop, so a later Search always
// overwrites an earlier one wholesale (last query wins).
type State struct {
	cfg      Config
	registry *country.Registry
	mode     Mode

	activeIndex int
	popoverOpen bool
	searchQuery string
	candidates  []Candidate

	phoneRaw   string
	display    string
	hasDisplay bool
	errorText  string
}

// NewState builds the control state for the given registry. The registry
// must already be constructed (and therefore non-empty); cfg is validated
// here.
func NewState(cfg Config, reg *country.Registry, val *validator.Validator) (*State, error) {
	if reg == nil {
		return nil, apperr.Validation("registry is required").WithOp("field.NewState")
	}
	if err := val.Struct(cfg); err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid field config", err).WithOp("field.NewState")
	}

	mode := ModeSelectable
	if reg.Len() == 1 {
		mode = ModeFixed
	}

	return &State{
		cfg:      cfg,
		registry: reg,
		mode:     mode,
	}, nil
}

// Open shows the popover, clearing any stale query and restoring the full
// candidate list. Opening an already-open popover (or a fixed control) is a
// no-op; the overlay host is not trusted to debounce toggles.
func (s *State) Open() {
	if s.mode == ModeFixed || s.popoverOpen {
		return
	}
	s.popoverOpen = true
	s.searchQuery = ""
	s.candidates = FilterCandidates(s.registry, "")
}

// Close hides the popover. Query and candidates are left in place until the
// next Open.
func (s *State) Close() {
	s.popoverOpen = false
}

// Toggle flips the popover between open and closed.
func (s *State) Toggle() {
	if s.popoverOpen {
		s.Close()
		return
	}
	s.Open()
}

// Search replaces the query and recomputes the candidate list. Ignored while
// the popover is closed.
func (s *State) Search(query string) {
	if !s.popoverOpen {
		return
	}
	s.searchQuery = query
	s.candidates = FilterCandidates(s.registry, query)
}

// Select activates the named country and closes the popover. The name must
// be present in the current candidates; anything else is a contract
// violation by the list host and leaves the state untouched. Selection is
// keyed on the name, never on a position in the filtered list.
func (s *State) Select(countryName string) error {
	if s.mode == ModeFixed {
		return apperr.Contract("select on a fixed control").WithOp("field.Select")
	}

	offered := false
	for _, c := range s.candidates {
		if c.CountryName == countryName {
			offered = true
			break
		}
	}
	if !offered {
		return apperr.Contract(fmt.Sprintf("country %q is not a current candidate", countryName)).WithOp("field.Select")
	}

	idx, ok := s.registry.IndexOf(countryName)
	if !ok {
		// Candidates are derived from the registry, so a miss here means
		// the candidate invariant itself broke.
		return apperr.Internal(fmt.Sprintf("candidate %q missing from registry", countryName)).WithOp("field.Select")
	}

	s.activeIndex = idx
	s.Close()
	return nil
}

// TypePhone records the raw, uncommitted phone input.
func (s *State) TypePhone(raw string) {
	s.phoneRaw = raw
}

// CommitPhone runs the format/validate gate over the raw input with the
// active country and stores the outcome. An optional field commits an empty
// input as neither value nor error.
func (s *State) CommitPhone() Outcome {
	if s.cfg.Optional && strings.TrimSpace(s.phoneRaw) == "" {
		s.display = ""
		s.hasDisplay = false
		s.errorText = ""
		return Outcome{}
	}

	out := formatOnCommit(s.phoneRaw, s.Active(), s.cfg.ErrorText)
	s.display = out.Display
	s.hasDisplay = out.HasDisplay
	s.errorText = out.ErrorText
	return out
}

// Mode returns the structural variant of the control.
func (s *State) Mode() Mode {
	return s.mode
}

// Active returns the currently active country.
func (s *State) Active() country.Country {
	return s.registry.At(s.activeIndex)
}

// ActiveIndex returns the active country's index in the original registry.
func (s *State) ActiveIndex() int {
	return s.activeIndex
}

// PopoverOpen reports whether the picker popover is showing.
func (s *State) PopoverOpen() bool {
	return s.popoverOpen
}

// Query returns the current search text.
func (s *State) Query() string {
	return s.searchQuery
}

// Candidates returns the current filtered candidate rows.
func (s *State) Candidates() []Candidate {
	out := make([]Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// ButtonLabel is the text on the activator: "Name (+code)", or just the name
// for a fixed control.
func (s *State) ButtonLabel() string {
	active := s.Active()
	if s.mode == ModeFixed {
		return active.Name
	}
	return fmt.Sprintf("%s (%s)", active.Name, active.CallingCode)
}

// PhoneRaw returns the last raw phone input.
func (s *State) PhoneRaw() string {
	return s.phoneRaw
}

// DisplayValue returns the last successfully formatted value, if any.
func (s *State) DisplayValue() (string, bool) {
	return s.display, s.hasDisplay
}

// DisplayedValue is the value the phone input should show: the formatted
// value when one exists, otherwise the raw input.
func (s *State) DisplayedValue() string {
	if s.hasDisplay {
		return s.display
	}
	return s.phoneRaw
}

// ValidationError returns the message to render under the field, or "".
func (s *State) ValidationError() string {
	return s.errorText
}

// Label returns the configured field caption.
func (s *State) Label() string {
	return s.cfg.Label
}

// Placeholder returns the configured input placeholder.
func (s *State) Placeholder() string {
	return s.cfg.Placeholder
}
