// Package country provides the country registry backing the phone field
// control: an immutable, ordered list of selectable countries keyed by name.
package country

import (
	"fmt"

	"phonefield/platform/apperr"
)

// FormatFunc formats a raw phone input according to a country's rules.
// ok is false when the input is not a valid or complete number for the
// country; implementations must not panic.
type FormatFunc func(raw string) (string, bool)

// Country describes one selectable entry. Values are owned by the caller and
// read-only once handed to a Registry.
type Country struct {
	// Flag is the display icon shown next to the name.
	Flag string
	// Name is the human-readable name, unique within a registry. It is the
	// stable identity key for lookups after filtering reorders the view.
	Name string
	// CallingCode is the country calling code, e.g. "+1". Not unique.
	CallingCode string
	// AreaCodes disambiguates countries sharing a calling code. Optional.
	AreaCodes []int
	// ErrorMessage is country-specific validation detail. Optional.
	ErrorMessage string
	// Format validates and formats raw phone input for this country.
	Format FormatFunc
}

// Registry is the fixed, ordered set of selectable countries. It is built
// once and never mutated; positions in the original order are the stable
// indices the selection state refers to.
type Registry struct {
	countries []Country
	byName    map[string]int
}

// NewRegistry builds a registry from the given countries. It fails on an
// empty list or a duplicate name, both caller errors.
func NewRegistry(countries []Country) (*Registry, error) {
	if len(countries) == 0 {
		return nil, apperr.Validation("registry requires at least one country").WithOp("country.NewRegistry")
	}

	byName := make(map[string]int, len(countries))
	for i, c := range countries {
		if c.Name == "" {
			return nil, apperr.Validation(fmt.Sprintf("country at index %d has no name", i)).WithOp("country.NewRegistry")
		}
		if _, exists := byName[c.Name]; exists {
			return nil, apperr.Validation(fmt.Sprintf("duplicate country name %q", c.Name)).WithOp("country.NewRegistry")
		}
		byName[c.Name] = i
	}

	return &Registry{countries: cloneCountries(countries), byName: byName}, nil
}

// cloneCountries copies the slice including the AreaCodes backing arrays, so
// neither side can reach the registry's data through a retained slice.
func cloneCountries(src []Country) []Country {
	out := make([]Country, len(src))
	copy(out, src)
	for i := range out {
		if len(out[i].AreaCodes) > 0 {
			out[i].AreaCodes = append([]int(nil), out[i].AreaCodes...)
		}
	}
	return out
}

// Len returns the number of countries.
func (r *Registry) Len() int {
	return len(r.countries)
}

// At returns the country at the given original-order index.
func (r *Registry) At(i int) Country {
	c := r.countries[i]
	if len(c.AreaCodes) > 0 {
		c.AreaCodes = append([]int(nil), c.AreaCodes...)
	}
	return c
}

// IndexOf resolves a country name to its original-order index.
func (r *Registry) IndexOf(name string) (int, bool) {
	i, ok := r.byName[name]
	return i, ok
}

// All returns the countries in original order. The slice is a copy; the
// registry stays immutable.
func (r *Registry) All() []Country {
	return cloneCountries(r.countries)
}
