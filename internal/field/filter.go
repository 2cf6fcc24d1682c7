package field

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"phonefield/internal/country"
)

// Candidate is one row of the filtered dropdown. Label is the ready-to-render
// display string; CountryName is the stable identity used to resolve a
// selection back to the full registry.
type Candidate struct {
	Label       string
	CountryName string
}

// stripMarks removes combining marks so "cote" matches "Côte d'Ivoire".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldName(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// FilterCandidates returns the countries whose name starts with query,
// compared case- and accent-insensitively, preserving registry order. The
// query is matched literally, whitespace included; an empty query reproduces
// the full registry.
func FilterCandidates(reg *country.Registry, query string) []Candidate {
	prefix := foldName(query)

	out := make([]Candidate, 0, reg.Len())
	for _, c := range reg.All() {
		if prefix != "" && !strings.HasPrefix(foldName(c.Name), prefix) {
			continue
		}
		out = append(out, Candidate{
			Label:       candidateLabel(c),
			CountryName: c.Name,
		})
	}
	return out
}

func candidateLabel(c country.Country) string {
	return fmt.Sprintf("%s %s (%s)", c.Flag, c.Name, c.CallingCode)
}
