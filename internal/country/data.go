package country

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed countries.yaml
var builtinData []byte

type entry struct {
	Name         string `yaml:"name"`
	Flag         string `yaml:"flag"`
	CallingCode  string `yaml:"callingCode"`
	Region       string `yaml:"region"`
	AreaCodes    []int  `yaml:"areaCodes"`
	ErrorMessage string `yaml:"errorMessage"`
}

// BuiltIn builds a registry from the embedded country table. formatterFor
// supplies each country's formatter by ISO-3166 region, keeping the format
// engine out of this package.
func BuiltIn(formatterFor func(region string) FormatFunc) (*Registry, error) {
	var entries []entry
	if err := yaml.Unmarshal(builtinData, &entries); err != nil {
		return nil, fmt.Errorf("parse embedded country table: %w", err)
	}

	countries := make([]Country, 0, len(entries))
	for _, e := range entries {
		countries = append(countries, Country{
			Flag:         e.Flag,
			Name:         e.Name,
			CallingCode:  e.CallingCode,
			AreaCodes:    e.AreaCodes,
			ErrorMessage: e.ErrorMessage,
			Format:       formatterFor(e.Region),
		})
	}

	return NewRegistry(countries)
}
