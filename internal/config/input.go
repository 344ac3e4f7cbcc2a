package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rgehrsitz/paygo/internal/region"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculator input files
type InputParser struct {
	Catalog *region.Catalog
	Now     func() time.Time

	// DefaultCity preselects a city for forms that do not name one
	DefaultCity string
}

// NewInputParser creates a new input parser backed by the builtin region table
func NewInputParser() *InputParser {
	return &InputParser{
		Catalog: region.Builtin(),
		Now:     time.Now,
	}
}

// LoadFromFile loads a form from a YAML file.
//
// Fields the file leaves out keep their DefaultForm values. When the file
// names a city, that city's default rates are applied first so any rate the
// file sets explicitly still wins.
func (ip *InputParser) LoadFromFile(filename string) (*FormInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes a YAML form document.
func (ip *InputParser) Parse(data []byte) (*FormInput, error) {
	var probe FormInput
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	form := ip.NewForm()
	switch {
	case probe.CityCode != "":
		ip.selectCity(&form, probe.CityCode)
	case probe.ProvinceCode != "":
		form.ApplyProvince(ip.Catalog, probe.ProvinceCode)
	}

	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &form, nil
}

// NewForm returns DefaultForm with the parser's default city applied.
func (ip *InputParser) NewForm() FormInput {
	form := DefaultForm(ip.Now())
	if _, known := ip.Catalog.City(ip.DefaultCity); known && ip.DefaultCity != form.CityCode {
		ip.selectCity(&form, ip.DefaultCity)
	}
	return form
}

func (ip *InputParser) selectCity(form *FormInput, cityCode string) {
	form.ApplyCity(ip.Catalog, cityCode)
	if city, ok := ip.Catalog.City(cityCode); ok {
		form.ProvinceCode = city.ProvinceCode
	}
}

// ValidateForm checks the parts of a form that are not plain numbers: the
// region codes must exist and agree with each other. Numeric fields are never
// rejected; they normalize to zero or their defaults.
func (ip *InputParser) ValidateForm(form *FormInput) error {
	if form.ProvinceCode != "" {
		if _, ok := ip.Catalog.Province(form.ProvinceCode); !ok {
			return fmt.Errorf("unknown province code %q", form.ProvinceCode)
		}
	}
	if form.CityCode != "" {
		city, ok := ip.Catalog.City(form.CityCode)
		if !ok {
			return fmt.Errorf("unknown city code %q", form.CityCode)
		}
		if form.ProvinceCode != "" && city.ProvinceCode != form.ProvinceCode {
			return fmt.Errorf("city %s (%s) is not in province %s", city.Code, city.Name, form.ProvinceCode)
		}
	}
	return nil
}
