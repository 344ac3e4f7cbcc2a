// Package region holds the province/city reference table and the per-city
// default contribution rates.
package region

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rgehrsitz/paygo/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var builtinRegions []byte

// Catalog is an immutable province/city lookup table.
type Catalog struct {
	provinces []domain.Province
	cities    []domain.City

	provinceByCode map[string]int
	cityByCode     map[string]int
}

type catalogFile struct {
	Provinces []domain.Province `yaml:"provinces"`
	Cities    []domain.City     `yaml:"cities"`
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	c, err := Parse(builtinRegions)
	if err != nil {
		panic(fmt.Sprintf("builtin region table is invalid: %v", err))
	}
	return c
}

// LoadFromFile reads a catalog in the same YAML shape as the builtin table.
func LoadFromFile(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read region file %s: %w", filename, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("region file %s: %w", filename, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML region table.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	c := &Catalog{
		provinces:      f.Provinces,
		cities:         f.Cities,
		provinceByCode: make(map[string]int, len(f.Provinces)),
		cityByCode:     make(map[string]int, len(f.Cities)),
	}

	for i, p := range c.provinces {
		if p.Code == "" {
			return nil, fmt.Errorf("province %d has no code", i)
		}
		if _, dup := c.provinceByCode[p.Code]; dup {
			return nil, fmt.Errorf("duplicate province code %s", p.Code)
		}
		c.provinceByCode[p.Code] = i
	}
	for i, city := range c.cities {
		if city.Code == "" {
			return nil, fmt.Errorf("city %d has no code", i)
		}
		if _, dup := c.cityByCode[city.Code]; dup {
			return nil, fmt.Errorf("duplicate city code %s", city.Code)
		}
		if _, ok := c.provinceByCode[city.ProvinceCode]; !ok {
			return nil, fmt.Errorf("city %s references unknown province %s", city.Code, city.ProvinceCode)
		}
		c.cityByCode[city.Code] = i
	}

	return c, nil
}

// Provinces returns every province in table order.
func (c *Catalog) Provinces() []domain.Province {
	return append([]domain.Province(nil), c.provinces...)
}

// Province looks up a province by code.
func (c *Catalog) Province(code string) (domain.Province, bool) {
	i, ok := c.provinceByCode[code]
	if !ok {
		return domain.Province{}, false
	}
	return c.provinces[i], true
}

// City looks up a city by code.
func (c *Catalog) City(code string) (domain.City, bool) {
	i, ok := c.cityByCode[code]
	if !ok {
		return domain.City{}, false
	}
	return c.cities[i], true
}

// CitiesOf narrows the city list to one province, in table order.
func (c *Catalog) CitiesOf(provinceCode string) []domain.City {
	var out []domain.City
	for _, city := range c.cities {
		if city.ProvinceCode == provinceCode {
			out = append(out, city)
		}
	}
	return out
}

// FirstCity returns the first city listed for a province.
func (c *Catalog) FirstCity(provinceCode string) (domain.City, bool) {
	for _, city := range c.cities {
		if city.ProvinceCode == provinceCode {
			return city, true
		}
	}
	return domain.City{}, false
}

// ApplyRegionDefaults returns the employee-side rate set stored for a city.
// ok is false when the city is unknown or has no stored defaults; callers
// then keep whatever rates they already have.
func (c *Catalog) ApplyRegionDefaults(cityCode string) (rates domain.RateSet, ok bool) {
	city, found := c.City(cityCode)
	if !found || city.Defaults == nil {
		return domain.RateSet{}, false
	}
	return *city.Defaults, true
}
