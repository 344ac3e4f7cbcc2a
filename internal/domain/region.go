package domain

// Province is a first-level administrative region.
type Province struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// City belongs to a province and may carry the employee-side contribution
// rates that apply there by default.
type City struct {
	Code         string   `json:"code" yaml:"code"`
	Name         string   `json:"name" yaml:"name"`
	ProvinceCode string   `json:"provinceCode" yaml:"province"`
	Defaults     *RateSet `json:"defaults,omitempty" yaml:"defaults,omitempty"`
}
