package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/region"
	"github.com/shopspring/decimal"
)

// FormInput is the raw, free-text state of every calculator field. Nothing
// here is validated; Normalize turns it into a domain.CalculatorInput.
type FormInput struct {
	ProvinceCode string `yaml:"province" json:"province"`
	CityCode     string `yaml:"city" json:"city"`

	MonthlyIncome string `yaml:"monthly_income" json:"monthlyIncome"`
	SocialBase    string `yaml:"social_base" json:"socialBase"`

	PensionRate      string `yaml:"pension_rate" json:"pensionRate"`
	MedicalRate      string `yaml:"medical_rate" json:"medicalRate"`
	UnemploymentRate string `yaml:"unemployment_rate" json:"unemploymentRate"`
	MaternityRate    string `yaml:"maternity_rate" json:"maternityRate"`
	InjuryRate       string `yaml:"injury_rate" json:"injuryRate"`

	UseHousingFund *bool  `yaml:"use_housing_fund" json:"useHousingFund"`
	HousingRate    string `yaml:"housing_rate" json:"housingRate"`
	HousingBase    string `yaml:"housing_base" json:"housingBase"`

	StartMonth          string `yaml:"start_month" json:"startMonth"`
	EndMonth            string `yaml:"end_month" json:"endMonth"`
	ReportingMonth      string `yaml:"reporting_month" json:"reportingMonth"`
	AdditionalDeduction string `yaml:"additional_deduction" json:"additionalDeduction"`

	BonusIncome string `yaml:"bonus_income" json:"bonusIncome"`
}

// DefaultForm is the state a fresh calculator starts in: Shenzhen, 20,500 a
// month, the full year, reporting on the current calendar month.
func DefaultForm(now time.Time) FormInput {
	useHousing := true
	return FormInput{
		ProvinceCode:        "44",
		CityCode:            "440300",
		MonthlyIncome:       "20500",
		PensionRate:         "8",
		MedicalRate:         "2",
		UnemploymentRate:    "0.3",
		MaternityRate:       "0",
		InjuryRate:          "0",
		UseHousingFund:      &useHousing,
		HousingRate:         "12",
		StartMonth:          "1",
		EndMonth:            "12",
		ReportingMonth:      monthString(int(now.Month())),
		AdditionalDeduction: "0",
		BonusIncome:         "30000",
	}
}

// maxExponent bounds the scale of a parsed field. Rescaling a decimal with an
// exponent like 1e200000000 allocates a number with that many digits.
const maxExponent = 20

// ParseNumber reads a free-text numeric field. Blank or unparseable text is 0,
// as is any value whose exponent falls outside ±maxExponent.
func ParseNumber(value string) decimal.Decimal {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero
	}
	n, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if exp := n.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}
	return n
}

// parseMonth rounds the field to the nearest integer. ok is false when the
// result is outside [1,12]; blank and garbage both parse to 0 and fail.
func parseMonth(value string) (month int, ok bool) {
	n := ParseNumber(value).Round(0)
	if n.LessThan(decimal.NewFromInt(1)) || n.GreaterThan(decimal.NewFromInt(12)) {
		return 0, false
	}
	return int(n.IntPart()), true
}

// SafeStartMonth defaults to 1.
func SafeStartMonth(value string) int {
	if m, ok := parseMonth(value); ok {
		return m
	}
	return 1
}

// SafeEndMonth defaults to 12.
func SafeEndMonth(value string) int {
	if m, ok := parseMonth(value); ok {
		return m
	}
	return 12
}

// SafeReportingMonth defaults to the current calendar month.
func SafeReportingMonth(value string, now time.Time) int {
	if m, ok := parseMonth(value); ok {
		return m
	}
	return int(now.Month())
}

// HousingFundEnabled treats an unset flag as opted in.
func (f FormInput) HousingFundEnabled() bool {
	return f.UseHousingFund == nil || *f.UseHousingFund
}

// Rates reads the six employee-side rate fields.
func (f FormInput) Rates() domain.RateSet {
	return domain.RateSet{
		Pension:      ParseNumber(f.PensionRate),
		Medical:      ParseNumber(f.MedicalRate),
		Unemployment: ParseNumber(f.UnemploymentRate),
		Maternity:    ParseNumber(f.MaternityRate),
		Injury:       ParseNumber(f.InjuryRate),
		Housing:      ParseNumber(f.HousingRate),
	}
}

// Normalize converts the form into calculator input. Malformed numbers become
// 0, blank bases fall back to gross income, and months take their defaults.
func (f FormInput) Normalize(now time.Time) domain.CalculatorInput {
	return domain.CalculatorInput{
		ProvinceCode:        f.ProvinceCode,
		CityCode:            f.CityCode,
		GrossMonthly:        ParseNumber(f.MonthlyIncome),
		SocialBase:          optionalNumber(f.SocialBase),
		HousingBase:         optionalNumber(f.HousingBase),
		EmployeeRates:       f.Rates(),
		UseHousingFund:      f.HousingFundEnabled(),
		AdditionalDeduction: nonNegative(ParseNumber(f.AdditionalDeduction)),
		StartMonth:          SafeStartMonth(f.StartMonth),
		EndMonth:            SafeEndMonth(f.EndMonth),
		ReportingMonth:      SafeReportingMonth(f.ReportingMonth, now),
		AnnualBonus:         ParseNumber(f.BonusIncome),
	}
}

// SetRates overwrites all six rate fields.
func (f *FormInput) SetRates(r domain.RateSet) {
	f.PensionRate = r.Pension.String()
	f.MedicalRate = r.Medical.String()
	f.UnemploymentRate = r.Unemployment.String()
	f.MaternityRate = r.Maternity.String()
	f.InjuryRate = r.Injury.String()
	f.HousingRate = r.Housing.String()
}

// ApplyCity selects a city and, when the catalog stores defaults for it,
// overwrites every rate field with them. Manual edits are not preserved.
func (f *FormInput) ApplyCity(c *region.Catalog, cityCode string) {
	f.CityCode = cityCode
	if rates, ok := c.ApplyRegionDefaults(cityCode); ok {
		f.SetRates(rates)
	}
}

// ApplyProvince selects a province and then its first city, which applies
// that city's defaults.
func (f *FormInput) ApplyProvince(c *region.Catalog, provinceCode string) {
	f.ProvinceCode = provinceCode
	if city, ok := c.FirstCity(provinceCode); ok {
		f.ApplyCity(c, city.Code)
	}
}

// CommitStartMonth settles the start month field when editing finishes. A
// start past the end month resets to 1.
func (f *FormInput) CommitStartMonth(raw string, now time.Time) {
	end := SafeEndMonth(f.EndMonth)
	start := SafeStartMonth(raw)
	if start > end {
		start = 1
	}
	f.StartMonth = monthString(start)
	f.ensureReportingMonthInRange(start, end, now)
}

// CommitEndMonth settles the end month field. An end before the start month
// resets to 12.
func (f *FormInput) CommitEndMonth(raw string, now time.Time) {
	start := SafeStartMonth(f.StartMonth)
	end := SafeEndMonth(raw)
	if end < start {
		end = 12
	}
	f.EndMonth = monthString(end)
	f.ensureReportingMonthInRange(start, end, now)
}

// CommitReportingMonth settles the reporting month. Anything invalid or
// outside the current range snaps to the range start.
func (f *FormInput) CommitReportingMonth(raw string) {
	start := SafeStartMonth(f.StartMonth)
	end := SafeEndMonth(f.EndMonth)
	m, ok := parseMonth(raw)
	if !ok || m < start || m > end {
		f.ReportingMonth = monthString(start)
		return
	}
	f.ReportingMonth = monthString(m)
}

func (f *FormInput) ensureReportingMonthInRange(start, end int, now time.Time) {
	m := SafeReportingMonth(f.ReportingMonth, now)
	if m < start || m > end {
		f.ReportingMonth = monthString(start)
	}
}

func optionalNumber(value string) *decimal.Decimal {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	n := ParseNumber(value)
	return &n
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func monthString(m int) string {
	return strconv.Itoa(m)
}
