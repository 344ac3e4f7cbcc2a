package domain

import (
	"github.com/shopspring/decimal"
)

// Category identifies one social insurance or housing fund contribution.
type Category string

const (
	CategoryPension      Category = "pension"
	CategoryMedical      Category = "medical"
	CategoryUnemployment Category = "unemployment"
	CategoryMaternity    Category = "maternity"
	CategoryInjury       Category = "injury"
	CategoryHousing      Category = "housing"
)

// Categories lists every contribution category in display order.
var Categories = []Category{
	CategoryPension,
	CategoryMedical,
	CategoryUnemployment,
	CategoryMaternity,
	CategoryInjury,
	CategoryHousing,
}

// Label returns a human-readable name for the category
func (c Category) Label() string {
	switch c {
	case CategoryPension:
		return "Pension"
	case CategoryMedical:
		return "Medical"
	case CategoryUnemployment:
		return "Unemployment"
	case CategoryMaternity:
		return "Maternity"
	case CategoryInjury:
		return "Work Injury"
	case CategoryHousing:
		return "Housing Fund"
	default:
		return string(c)
	}
}

// IsSocial reports whether the category is social insurance (as opposed to
// the housing provident fund).
func (c Category) IsSocial() bool {
	return c != CategoryHousing
}

// RateSet holds one percentage per contribution category (8 means 8%).
type RateSet struct {
	Pension      decimal.Decimal `json:"pension" yaml:"pension"`
	Medical      decimal.Decimal `json:"medical" yaml:"medical"`
	Unemployment decimal.Decimal `json:"unemployment" yaml:"unemployment"`
	Maternity    decimal.Decimal `json:"maternity" yaml:"maternity"`
	Injury       decimal.Decimal `json:"injury" yaml:"injury"`
	Housing      decimal.Decimal `json:"housing" yaml:"housing"`
}

// Rate returns the percentage configured for a category
func (r RateSet) Rate(c Category) decimal.Decimal {
	switch c {
	case CategoryPension:
		return r.Pension
	case CategoryMedical:
		return r.Medical
	case CategoryUnemployment:
		return r.Unemployment
	case CategoryMaternity:
		return r.Maternity
	case CategoryInjury:
		return r.Injury
	case CategoryHousing:
		return r.Housing
	default:
		return decimal.Zero
	}
}

// With returns a copy of the set with one category's rate replaced.
func (r RateSet) With(c Category, rate decimal.Decimal) RateSet {
	switch c {
	case CategoryPension:
		r.Pension = rate
	case CategoryMedical:
		r.Medical = rate
	case CategoryUnemployment:
		r.Unemployment = rate
	case CategoryMaternity:
		r.Maternity = rate
	case CategoryInjury:
		r.Injury = rate
	case CategoryHousing:
		r.Housing = rate
	}
	return r
}

// ContributionLine is the employee/employer split for one category.
type ContributionLine struct {
	Category     Category        `json:"category"`
	Base         decimal.Decimal `json:"base"`
	EmployeeRate decimal.Decimal `json:"employeeRate"`
	EmployerRate decimal.Decimal `json:"employerRate"`
	Employee     decimal.Decimal `json:"employee"`
	Employer     decimal.Decimal `json:"employer"`
}

// ContributionBreakdown is the per-category split for one month of salary.
type ContributionBreakdown struct {
	Lines []ContributionLine `json:"lines"`
}

// Line returns the line for a category, or a zero line if absent.
func (b ContributionBreakdown) Line(c Category) ContributionLine {
	for _, l := range b.Lines {
		if l.Category == c {
			return l
		}
	}
	return ContributionLine{Category: c}
}

// Social is the employee's total social insurance contribution.
func (b ContributionBreakdown) Social() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		if l.Category.IsSocial() {
			total = total.Add(l.Employee)
		}
	}
	return total
}

// Housing is the employee's housing fund contribution.
func (b ContributionBreakdown) Housing() decimal.Decimal {
	return b.Line(CategoryHousing).Employee
}

// EmployeeTotal sums every employee-side contribution
func (b ContributionBreakdown) EmployeeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Employee)
	}
	return total
}

// EmployerTotal sums every employer-side contribution
func (b ContributionBreakdown) EmployerTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Employer)
	}
	return total
}
