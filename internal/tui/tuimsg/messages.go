// Package tuimsg holds the messages scenes send to the root model. It is kept
// apart from tui so scenes can emit them without an import cycle.
package tuimsg

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/paygo/internal/breakeven"
	"github.com/rgehrsitz/paygo/internal/compare"
	"github.com/rgehrsitz/paygo/internal/config"
)

// FormLoadedMsg signals an input file has been parsed
type FormLoadedMsg struct {
	Path string
	Form *config.FormInput
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ComparisonStartedMsg asks the root model to compare the current form
// across the given cities
type ComparisonStartedMsg struct {
	CityCodes []string
}

// ComparisonCompleteMsg signals a comparison has finished
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// GrossUpStartedMsg asks the root model to solve for the gross salary that
// yields Target under Metric
type GrossUpStartedMsg struct {
	Metric breakeven.Metric
	Target decimal.Decimal
}

// GrossUpCompleteMsg signals the solver has finished
type GrossUpCompleteMsg struct {
	Result *breakeven.GrossUpResult
	Err    error
}

// ExportRequestedMsg asks the root model to write the current result
type ExportRequestedMsg struct {
	Format string
}

// ExportCompleteMsg signals an export has finished
type ExportCompleteMsg struct {
	Path string
	Err  error
}
