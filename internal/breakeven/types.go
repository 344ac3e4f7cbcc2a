package breakeven

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// Metric selects which net figure the solver matches against the target
type Metric string

const (
	// MetricTakeHome is the single-month take-home pay from the summary.
	MetricTakeHome Metric = "take_home"
	// MetricRangeNet is the net salary summed over the projected month range.
	MetricRangeNet Metric = "range_net"
)

// Value extracts the metric from a calculation result
func (m Metric) Value(r *domain.Result) decimal.Decimal {
	switch m {
	case MetricRangeNet:
		return r.AnnualNet
	default:
		return r.Summary.TakeHome
	}
}

// Valid reports whether m is a known metric
func (m Metric) Valid() bool {
	return m == MetricTakeHome || m == MetricRangeNet
}

// GrossUpRequest describes one solve: find the monthly gross that makes
// Metric equal Target with everything else in Base held fixed.
type GrossUpRequest struct {
	Base   domain.CalculatorInput `json:"base"`
	Metric Metric                 `json:"metric"`
	Target decimal.Decimal        `json:"target"`

	// Search bounds for the monthly gross; zero MaxGross uses the solver option.
	MinGross decimal.Decimal `json:"min_gross"`
	MaxGross decimal.Decimal `json:"max_gross"`

	MaxIterations int             `json:"max_iterations"`
	Tolerance     decimal.Decimal `json:"tolerance"`
}

// Validate checks the request bounds and target
func (r *GrossUpRequest) Validate() error {
	if !r.Metric.Valid() {
		return &SolverError{
			Operation: "validate_request",
			Message:   "unsupported metric: " + string(r.Metric),
		}
	}
	if r.Target.IsNegative() {
		return &SolverError{
			Operation: "validate_request",
			Message:   "target cannot be negative",
		}
	}
	if r.MinGross.IsNegative() {
		return &SolverError{
			Operation: "validate_request",
			Message:   "min_gross cannot be negative",
		}
	}
	if !r.MaxGross.IsZero() && r.MinGross.GreaterThan(r.MaxGross) {
		return &SolverError{
			Operation: "validate_request",
			Message:   "min_gross cannot be greater than max_gross",
		}
	}
	return nil
}

// GrossUpResult is the outcome of a solve
type GrossUpResult struct {
	Request         GrossUpRequest `json:"request"`
	Success         bool           `json:"success"`
	Iterations      int            `json:"iterations"`
	ConvergenceInfo string         `json:"convergence_info"`

	Gross      decimal.Decimal `json:"gross"`
	Achieved   decimal.Decimal `json:"achieved"`
	Difference decimal.Decimal `json:"difference"`
	Result     *domain.Result  `json:"result"`
}

// CityGrossUp is one city's solve in a multi-city run
type CityGrossUp struct {
	CityCode string         `json:"city_code"`
	CityName string         `json:"city_name"`
	Result   *GrossUpResult `json:"result"`
}

// MultiCityResult compares the gross each city needs for the same target
type MultiCityResult struct {
	Results         []CityGrossUp `json:"results"`
	LowestGross     *CityGrossUp  `json:"lowest_gross,omitempty"`
	HighestGross    *CityGrossUp  `json:"highest_gross,omitempty"`
	Recommendations []string      `json:"recommendations"`
}

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance on the metric, in yuan
	MaxIterations int
	MaxGross      decimal.Decimal // Upper bound used when a request sets none
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.RequireFromString("0.01"),
		MaxIterations: 100,
		MaxGross:      decimal.NewFromInt(1_000_000),
	}
}

// SolverError represents errors from the gross-up solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
