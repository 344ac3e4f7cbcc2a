package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the gross salary that produces a target net figure
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new gross-up solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// SolveGross bisects the monthly gross between the request bounds until the
// chosen metric is within tolerance of the target. Both metrics are
// continuous and non-decreasing in gross, so a target inside the bounds is
// always bracketed. When the iteration cap is hit first, the closest gross
// found is returned with Success unset.
func (s *Solver) SolveGross(ctx context.Context, req GrossUpRequest) (*GrossUpResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}
	if req.MaxGross.IsZero() {
		req.MaxGross = s.Options.MaxGross
	}

	lo, hi := req.MinGross, req.MaxGross

	low := s.evaluate(req, lo)
	if low.Achieved.GreaterThanOrEqual(req.Target) {
		low.Success = true
		low.ConvergenceInfo = "Target is met at the lower bound"
		return low, nil
	}

	high := s.evaluate(req, hi)
	if high.Achieved.LessThan(req.Target) {
		return nil, &SolverError{
			Operation: "solve_gross",
			Message: fmt.Sprintf("target %s is above the %s reachable at max gross %s",
				req.Target.StringFixed(2), high.Achieved.StringFixed(2), hi.StringFixed(2)),
		}
	}

	best := high
	for iterations := 1; iterations <= req.MaxIterations; iterations++ {
		select {
		case <-ctx.Done():
			return nil, &SolverError{
				Operation: "solve_gross",
				Message:   "cancelled",
				Cause:     ctx.Err(),
			}
		default:
		}

		mid := lo.Add(hi).Div(two)
		result := s.evaluate(req, mid)
		result.Iterations = iterations

		if result.Difference.Abs().LessThan(best.Difference.Abs()) {
			best = result
		}

		if result.Difference.Abs().LessThanOrEqual(req.Tolerance) {
			result.Success = true
			result.ConvergenceInfo = fmt.Sprintf("Converged to target within ¥%s", req.Tolerance.String())
			return result, nil
		}

		if result.Difference.IsNegative() {
			lo = mid
		} else {
			hi = mid
		}
	}

	best.Iterations = req.MaxIterations
	best.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	return best, nil
}

func (s *Solver) evaluate(req GrossUpRequest, gross decimal.Decimal) *GrossUpResult {
	in := req.Base
	in.GrossMonthly = gross

	result := s.CalcEngine.Calculate(in)
	achieved := req.Metric.Value(result)

	return &GrossUpResult{
		Request:    req,
		Gross:      gross,
		Achieved:   achieved,
		Difference: achieved.Sub(req.Target),
		Result:     result,
	}
}

// Input returns the request's base input with the solved gross applied
func (r *GrossUpResult) Input() domain.CalculatorInput {
	in := r.Request.Base
	in.GrossMonthly = r.Gross
	return in
}
