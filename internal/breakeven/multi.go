package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/paygo/internal/region"
)

// SolveForCities runs the same solve under each city's default rates. Cities
// without stored defaults keep the request's rates. A city whose solve fails
// is skipped; the run fails only when no city succeeds or ctx is cancelled.
func (s *Solver) SolveForCities(
	ctx context.Context,
	req GrossUpRequest,
	catalog *region.Catalog,
	cityCodes []string,
) (*MultiCityResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var results []CityGrossUp
	var lastErr error

	for _, code := range cityCodes {
		city, ok := catalog.City(code)
		if !ok {
			lastErr = fmt.Errorf("unknown city code %q", code)
			continue
		}

		cityReq := req
		cityReq.Base.CityCode = city.Code
		cityReq.Base.ProvinceCode = city.ProvinceCode
		if rates, ok := catalog.ApplyRegionDefaults(code); ok {
			cityReq.Base.EmployeeRates = rates
		}

		result, err := s.SolveGross(ctx, cityReq)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}

		results = append(results, CityGrossUp{
			CityCode: city.Code,
			CityName: city.Name,
			Result:   result,
		})
	}

	if len(results) == 0 {
		return nil, &SolverError{
			Operation: "solve_for_cities",
			Message:   "no city produced a result",
			Cause:     lastErr,
		}
	}

	mcResult := &MultiCityResult{Results: results}

	for i := range results {
		if mcResult.LowestGross == nil ||
			results[i].Result.Gross.LessThan(mcResult.LowestGross.Result.Gross) {
			mcResult.LowestGross = &results[i]
		}
		if mcResult.HighestGross == nil ||
			results[i].Result.Gross.GreaterThan(mcResult.HighestGross.Result.Gross) {
			mcResult.HighestGross = &results[i]
		}
	}

	mcResult.Recommendations = s.generateMultiCityRecommendations(mcResult)

	return mcResult, nil
}

func (s *Solver) generateMultiCityRecommendations(result *MultiCityResult) []string {
	var recommendations []string

	if result.LowestGross != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest gross needed: %s at ¥%s per month",
				result.LowestGross.CityName, result.LowestGross.Result.Gross.StringFixed(2)))
	}

	if result.LowestGross != nil && result.HighestGross != nil && result.LowestGross != result.HighestGross {
		spread := result.HighestGross.Result.Gross.Sub(result.LowestGross.Result.Gross)
		recommendations = append(recommendations,
			fmt.Sprintf("%s needs ¥%s more gross per month than %s for the same net",
				result.HighestGross.CityName, spread.StringFixed(2), result.LowestGross.CityName))
	}

	for _, r := range result.Results {
		if !r.Result.Success {
			recommendations = append(recommendations,
				fmt.Sprintf("⚠ %s did not converge: %s", r.CityName, r.Result.ConvergenceInfo))
		}
	}

	return recommendations
}
