package compare

import (
	"context"
	"fmt"
	"time"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/region"
)

// CompareEngine runs one salary input under several cities' default rates
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	Catalog           *region.Catalog
	Now               func() time.Time
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine, catalog *region.Catalog) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		Catalog:           catalog,
		Now:               time.Now,
	}
}

// Compare runs the form under its own city and each of cityCodes. The form's
// city is the base; when the form names none, the first code is. Codes that
// repeat the base or an earlier code are skipped.
func (ce *CompareEngine) Compare(ctx context.Context, base config.FormInput, cityCodes []string) (*ComparisonSet, error) {
	baseCity := base.CityCode
	if baseCity == "" {
		if len(cityCodes) == 0 {
			return nil, fmt.Errorf("no cities to compare")
		}
		baseCity = cityCodes[0]
	}

	baseResult, err := ce.runCity(ctx, base, baseCity)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base city: %w", err)
	}

	seen := map[string]bool{baseCity: true}
	alternatives := []ComparisonResult{}

	for _, code := range cityCodes {
		if seen[code] {
			continue
		}
		seen[code] = true

		altResult, err := ce.runCity(ctx, base, code)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate city %s: %w", code, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseCity:           baseCity,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) runCity(ctx context.Context, form config.FormInput, cityCode string) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, err
	}

	city, ok := ce.Catalog.City(cityCode)
	if !ok {
		return ComparisonResult{}, fmt.Errorf("unknown city code %q", cityCode)
	}

	form.ApplyCity(ce.Catalog, cityCode)
	form.ProvinceCode = city.ProvinceCode

	result := ce.CalcEngine.Calculate(form.Normalize(ce.Now()))

	provinceName := city.ProvinceCode
	if p, ok := ce.Catalog.Province(city.ProvinceCode); ok {
		provinceName = p.Name
	}

	return ce.MetricsCalculator.CalculateMetrics(city, provinceName, result), nil
}
