package breakeven

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestResult() *GrossUpResult {
	return &GrossUpResult{
		Request: GrossUpRequest{
			Metric: MetricTakeHome,
			Target: decimal.NewFromInt(15000),
		},
		Success:         true,
		Iterations:      27,
		ConvergenceInfo: "Converged to target within ¥0.01",
		Gross:           decimal.RequireFromString("19697.123"),
		Achieved:        decimal.RequireFromString("15000.004"),
		Difference:      decimal.RequireFromString("0.004"),
		Result: &domain.Result{
			Summary: domain.MonthlySummary{
				Social:   decimal.RequireFromString("2028.80"),
				Housing:  decimal.RequireFromString("2363.65"),
				Tax:      decimal.RequireFromString("309.14"),
				TakeHome: decimal.RequireFromString("15000.004"),
			},
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.Format(buildTestResult())

	for _, want := range []string{
		"GROSS-UP RESULT",
		"Metric:       monthly take-home",
		"Target:       ¥15000.00",
		"✓ Converged",
		"Iterations:   27",
		"Monthly Gross:   ¥19697.12",
		"Difference:      +¥0.00",
		"AT THIS SALARY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestTableFormatter_Format_NotConverged(t *testing.T) {
	tf := &TableFormatter{}
	result := buildTestResult()
	result.Success = false
	result.Result = nil
	result.Request.Metric = MetricRangeNet

	out := tf.Format(result)
	if !strings.Contains(out, "⚠ Did not converge") {
		t.Error("Expected non-convergence status")
	}
	if !strings.Contains(out, "net salary over the month range") {
		t.Error("Expected range metric label")
	}
	if strings.Contains(out, "AT THIS SALARY") {
		t.Error("Did not expect a salary breakdown without a result")
	}
}

func TestTableFormatter_FormatMultiCity(t *testing.T) {
	tf := &TableFormatter{}
	partial := buildTestResult()
	partial.Success = false

	mc := &MultiCityResult{
		Results: []CityGrossUp{
			{CityCode: "440300", CityName: "深圳市", Result: buildTestResult()},
			{CityCode: "310100", CityName: "上海市", Result: partial},
		},
		Recommendations: []string{"Lowest gross needed: 上海市 at ¥19000.00 per month"},
	}

	out := tf.FormatMultiCity(mc)
	for _, want := range []string{"GROSS-UP BY CITY", "深圳市", "partial", "HIGHLIGHTS", "19697.12"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	jf := &JSONFormatter{Pretty: true}
	out, err := jf.Format(buildTestResult())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded["gross"] != "19697.123" {
		t.Errorf("Expected gross as decimal string, got %v", decoded["gross"])
	}
	if decoded["success"] != true {
		t.Error("Expected success flag")
	}
}

func TestJSONFormatter_FormatMultiCity(t *testing.T) {
	jf := &JSONFormatter{}
	out, err := jf.FormatMultiCity(&MultiCityResult{
		Results: []CityGrossUp{{CityCode: "440300", Result: buildTestResult()}},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, `"city_code":"440300"`) {
		t.Errorf("Expected compact JSON with city code, got %s", out)
	}
}
