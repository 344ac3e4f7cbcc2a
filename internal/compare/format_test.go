package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestSet() *ComparisonSet {
	return &ComparisonSet{
		BaseCity:  "440300",
		InputPath: "/path/to/salary.yaml",
		BaseResult: &ComparisonResult{
			CityCode:       "440300",
			CityName:       "深圳市",
			MonthlySocial:  decimal.RequireFromString("2111.5"),
			MonthlyHousing: decimal.NewFromInt(2460),
			MonthlyTax:     decimal.RequireFromString("327.855"),
			TakeHome:       decimal.RequireFromString("15600.645"),
			Result:         &domain.Result{EffectiveMonth: 4},
		},
		AlternativeResults: []ComparisonResult{
			{
				CityCode:                 "310100",
				CityName:                 "上海市",
				MonthlySocial:            decimal.NewFromInt(2255),
				MonthlyHousing:           decimal.NewFromInt(1435),
				MonthlyTax:               decimal.RequireFromString("354.3"),
				TakeHome:                 decimal.RequireFromString("16455.7"),
				TakeHomeDiffFromBase:     decimal.RequireFromString("855.055"),
				TakeHomePctFromBase:      decimal.RequireFromString("5.48"),
				ContributionDiffFromBase: decimal.RequireFromString("-881.5"),
				TaxDiffFromBase:          decimal.RequireFromString("26.445"),
				Result:                   &domain.Result{EffectiveMonth: 4},
			},
		},
		Recommendations: []string{"Highest Take-home: 上海市 pays ¥855.06 more per month than 深圳市"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(buildTestSet())

	for _, want := range []string{
		"CITY COMPARISON",
		"Base City: 深圳市 (440300)",
		"Input: /path/to/salary.yaml",
		"深圳市 (base)",
		"15600.65",
		"上海市:",
		"Take-home:      +¥855.06 (5.5%)",
		"Contributions:  ¥-881.50",
		"HIGHLIGHTS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := buildTestSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := formatter.Format(compSet)
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Did not expect a comparison section without alternatives")
	}
	if strings.Contains(result, "HIGHLIGHTS") {
		t.Error("Did not expect highlights without recommendations")
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	formatter := &TableFormatter{}
	compSet := buildTestSet()
	compSet.AlternativeResults = append(compSet.AlternativeResults, ComparisonResult{
		CityCode:             "110100",
		TakeHomeDiffFromBase: decimal.RequireFromString("-19.885"),
	}, ComparisonResult{CityCode: "320500"})

	expected := "Base: 440300 | 310100: +¥855.06 | 110100: -¥19.89 | 320500: ="
	if got := formatter.FormatCompact(compSet); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestTableFormatter_Truncate(t *testing.T) {
	formatter := &TableFormatter{}
	if got := formatter.truncate("黑龙江省哈尔滨市", 6); got != "黑龙江..." {
		t.Errorf("Expected rune-aware truncation, got %q", got)
	}
	if got := formatter.truncate("深圳市", 6); got != "深圳市" {
		t.Errorf("Expected short names unchanged, got %q", got)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	out, err := formatter.Format(buildTestSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(records))
	}
	if records[1][2] != "base" || records[2][2] != "alternative" {
		t.Errorf("Unexpected row types: %q, %q", records[1][2], records[2][2])
	}
	if records[2][6] != "16455.70" {
		t.Errorf("Expected take-home 16455.70, got %s", records[2][6])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := &JSONFormatter{Pretty: true}
	out, err := formatter.Format(buildTestSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "\n  \"baseCity\": \"440300\"") {
		t.Errorf("Expected indented baseCity field, got:\n%s", out)
	}
	if strings.Contains(out, "\"results\"") {
		t.Error("Did not expect per-city results without Detailed")
	}
}

func TestJSONFormatter_Format_Detailed(t *testing.T) {
	formatter := &JSONFormatter{Detailed: true}
	out, err := formatter.Format(buildTestSet())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded struct {
		BaseCity string                    `json:"baseCity"`
		Results  map[string]map[string]any `json:"results"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if decoded.BaseCity != "440300" {
		t.Errorf("Expected embedded set fields, got base %q", decoded.BaseCity)
	}
	if len(decoded.Results) != 2 {
		t.Errorf("Expected results for 2 cities, got %d", len(decoded.Results))
	}
}
