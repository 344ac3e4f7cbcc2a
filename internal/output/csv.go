package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// CSVFormatter writes one row per projected month.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var projectionHeader = []string{
	"Month", "PreTax", "CumulativePreTax", "MonthFund", "CumulativeFund",
	"CumulativeAllowance", "CumulativeAdditional", "CumulativeTaxable",
	"CumulativeTax", "MonthTax", "NetSalary",
}

func projectionRecord(row domain.MonthlyProjectionRow) []string {
	return []string{
		strconv.Itoa(row.Month),
		FormatAmount(row.PreTax),
		FormatAmount(row.CumulativePreTax),
		FormatAmount(row.MonthFund),
		FormatAmount(row.CumulativeFund),
		FormatAmount(row.CumulativeAllowance),
		FormatAmount(row.CumulativeAdditional),
		FormatAmount(row.CumulativeTaxable),
		FormatAmount(row.CumulativeTax),
		FormatAmount(row.MonthTax),
		FormatAmount(row.NetSalary),
	}
}

func (c CSVFormatter) Format(result *domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(projectionHeader); err != nil {
		return nil, err
	}
	for _, row := range result.Projection {
		if err := w.Write(projectionRecord(row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
