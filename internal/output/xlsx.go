package output

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet    = "Summary"
	projectionSheet = "Projection"
)

// XLSXFormatter writes an Excel workbook with a Summary sheet and a
// Projection sheet.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(result *domain.Result) ([]byte, error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), summarySheet); err != nil {
		return nil, err
	}
	if _, err := wb.NewSheet(projectionSheet); err != nil {
		return nil, err
	}

	if err := writeSummarySheet(wb, result); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeProjectionSheet(wb, result); err != nil {
		return nil, fmt.Errorf("projection sheet: %w", err)
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func num(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func writeSummarySheet(wb *excelize.File, result *domain.Result) error {
	rows := [][]any{
		{"Item", "Amount"},
		{"Gross Salary", num(result.Input.GrossMonthly)},
		{"Social Insurance", num(result.Summary.Social)},
		{"Housing Fund", num(result.Summary.Housing)},
		{"Additional Deduction", num(result.Input.AdditionalDeduction)},
		{"Income Tax", num(result.Summary.Tax)},
		{"Take-home Pay", num(result.Summary.TakeHome)},
		{},
		{"Range Gross", num(result.AnnualGross)},
		{"Range Tax", num(result.AnnualTax)},
		{"Range Net", num(result.AnnualNet)},
		{},
		{"Annual Bonus", num(result.Bonus.Bonus)},
		{"Bonus Tax", num(result.Bonus.Tax)},
		{"Net Bonus", num(result.Bonus.NetBonus)},
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return wb.SetColWidth(summarySheet, "A", "A", 24)
}

func writeProjectionSheet(wb *excelize.File, result *domain.Result) error {
	header := make([]any, len(projectionHeader))
	for i, h := range projectionHeader {
		header[i] = h
	}
	if err := wb.SetSheetRow(projectionSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range result.Projection {
		row := []any{
			r.Month,
			num(r.PreTax),
			num(r.CumulativePreTax),
			num(r.MonthFund),
			num(r.CumulativeFund),
			num(r.CumulativeAllowance),
			num(r.CumulativeAdditional),
			num(r.CumulativeTaxable),
			num(r.CumulativeTax),
			num(r.MonthTax),
			num(r.NetSalary),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(projectionSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
