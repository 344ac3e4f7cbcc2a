package components

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/paygo/internal/tui/tuistyles"
)

// Bar is one labelled value in a BarChart
type Bar struct {
	Label     string
	Value     decimal.Decimal
	Highlight bool
}

// BarChart draws horizontal bars scaled to the largest value
type BarChart struct {
	Title string
	Bars  []Bar
	Width int
}

// NewBarChart creates an empty chart
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, Width: 40}
}

// Add appends a bar
func (c *BarChart) Add(label string, value decimal.Decimal, highlight bool) *BarChart {
	c.Bars = append(c.Bars, Bar{Label: label, Value: value, Highlight: highlight})
	return c
}

// WithWidth sets the width of the longest bar
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the chart. Negative values draw as empty bars.
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	maxValue := decimal.Zero
	labelWidth := 0
	for _, b := range c.Bars {
		if b.Value.GreaterThan(maxValue) {
			maxValue = b.Value
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(tuistyles.TableHeaderStyle.Render(c.Title))
		sb.WriteString("\n")
	}
	for _, b := range c.Bars {
		n := barLength(b.Value, maxValue, c.Width)
		line := fmt.Sprintf("%-*s %s %s", labelWidth, b.Label, strings.Repeat("█", n), tuistyles.FormatCurrency(b.Value))
		if b.Highlight {
			line = tuistyles.TableHighlightStyle.Render(line)
		} else {
			line = tuistyles.TableCellStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func barLength(value, maxValue decimal.Decimal, width int) int {
	if !value.IsPositive() || !maxValue.IsPositive() || width <= 0 {
		return 0
	}
	n := int(value.Div(maxValue).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	return n
}
