package components

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetricCard_WithDelta(t *testing.T) {
	card := NewMoneyCard("Take-home", decimal.NewFromInt(16455)).WithDelta(decimal.RequireFromString("-875.5"))

	assert.Equal(t, "¥16,455.00", card.Value)
	if assert.NotNil(t, card.Trend) {
		assert.False(t, card.Trend.IsPositive)
		assert.Equal(t, "¥875.50", card.Trend.Change)
	}
	assert.Contains(t, card.RenderCompact(), "↓ ¥875.50")

	card.WithDelta(decimal.Zero)
	assert.Nil(t, card.Trend)
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	grid := MetricGrid([]*MetricCard{
		NewMetricCard("A", "1"),
		NewMetricCard("B", "2"),
		NewMetricCard("C", "3"),
	}, 2)
	for _, s := range []string{"A", "B", "C"} {
		assert.Contains(t, grid, s)
	}
}

func TestBarChart_Render(t *testing.T) {
	assert.Contains(t, NewBarChart("Tax").Render(), "No data to display")

	chart := NewBarChart("Tax").WithWidth(10).
		Add(" 1", decimal.NewFromInt(100), false).
		Add(" 2", decimal.NewFromInt(200), true).
		Add(" 3", decimal.Zero, false)
	out := chart.Render()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, 5, strings.Count(lines[1], "█"))
	assert.Equal(t, 10, strings.Count(lines[2], "█"))
	assert.Equal(t, 0, strings.Count(lines[3], "█"))
	assert.Contains(t, lines[2], "¥200.00")
}
