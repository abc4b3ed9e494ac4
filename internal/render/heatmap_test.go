package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		hours, max float64
		want       int
	}{
		{0, 4, 0},
		{1, 0, 0},
		{0.1, 4, 1},
		{1, 4, 1},
		{2, 4, 2},
		{3.5, 4, 4},
		{4, 4, 4},
		{9, 4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.hours, tt.max), "Level(%v, %v)", tt.hours, tt.max)
	}
}

func TestHeatmapString_PlainGrid(t *testing.T) {
	cells := []store.HeatmapCell{
		{Date: "2023-10-10", TotalHours: 3},
		{Date: "2023-10-11", TotalHours: 1.5},
	}

	out := HeatmapString(cells, 2023, Options{Title: "Math 2023", Plain: true})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// title + month header + 7 weekday rows + summary
	require.Len(t, lines, 10)
	assert.Equal(t, "Math 2023", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "    Jan"), "month header: %q", lines[1])
	assert.Contains(t, lines[1], "Dec")
	assert.True(t, strings.HasPrefix(lines[3], "Mon "))

	// 2023-10-10 is a Tuesday and holds the busiest day.
	assert.Equal(t, 1, strings.Count(lines[4], glyphs[Levels]), "tuesday row: %q", lines[4])
	assert.Equal(t, 1, strings.Count(lines[5], glyphs[2]), "wednesday row: %q", lines[5])
	assert.Equal(t, "2 study days, 4.5 hours total, busiest day 3 hours", lines[9])
	assert.NotContains(t, out, "\x1b[")
}

func TestHeatmapString_EmptyYear(t *testing.T) {
	out := HeatmapString(nil, 2024, Options{Plain: true})

	assert.NotContains(t, out, glyphs[1])
	assert.Equal(t, 366, strings.Count(out, glyphs[0]), "2024 is a leap year")
	assert.Contains(t, out, "0 study days, 0 hours total")
}

func TestHeatmap_WritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Heatmap(&buf, []store.HeatmapCell{{Date: "2023-01-01", TotalHours: 1}}, 2023, Options{Plain: true}))
	assert.Equal(t, HeatmapString([]store.HeatmapCell{{Date: "2023-01-01", TotalHours: 1}}, 2023, Options{Plain: true}), buf.String())
}
