// Package render draws study heatmaps for the terminal.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/eeshamoona/thinklock/internal/store"
)

// Levels is the number of non-empty intensity steps.
const Levels = 4

var glyphs = [Levels + 1]string{"·", "░", "▒", "▓", "█"}

// Palette colours levels 0..Levels, lightest to darkest.
var Palette = [Levels + 1]lipgloss.Color{
	lipgloss.Color("#374151"),
	lipgloss.Color("#0E4429"),
	lipgloss.Color("#006D32"),
	lipgloss.Color("#26A641"),
	lipgloss.Color("#39D353"),
}

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Options controls heatmap output.
type Options struct {
	Title string
	// Plain disables ANSI styling.
	Plain bool
}

// Level maps hours onto 0..Levels relative to maxHours.
func Level(hours, maxHours float64) int {
	if hours <= 0 || maxHours <= 0 {
		return 0
	}
	l := int(math.Ceil(hours / maxHours * Levels))
	if l < 1 {
		return 1
	}
	if l > Levels {
		return Levels
	}
	return l
}

// Heatmap renders one year as a GitHub-style grid: seven weekday rows and
// one column per week, followed by a summary line.
func Heatmap(w io.Writer, cells []store.HeatmapCell, year int, opts Options) error {
	_, err := io.WriteString(w, HeatmapString(cells, year, opts))
	return err
}

// HeatmapString is Heatmap returning the rendered text.
func HeatmapString(cells []store.HeatmapCell, year int, opts Options) string {
	hours := make(map[string]float64, len(cells))
	var total float64
	for _, c := range cells {
		hours[c.Date] += c.TotalHours
		total += c.TotalHours
	}
	maxHours := store.MaxHours(cells)

	style := func(s lipgloss.Style, text string) string {
		if opts.Plain {
			return text
		}
		return s.Render(text)
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	// Grid starts on the Sunday on or before January 1.
	start := jan1.AddDate(0, 0, -int(jan1.Weekday()))
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	weeks := int(dec31.Sub(start).Hours()/24)/7 + 1

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(style(titleStyle, opts.Title))
		b.WriteString("\n")
	}
	b.WriteString(style(mutedStyle, monthHeader(start, year, weeks)))
	b.WriteString("\n")

	dayLabels := [7]string{"", "Mon", "", "Wed", "", "Fri", ""}
	for wd := 0; wd < 7; wd++ {
		b.WriteString(style(mutedStyle, fmt.Sprintf("%-4s", dayLabels[wd])))
		for wk := 0; wk < weeks; wk++ {
			day := start.AddDate(0, 0, wk*7+wd)
			if day.Year() != year {
				b.WriteString("  ")
				continue
			}
			lvl := Level(hours[day.Format("2006-01-02")], maxHours)
			b.WriteString(style(lipgloss.NewStyle().Foreground(Palette[lvl]), glyphs[lvl]))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("%d study days, %s hours total, busiest day %s hours",
		len(hours), formatHours(total), formatHours(maxHours))
	b.WriteString(style(mutedStyle, summary))
	b.WriteString("\n")
	return b.String()
}

func monthHeader(start time.Time, year, weeks int) string {
	const gutter = 4
	line := []rune(strings.Repeat(" ", gutter+2*weeks))
	next := 0
	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		col := gutter + 2*(int(first.Sub(start).Hours()/24)/7)
		if col < next {
			col = next
		}
		label := []rune(m.String()[:3])
		if col+len(label) > len(line) {
			break
		}
		copy(line[col:], label)
		next = col + len(label) + 1
	}
	return strings.TrimRight(string(line), " ")
}

func formatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%.0f", h)
	}
	return fmt.Sprintf("%.1f", h)
}
