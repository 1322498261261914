package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/graphview/plot"
)

// DefaultTableRows caps the sampled rows Table prints per curve.
const DefaultTableRows = 25

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table lists samples of curve with columns segment, x and y. Long segments
// are thinned to about maxRows rows in total; the last sample of every
// segment is always kept. maxRows ≤ 0 selects DefaultTableRows.
func Table(curve plot.Curve, maxRows int) string {
	if maxRows <= 0 {
		maxRows = DefaultTableRows
	}

	stride := 1
	if n := curve.Points(); n > maxRows {
		stride = (n + maxRows - 1) / maxRows
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("segment", "x", "y").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for si, s := range curve.Segments {
		for i := 0; i < s.Len(); i++ {
			if i%stride != 0 && i != s.Len()-1 {
				continue
			}
			t.Row(strconv.Itoa(si+1), formatSample(s.X[i]), formatSample(s.Y[i]))
		}
	}

	return curve.Title + "\n" + t.String()
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
