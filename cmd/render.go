package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/scorecast/internal/grading"
	"github.com/abhisek/scorecast/internal/prediction"
)

var (
	colorExcellent = lipgloss.Color("#22C55E")
	colorGood      = lipgloss.Color("#14B8A6")
	colorAverage   = lipgloss.Color("#F97316")
	colorWeak      = lipgloss.Color("#F43F5E")
	colorDim       = lipgloss.Color("#94A3B8")
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(colorDim).Width(16)
	scoreStyle   = lipgloss.NewStyle().Bold(true)
	insightStyle = lipgloss.NewStyle().Italic(true).Width(72)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

func classificationStyle(c grading.Classification) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch c {
	case grading.Excellent:
		return s.Foreground(colorExcellent)
	case grading.Good:
		return s.Foreground(colorGood)
	case grading.Average:
		return s.Foreground(colorAverage)
	default:
		return s.Foreground(colorWeak)
	}
}

// renderResult writes one result in the chosen output format.
func renderResult(w io.Writer, format string, res *prediction.Result) error {
	if format == outputJSON {
		return writeJSON(w, res)
	}
	_, err := fmt.Fprintln(w, resultCard(res))
	return err
}

func resultCard(res *prediction.Result) string {
	source := string(res.Source)
	if res.Model != "" {
		source += " (" + res.Model + ")"
	}

	rows := []string{
		labelStyle.Render("Predicted score") + scoreStyle.Render(fmt.Sprintf("%.1f / 100", res.Score)),
		labelStyle.Render("Classification") + classificationStyle(res.Classification).Render(string(res.Classification)),
		labelStyle.Render("Source") + source,
	}
	if res.Reclassified {
		rows = append(rows, labelStyle.Render("")+"band re-derived from the score")
	}
	rows = append(rows, "", insightStyle.Render(res.Insights))

	return cardStyle.Render(strings.Join(rows, "\n"))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
