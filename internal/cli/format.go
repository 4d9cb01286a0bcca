package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// formatter renders numbers for a locale and titles for the output's
// colour profile.
type formatter struct {
	p     *message.Printer
	title lipgloss.Style
}

func newFormatter(locale string, out io.Writer) *formatter {
	r := lipgloss.NewRenderer(out)
	return &formatter{
		p:     message.NewPrinter(language.Make(locale)),
		title: r.NewStyle().Bold(true),
	}
}

// money formats v with two decimals and grouping, e.g. 105,000.00 under en.
func (f *formatter) money(v float64) string {
	return f.p.Sprintf("%.2f", v)
}

// wholeMoney formats v rounded to units with grouping, e.g. 25,000.
func (f *formatter) wholeMoney(v float64) string {
	return f.p.Sprintf("%.0f", v)
}

func (f *formatter) percent(v float64) string {
	return f.p.Sprintf("%.1f", v) + "%"
}

func (f *formatter) heading(s string) string {
	return f.title.Render(s)
}

// padRight pads s with spaces to n display columns. Wider strings are left
// as they are.
func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return s + strings.Repeat(" ", n-w)
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}

func statusMarker(s models.Status) string {
	switch s {
	case models.StatusInProgress:
		return "🟢"
	case models.StatusPlanning:
		return "🟡"
	default:
		return "🔵"
	}
}

// clientLabel is the display name of a project's client; a missing or
// dangling reference shows as "-".
func clientLabel(p models.ProjectView) string {
	if p.ClientName == nil {
		return "-"
	}
	return *p.ClientName
}
