package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/janolinej/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Numbers(t *testing.T) {
	tests := []struct {
		locale                   string
		money, whole, percentage string
	}{
		{"en", "105,000.00", "25,000", "50.0%"},
		{"pt-BR", "105.000,00", "25.000", "50,0%"},
	}
	for _, tc := range tests {
		t.Run(tc.locale, func(t *testing.T) {
			f := newFormatter(tc.locale, &bytes.Buffer{})
			assert.Equal(t, tc.money, f.money(105000))
			assert.Equal(t, tc.whole, f.wholeMoney(25000))
			assert.Equal(t, tc.percentage, f.percent(50))
		})
	}
}

func TestFormatter_HeadingIsPlainWithoutTerminal(t *testing.T) {
	f := newFormatter("en", &bytes.Buffer{})
	assert.Equal(t, "📊 DASHBOARD", f.heading("📊 DASHBOARD"))
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		in    string
		n     int
		width int
	}{
		{"ID", 3, 3},
		{"ORÇAMENTO", 12, 12},
		{"Instalação Elétrica", 23, 23},
		{"🟢", 4, 4},
		{"Shopping Center Plaza Norte Sul", 25, 31},
	}
	for _, tc := range tests {
		got := padRight(tc.in, tc.n)
		assert.Equal(t, tc.width, lipgloss.Width(got), tc.in)
	}
	assert.Equal(t, "abc", padRight("abc", 2))
}

func TestStatusMarker(t *testing.T) {
	assert.Equal(t, "🟢", statusMarker(models.StatusInProgress))
	assert.Equal(t, "🟡", statusMarker(models.StatusPlanning))
	assert.Equal(t, "🔵", statusMarker(models.StatusDone))
	assert.Equal(t, "🔵", statusMarker(models.StatusActive))
	assert.Equal(t, "🔵", statusMarker("Pausado"))
}

func TestClientLabel(t *testing.T) {
	name := "Maria Oliveira"
	assert.Equal(t, "Maria Oliveira", clientLabel(models.ProjectView{ClientName: &name}))
	assert.Equal(t, "-", clientLabel(models.ProjectView{}))
}
