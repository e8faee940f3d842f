package tui

import (
	"passgen/pkg/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme of the page.
type Theme struct {
	Title  lipgloss.Color
	Status lipgloss.Color
	Error  lipgloss.Color
	Hint   lipgloss.Color

	// Meter gradients per strength band, start and end color.
	Weak   [2]string
	Medium [2]string
	Strong [2]string
}

// DefaultTheme uses the red, amber and green meter gradients.
var DefaultTheme = Theme{ //nolint: gochecknoglobals
	Title:  lipgloss.Color("#5FAFD7"),
	Status: lipgloss.Color("#22C55E"),
	Error:  lipgloss.Color("#EF4444"),
	Hint:   lipgloss.Color("#6C6C6C"),

	Weak:   [2]string{"#EF4444", "#F97316"},
	Medium: [2]string{"#F59E0B", "#FACC15"},
	Strong: [2]string{"#22C55E", "#84CC16"},
}

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint)
}

func (t Theme) passwordStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
}

const meterWidth = 40

// meters builds one progress bar per strength band.
func (t Theme) meters() map[domain.Strength]progress.Model {
	bar := func(c [2]string) progress.Model {
		return progress.New(progress.WithGradient(c[0], c[1]), progress.WithWidth(meterWidth), progress.WithoutPercentage())
	}

	return map[domain.Strength]progress.Model{
		domain.StrengthWeak:   bar(t.Weak),
		domain.StrengthMedium: bar(t.Medium),
		domain.StrengthStrong: bar(t.Strong),
	}
}
