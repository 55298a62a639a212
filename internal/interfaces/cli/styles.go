package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/platform/palette"
)

const (
	bannerSteps = 8
	bannerWidth = 56
)

var (
	cErr  = lipgloss.Color("196")
	cWarn = lipgloss.Color("214")
	cOk   = lipgloss.Color("42")
	cSub  = lipgloss.Color("240")
)

// theme holds the styles derived from one league's color scheme.
type theme struct {
	scheme   league.ColorScheme
	header   lipgloss.Style
	cell     lipgloss.Style
	leader   lipgloss.Style
	border   lipgloss.Style
	title    lipgloss.Style
	errorMsg lipgloss.Style
	warnMsg  lipgloss.Style
	okMsg    lipgloss.Style
	muted    lipgloss.Style
}

func newTheme(re *lipgloss.Renderer, externalID string) theme {
	scheme := league.SchemeFor(externalID)
	return theme{
		scheme: scheme,
		header: re.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.HeaderForeground)).
			Background(lipgloss.Color(scheme.Background)).
			Padding(0, 1),
		cell:     re.NewStyle().Padding(0, 1),
		leader:   re.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color(scheme.GradientEnd)),
		border:   re.NewStyle().Foreground(lipgloss.Color(scheme.Background)),
		title:    re.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.GradientEnd)),
		errorMsg: re.NewStyle().Foreground(cErr).Bold(true),
		warnMsg:  re.NewStyle().Foreground(cWarn),
		okMsg:    re.NewStyle().Foreground(cOk),
		muted:    re.NewStyle().Foreground(cSub),
	}
}

// banner paints the scheme's gradient as stacked full-width bars with the label on the
// middle bar.
func (t theme) banner(re *lipgloss.Renderer, label string) string {
	start, err := palette.ParseHex(t.scheme.Background)
	if err != nil {
		return t.title.Render(label)
	}
	end, err := palette.ParseHex(t.scheme.GradientEnd)
	if err != nil {
		return t.title.Render(label)
	}

	colors := palette.BuildGradient(start, end, bannerSteps)
	bars := make([]string, 0, len(colors))
	for i, c := range colors {
		text := ""
		if i == len(colors)/2 {
			text = label
		}
		bars = append(bars, re.NewStyle().
			Width(bannerWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color(t.scheme.HeaderForeground)).
			Background(lipgloss.Color(c.Hex())).
			Render(text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, bars...)
}
