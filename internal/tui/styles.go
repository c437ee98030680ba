package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/handiism/game-manager/internal/app"
	"github.com/handiism/game-manager/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	musicStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

func outcomeStyle(o app.Outcome) lipgloss.Style {
	switch o {
	case app.OutcomeSuccess:
		return successStyle
	case app.OutcomeInvalidInput, app.OutcomeNotFound:
		return warningStyle
	case app.OutcomeEmptyCatalog:
		return infoStyle
	default:
		return errorStyle
	}
}

// renderGames lays out games as a numbered table in stored order.
func renderGames(games []model.Game) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("#", "Name", "Genre", "Price")

	for i, g := range games {
		t.Row(strconv.Itoa(i+1), g.Name, g.Genre, g.PriceText())
	}
	return t.Render()
}

func renderResult(res app.Result) string {
	out := outcomeStyle(res.Outcome).Render(res.Message)
	if res.Command == app.CommandList && len(res.Games) > 0 {
		out += "\n\n" + renderGames(res.Games)
	}
	return out
}
