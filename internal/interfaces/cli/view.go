package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
	"github.com/riskibarqy/soccer-tracker/internal/domain/teamstats"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

var standingsHeaders = []string{"#", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts", "Form"}

func (r *REPL) renderLeagues(entries []league.Entry, selected string) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		marker := ""
		if entry.ExternalID == selected {
			marker = "*"
		}
		rows = append(rows, []string{marker, entry.Name, entry.ExternalID})
	}

	th := newTheme(r.renderer, selected)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.renderer.NewStyle().Foreground(cSub)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.header
			}
			return th.cell
		}).
		Headers("", "League", "Id").
		Rows(rows...)
	return t.String()
}

func (r *REPL) renderStandings(catalog *league.Catalog, current leaguestanding.Table) string {
	th := newTheme(r.renderer, current.LeagueID)
	title := fmt.Sprintf("%s %s", catalog.NameFor(current.LeagueID), current.Season)

	rows := make([][]string, 0, len(current.Rows))
	for _, row := range current.Rows {
		rows = append(rows, standingsRow(row))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return th.header
			case row == 0:
				return th.leader
			default:
				return th.cell
			}
		}).
		Headers(standingsHeaders...).
		Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left, th.banner(r.renderer, title), t.String())
}

func standingsRow(row leaguestanding.Row) []string {
	return []string{
		strconv.Itoa(row.Rank),
		row.TeamName,
		strconv.Itoa(row.Played),
		strconv.Itoa(row.Wins),
		strconv.Itoa(row.Draws),
		strconv.Itoa(row.Losses),
		strconv.Itoa(row.GoalsFor),
		strconv.Itoa(row.GoalsAgainst),
		fmt.Sprintf("%+d", row.GoalDifference),
		strconv.Itoa(row.Points),
		row.Form,
	}
}

func (r *REPL) renderTeamStatistics(leagueID string, stats teamstats.Statistics) string {
	th := newTheme(r.renderer, leagueID)
	title := strings.TrimSpace(fmt.Sprintf("%s %d", stats.TeamName, stats.Season))

	split := func(label string, s teamstats.Split) []string {
		return []string{label, strconv.Itoa(s.Home), strconv.Itoa(s.Away), strconv.Itoa(s.Total)}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(th.border).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return th.header
			}
			return th.cell
		}).
		Headers("", "Home", "Away", "Total").
		Rows(
			split("Played", stats.Fixtures.Played),
			split("Wins", stats.Fixtures.Wins),
			split("Draws", stats.Fixtures.Draws),
			split("Losses", stats.Fixtures.Loses),
			split("Goals for", stats.Goals.For),
			split("Goals against", stats.Goals.Against),
			split("Clean sheets", stats.CleanSheets),
			split("Failed to score", stats.FailedToScore),
		)

	leagueLine := stats.LeagueName
	if stats.LeagueCountry != "" {
		leagueLine = fmt.Sprintf("%s (%s)", stats.LeagueName, stats.LeagueCountry)
	}
	summary := []string{
		th.title.Render(leagueLine),
		fmt.Sprintf("Win rate %.1f%%  Goal difference %+d  Longest win streak %d",
			stats.WinRate(), stats.GoalDifference(), stats.BiggestStreaks.Wins),
	}
	if stats.Form != "" {
		summary = append(summary, th.muted.Render("Form "+stats.Form))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		th.banner(r.renderer, title),
		t.String(),
		strings.Join(summary, "\n"),
	)
}

func (r *REPL) renderOverview(overview usecase.LeadersOverview) string {
	blocks := make([]string, 0, len(overview.Leagues))
	for _, item := range overview.Leagues {
		th := newTheme(r.renderer, item.League.ExternalID)
		heading := th.title.Render(fmt.Sprintf("%s %s", item.League.Name, overview.Season))
		if item.Err != nil {
			blocks = append(blocks, heading+"\n"+th.errorMsg.Render(describeError(item.Err)))
			continue
		}

		rows := make([][]string, 0, len(item.Leaders))
		for _, row := range item.Leaders {
			rows = append(rows, []string{strconv.Itoa(row.Rank), row.TeamName, strconv.Itoa(row.Points)})
		}
		t := table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return th.header
				}
				return th.cell
			}).
			Headers("#", "Team", "Pts").
			Rows(rows...)
		blocks = append(blocks, heading+"\n"+t.String())
	}
	return strings.Join(blocks, "\n\n")
}
