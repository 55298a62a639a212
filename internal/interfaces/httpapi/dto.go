package httpapi

import (
	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
	"github.com/riskibarqy/soccer-tracker/internal/domain/teamstats"
	"github.com/riskibarqy/soccer-tracker/internal/platform/palette"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

const bannerGradientSteps = 8

type selectLeagueRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type loadStandingsRequest struct {
	Season string `json:"season" validate:"required,max=8"`
}

type colorSchemeDTO struct {
	Background       string   `json:"background"`
	GradientEnd      string   `json:"gradientEnd"`
	HeaderForeground string   `json:"headerForeground"`
	Text             string   `json:"text"`
	Gradient         []string `json:"gradient"`
}

type leagueDTO struct {
	Name       string         `json:"name"`
	ExternalID string         `json:"externalId"`
	Logo       string         `json:"logo"`
	Colors     colorSchemeDTO `json:"colors"`
}

type sessionDTO struct {
	SessionID      string     `json:"sessionId"`
	SelectedLeague *leagueDTO `json:"selectedLeague,omitempty"`
	LeagueID       string     `json:"leagueId,omitempty"`
	Season         string     `json:"season,omitempty"`
	Fetching       bool       `json:"fetching"`
}

type standingRowDTO struct {
	Rank           int    `json:"rank"`
	TeamID         int64  `json:"teamId"`
	TeamName       string `json:"teamName"`
	TeamLogo       string `json:"teamLogo,omitempty"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form,omitempty"`
}

type standingsDTO struct {
	LeagueID   string           `json:"leagueId"`
	LeagueName string           `json:"leagueName"`
	Season     string           `json:"season"`
	Rows       []standingRowDTO `json:"rows"`
}

type splitDTO struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Total int `json:"total"`
}

type teamStatisticsDTO struct {
	TeamID         int64    `json:"teamId"`
	TeamName       string   `json:"teamName"`
	TeamLogo       string   `json:"teamLogo"`
	LeagueName     string   `json:"leagueName"`
	LeagueCountry  string   `json:"leagueCountry"`
	Season         int      `json:"season"`
	Form           string   `json:"form"`
	Played         splitDTO `json:"played"`
	Wins           splitDTO `json:"wins"`
	Draws          splitDTO `json:"draws"`
	Losses         splitDTO `json:"losses"`
	GoalsFor       splitDTO `json:"goalsFor"`
	GoalsAgainst   splitDTO `json:"goalsAgainst"`
	AverageFor     string   `json:"averageGoalsFor"`
	AverageAgainst string   `json:"averageGoalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	WinRate        float64  `json:"winRate"`
	CleanSheets    int      `json:"cleanSheets"`
	FailedToScore  int      `json:"failedToScore"`
	LongestWinRun  int      `json:"longestWinStreak"`
}

type overviewErrorDTO struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type overviewLeagueDTO struct {
	League     leagueDTO         `json:"league"`
	Leaders    []standingRowDTO  `json:"leaders"`
	DurationMs int64             `json:"durationMs"`
	Error      *overviewErrorDTO `json:"error,omitempty"`
}

type overviewDTO struct {
	Season  string              `json:"season"`
	Leagues []overviewLeagueDTO `json:"leagues"`
}

func leagueToDTO(entry league.Entry) leagueDTO {
	scheme := league.SchemeFor(entry.ExternalID)
	colors := colorSchemeDTO{
		Background:       scheme.Background,
		GradientEnd:      scheme.GradientEnd,
		HeaderForeground: scheme.HeaderForeground,
		Text:             scheme.Text,
		Gradient:         []string{},
	}

	start, errStart := palette.ParseHex(scheme.Background)
	end, errEnd := palette.ParseHex(scheme.GradientEnd)
	if errStart == nil && errEnd == nil {
		for _, c := range palette.BuildGradient(start, end, bannerGradientSteps) {
			colors.Gradient = append(colors.Gradient, c.Hex())
		}
	}

	return leagueDTO{
		Name:       entry.Name,
		ExternalID: entry.ExternalID,
		Logo:       entry.LogoRef,
		Colors:     colors,
	}
}

func rowsToDTO(rows []leaguestanding.Row) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingRowDTO{
			Rank:           row.Rank,
			TeamID:         row.TeamID,
			TeamName:       row.TeamName,
			TeamLogo:       row.TeamLogo,
			Played:         row.Played,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
			Form:           row.Form,
		})
	}
	return out
}

func standingsToDTO(catalog *league.Catalog, table leaguestanding.Table) standingsDTO {
	return standingsDTO{
		LeagueID:   table.LeagueID,
		LeagueName: catalog.NameFor(table.LeagueID),
		Season:     table.Season,
		Rows:       rowsToDTO(table.Rows),
	}
}

func sessionToDTO(session *usecase.Session) sessionDTO {
	out := sessionDTO{
		SessionID: session.ID(),
		Fetching:  session.Fetching(),
	}
	if entry, ok := session.SelectedLeague(); ok {
		dto := leagueToDTO(entry)
		out.SelectedLeague = &dto
	}
	current := session.Standings()
	out.LeagueID = current.LeagueID
	out.Season = current.Season
	return out
}

func splitToDTO(s teamstats.Split) splitDTO {
	return splitDTO{Home: s.Home, Away: s.Away, Total: s.Total}
}

func teamStatisticsToDTO(stats teamstats.Statistics) teamStatisticsDTO {
	return teamStatisticsDTO{
		TeamID:         stats.TeamID,
		TeamName:       stats.TeamName,
		TeamLogo:       stats.TeamLogo,
		LeagueName:     stats.LeagueName,
		LeagueCountry:  stats.LeagueCountry,
		Season:         stats.Season,
		Form:           stats.Form,
		Played:         splitToDTO(stats.Fixtures.Played),
		Wins:           splitToDTO(stats.Fixtures.Wins),
		Draws:          splitToDTO(stats.Fixtures.Draws),
		Losses:         splitToDTO(stats.Fixtures.Loses),
		GoalsFor:       splitToDTO(stats.Goals.For),
		GoalsAgainst:   splitToDTO(stats.Goals.Against),
		AverageFor:     stats.Goals.AverageFor,
		AverageAgainst: stats.Goals.AverageAgainst,
		GoalDifference: stats.GoalDifference(),
		WinRate:        stats.WinRate(),
		CleanSheets:    stats.CleanSheets.Total,
		FailedToScore:  stats.FailedToScore.Total,
		LongestWinRun:  stats.BiggestStreaks.Wins,
	}
}
