package apisports

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

const standingsPath = "/standings"

// FetchStandings returns the table in provider order; ranking is left to the caller.
func (c *Client) FetchStandings(ctx context.Context, leagueID, season string) ([]leaguestanding.Row, error) {
	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if leagueID == "" || season == "" {
		return nil, crerr.Wrapf(usecase.ErrInvalidInput, "league and season are required")
	}

	query := url.Values{}
	query.Set("league", leagueID)
	query.Set("season", season)

	raw, err := c.get(ctx, standingsPath, query)
	if err != nil {
		return nil, crerr.Wrapf(err, "fetch standings league=%s season=%s", leagueID, season)
	}

	rows, err := decodeStandings(raw)
	if err != nil {
		return nil, crerr.Wrapf(err, "standings league=%s season=%s", leagueID, season)
	}
	return rows, nil
}

func decodeStandings(raw []byte) ([]leaguestanding.Row, error) {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "decode envelope: %v", err)
	}
	if !env.hasResponse() {
		if detail := env.providerErrors(); detail != "" {
			return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "response is empty: %s", detail)
		}
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "response is empty")
	}

	var items []standingsResponseItem
	if err := sonic.Unmarshal(env.Response, &items); err != nil {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "decode response: %v", err)
	}
	if len(items) == 0 {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "response is empty")
	}

	table, err := unwrapStandings(items[0].League.Standings)
	if err != nil {
		return nil, err
	}

	rows := make([]leaguestanding.Row, 0, len(table))
	for _, item := range table {
		if item.blank() {
			continue
		}
		rows = append(rows, item.toRow())
	}
	return rows, nil
}

// unwrapStandings accepts both [row, ...] and [[row, ...], ...]. For the nested shape the
// first group is the league table.
func unwrapStandings(raw []byte) ([]standingItem, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "league.standings is missing")
	}

	var groups []sonic.NoCopyRawMessage
	if err := sonic.Unmarshal(trimmed, &groups); err != nil {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "league.standings is not a list: %v", err)
	}
	if len(groups) == 0 {
		return []standingItem{}, nil
	}

	body := trimmed
	if first := bytes.TrimSpace(groups[0]); len(first) > 0 && first[0] == '[' {
		body = first
	}

	var items []standingItem
	if err := sonic.Unmarshal(body, &items); err != nil {
		return nil, crerr.Wrapf(usecase.ErrMalformedResponse, "decode standings rows: %v", err)
	}
	return items, nil
}

// blank reports a null or empty entry, which would otherwise rank as a nameless team.
func (s standingItem) blank() bool {
	return s.Team.ID == 0 && strings.TrimSpace(string(s.Team.Name)) == ""
}

func (s standingItem) toRow() leaguestanding.Row {
	return leaguestanding.Row{
		TeamID:         int64(s.Team.ID),
		TeamName:       strings.TrimSpace(string(s.Team.Name)),
		TeamLogo:       strings.TrimSpace(string(s.Team.Logo)),
		Played:         int(s.All.Played),
		Wins:           int(s.All.Win),
		Draws:          int(s.All.Draw),
		Losses:         int(s.All.Lose),
		GoalsFor:       int(s.All.Goals.For),
		GoalsAgainst:   int(s.All.Goals.Against),
		GoalDifference: int(s.GoalsDiff),
		Points:         int(s.Points),
		Form:           strings.TrimSpace(string(s.Form)),
	}
}
