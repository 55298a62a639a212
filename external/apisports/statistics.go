package apisports

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/soccer-tracker/internal/domain/teamstats"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

const teamStatisticsPath = "/teams/statistics"

func (c *Client) FetchTeamStatistics(ctx context.Context, teamID int64, leagueID, season string) (teamstats.Statistics, error) {
	leagueID = strings.TrimSpace(leagueID)
	season = strings.TrimSpace(season)
	if teamID <= 0 || leagueID == "" || season == "" {
		return teamstats.Statistics{}, crerr.Wrapf(usecase.ErrInvalidInput, "team, league and season are required")
	}

	query := url.Values{}
	query.Set("season", season)
	query.Set("team", strconv.FormatInt(teamID, 10))
	query.Set("league", leagueID)

	raw, err := c.get(ctx, teamStatisticsPath, query)
	if err != nil {
		return teamstats.Statistics{}, crerr.Wrapf(err, "fetch team statistics team=%d league=%s season=%s", teamID, leagueID, season)
	}

	stats, err := decodeTeamStatistics(raw)
	if err != nil {
		return teamstats.Statistics{}, crerr.Wrapf(err, "team statistics team=%d", teamID)
	}
	return stats, nil
}

// decodeTeamStatistics requires the response object; every field inside it is optional.
func decodeTeamStatistics(raw []byte) (teamstats.Statistics, error) {
	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return teamstats.Statistics{}, crerr.Wrapf(usecase.ErrMalformedResponse, "decode envelope: %v", err)
	}
	if !env.hasResponse() {
		if detail := env.providerErrors(); detail != "" {
			return teamstats.Statistics{}, crerr.Wrapf(usecase.ErrMalformedResponse, "response is empty: %s", detail)
		}
		return teamstats.Statistics{}, crerr.Wrapf(usecase.ErrMalformedResponse, "response is empty")
	}

	var payload statisticsResponse
	if err := sonic.Unmarshal(env.Response, &payload); err != nil {
		return teamstats.Statistics{}, crerr.Wrapf(usecase.ErrMalformedResponse, "decode response: %v", err)
	}

	return teamstats.Statistics{
		TeamID:        int64(payload.Team.ID),
		TeamName:      strings.TrimSpace(string(payload.Team.Name)),
		TeamLogo:      strings.TrimSpace(string(payload.Team.Logo)),
		LeagueID:      int64(payload.League.ID),
		LeagueName:    strings.TrimSpace(string(payload.League.Name)),
		LeagueCountry: strings.TrimSpace(string(payload.League.Country)),
		LeagueLogo:    strings.TrimSpace(string(payload.League.Logo)),
		Season:        int(payload.League.Season),
		Form:          strings.TrimSpace(string(payload.Form)),
		Fixtures: teamstats.Fixtures{
			Played: payload.Fixtures.Played.toSplit(),
			Wins:   payload.Fixtures.Wins.toSplit(),
			Draws:  payload.Fixtures.Draws.toSplit(),
			Loses:  payload.Fixtures.Loses.toSplit(),
		},
		Goals: teamstats.Goals{
			For:            payload.Goals.For.Total.toSplit(),
			Against:        payload.Goals.Against.Total.toSplit(),
			AverageFor:     string(payload.Goals.For.Average.Total),
			AverageAgainst: string(payload.Goals.Against.Average.Total),
		},
		CleanSheets:   payload.CleanSheet.toSplit(),
		FailedToScore: payload.FailedToScore.toSplit(),
		BiggestStreaks: teamstats.Streaks{
			Wins:  int(payload.Biggest.Streak.Wins),
			Draws: int(payload.Biggest.Streak.Draws),
			Loses: int(payload.Biggest.Streak.Loses),
		},
	}, nil
}

func (s split) toSplit() teamstats.Split {
	return teamstats.Split{
		Home:  int(s.Home),
		Away:  int(s.Away),
		Total: int(s.Total),
	}
}
