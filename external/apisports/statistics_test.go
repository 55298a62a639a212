package apisports

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/riskibarqy/soccer-tracker/internal/platform/resilience"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arsenalStatistics = `{
  "get": "teams/statistics",
  "errors": [],
  "response": {
    "league": {"id": 39, "name": "Premier League", "country": "England", "logo": "pl.png", "season": 2023},
    "team": {"id": 42, "name": "Arsenal", "logo": "https://media.api-sports.io/football/teams/42.png"},
    "form": "WDWWL",
    "fixtures": {
      "played": {"home": 19, "away": 19, "total": 38},
      "wins": {"home": 15, "away": 13, "total": 28},
      "draws": {"home": 2, "away": 3, "total": 5},
      "loses": {"home": 2, "away": 3, "total": 5}
    },
    "goals": {
      "for": {"total": {"home": 48, "away": 43, "total": 91}, "average": {"home": "2.5", "away": "2.3", "total": "2.4"}},
      "against": {"total": {"home": 16, "away": 13, "total": 29}, "average": {"home": "0.8", "away": "0.7", "total": 0.8}}
    },
    "biggest": {"streak": {"wins": 8, "draws": 1, "loses": 1}},
    "clean_sheet": {"home": 10, "away": 8, "total": 18},
    "failed_to_score": {"home": 1, "away": 2, "total": 3}
  }
}`

func TestFetchTeamStatistics(t *testing.T) {
	t.Parallel()

	client, calls, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/teams/statistics", r.URL.Path)
		assert.Equal(t, "2023", r.URL.Query().Get("season"))
		assert.Equal(t, "42", r.URL.Query().Get("team"))
		assert.Equal(t, "39", r.URL.Query().Get("league"))
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		_, _ = w.Write([]byte(arsenalStatistics))
	}, resilience.BreakerConfig{})

	stats, err := client.FetchTeamStatistics(context.Background(), 42, "39", "2023")
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())

	require.Equal(t, "Arsenal", stats.TeamName)
	require.Equal(t, int64(42), stats.TeamID)
	require.Equal(t, "Premier League", stats.LeagueName)
	require.Equal(t, "England", stats.LeagueCountry)
	require.Equal(t, 2023, stats.Season)
	require.Equal(t, 38, stats.Fixtures.Played.Total)
	require.Equal(t, 28, stats.Fixtures.Wins.Total)
	require.Equal(t, 15, stats.Fixtures.Wins.Home)
	require.Equal(t, 5, stats.Fixtures.Draws.Total)
	require.Equal(t, 5, stats.Fixtures.Loses.Total)
	require.Equal(t, 91, stats.Goals.For.Total)
	require.Equal(t, 29, stats.Goals.Against.Total)
	require.Equal(t, "2.4", stats.Goals.AverageFor)
	require.Equal(t, "0.8", stats.Goals.AverageAgainst)
	require.Equal(t, 18, stats.CleanSheets.Total)
	require.Equal(t, 3, stats.FailedToScore.Total)
	require.Equal(t, 8, stats.BiggestStreaks.Wins)
	require.Equal(t, "WDWWL", stats.Form)
}

func TestFetchTeamStatistics_MissingSubFieldsDefault(t *testing.T) {
	t.Parallel()

	client, _, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"team":{"id":42,"name":"Arsenal"},"fixtures":{"played":{"total":"n/a"}}}}`))
	}, resilience.BreakerConfig{})

	stats, err := client.FetchTeamStatistics(context.Background(), 42, "39", "2023")
	require.NoError(t, err)
	require.Equal(t, "Arsenal", stats.TeamName)
	require.Empty(t, stats.LeagueName)
	require.Zero(t, stats.Fixtures.Played.Total)
	require.Zero(t, stats.Goals.For.Total)
	require.Empty(t, stats.Goals.AverageFor)
	require.Empty(t, stats.TeamLogo)
}

func TestFetchTeamStatistics_RequiresEnvelope(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `{"response":null}`, `{"response":[]}`} {
		body := body
		client, _, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}, resilience.BreakerConfig{})

		_, err := client.FetchTeamStatistics(context.Background(), 42, "39", "2023")
		require.ErrorIs(t, err, usecase.ErrMalformedResponse, "body %s", body)
	}
}

func TestFetchTeamStatistics_NonOKStatus(t *testing.T) {
	t.Parallel()

	client, _, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, resilience.BreakerConfig{})

	_, err := client.FetchTeamStatistics(context.Background(), 42, "39", "2023")
	var fetchErr *usecase.FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusTooManyRequests, fetchErr.StatusCode)
	require.Equal(t, "Too Many Requests", fetchErr.Reason)
}

func TestFetchTeamStatistics_ValidatesArguments(t *testing.T) {
	t.Parallel()

	client, calls, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, resilience.BreakerConfig{})

	_, err := client.FetchTeamStatistics(context.Background(), 0, "39", "2023")
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
	require.Zero(t, calls.Load())
}

func TestFlexInt(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		`12`:      12,
		`"7"`:     7,
		`" 3 "`:   3,
		`2.9`:     2,
		`null`:    0,
		`"abc"`:   0,
		`true`:    0,
		`{"a":1}`: 0,
	}
	for input, want := range cases {
		var v flexInt
		require.NoError(t, v.UnmarshalJSON([]byte(input)))
		require.Equal(t, want, int(v), "input %s", input)
	}
}
