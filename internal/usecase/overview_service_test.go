package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTrackerService_LeadersOverview(t *testing.T) {
	t.Parallel()

	service, provider := newTestTracker(t)

	provider.On("FetchStandings", mock.Anything, league.PremierLeagueID, "2023").Return(premierLeagueRows(), nil).Once()
	provider.On("FetchStandings", mock.Anything, league.LaLigaID, "2023").Return(laLigaRows(), nil).Once()
	provider.On("FetchStandings", mock.Anything, league.Ligue1ID, "2023").
		Return(nil, &FetchError{StatusCode: http.StatusTooManyRequests, Reason: "Too Many Requests"}).Once()
	provider.On("FetchStandings", mock.Anything, league.SerieAID, "2023").Return([]leaguestanding.Row{}, nil).Once()
	provider.On("FetchStandings", mock.Anything, league.BundesligaID, "2023").Return([]leaguestanding.Row{
		{TeamID: 168, TeamName: "Bayer Leverkusen", Points: 90},
	}, nil).Once()

	overview, err := service.LeadersOverview(context.Background(), "2023", 2, 3)
	require.NoError(t, err)
	require.Equal(t, "2023", overview.Season)
	require.Len(t, overview.Leagues, 5)

	names := make([]string, 0, len(overview.Leagues))
	for _, item := range overview.Leagues {
		names = append(names, item.League.Name)
	}
	require.Equal(t, []string{"Premier League", "La Liga", "Ligue 1", "Serie A", "Bundesliga"}, names)

	premier := overview.Leagues[0]
	require.NoError(t, premier.Err)
	require.Len(t, premier.Leaders, 2)
	require.Equal(t, "Manchester City", premier.Leaders[0].TeamName)
	require.Equal(t, 1, premier.Leaders[0].Rank)
	require.Equal(t, "Arsenal", premier.Leaders[1].TeamName)

	require.Equal(t, "Real Madrid", overview.Leagues[1].Leaders[0].TeamName)

	var fetchErr *FetchError
	require.True(t, errors.As(overview.Leagues[2].Err, &fetchErr))
	require.Equal(t, http.StatusTooManyRequests, fetchErr.StatusCode)
	require.Empty(t, overview.Leagues[2].Leaders)

	require.NoError(t, overview.Leagues[3].Err)
	require.Empty(t, overview.Leagues[3].Leaders)
	require.Len(t, overview.Leagues[4].Leaders, 1)
}

func TestTrackerService_LeadersOverview_AllFailed(t *testing.T) {
	t.Parallel()

	service, provider := newTestTracker(t)
	provider.On("FetchStandings", mock.Anything, mock.Anything, "2023").
		Return(nil, &FetchError{StatusCode: http.StatusUnauthorized, Reason: "Unauthorized"}).
		Times(5)

	_, err := service.LeadersOverview(context.Background(), "2023", 0, 0)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, http.StatusUnauthorized, fetchErr.StatusCode)
}

func TestTrackerService_LeadersOverview_ValidatesSeason(t *testing.T) {
	t.Parallel()

	service, provider := newTestTracker(t)
	_, err := service.LeadersOverview(context.Background(), "abc", 3, 5)
	require.ErrorIs(t, err, ErrInvalidInput)
	provider.AssertNotCalled(t, "FetchStandings", mock.Anything, mock.Anything, mock.Anything)
}

func TestNormalizeOverviewWorkers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		requested, tasks, want int
	}{
		{0, 5, 5},
		{-1, 2, 2},
		{10, 5, 5},
		{2, 5, 2},
		{3, 0, 3},
	}
	for _, tc := range cases {
		if got := normalizeOverviewWorkers(tc.requested, tc.tasks); got != tc.want {
			t.Fatalf("normalizeOverviewWorkers(%d, %d) = %d, want %d", tc.requested, tc.tasks, got, tc.want)
		}
	}
}
