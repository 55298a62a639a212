package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
	"github.com/riskibarqy/soccer-tracker/internal/domain/teamstats"
	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// StandingsProvider is the football data source. Rows come back in provider order.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, leagueID, season string) ([]leaguestanding.Row, error)
	FetchTeamStatistics(ctx context.Context, teamID int64, leagueID, season string) (teamstats.Statistics, error)
}

type seasonInput struct {
	Season string `validate:"required,number"`
}

type teamInput struct {
	Name string `validate:"required"`
}

type TrackerService struct {
	catalog  *league.Catalog
	provider StandingsProvider
	validate *validator.Validate
	logger   *logging.Logger
}

func NewTrackerService(catalog *league.Catalog, provider StandingsProvider, logger *logging.Logger) *TrackerService {
	if catalog == nil {
		catalog = league.DefaultCatalog()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TrackerService{
		catalog:  catalog,
		provider: provider,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *TrackerService) Catalog() *league.Catalog {
	return s.catalog
}

// SelectLeague changes the league the next standings fetch targets. The displayed table
// is left as it is until that fetch succeeds.
func (s *TrackerService) SelectLeague(session *Session, name string) (league.Entry, error) {
	if session == nil {
		return league.Entry{}, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	entry, ok := s.catalog.ByName(name)
	if !ok {
		return league.Entry{}, fmt.Errorf("%w: unknown league %q", ErrInvalidInput, strings.TrimSpace(name))
	}
	session.selectLeague(entry)
	return entry, nil
}

// LoadStandings fetches and ranks the selected league's table for season and makes it the
// session's current table. On any error the previous table stays in place.
func (s *TrackerService) LoadStandings(ctx context.Context, session *Session, season string) (leaguestanding.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrackerService.LoadStandings")
	defer span.End()

	if session == nil {
		return leaguestanding.Table{}, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}
	entry, ok := session.SelectedLeague()
	if !ok {
		return leaguestanding.Table{}, fmt.Errorf("%w: no league selected", ErrInvalidInput)
	}

	season, err := s.validateSeason(ctx, season)
	if err != nil {
		return leaguestanding.Table{}, err
	}

	if err := session.beginFetch(); err != nil {
		return leaguestanding.Table{}, err
	}
	defer session.endFetch()

	span.SetAttributes(
		attribute.String("league.id", entry.ExternalID),
		attribute.String("league.season", season),
	)

	rows, err := s.provider.FetchStandings(ctx, entry.ExternalID, season)
	if err != nil {
		return leaguestanding.Table{}, failSpan(span, fmt.Errorf("load standings for %s %s: %w", entry.Name, season, err))
	}

	table := leaguestanding.Table{
		LeagueID: entry.ExternalID,
		Season:   season,
		Rows:     leaguestanding.Rank(rows),
	}
	session.replaceStandings(table)

	s.logger.DebugContext(ctx, "standings loaded",
		"session_id", session.ID(),
		"league_id", entry.ExternalID,
		"season", season,
		"rows", len(table.Rows),
	)
	return session.Standings(), nil
}

// TeamStatistics resolves name against the session's current table only and fetches the
// team's statistics for that table's league and season.
func (s *TrackerService) TeamStatistics(ctx context.Context, session *Session, name string) (teamstats.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrackerService.TeamStatistics")
	defer span.End()

	if session == nil {
		return teamstats.Statistics{}, fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	input := teamInput{Name: strings.TrimSpace(name)}
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return teamstats.Statistics{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	current := session.Standings()
	if current.Empty() {
		return teamstats.Statistics{}, fmt.Errorf("%w: no standings loaded", ErrNotFound)
	}

	teamID, ok := leaguestanding.FindTeamID(input.Name, current.Rows)
	if !ok {
		return teamstats.Statistics{}, fmt.Errorf("%w: team %q is not in the %s %s standings",
			ErrNotFound, input.Name, s.catalog.NameFor(current.LeagueID), current.Season)
	}

	span.SetAttributes(attribute.Int64("team.id", teamID))

	stats, err := s.provider.FetchTeamStatistics(ctx, teamID, current.LeagueID, current.Season)
	if err != nil {
		return teamstats.Statistics{}, failSpan(span, fmt.Errorf("load statistics for %s: %w", input.Name, err))
	}
	return stats, nil
}

func (s *TrackerService) validateSeason(ctx context.Context, season string) (string, error) {
	input := seasonInput{Season: strings.TrimSpace(season)}
	if err := s.validate.StructCtx(ctx, input); err != nil {
		return "", fmt.Errorf("%w: season must be a year made of digits, got %q", ErrInvalidInput, input.Season)
	}
	return input.Season, nil
}
