package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/soccer-tracker/internal/domain/league"
	"github.com/riskibarqy/soccer-tracker/internal/domain/leaguestanding"
)

const (
	defaultOverviewWorkers = 5
	defaultOverviewTop     = 3
)

// LeagueLeaders is one league's slice of the overview. Err is set instead of Leaders when the
// league could not be fetched; the other leagues are unaffected.
type LeagueLeaders struct {
	League     league.Entry
	Season     string
	Leaders    []leaguestanding.Row
	DurationMs int64
	Err        error
}

type LeadersOverview struct {
	Season  string
	Leagues []LeagueLeaders
}

func normalizeOverviewWorkers(requested, tasks int) int {
	if requested <= 0 {
		requested = defaultOverviewWorkers
	}
	if tasks > 0 && requested > tasks {
		return tasks
	}
	return requested
}

// LeadersOverview fetches every catalog league for season concurrently and keeps the top
// rows of each ranked table. Results follow catalog order. It does not touch any session.
func (s *TrackerService) LeadersOverview(ctx context.Context, season string, top, workers int) (LeadersOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TrackerService.LeadersOverview")
	defer span.End()

	season, err := s.validateSeason(ctx, season)
	if err != nil {
		return LeadersOverview{}, err
	}
	if top <= 0 {
		top = defaultOverviewTop
	}

	entries := s.catalog.List()
	result := LeadersOverview{
		Season:  season,
		Leagues: make([]LeagueLeaders, len(entries)),
	}
	if len(entries) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(normalizeOverviewWorkers(workers, len(entries)))
	if err != nil {
		return LeadersOverview{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, entry := range entries {
		i, entry := i, entry
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			start := time.Now()
			item := LeagueLeaders{League: entry, Season: season}
			rows, err := s.provider.FetchStandings(ctx, entry.ExternalID, season)
			if err != nil {
				item.Err = err
			} else {
				ranked := leaguestanding.Rank(rows)
				if len(ranked) > top {
					ranked = ranked[:top]
				}
				item.Leaders = ranked
			}
			item.DurationMs = time.Since(start).Milliseconds()
			result.Leagues[i] = item
		}); err != nil {
			wg.Done()
			wg.Wait()
			return LeadersOverview{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	wg.Wait()

	failed := 0
	for _, item := range result.Leagues {
		if item.Err != nil {
			failed++
			s.logger.WarnContext(ctx, "overview league fetch failed",
				"league_id", item.League.ExternalID,
				"season", season,
				"error", item.Err,
			)
		}
	}
	if failed == len(result.Leagues) {
		return result, fmt.Errorf("all %d leagues failed: %w", failed, result.Leagues[0].Err)
	}
	return result, nil
}
