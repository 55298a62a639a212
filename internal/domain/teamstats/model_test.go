package teamstats

import "testing"

func TestStatistics_Derived(t *testing.T) {
	t.Parallel()

	stats := Statistics{
		Fixtures: Fixtures{Played: Split{Total: 38}, Wins: Split{Total: 19}},
		Goals:    Goals{For: Split{Total: 70}, Against: Split{Total: 45}},
	}
	if got := stats.WinRate(); got != 50 {
		t.Fatalf("expected 50%% win rate, got %v", got)
	}
	if got := stats.GoalDifference(); got != 25 {
		t.Fatalf("expected goal difference 25, got %d", got)
	}
	if got := (Statistics{}).WinRate(); got != 0 {
		t.Fatalf("expected zero win rate without fixtures, got %v", got)
	}
}
