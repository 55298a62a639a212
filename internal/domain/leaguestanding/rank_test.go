package leaguestanding

import (
	"math/rand"
	"testing"
)

func TestRank_SortsByPointsAndKeepsTieOrder(t *testing.T) {
	t.Parallel()

	input := []Row{
		{TeamID: 1, TeamName: "Everton", Points: 40},
		{TeamID: 2, TeamName: "Arsenal", Points: 89},
		{TeamID: 3, TeamName: "Brentford", Points: 40},
		{TeamID: 4, TeamName: "Man City", Points: 91},
		{TeamID: 5, TeamName: "Fulham", Points: 0},
		{TeamID: 6, TeamName: "Burnley", Points: 40},
	}

	got := Rank(input)
	wantIDs := []int64{4, 2, 1, 3, 6, 5}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d rows, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].TeamID != id {
			t.Fatalf("position %d: got team %d, want %d", i+1, got[i].TeamID, id)
		}
		if got[i].Rank != i+1 {
			t.Fatalf("position %d: rank=%d", i+1, got[i].Rank)
		}
	}
	if input[0].TeamID != 1 || input[0].Rank != 0 {
		t.Fatalf("input must not be modified: %+v", input[0])
	}
}

func TestRank_IsStablePermutation(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := rng.Intn(25)
		input := make([]Row, n)
		for i := range input {
			input[i] = Row{TeamID: int64(i + 1), Points: rng.Intn(6)}
		}

		got := Rank(input)
		if len(got) != n {
			t.Fatalf("round %d: size changed %d -> %d", round, n, len(got))
		}

		seen := make(map[int64]bool, n)
		for i, row := range got {
			if seen[row.TeamID] {
				t.Fatalf("round %d: duplicate team %d", round, row.TeamID)
			}
			seen[row.TeamID] = true
			if i == 0 {
				continue
			}
			prev := got[i-1]
			if prev.Points < row.Points {
				t.Fatalf("round %d: not sorted at %d", round, i)
			}
			if prev.Points == row.Points && prev.TeamID > row.TeamID {
				t.Fatalf("round %d: tie order not preserved at %d", round, i)
			}
		}
	}
}

func TestFindTeamID(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{TeamID: 42, TeamName: "Arsenal"},
		{TeamID: 49, TeamName: "Chelsea"},
		{TeamID: 47, TeamName: "Tottenham"},
	}

	cases := []struct {
		name   string
		input  string
		wantID int64
		wantOK bool
	}{
		{name: "exact", input: "Arsenal", wantID: 42, wantOK: true},
		{name: "lower case", input: "arsenal", wantID: 42, wantOK: true},
		{name: "upper case with spaces", input: "  CHELSEA ", wantID: 49, wantOK: true},
		{name: "partial is not a match", input: "Totten", wantOK: false},
		{name: "absent", input: "Real Madrid", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			id, ok := FindTeamID(tc.input, rows)
			if ok != tc.wantOK || id != tc.wantID {
				t.Fatalf("FindTeamID(%q)=(%d,%v), want (%d,%v)", tc.input, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}
