package leaguestanding

import (
	"sort"
	"strings"
)

// Rank orders rows by points, highest first, keeping provider order between equal points,
// and numbers them from 1. The input slice is left untouched.
func Rank(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// FindTeamID resolves a team by display name, ignoring case and surrounding whitespace.
// Only exact matches count.
func FindTeamID(name string, rows []Row) (int64, bool) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return 0, false
	}
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.TeamName), needle) {
			return row.TeamID, true
		}
	}
	return 0, false
}
