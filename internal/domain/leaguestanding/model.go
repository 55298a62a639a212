package leaguestanding

// Row is one team's season record inside a league table.
type Row struct {
	Rank           int
	TeamID         int64
	TeamName       string
	TeamLogo       string
	Played         int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Table is a ranked standings table together with the league and season it was fetched for.
// The three fields are always replaced together.
type Table struct {
	LeagueID string
	Season   string
	Rows     []Row
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0 && t.LeagueID == ""
}
