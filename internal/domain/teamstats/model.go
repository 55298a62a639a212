package teamstats

// Statistics is a team's season summary for one league. Every field is optional upstream;
// absent values stay at their zero value.
type Statistics struct {
	TeamID   int64
	TeamName string
	TeamLogo string

	LeagueID      int64
	LeagueName    string
	LeagueCountry string
	LeagueLogo    string
	Season        int

	Form string

	Fixtures Fixtures
	Goals    Goals

	CleanSheets    Split
	FailedToScore  Split
	BiggestStreaks Streaks
}

// Split is a home/away/total breakdown.
type Split struct {
	Home  int
	Away  int
	Total int
}

type Fixtures struct {
	Played Split
	Wins   Split
	Draws  Split
	Loses  Split
}

type Goals struct {
	For            Split
	Against        Split
	AverageFor     string
	AverageAgainst string
}

type Streaks struct {
	Wins  int
	Draws int
	Loses int
}

// WinRate is wins over played as a percentage, zero when nothing was played.
func (s Statistics) WinRate() float64 {
	if s.Fixtures.Played.Total <= 0 {
		return 0
	}
	return float64(s.Fixtures.Wins.Total) * 100 / float64(s.Fixtures.Played.Total)
}

func (s Statistics) GoalDifference() int {
	return s.Goals.For.Total - s.Goals.Against.Total
}
