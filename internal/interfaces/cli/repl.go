// Package cli is the line-oriented terminal front end. It drives a single session through
// the same tracker service the HTTP API uses.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riskibarqy/soccer-tracker/internal/platform/logging"
	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

const prompt = "tracker> "

const helpText = `Commands:
  leagues            list the available leagues
  select <league>    choose the league to load (exact display name)
  season <year>      fetch and show the selected league's standings for a season
  standings          show the current standings again
  team <name>        show season statistics for a team in the current standings
  overview <year>    show the leaders of every league for a season
  help               show this help
  quit               leave`

type Options struct {
	In              io.Reader
	Out             io.Writer
	Logger          *logging.Logger
	OverviewWorkers int
	OverviewTop     int
}

type REPL struct {
	tracker         *usecase.TrackerService
	session         *usecase.Session
	in              io.Reader
	out             io.Writer
	renderer        *lipgloss.Renderer
	logger          *logging.Logger
	overviewWorkers int
	overviewTop     int
}

func NewREPL(tracker *usecase.TrackerService, session *usecase.Session, opts Options) *REPL {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &REPL{
		tracker:         tracker,
		session:         session,
		in:              opts.In,
		out:             opts.Out,
		renderer:        lipgloss.NewRenderer(opts.Out),
		logger:          logger,
		overviewWorkers: opts.OverviewWorkers,
		overviewTop:     opts.OverviewTop,
	}
}

// Run reads commands until quit, end of input, or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(r.in)
	r.println(r.intro())

	for {
		r.print(prompt)
		if !scanner.Scan() {
			r.println("")
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		if quit := r.Execute(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the loop should stop. Errors are shown
// to the user and leave the session as it was.
func (r *REPL) Execute(ctx context.Context, line string) bool {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	th := newTheme(r.renderer, r.selectedID())

	switch strings.ToLower(command) {
	case "":
	case "quit", "exit":
		return true
	case "help":
		r.println(helpText)
	case "leagues":
		r.println(r.renderLeagues(r.tracker.Catalog().List(), r.selectedID()))
	case "select":
		entry, err := r.tracker.SelectLeague(r.session, arg)
		if err != nil {
			r.fail(ctx, command, err)
			return false
		}
		r.println(newTheme(r.renderer, entry.ExternalID).okMsg.Render("Selected " + entry.Name))
	case "season":
		r.println(th.muted.Render("Fetching standings..."))
		current, err := r.tracker.LoadStandings(ctx, r.session, arg)
		if err != nil {
			r.fail(ctx, command, err)
			return false
		}
		r.println(r.renderStandings(r.tracker.Catalog(), current))
	case "standings":
		current := r.session.Standings()
		if current.Empty() {
			r.println(th.warnMsg.Render("No standings loaded yet. Use: season <year>"))
			return false
		}
		r.println(r.renderStandings(r.tracker.Catalog(), current))
	case "team":
		stats, err := r.tracker.TeamStatistics(ctx, r.session, arg)
		if err != nil {
			r.fail(ctx, command, err)
			return false
		}
		r.println(r.renderTeamStatistics(r.session.Standings().LeagueID, stats))
	case "overview":
		r.println(th.muted.Render("Fetching every league..."))
		overview, err := r.tracker.LeadersOverview(ctx, arg, r.overviewTop, r.overviewWorkers)
		if len(overview.Leagues) > 0 {
			r.println(r.renderOverview(overview))
		}
		if err != nil {
			r.fail(ctx, command, err)
		}
	default:
		r.println(th.warnMsg.Render(fmt.Sprintf("Unknown command %q. Type help for the list.", command)))
	}
	return false
}

func (r *REPL) intro() string {
	th := newTheme(r.renderer, "")
	return lipgloss.JoinVertical(lipgloss.Left,
		th.banner(r.renderer, "Soccer Tracker"),
		th.muted.Render("Type help for commands."),
	)
}

func (r *REPL) selectedID() string {
	if entry, ok := r.session.SelectedLeague(); ok {
		return entry.ExternalID
	}
	return ""
}

func (r *REPL) fail(ctx context.Context, command string, err error) {
	r.logger.DebugContext(ctx, "command failed", "command", command, "error", err)
	th := newTheme(r.renderer, r.selectedID())
	r.println(th.errorMsg.Render(describeError(err)))
}

// describeError turns usecase errors into the line shown to the user.
func describeError(err error) string {
	var fetchErr *usecase.FetchError
	switch {
	case errors.As(err, &fetchErr):
		return "Error: " + fetchErr.Error()
	case errors.Is(err, usecase.ErrFetchInProgress):
		return "Please wait: standings are still loading."
	case errors.Is(err, usecase.ErrInvalidInput):
		return "Invalid input: " + err.Error()
	case errors.Is(err, usecase.ErrNotFound):
		return "Not found: " + err.Error()
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return "The football data service is unavailable, try again shortly."
	default:
		return "Error: " + err.Error()
	}
}

func (r *REPL) print(s string) {
	_, _ = io.WriteString(r.out, s)
}

func (r *REPL) println(s string) {
	_, _ = io.WriteString(r.out, s+"\n")
}
