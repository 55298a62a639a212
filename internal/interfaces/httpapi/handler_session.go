package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/soccer-tracker/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	entries := h.tracker.Catalog().List()
	items := make([]leagueDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leagueToDTO(entry))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSession")
	defer span.End()

	session, err := h.sessions.Create(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "create session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sessionToDTO(session))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	session, ok := sessionOrError(ctx, w)
	if !ok {
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
}

// DeleteSession ends a session. A fetch still running for it finishes but is never shown.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteSession")
	defer span.End()

	session, ok := sessionOrError(ctx, w)
	if !ok {
		return
	}
	if !h.sessions.Delete(ctx, session.ID()) {
		writeError(ctx, w, fmt.Errorf("%w: session=%s", usecase.ErrNotFound, session.ID()))
		return
	}
	h.logger.DebugContext(ctx, "session deleted", "session_id", session.ID())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SelectLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectLeague")
	defer span.End()

	session, ok := sessionOrError(ctx, w)
	if !ok {
		return
	}

	var req selectLeagueRequest
	if err := h.decodeJSON(w, r.WithContext(ctx), &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if _, err := h.tracker.SelectLeague(session, req.Name); err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session))
}

func (h *Handler) LoadStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LoadStandings")
	defer span.End()

	session, ok := sessionOrError(ctx, w)
	if !ok {
		return
	}

	var req loadStandingsRequest
	if err := h.decodeJSON(w, r.WithContext(ctx), &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.tracker.LoadStandings(ctx, session, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "load standings failed", "session_id", session.ID(), "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(h.tracker.Catalog(), table))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	session, ok := sessionOrError(ctx, w)
	if !ok {
		return
	}

	table := session.Standings()
	if table.Empty() {
		writeSuccess(ctx, w, http.StatusOK, standingsDTO{Rows: []standingRowDTO{}})
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(h.tracker.Catalog(), table))
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	session, ok := sessionOrError(ctx, w)
	if !ok {
		return
	}

	name := r.URL.Query().Get("name")
	stats, err := h.tracker.TeamStatistics(ctx, session, name)
	if err != nil {
		h.logger.WarnContext(ctx, "team statistics failed", "session_id", session.ID(), "team", name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, teamStatisticsToDTO(stats))
}

func (h *Handler) GetLeadersOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeadersOverview")
	defer span.End()

	query := r.URL.Query()
	top, err := parseOptionalInt(query.Get("top"), "top", 1, 20)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.tracker.LeadersOverview(ctx, query.Get("season"), top, h.overviewWorkers)
	if err != nil {
		h.logger.WarnContext(ctx, "leaders overview failed", "season", query.Get("season"), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := overviewDTO{
		Season:  overview.Season,
		Leagues: make([]overviewLeagueDTO, 0, len(overview.Leagues)),
	}
	for _, item := range overview.Leagues {
		dto := overviewLeagueDTO{
			League:     leagueToDTO(item.League),
			Leaders:    rowsToDTO(item.Leaders),
			DurationMs: item.DurationMs,
		}
		if item.Err != nil {
			mapped := mapError(ctx, item.Err)
			dto.Error = &overviewErrorDTO{
				Code:    mapped.HTTPStatus,
				Status:  mapped.Status,
				Message: item.Err.Error(),
			}
		}
		out.Leagues = append(out.Leagues, dto)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
