package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/overview", handler.GetLeadersOverview)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	sessions := handler.sessions
	mux.HandleFunc("POST /v1/sessions", handler.CreateSession)
	mux.Handle("GET /v1/sessions/{sessionID}", RequireSession(sessions, http.HandlerFunc(handler.GetSession)))
	mux.Handle("DELETE /v1/sessions/{sessionID}", RequireSession(sessions, http.HandlerFunc(handler.DeleteSession)))
	mux.Handle("PUT /v1/sessions/{sessionID}/league", RequireSession(sessions, http.HandlerFunc(handler.SelectLeague)))
	mux.Handle("POST /v1/sessions/{sessionID}/standings", RequireSession(sessions, http.HandlerFunc(handler.LoadStandings)))
	mux.Handle("GET /v1/sessions/{sessionID}/standings", RequireSession(sessions, http.HandlerFunc(handler.GetStandings)))
	mux.Handle("GET /v1/sessions/{sessionID}/teams/statistics", RequireSession(sessions, http.HandlerFunc(handler.GetTeamStatistics)))
}
