package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, opts RouterOptions) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/health", handler.Healthz)
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}
	if !opts.SwaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerFixtureRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/matchdays", handler.ListMatchdays)
	mux.HandleFunc("GET /api/fixtures/matchday/{matchday}", handler.ListFixturesByMatchday)
	mux.HandleFunc("GET /api/fixtures/team/{teamID}", handler.ListFixturesByTeam)
	mux.HandleFunc("GET /api/fixture/{matchID}", handler.GetFixture)
	mux.HandleFunc("GET /api/fixture/{matchID}/odds-history", handler.GetOddsHistory)
	mux.HandleFunc("GET /api/teams", handler.ListTeams)
}

func registerBetRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/bettors", handler.ListBettors)
	mux.HandleFunc("GET /api/bet-statuses", handler.ListBetStatuses)
	mux.HandleFunc("GET /api/bets/{bettorID}", handler.ListBetsByBettor)
}
