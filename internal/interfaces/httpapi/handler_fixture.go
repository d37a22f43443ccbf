package httpapi

import (
	"net/http"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
)

func (h *Handler) ListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatchdays")
	defer span.End()
	r = r.WithContext(ctx)

	matchdays, err := h.fixtureService.ListMatchdays(ctx)
	if err != nil {
		h.fail(w, r, "list matchdays failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchdaysDTO{Matchdays: matchdays})
}

func (h *Handler) ListFixturesByMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListFixturesByMatchday")
	defer span.End()
	r = r.WithContext(ctx)

	matchday, err := pathInt64(r, "matchday")
	if err != nil {
		h.fail(w, r, "invalid matchday", err)
		return
	}
	params := matchdayParams{Matchday: int(matchday)}
	if err := h.validateRequest(ctx, params); err != nil {
		h.fail(w, r, "invalid matchday", err, "matchday", matchday)
		return
	}

	items, err := h.fixtureService.ListByMatchday(ctx, params.Matchday)
	if err != nil {
		h.fail(w, r, "list fixtures by matchday failed", err, "matchday", params.Matchday)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchdayFixturesDTO{
		Matchday: params.Matchday,
		Fixtures: annotatedFixturesToDTO(items),
	})
}

func (h *Handler) GetFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetFixture")
	defer span.End()
	r = r.WithContext(ctx)

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		h.fail(w, r, "invalid match id", err)
		return
	}
	if err := h.validateRequest(ctx, matchParams{MatchID: matchID}); err != nil {
		h.fail(w, r, "invalid match id", err, "match_id", matchID)
		return
	}

	item, err := h.fixtureService.GetByID(ctx, matchID)
	if err != nil {
		h.fail(w, r, "get fixture failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item.Fixture, item.Odds))
}

func (h *Handler) ListFixturesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListFixturesByTeam")
	defer span.End()
	r = r.WithContext(ctx)

	teamID, err := pathInt64(r, "teamID")
	if err != nil {
		h.fail(w, r, "invalid team id", err)
		return
	}
	if err := h.validateRequest(ctx, teamParams{TeamID: teamID}); err != nil {
		h.fail(w, r, "invalid team id", err, "team_id", teamID)
		return
	}

	items, err := h.fixtureService.ListByTeam(ctx, teamID)
	if err != nil {
		h.fail(w, r, "list fixtures by team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamFixturesDTO{
		TeamID:   teamID,
		Fixtures: fixturesToDTO(items),
	})
}

func (h *Handler) GetOddsHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetOddsHistory")
	defer span.End()
	r = r.WithContext(ctx)

	matchID, err := pathInt64(r, "matchID")
	if err != nil {
		h.fail(w, r, "invalid match id", err)
		return
	}
	if err := h.validateRequest(ctx, matchParams{MatchID: matchID}); err != nil {
		h.fail(w, r, "invalid match id", err, "match_id", matchID)
		return
	}

	history, err := h.oddsService.History(ctx, matchID)
	if err != nil {
		h.fail(w, r, "get odds history failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyToDTO(history))
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item, nil))
	}
	return out
}
