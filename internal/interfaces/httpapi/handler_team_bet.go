package httpapi

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()
	r = r.WithContext(ctx)

	items, err := h.teamService.List(ctx)
	if err != nil {
		h.fail(w, r, "list teams failed", err)
		return
	}

	teams := make([]teamDTO, 0, len(items))
	for _, item := range items {
		teams = append(teams, teamToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, teamsDTO{Teams: teams})
}

func (h *Handler) ListBettors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListBettors")
	defer span.End()
	r = r.WithContext(ctx)

	ids, err := h.betService.ListBettorIDs(ctx)
	if err != nil {
		h.fail(w, r, "list bettors failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bettorsDTO{Bettors: ids})
}

func (h *Handler) ListBetStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListBetStatuses")
	defer span.End()
	r = r.WithContext(ctx)

	statuses, err := h.betService.ListStatuses(ctx)
	if err != nil {
		h.fail(w, r, "list bet statuses failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, betStatusesDTO{Statuses: statuses})
}

func (h *Handler) ListBetsByBettor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListBetsByBettor")
	defer span.End()
	r = r.WithContext(ctx)

	bettorID, err := pathInt64(r, "bettorID")
	if err != nil {
		h.fail(w, r, "invalid bettor id", err)
		return
	}
	params := betsParams{
		BettorID: bettorID,
		Status:   r.URL.Query().Get("status"),
	}
	if err := h.validateRequest(ctx, params); err != nil {
		h.fail(w, r, "invalid bets query", err, "bettor_id", bettorID)
		return
	}

	items, status, err := h.betService.ListByBettor(ctx, params.BettorID, params.Status)
	if err != nil {
		h.fail(w, r, "list bets failed", err, "bettor_id", params.BettorID, "status", params.Status)
		return
	}

	bets := make([]betDTO, 0, len(items))
	for _, item := range items {
		bets = append(bets, betToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, bettorBetsDTO{
		BettorID: params.BettorID,
		Status:   status,
		Bets:     bets,
	})
}
