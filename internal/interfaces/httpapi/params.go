package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/rdmgray/eplpal/internal/usecase"
)

type matchdayParams struct {
	Matchday int `validate:"gt=0"`
}

type matchParams struct {
	MatchID int64 `validate:"gt=0"`
}

type teamParams struct {
	TeamID int64 `validate:"gt=0"`
}

type betsParams struct {
	BettorID int64  `validate:"gt=0"`
	Status   string `validate:"omitempty,max=32"`
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return errors.Wrapf(usecase.ErrInvalidInput, "validation failed: %v", err)
	}
	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(usecase.ErrInvalidInput, "%s must be an integer, got %q", name, raw)
	}
	return value, nil
}
