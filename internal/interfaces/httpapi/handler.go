package httpapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rdmgray/eplpal/internal/platform/logging"
	"github.com/rdmgray/eplpal/internal/usecase"
)

type Handler struct {
	fixtureService *usecase.FixtureService
	oddsService    *usecase.OddsService
	teamService    *usecase.TeamService
	betService     *usecase.BetService
	logger         *logging.Logger
	validator      *validator.Validate
	now            func() time.Time
}

func NewHandler(
	fixtureService *usecase.FixtureService,
	oddsService *usecase.OddsService,
	teamService *usecase.TeamService,
	betService *usecase.BetService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		fixtureService: fixtureService,
		oddsService:    oddsService,
		teamService:    teamService,
		betService:     betService,
		logger:         logger,
		validator:      validator.New(validator.WithRequiredStructEnabled()),
		now:            time.Now,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:    "OK",
		Timestamp: formatTimestamp(h.now()),
	})
}

// fail logs a request failure and writes the mapped error response.
// Failures that clients cannot see are logged at error level.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error, args ...any) {
	ctx := r.Context()
	args = append(args, "error", err)
	if mapError(ctx, err).Public {
		h.logger.WarnContext(ctx, msg, args...)
	} else {
		h.logger.ErrorContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
