package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rdmgray/eplpal/internal/infrastructure/namemap"
	"github.com/rdmgray/eplpal/internal/infrastructure/repository/memory"
	fixturemock "github.com/rdmgray/eplpal/internal/mocks/domain/fixture"
	"github.com/rdmgray/eplpal/internal/platform/fanout"
	"github.com/rdmgray/eplpal/internal/platform/logging"
	"github.com/rdmgray/eplpal/internal/usecase"
)

func newSeededHandler(t *testing.T) *Handler {
	t.Helper()

	seed := memory.DefaultSeed()
	fixtureRepo := memory.NewFixtureRepository(seed.Fixtures)
	teamRepo := memory.NewTeamRepository(seed.Teams)
	oddsRepo := memory.NewOddsRepository(seed.OddsMarkets, seed.OddsRows)
	betRepo := memory.NewBetRepository(seed.Bets)

	runner, err := fanout.NewRunner(4, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(runner.Release)

	logger := logging.NewNop()
	oddsSvc := usecase.NewOddsService(fixtureRepo, oddsRepo, namemap.Default(), runner, nil, logger)
	h := NewHandler(
		usecase.NewFixtureService(fixtureRepo, teamRepo, oddsSvc),
		oddsSvc,
		usecase.NewTeamService(teamRepo),
		usecase.NewBetService(betRepo, fixtureRepo, runner, nil, logger),
		logger,
	)
	h.now = func() time.Time { return time.Date(2025, 9, 13, 9, 0, 0, 0, time.UTC) }
	return h
}

func serve(t *testing.T, router http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec, decodeBody(t, rec)
}

func dataOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object, got %v", body)
	return data
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	for _, path := range []string{"/api/health", "/healthz"} {
		rec, body := serve(t, router, path)
		require.Equal(t, http.StatusOK, rec.Code, path)
		data := dataOf(t, body)
		assert.Equal(t, "OK", data["status"])
		assert.Equal(t, "2025-09-13T09:00:00Z", data["timestamp"])
	}
}

func TestRouter_ListMatchdays(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/matchdays")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{float64(4), float64(5), float64(6)}, dataOf(t, body)["matchdays"])
}

func TestRouter_FixturesByMatchdayAnnotatedAndOrdered(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/fixtures/matchday/5")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, body)
	assert.Equal(t, float64(5), data["matchday"])
	fixtures, ok := data["fixtures"].([]any)
	require.True(t, ok)
	require.Len(t, fixtures, 4)

	ids := make([]float64, 0, len(fixtures))
	for _, item := range fixtures {
		ids = append(ids, item.(map[string]any)["match_id"].(float64))
	}
	assert.Equal(t, []float64{101, 100, 103, 102}, ids)

	spurs := fixtures[0].(map[string]any)
	assert.Equal(t, "SCHEDULED", spurs["status"], "TIMED is shown as scheduled")
	assert.Equal(t, map[string]any{"home_win": 2.1, "draw": 3.6, "away_win": 3.3}, spurs["odds"])

	brentford := fixtures[2].(map[string]any)
	_, hasOdds := brentford["odds"]
	assert.False(t, hasOdds, "fixture without a market has no odds field")

	newcastle := fixtures[3].(map[string]any)
	assert.Equal(t, true, newcastle["kickoff_tbd"])
}

func TestRouter_GetFixtureWithPartialOdds(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/fixture/100")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, body)
	assert.Equal(t, "Liverpool FC", data["home_team"])
	assert.Equal(t, "15:00:00", data["time"])
	assert.Equal(t, false, data["kickoff_tbd"])
	assert.Nil(t, data["home_score"])
	assert.Equal(t, map[string]any{"home_win": 1.75, "draw": 3.4}, data["odds"])
}

func TestRouter_GetFixtureNotFound(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/fixture/999")
	require.Equal(t, http.StatusNotFound, rec.Code)
	errorObj, _ := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errorObj["status"])
}

func TestRouter_InvalidParameters(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	paths := []string{
		"/api/fixtures/matchday/abc",
		"/api/fixtures/matchday/0",
		"/api/fixture/-4",
		"/api/fixture/x/odds-history",
		"/api/fixtures/team/0",
		"/api/bets/seven",
		"/api/bets/7?status=" + strings.Repeat("S", 33),
	}
	for _, path := range paths {
		rec, body := serve(t, router, path)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		errorObj, _ := body["error"].(map[string]any)
		assert.Equal(t, "INVALID_ARGUMENT", errorObj["status"], path)
	}
}

func TestRouter_OddsHistory(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/fixture/100/odds-history")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, body)
	assert.Equal(t, float64(100), data["match_id"])
	assert.Equal(t, "Chelsea FC", data["away_team"])

	history, ok := data["history"].([]any)
	require.True(t, ok)
	require.Len(t, history, 2)

	first := history[0].(map[string]any)
	assert.Equal(t, "2025-09-12T10:00:00Z", first["timestamp"])
	firstOdds := first["odds"].(map[string]any)
	assert.Contains(t, firstOdds, "home_win")
	assert.Contains(t, firstOdds, "draw")
	assert.NotContains(t, firstOdds, "away_win")
	assert.Equal(t, 1.82, firstOdds["home_win"].(map[string]any)["lay_price"])

	second := history[1].(map[string]any)
	assert.Equal(t, "2025-09-12T10:30:00Z", second["timestamp"])
	secondOdds := second["odds"].(map[string]any)
	assert.Equal(t, 1.75, secondOdds["home_win"].(map[string]any)["back_price"])
	assert.NotContains(t, secondOdds, "draw")
}

func TestRouter_OddsHistoryUnknownFixture(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, _ := serve(t, router, "/api/fixture/999/odds-history")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_OddsHistoryWithoutMarketIsEmpty(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/fixture/103/odds-history")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, dataOf(t, body)["history"])
}

func TestRouter_FixturesByTeam(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/fixtures/team/64")
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, body)
	assert.Equal(t, float64(64), data["team_id"])
	assert.Len(t, data["fixtures"], 2)

	rec, _ = serve(t, router, "/api/fixtures/team/9999")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_ListTeamsSortedByName(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/teams")
	require.Equal(t, http.StatusOK, rec.Code)

	teams := dataOf(t, body)["teams"].([]any)
	require.Len(t, teams, 14)
	first := teams[0].(map[string]any)
	assert.Equal(t, "Arsenal FC", first["name"])
	assert.Equal(t, "ARS", first["tla"])
	assert.Equal(t, float64(1886), first["founded"])
	last := teams[len(teams)-1].(map[string]any)
	assert.Equal(t, "West Ham United FC", last["name"])
}

func TestRouter_BettorsAndStatuses(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/bettors")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{float64(7), float64(12)}, dataOf(t, body)["bettors"])

	rec, body = serve(t, router, "/api/bet-statuses")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"ALL", "PLACED", "SETTLED"}, dataOf(t, body)["statuses"])
}

func TestRouter_BetsJoinedWithFixtures(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/bets/7")
	require.Equal(t, http.StatusOK, rec.Code)

	data := dataOf(t, body)
	assert.Equal(t, float64(7), data["bettor_id"])
	assert.Equal(t, "ALL", data["status"])

	bets := data["bets"].([]any)
	require.Len(t, bets, 3)
	ids := make([]float64, 0, len(bets))
	for _, item := range bets {
		ids = append(ids, item.(map[string]any)["id"].(float64))
	}
	assert.Equal(t, []float64{3, 2, 1}, ids)

	dangling := bets[0].(map[string]any)
	assert.Contains(t, dangling, "match")
	assert.Nil(t, dangling["match"], "bet on an unknown fixture keeps a null match")
	assert.Equal(t, "LAY", dangling["back_or_lay"])
	assert.Equal(t, 2.5, dangling["bet_amount"])

	spurs := bets[1].(map[string]any)["match"].(map[string]any)
	assert.Equal(t, float64(101), spurs["match_id"])
	assert.Equal(t, "SCHEDULED", spurs["status"])
	assert.Equal(t, "Tottenham Hotspur FC", spurs["home_team"])
}

func TestRouter_BetsStatusFilter(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/bets/7?status=SETTLED")
	require.Equal(t, http.StatusOK, rec.Code)
	data := dataOf(t, body)
	assert.Equal(t, float64(7), data["bettor_id"])
	assert.Equal(t, "SETTLED", data["status"])
	assert.Equal(t, []any{}, data["bets"])

	rec, body = serve(t, router, "/api/bets/12?status=SETTLED")
	require.Equal(t, http.StatusOK, rec.Code)
	bets := dataOf(t, body)["bets"].([]any)
	require.Len(t, bets, 2)
	winner := bets[1].(map[string]any)
	assert.Equal(t, float64(4), winner["id"])
	assert.Equal(t, true, winner["bet_won"])
	assert.Equal(t, "WINNER", winner["runner_outcome"])
	assert.Equal(t, float64(28), winner["returned_amount"])

	rec, body = serve(t, router, "/api/bets/12?status=all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataOf(t, body)["bets"], 3)
}

func TestRouter_BetsUnknownBettor(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	rec, _ := serve(t, router, "/api/bets/99")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_StoreFailureIsGeneric500(t *testing.T) {
	fixtureRepo := fixturemock.NewRepository(t)
	fixtureRepo.On("ListMatchdays", mock.Anything).Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	seed := memory.DefaultSeed()
	teamRepo := memory.NewTeamRepository(seed.Teams)
	h := NewHandler(usecase.NewFixtureService(fixtureRepo, teamRepo, nil), nil, usecase.NewTeamService(teamRepo), nil, logging.NewNop())
	router := NewRouter(h, logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/matchdays")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
	errorObj, _ := body["error"].(map[string]any)
	assert.Equal(t, internalErrorMsg, errorObj["message"])
}

func TestRouter_RecoversPanics(t *testing.T) {
	router := NewRouter(NewHandler(nil, nil, nil, nil, logging.NewNop()), logging.NewNop(), RouterOptions{})

	rec, body := serve(t, router, "/api/teams")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, body, "error")
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-fixed-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-fixed-1", rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Len(t, rec.Header().Get(requestIDHeader), 36, "generated ids are uuids")
}

func TestRouter_OptionalRoutes(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})

	plain := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{})
	rec := httptest.NewRecorder()
	plain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	full := NewRouter(newSeededHandler(t), logging.NewNop(), RouterOptions{
		SwaggerEnabled: true,
		MetricsHandler: metrics,
	})
	rec = httptest.NewRecorder()
	full.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics\n", rec.Body.String())

	rec = httptest.NewRecorder()
	full.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/bets/{bettorID}")
}
