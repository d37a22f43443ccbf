package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/domain/odds"
	"github.com/rdmgray/eplpal/internal/domain/teamname"
	"github.com/rdmgray/eplpal/internal/platform/fanout"
	"github.com/rdmgray/eplpal/internal/platform/logging"
)

// AnnotatedFixture is a fixture with its current odds, when any are quoted.
type AnnotatedFixture struct {
	fixture.Fixture
	Odds *odds.Triple
}

type OddsHistory struct {
	Fixture fixture.Fixture
	Points  []odds.Point
}

type OddsService struct {
	fixtureRepo fixture.Repository
	oddsRepo    odds.Repository
	names       teamname.Table
	runner      *fanout.Runner
	metrics     JoinMetrics
	logger      *logging.Logger
}

func NewOddsService(
	fixtureRepo fixture.Repository,
	oddsRepo odds.Repository,
	names teamname.Table,
	runner *fanout.Runner,
	metrics JoinMetrics,
	logger *logging.Logger,
) *OddsService {
	if metrics == nil {
		metrics = NewNopJoinMetrics()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OddsService{
		fixtureRepo: fixtureRepo,
		oddsRepo:    oddsRepo,
		names:       names,
		runner:      runner,
		metrics:     metrics,
		logger:      logger,
	}
}

// Latest resolves the current back price of each runner for a fixture. A
// failed or empty odds lookup is reported as no odds, never as an error.
func (s *OddsService) Latest(ctx context.Context, item fixture.Fixture) (odds.Triple, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.Latest")
	defer span.End()

	home := s.names.ResolveOddsName(item.HomeTeam)
	away := s.names.ResolveOddsName(item.AwayTeam)

	rows, err := s.oddsRepo.FindLatest(ctx, home, away)
	if err != nil {
		s.metrics.JoinMiss(JoinKindOdds)
		s.logger.WarnContext(ctx, "odds lookup failed",
			"match_id", item.MatchID,
			"home_team", home,
			"away_team", away,
			"error", err,
		)
		return odds.Triple{}, false
	}

	triple := odds.LatestTriple(rows)
	if triple.IsEmpty() {
		s.metrics.JoinMiss(JoinKindOdds)
		s.logger.DebugContext(ctx, "no odds quoted for fixture",
			"match_id", item.MatchID,
			"home_team", home,
			"away_team", away,
		)
		return odds.Triple{}, false
	}
	return triple, true
}

// Annotate resolves odds for every fixture concurrently and returns once all
// lookups have settled, ordered by date, kickoff time and match id.
func (s *OddsService) Annotate(ctx context.Context, fixtures []fixture.Fixture) []AnnotatedFixture {
	if len(fixtures) == 0 {
		return []AnnotatedFixture{}
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.Annotate")
	defer span.End()

	out := make([]AnnotatedFixture, len(fixtures))
	started := time.Now()
	errs := s.runner.Each(ctx, len(fixtures), func(ctx context.Context, i int) error {
		out[i] = AnnotatedFixture{Fixture: fixtures[i]}
		if triple, ok := s.Latest(ctx, fixtures[i]); ok {
			out[i].Odds = &triple
		}
		return nil
	})
	s.metrics.ObserveFanout(JoinKindOdds, len(fixtures), time.Since(started))

	for i, err := range errs {
		if err == nil {
			continue
		}
		s.metrics.JoinMiss(JoinKindOdds)
		s.logger.WarnContext(ctx, "odds lookup aborted", "match_id", fixtures[i].MatchID, "error", err)
		out[i] = AnnotatedFixture{Fixture: fixtures[i]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return fixture.Less(out[i].Fixture, out[j].Fixture)
	})
	return out
}

// History returns every recorded quote for a fixture grouped by instant.
func (s *OddsService) History(ctx context.Context, matchID int64) (OddsHistory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OddsService.History")
	defer span.End()

	if matchID <= 0 {
		return OddsHistory{}, wrapInvalid("match id must be positive")
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, matchID)
	if err != nil {
		return OddsHistory{}, storeErr(err, "get fixture")
	}
	if !exists {
		return OddsHistory{}, wrapNotFound("fixture", matchID)
	}

	rows, err := s.oddsRepo.FindHistory(ctx, s.names.ResolveOddsName(item.HomeTeam), s.names.ResolveOddsName(item.AwayTeam))
	if err != nil {
		return OddsHistory{}, storeErr(err, "find odds history")
	}

	return OddsHistory{
		Fixture: item,
		Points:  odds.GroupHistory(rows),
	}, nil
}
