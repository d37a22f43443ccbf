package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/rdmgray/eplpal/internal/domain/bet"
	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/platform/fanout"
	"github.com/rdmgray/eplpal/internal/platform/logging"
)

const maxStatusFilterLength = 32

// JoinedBet is a bet with the fixture it references. Match is nil when the
// referenced fixture does not exist.
type JoinedBet struct {
	bet.Bet
	Match *fixture.Summary
}

type BetService struct {
	betRepo     bet.Repository
	fixtureRepo fixture.Repository
	runner      *fanout.Runner
	metrics     JoinMetrics
	logger      *logging.Logger
}

func NewBetService(
	betRepo bet.Repository,
	fixtureRepo fixture.Repository,
	runner *fanout.Runner,
	metrics JoinMetrics,
	logger *logging.Logger,
) *BetService {
	if metrics == nil {
		metrics = NewNopJoinMetrics()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BetService{
		betRepo:     betRepo,
		fixtureRepo: fixtureRepo,
		runner:      runner,
		metrics:     metrics,
		logger:      logger,
	}
}

func (s *BetService) ListBettorIDs(ctx context.Context) ([]int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.ListBettorIDs")
	defer span.End()

	ids, err := s.betRepo.ListBettorIDs(ctx)
	if err != nil {
		return nil, storeErr(err, "list bettors")
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// ListStatuses returns the stored bet statuses preceded by the ALL wildcard.
func (s *BetService) ListStatuses(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.ListStatuses")
	defer span.End()

	statuses, err := s.betRepo.ListStatuses(ctx)
	if err != nil {
		return nil, storeErr(err, "list bet statuses")
	}

	out := make([]string, 0, len(statuses)+1)
	out = append(out, bet.StatusAll)
	for _, status := range statuses {
		if status == "" || status == bet.StatusAll {
			continue
		}
		out = append(out, status)
	}
	return out, nil
}

// ListByBettor returns the bettor's bets matching status, newest first, each
// joined with its fixture. The status may be empty or "ALL" for no filter.
func (s *BetService) ListByBettor(ctx context.Context, bettorID int64, status string) ([]JoinedBet, string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BetService.ListByBettor")
	defer span.End()

	if bettorID <= 0 {
		return nil, "", wrapInvalid("bettor id must be positive")
	}
	status = bet.NormalizeStatusFilter(status)
	if len(status) > maxStatusFilterLength {
		return nil, "", wrapInvalid("status filter is too long")
	}

	bets, err := s.betRepo.ListByBettor(ctx, bettorID, status)
	if err != nil {
		return nil, "", storeErr(err, "list bets")
	}
	if len(bets) == 0 {
		exists, err := s.betRepo.BettorExists(ctx, bettorID)
		if err != nil {
			return nil, "", storeErr(err, "check bettor")
		}
		if !exists {
			return nil, "", wrapNotFound("bettor", bettorID)
		}
		return []JoinedBet{}, status, nil
	}

	matches := s.lookupMatches(ctx, bets)

	out := make([]JoinedBet, 0, len(bets))
	for _, item := range bets {
		joined := JoinedBet{Bet: item}
		if summary, ok := matches[item.MatchID]; ok {
			match := summary
			joined.Match = &match
		}
		out = append(out, joined)
	}

	sort.SliceStable(out, func(i, j int) bool { return bet.Newer(out[i].Bet, out[j].Bet) })
	return out, status, nil
}

// lookupMatches resolves each distinct referenced match id once. Ids that do
// not resolve are absent from the result.
func (s *BetService) lookupMatches(ctx context.Context, bets []bet.Bet) map[int64]fixture.Summary {
	ids := make([]int64, 0, len(bets))
	seen := make(map[int64]struct{}, len(bets))
	for _, item := range bets {
		if _, ok := seen[item.MatchID]; ok {
			continue
		}
		seen[item.MatchID] = struct{}{}
		ids = append(ids, item.MatchID)
	}

	found := make([]*fixture.Summary, len(ids))
	started := time.Now()
	errs := s.runner.Each(ctx, len(ids), func(ctx context.Context, i int) error {
		item, exists, err := s.fixtureRepo.GetByID(ctx, ids[i])
		if err != nil {
			return err
		}
		if exists {
			summary := item.Summary()
			found[i] = &summary
		}
		return nil
	})
	s.metrics.ObserveFanout(JoinKindBetMatch, len(ids), time.Since(started))

	out := make(map[int64]fixture.Summary, len(ids))
	for i, id := range ids {
		if errs[i] != nil {
			s.metrics.JoinMiss(JoinKindBetMatch)
			s.logger.WarnContext(ctx, "bet match lookup failed", "match_id", id, "error", errs[i])
			continue
		}
		if found[i] == nil {
			s.metrics.JoinMiss(JoinKindBetMatch)
			s.logger.DebugContext(ctx, "bet references unknown match", "match_id", id)
			continue
		}
		out[id] = *found[i]
	}
	return out
}
