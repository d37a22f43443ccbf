package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rdmgray/eplpal/internal/domain/bet"
)

type BetRepository struct {
	mu   sync.RWMutex
	bets []bet.Bet
}

func NewBetRepository(bets []bet.Bet) *BetRepository {
	return &BetRepository{bets: append([]bet.Bet(nil), bets...)}
}

func (r *BetRepository) ListBettorIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, item := range r.bets {
		if _, ok := seen[item.BettorID]; ok {
			continue
		}
		seen[item.BettorID] = struct{}{}
		out = append(out, item.BettorID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *BetRepository) ListStatuses(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range r.bets {
		if item.Status == "" {
			continue
		}
		if _, ok := seen[item.Status]; ok {
			continue
		}
		seen[item.Status] = struct{}{}
		out = append(out, item.Status)
	}
	sort.Strings(out)
	return out, nil
}

func (r *BetRepository) ListByBettor(_ context.Context, bettorID int64, status string) ([]bet.Bet, error) {
	r.mu.RLock()
	out := make([]bet.Bet, 0)
	for _, item := range r.bets {
		if item.BettorID != bettorID {
			continue
		}
		if status != bet.StatusAll && item.Status != status {
			continue
		}
		out = append(out, item)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return bet.Newer(out[i], out[j]) })
	return out, nil
}

func (r *BetRepository) BettorExists(_ context.Context, bettorID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.bets {
		if item.BettorID == bettorID {
			return true, nil
		}
	}
	return false, nil
}
