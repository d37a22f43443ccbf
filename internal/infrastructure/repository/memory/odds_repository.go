package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rdmgray/eplpal/internal/domain/odds"
)

// OddsMarket is a match registered in the odds store.
type OddsMarket struct {
	ID       int64
	HomeTeam string
	AwayTeam string
}

// OddsRow is one recorded snapshot for a market.
type OddsRow struct {
	MarketID int64
	Snapshot odds.Snapshot
}

type OddsRepository struct {
	mu      sync.RWMutex
	markets []OddsMarket
	rows    map[int64][]odds.Snapshot
}

func NewOddsRepository(markets []OddsMarket, rows []OddsRow) *OddsRepository {
	byMarket := make(map[int64][]odds.Snapshot)
	for _, row := range rows {
		byMarket[row.MarketID] = append(byMarket[row.MarketID], row.Snapshot)
	}
	return &OddsRepository{
		markets: append([]OddsMarket(nil), markets...),
		rows:    byMarket,
	}
}

func (r *OddsRepository) FindLatest(_ context.Context, homeTeam, awayTeam string) ([]odds.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]odds.Snapshot, 0)
	for _, marketID := range r.marketIDs(homeTeam, awayTeam) {
		rows := r.rows[marketID]
		latest := make(map[string]time.Time)
		for _, row := range rows {
			if at, ok := latest[row.RunnerType]; !ok || row.Timestamp.After(at) {
				latest[row.RunnerType] = row.Timestamp
			}
		}
		for _, row := range rows {
			if row.Timestamp.Equal(latest[row.RunnerType]) {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (r *OddsRepository) FindHistory(_ context.Context, homeTeam, awayTeam string) ([]odds.Snapshot, error) {
	r.mu.RLock()
	out := make([]odds.Snapshot, 0)
	for _, marketID := range r.marketIDs(homeTeam, awayTeam) {
		out = append(out, r.rows[marketID]...)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.Before(out[j].Timestamp)
		}
		return out[i].RunnerType < out[j].RunnerType
	})
	return out, nil
}

func (r *OddsRepository) marketIDs(homeTeam, awayTeam string) []int64 {
	ids := make([]int64, 0, 1)
	for _, market := range r.markets {
		if market.HomeTeam == homeTeam && market.AwayTeam == awayTeam {
			ids = append(ids, market.ID)
		}
	}
	return ids
}
