package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
)

type FixtureRepository struct {
	mu       sync.RWMutex
	fixtures []fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	items := append([]fixture.Fixture(nil), fixtures...)
	sort.SliceStable(items, func(i, j int) bool { return fixture.Less(items[i], items[j]) })
	return &FixtureRepository{fixtures: items}
}

func (r *FixtureRepository) ListMatchdays(_ context.Context) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	out := make([]int, 0)
	for _, item := range r.fixtures {
		if item.Matchday <= 0 {
			continue
		}
		if _, ok := seen[item.Matchday]; ok {
			continue
		}
		seen[item.Matchday] = struct{}{}
		out = append(out, item.Matchday)
	}
	sort.Ints(out)
	return out, nil
}

func (r *FixtureRepository) ListByMatchday(_ context.Context, matchday int) ([]fixture.Fixture, error) {
	return r.filter(func(item fixture.Fixture) bool { return item.Matchday == matchday }), nil
}

func (r *FixtureRepository) ListByTeam(_ context.Context, teamID int64) ([]fixture.Fixture, error) {
	return r.filter(func(item fixture.Fixture) bool {
		return item.HomeTeamID == teamID || item.AwayTeamID == teamID
	}), nil
}

func (r *FixtureRepository) GetByID(_ context.Context, matchID int64) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.fixtures {
		if item.MatchID == matchID {
			return item, true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}

func (r *FixtureRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fixtures), nil
}

func (r *FixtureRepository) filter(keep func(fixture.Fixture) bool) []fixture.Fixture {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0)
	for _, item := range r.fixtures {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
