// Package cache decorates slowly changing repository reads with a shared
// cache store. Odds and per-fixture reads are never cached.
package cache

import (
	"context"
	"strconv"

	"github.com/rdmgray/eplpal/internal/domain/bet"
	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/domain/team"
	basecache "github.com/rdmgray/eplpal/internal/platform/cache"
)

const (
	keyTeamList    = "team:list"
	keyTeamByID    = "team:id:"
	keyMatchdays   = "fixture:matchdays"
	keyBettorIDs   = "bet:bettors"
	keyBetStatuses = "bet:statuses"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.GetOrLoad(ctx, r.cache, keyTeamList, r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := keyTeamByID + strconv.FormatInt(teamID, 10)
	cached, err := basecache.GetOrLoad(ctx, r.cache, key, func(ctx context.Context) (cachedTeamByID, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return cachedTeamByID{}, err
		}
		return cachedTeamByID{Value: item, Exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.Value, cached.Exists, nil
}

type cachedTeamByID struct {
	Value  team.Team `json:"value"`
	Exists bool      `json:"exists"`
}

// FixtureRepository caches the matchday list only; fixture rows carry live
// status and scores.
type FixtureRepository struct {
	fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{Repository: next, cache: cache}
}

func (r *FixtureRepository) ListMatchdays(ctx context.Context) ([]int, error) {
	items, err := basecache.GetOrLoad(ctx, r.cache, keyMatchdays, r.Repository.ListMatchdays)
	if err != nil {
		return nil, err
	}
	return append([]int(nil), items...), nil
}

type BetRepository struct {
	bet.Repository
	cache *basecache.Store
}

func NewBetRepository(next bet.Repository, cache *basecache.Store) *BetRepository {
	return &BetRepository{Repository: next, cache: cache}
}

func (r *BetRepository) ListBettorIDs(ctx context.Context) ([]int64, error) {
	items, err := basecache.GetOrLoad(ctx, r.cache, keyBettorIDs, r.Repository.ListBettorIDs)
	if err != nil {
		return nil, err
	}
	return append([]int64(nil), items...), nil
}

func (r *BetRepository) ListStatuses(ctx context.Context) ([]string, error) {
	items, err := basecache.GetOrLoad(ctx, r.cache, keyBetStatuses, r.Repository.ListStatuses)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), items...), nil
}
