package usecase

import (
	"context"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/domain/team"
)

type FixtureService struct {
	fixtureRepo fixture.Repository
	teamRepo    team.Repository
	oddsSvc     *OddsService
}

func NewFixtureService(fixtureRepo fixture.Repository, teamRepo team.Repository, oddsSvc *OddsService) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		teamRepo:    teamRepo,
		oddsSvc:     oddsSvc,
	}
}

func (s *FixtureService) ListMatchdays(ctx context.Context) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListMatchdays")
	defer span.End()

	matchdays, err := s.fixtureRepo.ListMatchdays(ctx)
	if err != nil {
		return nil, storeErr(err, "list matchdays")
	}
	if matchdays == nil {
		matchdays = []int{}
	}
	return matchdays, nil
}

// ListByMatchday returns the matchday's fixtures with current odds attached.
// A matchday with no fixtures is an empty result.
func (s *FixtureService) ListByMatchday(ctx context.Context, matchday int) ([]AnnotatedFixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByMatchday")
	defer span.End()

	if matchday <= 0 {
		return nil, wrapInvalid("matchday must be positive")
	}

	fixtures, err := s.fixtureRepo.ListByMatchday(ctx, matchday)
	if err != nil {
		return nil, storeErr(err, "list fixtures by matchday")
	}

	return s.oddsSvc.Annotate(ctx, fixtures), nil
}

func (s *FixtureService) GetByID(ctx context.Context, matchID int64) (AnnotatedFixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetByID")
	defer span.End()

	if matchID <= 0 {
		return AnnotatedFixture{}, wrapInvalid("match id must be positive")
	}

	item, exists, err := s.fixtureRepo.GetByID(ctx, matchID)
	if err != nil {
		return AnnotatedFixture{}, storeErr(err, "get fixture")
	}
	if !exists {
		return AnnotatedFixture{}, wrapNotFound("fixture", matchID)
	}

	out := AnnotatedFixture{Fixture: item}
	if triple, ok := s.oddsSvc.Latest(ctx, item); ok {
		out.Odds = &triple
	}
	return out, nil
}

// ListByTeam returns every fixture where the team plays home or away.
func (s *FixtureService) ListByTeam(ctx context.Context, teamID int64) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByTeam")
	defer span.End()

	if teamID <= 0 {
		return nil, wrapInvalid("team id must be positive")
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, storeErr(err, "get team")
	}
	if !exists {
		return nil, wrapNotFound("team", teamID)
	}

	fixtures, err := s.fixtureRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, storeErr(err, "list fixtures by team")
	}
	if fixtures == nil {
		fixtures = []fixture.Fixture{}
	}
	return fixtures, nil
}
