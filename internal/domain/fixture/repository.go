package fixture

import "context"

// Repository exposes fixture read operations.
type Repository interface {
	ListMatchdays(ctx context.Context) ([]int, error)
	ListByMatchday(ctx context.Context, matchday int) ([]Fixture, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Fixture, error)
	GetByID(ctx context.Context, matchID int64) (Fixture, bool, error)
}
