package odds

import "context"

// Repository reads the odds store. Team names use the odds store convention.
type Repository interface {
	// FindLatest returns, per runner type, the rows recorded at that runner's
	// most recent timestamp for the (home, away) match.
	FindLatest(ctx context.Context, homeTeam, awayTeam string) ([]Snapshot, error)
	// FindHistory returns every row for the match ordered by timestamp, then runner type.
	FindHistory(ctx context.Context, homeTeam, awayTeam string) ([]Snapshot, error)
}
