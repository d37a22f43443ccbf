package bet

import "context"

// Repository exposes bet ledger read operations.
type Repository interface {
	ListBettorIDs(ctx context.Context) ([]int64, error)
	ListStatuses(ctx context.Context) ([]string, error)
	// ListByBettor returns the bettor's bets, newest first. StatusAll disables
	// the status filter.
	ListByBettor(ctx context.Context, bettorID int64, status string) ([]Bet, error)
	BettorExists(ctx context.Context, bettorID int64) (bool, error)
}
