package bet

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StatusAll is a query wildcard; it is never stored on a bet.
const StatusAll = "ALL"

const (
	SideBack = "BACK"
	SideLay  = "LAY"
)

// Bet is one simulated wager of the bets store.
type Bet struct {
	ID             int64
	BettorID       int64
	MatchID        int64
	SelectionID    int64
	RunnerName     string
	RunnerType     string
	Side           string
	Stake          decimal.NullDecimal
	Odds           decimal.NullDecimal
	CreatedAt      time.Time
	Status         string
	RunnerOutcome  string
	Won            *bool
	ReturnedAmount decimal.NullDecimal
}

// NormalizeStatusFilter trims a requested status filter; empty means StatusAll.
func NormalizeStatusFilter(value string) string {
	status := strings.TrimSpace(value)
	if status == "" || strings.EqualFold(status, StatusAll) {
		return StatusAll
	}
	return status
}

// NormalizeSide folds the stored back/lay marker into SideBack or SideLay.
func NormalizeSide(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "L", SideLay:
		return SideLay
	case "B", SideBack:
		return SideBack
	default:
		return strings.ToUpper(strings.TrimSpace(value))
	}
}

// Newer orders bets newest first, breaking ties by the higher id.
func Newer(a, b Bet) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
