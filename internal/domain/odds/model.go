package odds

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RunnerType identifies one outcome of the match-odds market.
type RunnerType string

const (
	RunnerHomeWin RunnerType = "Home win"
	RunnerDraw    RunnerType = "Draw"
	RunnerAwayWin RunnerType = "Away win"
)

// ParseRunnerType accepts the runner labels written by the odds collector.
// Any other market outcome is reported as unknown.
func ParseRunnerType(value string) (RunnerType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "home win":
		return RunnerHomeWin, true
	case "draw":
		return RunnerDraw, true
	case "away win":
		return RunnerAwayWin, true
	default:
		return "", false
	}
}

// Snapshot is one recorded price row of the odds store.
type Snapshot struct {
	RunnerType   string
	BackPrice    decimal.NullDecimal
	LayPrice     decimal.NullDecimal
	LastTraded   decimal.NullDecimal
	TotalMatched decimal.NullDecimal
	Timestamp    time.Time
}

// Quote is the price detail of one runner at one moment.
type Quote struct {
	BackPrice    decimal.NullDecimal
	LayPrice     decimal.NullDecimal
	LastTraded   decimal.NullDecimal
	TotalMatched decimal.NullDecimal
}

func (s Snapshot) Quote() Quote {
	return Quote{
		BackPrice:    s.BackPrice,
		LayPrice:     s.LayPrice,
		LastTraded:   s.LastTraded,
		TotalMatched: s.TotalMatched,
	}
}

// Triple holds the current back price per runner; nil means no quote.
type Triple struct {
	HomeWin *decimal.Decimal
	Draw    *decimal.Decimal
	AwayWin *decimal.Decimal
}

func (t Triple) IsEmpty() bool {
	return t.HomeWin == nil && t.Draw == nil && t.AwayWin == nil
}

// Point is every runner quote recorded at the same instant.
type Point struct {
	Timestamp time.Time
	HomeWin   *Quote
	Draw      *Quote
	AwayWin   *Quote
}
