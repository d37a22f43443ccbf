package postgres

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rdmgray/eplpal/internal/domain/bet"
)

var betColumns = []string{
	"id",
	"bettor_id",
	"match_id",
	"selection_id",
	"runner_name",
	"runner_type",
	"back_or_lay",
	"bet_amount",
	"selection_odds",
	"created_at",
	"status",
	"COALESCE(runner_outcome, '') AS runner_outcome",
	"bet_won",
	"returned_amount",
}

type betTableModel struct {
	ID             int64               `db:"id"`
	BettorID       int64               `db:"bettor_id"`
	MatchID        int64               `db:"match_id"`
	SelectionID    int64               `db:"selection_id"`
	RunnerName     string              `db:"runner_name"`
	RunnerType     string              `db:"runner_type"`
	BackOrLay      string              `db:"back_or_lay"`
	BetAmount      decimal.NullDecimal `db:"bet_amount"`
	SelectionOdds  decimal.NullDecimal `db:"selection_odds"`
	CreatedAt      time.Time           `db:"created_at"`
	Status         string              `db:"status"`
	RunnerOutcome  string              `db:"runner_outcome"`
	BetWon         sql.NullBool        `db:"bet_won"`
	ReturnedAmount decimal.NullDecimal `db:"returned_amount"`
}

func (m betTableModel) toDomain() bet.Bet {
	return bet.Bet{
		ID:             m.ID,
		BettorID:       m.BettorID,
		MatchID:        m.MatchID,
		SelectionID:    m.SelectionID,
		RunnerName:     m.RunnerName,
		RunnerType:     m.RunnerType,
		Side:           bet.NormalizeSide(m.BackOrLay),
		Stake:          m.BetAmount,
		Odds:           m.SelectionOdds,
		CreatedAt:      m.CreatedAt,
		Status:         m.Status,
		RunnerOutcome:  m.RunnerOutcome,
		Won:            nullBoolToPtr(m.BetWon),
		ReturnedAmount: m.ReturnedAmount,
	}
}
