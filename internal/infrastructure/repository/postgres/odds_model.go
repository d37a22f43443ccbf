package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rdmgray/eplpal/internal/domain/odds"
)

var oddsColumns = []string{
	"o.runner_type",
	"o.best_back_price",
	"o.best_lay_price",
	"o.last_price_traded",
	"o.total_matched",
	"o.request_time",
}

type oddsTableModel struct {
	RunnerType   string              `db:"runner_type"`
	BackPrice    decimal.NullDecimal `db:"best_back_price"`
	LayPrice     decimal.NullDecimal `db:"best_lay_price"`
	LastTraded   decimal.NullDecimal `db:"last_price_traded"`
	TotalMatched decimal.NullDecimal `db:"total_matched"`
	RequestTime  time.Time           `db:"request_time"`
}

func (m oddsTableModel) toDomain() odds.Snapshot {
	return odds.Snapshot{
		RunnerType:   m.RunnerType,
		BackPrice:    m.BackPrice,
		LayPrice:     m.LayPrice,
		LastTraded:   m.LastTraded,
		TotalMatched: m.TotalMatched,
		Timestamp:    m.RequestTime,
	}
}
