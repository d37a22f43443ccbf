package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/rdmgray/eplpal/internal/domain/odds"
	qb "github.com/rdmgray/eplpal/internal/platform/querybuilder"
)

type OddsRepository struct {
	db *sqlx.DB
}

func NewOddsRepository(db *sqlx.DB) *OddsRepository {
	return &OddsRepository{db: db}
}

// FindLatest returns, per market and runner type, the rows recorded at that
// runner's most recent request time.
func (r *OddsRepository) FindLatest(ctx context.Context, homeTeam, awayTeam string) ([]odds.Snapshot, error) {
	query, args, err := qb.Select(oddsColumns...).From("odds o").
		Join("matches m ON m.id = o.match_id").
		Where(
			qb.Eq("m.home_team", homeTeam),
			qb.Eq("m.away_team", awayTeam),
			qb.Expr("o.request_time = (SELECT MAX(latest.request_time) FROM odds latest WHERE latest.match_id = o.match_id AND latest.runner_type = o.runner_type)"),
		).
		OrderBy("o.runner_type", "o.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select latest odds query")
	}

	return r.selectSnapshots(ctx, query, args, "select latest odds")
}

func (r *OddsRepository) FindHistory(ctx context.Context, homeTeam, awayTeam string) ([]odds.Snapshot, error) {
	query, args, err := qb.Select(oddsColumns...).From("odds o").
		Join("matches m ON m.id = o.match_id").
		Where(
			qb.Eq("m.home_team", homeTeam),
			qb.Eq("m.away_team", awayTeam),
		).
		OrderBy("o.request_time", "o.runner_type", "o.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select odds history query")
	}

	return r.selectSnapshots(ctx, query, args, "select odds history")
}

func (r *OddsRepository) selectSnapshots(ctx context.Context, query string, args []any, op string) ([]odds.Snapshot, error) {
	var rows []oddsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, op)
	}

	out := make([]odds.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
