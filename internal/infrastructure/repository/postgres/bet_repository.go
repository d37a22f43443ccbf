package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/rdmgray/eplpal/internal/domain/bet"
	qb "github.com/rdmgray/eplpal/internal/platform/querybuilder"
)

type BetRepository struct {
	db *sqlx.DB
}

func NewBetRepository(db *sqlx.DB) *BetRepository {
	return &BetRepository{db: db}
}

func (r *BetRepository) ListBettorIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.SelectDistinct("bettor_id").From("bets").
		OrderBy("bettor_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select bettors query")
	}

	var out []int64
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, errors.Wrap(err, "select bettors")
	}
	return out, nil
}

func (r *BetRepository) ListStatuses(ctx context.Context) ([]string, error) {
	query, args, err := qb.SelectDistinct("status").From("bets").
		Where(qb.IsNotNull("status")).
		OrderBy("status").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select bet statuses query")
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, errors.Wrap(err, "select bet statuses")
	}
	return out, nil
}

// ListByBettor returns the bettor's bets newest first. A status of
// bet.StatusAll disables the status filter.
func (r *BetRepository) ListByBettor(ctx context.Context, bettorID int64, status string) ([]bet.Bet, error) {
	conditions := []qb.Condition{qb.Eq("bettor_id", bettorID)}
	if status != bet.StatusAll {
		conditions = append(conditions, qb.Eq("status", status))
	}

	query, args, err := qb.Select(betColumns...).From("bets").
		Where(conditions...).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select bets by bettor query")
	}

	var rows []betTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrapf(err, "select bets bettor_id=%d", bettorID)
	}

	out := make([]bet.Bet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *BetRepository) BettorExists(ctx context.Context, bettorID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM bets WHERE bettor_id = $1)", bettorID); err != nil {
		return false, errors.Wrapf(err, "check bettor bettor_id=%d", bettorID)
	}
	return exists, nil
}
