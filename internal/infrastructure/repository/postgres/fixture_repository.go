package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
	qb "github.com/rdmgray/eplpal/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListMatchdays(ctx context.Context) ([]int, error) {
	query, args, err := qb.SelectDistinct("matchday").From("fixtures").
		Where(qb.IsNotNull("matchday")).
		OrderBy("matchday").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select matchdays query")
	}

	var out []int
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matchdays")
	}
	return out, nil
}

func (r *FixtureRepository) ListByMatchday(ctx context.Context, matchday int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select(fixtureColumns...).From("fixtures").
		Where(qb.Eq("matchday", matchday)).
		OrderBy("match_date", "kickoff_time", "match_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select fixtures by matchday query")
	}

	return r.selectFixtures(ctx, query, args, "select fixtures by matchday")
}

func (r *FixtureRepository) ListByTeam(ctx context.Context, teamID int64) ([]fixture.Fixture, error) {
	query, args, err := qb.Select(fixtureColumns...).From("fixtures").
		Where(qb.Or(qb.Eq("home_team_id", teamID), qb.Eq("away_team_id", teamID))).
		OrderBy("match_date", "kickoff_time", "match_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select fixtures by team query")
	}

	return r.selectFixtures(ctx, query, args, "select fixtures by team")
}

func (r *FixtureRepository) GetByID(ctx context.Context, matchID int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select(fixtureColumns...).From("fixtures").
		Where(qb.Eq("match_id", matchID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, errors.Wrap(err, "build select fixture by id query")
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, errors.Wrapf(err, "get fixture match_id=%d", matchID)
	}
	return row.toDomain(), true, nil
}

// Count is used by the startup connectivity check.
func (r *FixtureRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM fixtures"); err != nil {
		return 0, errors.Wrap(err, "count fixtures")
	}
	return count, nil
}

func (r *FixtureRepository) selectFixtures(ctx context.Context, query string, args []any, op string) ([]fixture.Fixture, error) {
	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, op)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
