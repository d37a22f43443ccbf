package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

var fixtureRowColumns = []string{
	"match_id", "matchday", "match_date", "kickoff_time", "home_team", "away_team",
	"home_team_id", "away_team_id", "status", "venue", "home_score", "away_score",
}

// staticRowsConnector serves the same result set for every query.
type staticRowsConnector struct {
	columns []string
	rows    [][]driver.Value
}

func (c staticRowsConnector) Connect(context.Context) (driver.Conn, error) {
	return &staticRowsConn{columns: c.columns, rows: c.rows}, nil
}

func (c staticRowsConnector) Driver() driver.Driver { return staticRowsDriver{} }

type staticRowsDriver struct{}

func (staticRowsDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open by name is not supported")
}

type staticRowsConn struct {
	columns []string
	rows    [][]driver.Value
}

func (c *staticRowsConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported")
}

func (c *staticRowsConn) Close() error { return nil }

func (c *staticRowsConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not supported")
}

func (c *staticRowsConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return &staticRows{columns: c.columns, values: c.rows}, nil
}

type staticRows struct {
	columns []string
	values  [][]driver.Value
	pos     int
}

func (r *staticRows) Columns() []string { return r.columns }

func (r *staticRows) Close() error { return nil }

func (r *staticRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.values) {
		return io.EOF
	}
	copy(dest, r.values[r.pos])
	r.pos++
	return nil
}

func newStaticFixtureDB(t *testing.T, rows ...[]driver.Value) *sqlx.DB {
	t.Helper()
	db := sqlx.NewDb(sql.OpenDB(staticRowsConnector{columns: fixtureRowColumns, rows: rows}), "postgres")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFixtureRepository_NullMatchdayIsReadable(t *testing.T) {
	postponed := []driver.Value{
		int64(120), nil, "2025-09-27", "", "Arsenal FC", "Newcastle United FC",
		int64(57), int64(67), "POSTPONED", "", nil, nil,
	}
	repo := NewFixtureRepository(newStaticFixtureDB(t, postponed))

	item, ok, err := repo.GetByID(context.Background(), 120)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(120), item.MatchID)
	require.Equal(t, 0, item.Matchday)
	require.Equal(t, "POSTPONED", item.Status)
	require.Nil(t, item.HomeScore)

	items, err := repo.ListByTeam(context.Background(), 57)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 0, items[0].Matchday)
}

func TestFixtureRepository_GetByIDScansAssignedMatchday(t *testing.T) {
	finished := []driver.Value{
		int64(90), int64(4), "2025-09-06", "12:30:00", "Arsenal FC", "Nottingham Forest FC",
		int64(57), int64(351), "FINISHED", "Emirates Stadium", int64(3), int64(0),
	}
	repo := NewFixtureRepository(newStaticFixtureDB(t, finished))

	item, ok, err := repo.GetByID(context.Background(), 90)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, item.Matchday)
	require.NotNil(t, item.AwayScore)
	require.Equal(t, 0, *item.AwayScore)
}

func TestFixtureRepository_GetByIDMissingRow(t *testing.T) {
	repo := NewFixtureRepository(newStaticFixtureDB(t))

	_, ok, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	require.False(t, ok)
}
