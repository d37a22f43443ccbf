package app

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/rdmgray/eplpal/internal/config"
	"github.com/rdmgray/eplpal/internal/domain/bet"
	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/domain/odds"
	"github.com/rdmgray/eplpal/internal/domain/team"
	"github.com/rdmgray/eplpal/internal/infrastructure/repository/memory"
	"github.com/rdmgray/eplpal/internal/infrastructure/repository/postgres"
)

const storePingTimeout = 5 * time.Second

type fixtureCounter interface {
	Count(ctx context.Context) (int, error)
}

type stores struct {
	fixtures fixture.Repository
	teams    team.Repository
	odds     odds.Repository
	bets     bet.Repository
	counter  fixtureCounter
	closers  []func() error
}

func (s *stores) Close() error {
	var errs error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
	s.closers = nil
	return errs
}

func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return memoryStores(memory.DefaultSeed()), nil
	}

	out := &stores{}
	fixturesDB, err := openStore(ctx, cfg.FixturesDBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		return nil, errors.Wrap(err, "open fixtures store")
	}
	out.closers = append(out.closers, fixturesDB.Close)

	oddsDB, err := openStore(ctx, cfg.OddsDBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		_ = out.Close()
		return nil, errors.Wrap(err, "open odds store")
	}
	out.closers = append(out.closers, oddsDB.Close)

	betsDB, err := openStore(ctx, cfg.BetsDBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		_ = out.Close()
		return nil, errors.Wrap(err, "open bets store")
	}
	out.closers = append(out.closers, betsDB.Close)

	fixtureRepo := postgres.NewFixtureRepository(fixturesDB)
	out.fixtures = fixtureRepo
	out.counter = fixtureRepo
	out.teams = postgres.NewTeamRepository(fixturesDB)
	out.odds = postgres.NewOddsRepository(oddsDB)
	out.bets = postgres.NewBetRepository(betsDB)
	return out, nil
}

func memoryStores(seed memory.Seed) *stores {
	fixtureRepo := memory.NewFixtureRepository(seed.Fixtures)
	return &stores{
		fixtures: fixtureRepo,
		teams:    memory.NewTeamRepository(seed.Teams),
		odds:     memory.NewOddsRepository(seed.OddsMarkets, seed.OddsRows),
		bets:     memory.NewBetRepository(seed.Bets),
		counter:  fixtureRepo,
	}
}

func openStore(ctx context.Context, rawURL string, disablePreparedBinary bool) (*sqlx.DB, error) {
	dsn := normalizeDBURL(rawURL, disablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "open db name=%s", dbNameFromURL(dsn))
	}

	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "ping db name=%s", dbNameFromURL(dsn))
	}
	return db, nil
}
