package postgres

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/rdmgray/eplpal/internal/infrastructure/repository/memory"
)

// SeedFixturesStore loads the seed teams and fixtures when the fixtures
// table is empty. It reports whether rows were written.
func SeedFixturesStore(ctx context.Context, db *sqlx.DB, seed memory.Seed) (bool, error) {
	empty, err := tableIsEmpty(ctx, db, "fixtures")
	if err != nil || !empty {
		return false, err
	}

	err = withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, t := range seed.Teams {
			if err := namedExec(ctx, tx, `
INSERT INTO teams (team_id, name, short_name, tla, crest, founded, venue)
VALUES (:team_id, :name, :short_name, :tla, :crest, :founded, :venue)
ON CONFLICT (team_id) DO NOTHING`, map[string]any{
				"team_id":    t.ID,
				"name":       t.Name,
				"short_name": t.ShortName,
				"tla":        t.TLA,
				"crest":      t.Crest,
				"founded":    t.Founded,
				"venue":      t.Venue,
			}); err != nil {
				return errors.Wrapf(err, "seed team %d", t.ID)
			}
		}

		for _, f := range seed.Fixtures {
			if err := namedExec(ctx, tx, `
INSERT INTO fixtures (match_id, matchday, match_date, kickoff_time, home_team, away_team,
	home_team_id, away_team_id, status, venue, home_score, away_score, season)
VALUES (:match_id, :matchday, :match_date, :kickoff_time, :home_team, :away_team,
	:home_team_id, :away_team_id, :status, :venue, :home_score, :away_score, :season)
ON CONFLICT (match_id) DO NOTHING`, map[string]any{
				"match_id":     f.MatchID,
				"matchday":     f.Matchday,
				"match_date":   f.Date,
				"kickoff_time": nullableString(f.Time),
				"home_team":    f.HomeTeam,
				"away_team":    f.AwayTeam,
				"home_team_id": f.HomeTeamID,
				"away_team_id": f.AwayTeamID,
				"status":       f.Status,
				"venue":        f.Venue,
				"home_score":   f.HomeScore,
				"away_score":   f.AwayScore,
				"season":       "2025/26",
			}); err != nil {
				return errors.Wrapf(err, "seed fixture %d", f.MatchID)
			}
		}
		return nil
	})
	return err == nil, err
}

// SeedOddsStore loads the seed markets and price rows when the odds store
// has no markets.
func SeedOddsStore(ctx context.Context, db *sqlx.DB, seed memory.Seed) (bool, error) {
	empty, err := tableIsEmpty(ctx, db, "matches")
	if err != nil || !empty {
		return false, err
	}

	err = withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, m := range seed.OddsMarkets {
			if err := namedExec(ctx, tx, `
INSERT INTO matches (id, event_id, market_id, home_team, away_team, match_date)
VALUES (:id, :event_id, :market_id, :home_team, :away_team, :match_date)
ON CONFLICT (id) DO NOTHING`, map[string]any{
				"id":         m.ID,
				"event_id":   fmt.Sprintf("seed-%d", m.ID),
				"market_id":  fmt.Sprintf("1.seed%d", m.ID),
				"home_team":  m.HomeTeam,
				"away_team":  m.AwayTeam,
				"match_date": "",
			}); err != nil {
				return errors.Wrapf(err, "seed odds market %d", m.ID)
			}
		}
		if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('matches', 'id'), (SELECT MAX(id) FROM matches))`); err != nil {
			return errors.Wrap(err, "advance matches id sequence")
		}

		for i, row := range seed.OddsRows {
			s := row.Snapshot
			if err := namedExec(ctx, tx, `
INSERT INTO odds (match_id, selection_id, runner_name, runner_type, best_back_price, best_lay_price,
	last_price_traded, total_matched, status, request_time)
VALUES (:match_id, :selection_id, :runner_name, :runner_type, :best_back_price, :best_lay_price,
	:last_price_traded, :total_matched, :status, :request_time)`, map[string]any{
				"match_id":          row.MarketID,
				"selection_id":      int64(i + 1),
				"runner_name":       s.RunnerType,
				"runner_type":       s.RunnerType,
				"best_back_price":   s.BackPrice,
				"best_lay_price":    s.LayPrice,
				"last_price_traded": s.LastTraded,
				"total_matched":     s.TotalMatched,
				"status":            "ACTIVE",
				"request_time":      s.Timestamp,
			}); err != nil {
				return errors.Wrapf(err, "seed odds row %d", i)
			}
		}
		return nil
	})
	return err == nil, err
}

// SeedBetsStore loads the seed bets when the bets table is empty.
func SeedBetsStore(ctx context.Context, db *sqlx.DB, seed memory.Seed) (bool, error) {
	empty, err := tableIsEmpty(ctx, db, "bets")
	if err != nil || !empty {
		return false, err
	}

	err = withTx(ctx, db, func(tx *sqlx.Tx) error {
		for _, b := range seed.Bets {
			if err := namedExec(ctx, tx, `
INSERT INTO bets (id, bettor_id, match_id, selection_id, runner_name, runner_type, back_or_lay,
	bet_amount, selection_odds, created_at, status, runner_outcome, bet_won, returned_amount)
VALUES (:id, :bettor_id, :match_id, :selection_id, :runner_name, :runner_type, :back_or_lay,
	:bet_amount, :selection_odds, :created_at, :status, :runner_outcome, :bet_won, :returned_amount)
ON CONFLICT (id) DO NOTHING`, map[string]any{
				"id":              b.ID,
				"bettor_id":       b.BettorID,
				"match_id":        b.MatchID,
				"selection_id":    b.SelectionID,
				"runner_name":     b.RunnerName,
				"runner_type":     b.RunnerType,
				"back_or_lay":     b.Side,
				"bet_amount":      b.Stake,
				"selection_odds":  b.Odds,
				"created_at":      b.CreatedAt,
				"status":          b.Status,
				"runner_outcome":  nullableString(b.RunnerOutcome),
				"bet_won":         b.Won,
				"returned_amount": b.ReturnedAmount,
			}); err != nil {
				return errors.Wrapf(err, "seed bet %d", b.ID)
			}
		}

		// Explicit ids leave the serial behind.
		if _, err := tx.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('bets', 'id'), (SELECT MAX(id) FROM bets))`); err != nil {
			return errors.Wrap(err, "advance bets id sequence")
		}
		return nil
	})
	return err == nil, err
}

func tableIsEmpty(ctx context.Context, db *sqlx.DB, table string) (bool, error) {
	var exists bool
	if err := db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM `+table+`)`); err != nil {
		return false, errors.Wrapf(err, "probe %s for bootstrap seed", table)
	}
	return !exists, nil
}

func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit seed tx")
	}
	return nil
}

func namedExec(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return errors.Wrap(err, "bind seed query")
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...)
	return err
}

func nullableString(v string) any {
	if v == "" {
		return nil
	}
	return v
}
