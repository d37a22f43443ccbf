package postgres

import (
	"database/sql"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
)

var fixtureColumns = []string{
	"match_id",
	"matchday",
	"to_char(match_date, 'YYYY-MM-DD') AS match_date",
	"COALESCE(to_char(kickoff_time, 'HH24:MI:SS'), '') AS kickoff_time",
	"home_team",
	"away_team",
	"home_team_id",
	"away_team_id",
	"COALESCE(status, '') AS status",
	"COALESCE(venue, '') AS venue",
	"home_score",
	"away_score",
}

type fixtureTableModel struct {
	MatchID    int64         `db:"match_id"`
	Matchday   sql.NullInt64 `db:"matchday"`
	Date       string        `db:"match_date"`
	Time       string        `db:"kickoff_time"`
	HomeTeam   string        `db:"home_team"`
	AwayTeam   string        `db:"away_team"`
	HomeTeamID sql.NullInt64 `db:"home_team_id"`
	AwayTeamID sql.NullInt64 `db:"away_team_id"`
	Status     string        `db:"status"`
	Venue      string        `db:"venue"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		MatchID:    m.MatchID,
		Matchday:   nullInt64ToInt(m.Matchday),
		Date:       m.Date,
		Time:       m.Time,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		HomeTeamID: nullInt64ToInt64(m.HomeTeamID),
		AwayTeamID: nullInt64ToInt64(m.AwayTeamID),
		Status:     m.Status,
		Venue:      m.Venue,
		HomeScore:  nullInt64ToIntPtr(m.HomeScore),
		AwayScore:  nullInt64ToIntPtr(m.AwayScore),
	}
}
