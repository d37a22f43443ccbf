package postgres

import (
	"database/sql"

	"github.com/rdmgray/eplpal/internal/domain/team"
)

var teamColumns = []string{
	"team_id",
	"name",
	"COALESCE(short_name, '') AS short_name",
	"COALESCE(tla, '') AS tla",
	"COALESCE(crest, '') AS crest",
	"founded",
	"COALESCE(venue, '') AS venue",
}

type teamTableModel struct {
	ID        int64         `db:"team_id"`
	Name      string        `db:"name"`
	ShortName string        `db:"short_name"`
	TLA       string        `db:"tla"`
	Crest     string        `db:"crest"`
	Founded   sql.NullInt64 `db:"founded"`
	Venue     string        `db:"venue"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:        m.ID,
		Name:      m.Name,
		ShortName: m.ShortName,
		TLA:       m.TLA,
		Crest:     m.Crest,
		Founded:   nullInt64ToIntPtr(m.Founded),
		Venue:     m.Venue,
	}
}
