package fixture

import "strings"

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
)

// tbdKickoff is what the ingestion job writes when a slot has no kickoff yet.
const tbdKickoff = "00:00:00"

// Fixture represents one scheduled match in the fixtures store. Matchday is 0
// while the competition has not assigned one.
type Fixture struct {
	MatchID    int64
	Matchday   int
	Date       string
	Time       string
	HomeTeam   string
	AwayTeam   string
	HomeTeamID int64
	AwayTeamID int64
	Status     string
	Venue      string
	HomeScore  *int
	AwayScore  *int
}

// KickoffTBD reports whether the kickoff time is still unknown.
func (f Fixture) KickoffTBD() bool {
	t := strings.TrimSpace(f.Time)
	return t == "" || t == tbdKickoff
}

// Summary is the projection of a fixture attached to other records.
type Summary struct {
	MatchID  int64
	Matchday int
	Date     string
	Time     string
	HomeTeam string
	AwayTeam string
	Status   string
}

func (f Fixture) Summary() Summary {
	return Summary{
		MatchID:  f.MatchID,
		Matchday: f.Matchday,
		Date:     f.Date,
		Time:     f.Time,
		HomeTeam: f.HomeTeam,
		AwayTeam: f.AwayTeam,
		Status:   NormalizeStatus(f.Status),
	}
}

// NormalizeStatus folds a stored status into SCHEDULED, LIVE or FINISHED.
// Unknown and empty values are displayed as SCHEDULED.
func NormalizeStatus(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case StatusLive, "IN_PLAY", "PAUSED":
		return StatusLive
	case StatusFinished:
		return StatusFinished
	default:
		return StatusScheduled
	}
}

// Less orders fixtures by date, then kickoff time, then match id.
// Date and time compare as strings, matching how the store sorts them.
func Less(a, b Fixture) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return a.MatchID < b.MatchID
}
