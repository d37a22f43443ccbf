package usecase

import "time"

const (
	JoinKindOdds     = "odds"
	JoinKindBetMatch = "bet_match"
)

// JoinMetrics records secondary lookups that degraded to an absent
// annotation, and how long each fan-out batch took.
type JoinMetrics interface {
	JoinMiss(kind string)
	ObserveFanout(kind string, size int, elapsed time.Duration)
}

type nopJoinMetrics struct{}

func (nopJoinMetrics) JoinMiss(string)                          {}
func (nopJoinMetrics) ObserveFanout(string, int, time.Duration) {}

func NewNopJoinMetrics() JoinMetrics {
	return nopJoinMetrics{}
}
