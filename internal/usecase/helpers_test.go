package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rdmgray/eplpal/internal/domain/teamname"
	"github.com/rdmgray/eplpal/internal/platform/fanout"
	"github.com/rdmgray/eplpal/internal/platform/logging"
)

type recordingMetrics struct {
	mu      sync.Mutex
	misses  map[string]int
	batches map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{misses: map[string]int{}, batches: map[string]int{}}
}

func (m *recordingMetrics) JoinMiss(kind string) {
	m.mu.Lock()
	m.misses[kind]++
	m.mu.Unlock()
}

func (m *recordingMetrics) ObserveFanout(kind string, _ int, _ time.Duration) {
	m.mu.Lock()
	m.batches[kind]++
	m.mu.Unlock()
}

func (m *recordingMetrics) missCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses[kind]
}

func newTestRunner(t *testing.T) *fanout.Runner {
	t.Helper()
	runner, err := fanout.NewRunner(4, logging.NewNop())
	if err != nil {
		t.Fatalf("create runner: %v", err)
	}
	t.Cleanup(runner.Release)
	return runner
}

func testNames() teamname.Table {
	return teamname.NewTable(map[string]string{
		"Liverpool FC":         "Liverpool",
		"Chelsea FC":           "Chelsea",
		"Tottenham Hotspur FC": "Tottenham",
		"West Ham United FC":   "West Ham",
	})
}

func price(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func intPtr(v int) *int {
	return &v
}
