package fixture

import (
	"sort"
	"testing"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"SCHEDULED": StatusScheduled,
		"timed":     StatusScheduled,
		"in_play":   StatusLive,
		" Live ":    StatusLive,
		"FINISHED":  StatusFinished,
		"finished":  StatusFinished,
		"":          StatusScheduled,
		"POSTPONED": StatusScheduled,
	}
	for in, want := range cases {
		if got := NormalizeStatus(in); got != want {
			t.Fatalf("NormalizeStatus(%q): got=%s want=%s", in, got, want)
		}
	}
}

func TestFixture_KickoffTBD(t *testing.T) {
	if !(Fixture{Time: "00:00:00"}).KickoffTBD() {
		t.Fatalf("midnight sentinel must be TBD")
	}
	if !(Fixture{}).KickoffTBD() {
		t.Fatalf("empty time must be TBD")
	}
	if (Fixture{Time: "15:00:00"}).KickoffTBD() {
		t.Fatalf("15:00 must not be TBD")
	}
}

func TestLess_SortsByDateThenTime(t *testing.T) {
	items := []Fixture{
		{MatchID: 4, Date: "2025-09-14", Time: "14:00:00"},
		{MatchID: 3, Date: "2025-09-13", Time: "17:30:00"},
		{MatchID: 2, Date: "2025-09-13", Time: "15:00:00"},
		{MatchID: 1, Date: "2025-09-13", Time: "15:00:00"},
	}
	sort.Slice(items, func(i, j int) bool { return Less(items[i], items[j]) })

	want := []int64{1, 2, 3, 4}
	for i, id := range want {
		if items[i].MatchID != id {
			t.Fatalf("unexpected order at %d: got=%d want=%d", i, items[i].MatchID, id)
		}
	}
}
