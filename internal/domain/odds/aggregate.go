package odds

import (
	"sort"

	"github.com/shopspring/decimal"
)

// LatestTriple reduces snapshot rows to the most recent back price of each
// runner type. Runner types are resolved independently, so the three prices
// may come from different timestamps. Unknown runner types are ignored.
func LatestTriple(rows []Snapshot) Triple {
	latest := make(map[RunnerType]Snapshot, 3)
	for _, row := range rows {
		runner, ok := ParseRunnerType(row.RunnerType)
		if !ok {
			continue
		}
		current, seen := latest[runner]
		if !seen || newerSnapshot(row, current) {
			latest[runner] = row
		}
	}

	var out Triple
	out.HomeWin = backPrice(latest, RunnerHomeWin)
	out.Draw = backPrice(latest, RunnerDraw)
	out.AwayWin = backPrice(latest, RunnerAwayWin)
	return out
}

// GroupHistory folds a flat stream of snapshot rows into one point per exact
// timestamp, ordered ascending. The result does not depend on input order.
func GroupHistory(rows []Snapshot) []Point {
	byInstant := make(map[int64]*Point)
	for _, row := range rows {
		runner, ok := ParseRunnerType(row.RunnerType)
		if !ok {
			continue
		}

		key := row.Timestamp.UnixNano()
		point, exists := byInstant[key]
		if !exists {
			point = &Point{Timestamp: row.Timestamp}
			byInstant[key] = point
		}

		quote := row.Quote()
		slot := point.slot(runner)
		if *slot == nil || compareQuote(quote, **slot) > 0 {
			*slot = &quote
		}
	}

	out := make([]Point, 0, len(byInstant))
	for _, point := range byInstant {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out
}

func (p *Point) slot(runner RunnerType) **Quote {
	switch runner {
	case RunnerHomeWin:
		return &p.HomeWin
	case RunnerDraw:
		return &p.Draw
	default:
		return &p.AwayWin
	}
}

func backPrice(latest map[RunnerType]Snapshot, runner RunnerType) *decimal.Decimal {
	row, ok := latest[runner]
	if !ok || !row.BackPrice.Valid {
		return nil
	}
	price := row.BackPrice.Decimal
	return &price
}

// newerSnapshot reports whether a should replace b. Rows sharing a timestamp
// are resolved by price so the pick is stable across query plans.
func newerSnapshot(a, b Snapshot) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.After(b.Timestamp)
	}
	return compareQuote(a.Quote(), b.Quote()) > 0
}

func compareQuote(a, b Quote) int {
	for _, pair := range [][2]decimal.NullDecimal{
		{a.BackPrice, b.BackPrice},
		{a.LayPrice, b.LayPrice},
		{a.LastTraded, b.LastTraded},
		{a.TotalMatched, b.TotalMatched},
	} {
		if c := compareNullDecimal(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}

func compareNullDecimal(a, b decimal.NullDecimal) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	default:
		return a.Decimal.Cmp(b.Decimal)
	}
}
