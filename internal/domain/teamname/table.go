package teamname

import "strings"

// Table maps team names of the fixtures store to the names used by the odds
// store. It is immutable once built and safe for concurrent use.
type Table struct {
	names map[string]string
}

func NewTable(entries map[string]string) Table {
	names := make(map[string]string, len(entries))
	for from, to := range entries {
		key := strings.TrimSpace(from)
		value := strings.TrimSpace(to)
		if key == "" || value == "" {
			continue
		}
		names[key] = value
	}
	return Table{names: names}
}

// ResolveOddsName returns the odds store name for a fixtures store name. Unmapped
// names pass through unchanged.
func (t Table) ResolveOddsName(name string) string {
	if mapped, ok := t.names[strings.TrimSpace(name)]; ok {
		return mapped
	}
	return name
}

func (t Table) Len() int {
	return len(t.names)
}
