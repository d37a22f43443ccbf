package team

// Team is a club of the fixtures store.
type Team struct {
	ID        int64
	Name      string
	ShortName string
	TLA       string
	Crest     string
	Founded   *int
	Venue     string
}
