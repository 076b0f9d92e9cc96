package stats

// Overview is the formatted overview shown on the hero, history and profile sections.
type Overview struct {
	Streak          string // "N days"
	Consistency     string // "P%"
	Workouts        string // "N"
	AverageDuration string // "M min"
	ConsistencyNote string // "vs last 30 days · avg M min"
}
