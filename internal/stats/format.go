package stats

import (
	"fmt"
	"math"

	"trackfit-companion/pkg/trackfit"
)

// Format renders raw overview numbers for display.
func Format(s trackfit.OverviewStats) Overview {
	avg := int(math.Round(s.AverageDurationMinutes))
	return Overview{
		Streak:          fmt.Sprintf("%d days", s.CurrentStreakDays),
		Consistency:     fmt.Sprintf("%d%%", int(math.Round(s.RoutineConsistencyPercent))),
		Workouts:        fmt.Sprintf("%d", s.TotalWorkoutsLogged),
		AverageDuration: fmt.Sprintf("%d min", avg),
		ConsistencyNote: fmt.Sprintf("vs last 30 days · avg %d min", avg),
	}
}
