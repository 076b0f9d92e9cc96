package http

import (
	"trackfit-companion/internal/stats"
)

type overviewResp struct {
	Streak          string `json:"streak"`
	Consistency     string `json:"consistency"`
	Workouts        string `json:"workouts"`
	AverageDuration string `json:"average_duration"`
	ConsistencyNote string `json:"consistency_note"`
}

func (h *handler) newOverviewResp(o stats.Overview) overviewResp {
	return overviewResp{
		Streak:          o.Streak,
		Consistency:     o.Consistency,
		Workouts:        o.Workouts,
		AverageDuration: o.AverageDuration,
		ConsistencyNote: o.ConsistencyNote,
	}
}
