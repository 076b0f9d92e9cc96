package http

import (
	"trackfit-companion/internal/routine"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date"`
}

func (r createReq) toInput() routine.CreateInput {
	return routine.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		TargetDate:  r.TargetDate,
	}
}

type setCompletedReq struct {
	ID    string `json:"-"` // populated from URI param
	Value bool   `json:"value"`
}

func (r setCompletedReq) toInput() routine.SetCompletedInput {
	return routine.SetCompletedInput{ID: r.ID, Value: r.Value}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TargetDate  string `json:"target_date,omitempty"`
	Meta        string `json:"meta"`
	Completed   bool   `json:"completed"`
}

type listResp struct {
	Tasks      []taskResp `json:"tasks"`
	CountLabel string     `json:"count_label"`
}

func (h *handler) newListResp(out routine.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = taskResp{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			TargetDate:  t.TargetDate,
			Meta:        t.MetaLabel(),
			Completed:   t.Completed,
		}
	}
	return listResp{Tasks: tasks, CountLabel: out.CountLabel}
}
