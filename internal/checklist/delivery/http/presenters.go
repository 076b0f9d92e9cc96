package http

import (
	"trackfit-companion/internal/checklist"
)

// --- Request DTOs ---

type addItemReq struct {
	Title string `json:"title"`
}

func (r addItemReq) toInput() checklist.AddItemInput {
	return checklist.AddItemInput{Title: r.Title}
}

type togglePhaseReq struct {
	ItemID string `json:"-"` // populated from URI param
	Phase  int    `json:"-"` // populated from URI param, -1 when not a number
	Value  bool   `json:"value"`
}

func (r togglePhaseReq) toInput() checklist.TogglePhaseInput {
	return checklist.TogglePhaseInput{
		ItemID: r.ItemID,
		Phase:  r.Phase,
		Value:  r.Value,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Phases         []bool `json:"phases"`
	StatusLabel    string `json:"status_label"`
	StatusCategory string `json:"status_category"`
}

type summaryResp struct {
	CompleteCount int    `json:"complete_count"`
	TotalCount    int    `json:"total_count"`
	Text          string `json:"text"`
}

type renderResp struct {
	UserKey string      `json:"user_key"`
	Items   []itemResp  `json:"items"`
	Summary summaryResp `json:"summary"`
}

func newRenderResp(m checklist.RenderModel) renderResp {
	items := make([]itemResp, len(m.Items))
	for i, v := range m.Items {
		items[i] = itemResp{
			ID:             v.ID,
			Title:          v.Title,
			Phases:         v.Phases[:],
			StatusLabel:    v.StatusLabel,
			StatusCategory: string(v.StatusCategory),
		}
	}
	return renderResp{
		UserKey: m.UserKey,
		Items:   items,
		Summary: summaryResp{
			CompleteCount: m.Summary.CompleteCount,
			TotalCount:    m.Summary.TotalCount,
			Text:          m.Summary.Text(),
		},
	}
}

type addItemResp struct {
	Added bool       `json:"added"`
	ID    string     `json:"id,omitempty"`
	Model renderResp `json:"model"`
}

func (h *handler) newAddItemResp(out checklist.AddItemOutput) addItemResp {
	return addItemResp{Added: out.Added, ID: out.Item.ID, Model: newRenderResp(out.Model)}
}

type togglePhaseResp struct {
	Toggled bool       `json:"toggled"`
	Model   renderResp `json:"model"`
}

func (h *handler) newTogglePhaseResp(out checklist.TogglePhaseOutput) togglePhaseResp {
	return togglePhaseResp{Toggled: out.Toggled, Model: newRenderResp(out.Model)}
}

type removeItemResp struct {
	Removed bool       `json:"removed"`
	Model   renderResp `json:"model"`
}

func (h *handler) newRemoveItemResp(out checklist.RemoveItemOutput) removeItemResp {
	return removeItemResp{Removed: out.Removed, Model: newRenderResp(out.Model)}
}
