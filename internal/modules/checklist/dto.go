package checklist

import (
	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type ChecklistRequest struct {
	Checked []string `json:"checked"`
}

type ProgressResponse struct {
	Checked        []string `json:"checked"`
	CheckedCount   int      `json:"checked_count"`
	Total          int      `json:"total"`
	Progress       float64  `json:"progress"`
	Complete       bool     `json:"complete"`
	ShowCompletion bool     `json:"show_completion"`
}

type PageResponse struct {
	Items   []flow.ChecklistItem `json:"items"`
	Booking domain.Booking       `json:"booking"`
	ProgressResponse
}

type CompleteResponse struct {
	Booking domain.Booking `json:"booking"`
	Next    string         `json:"next"`
}

func toProgress(cl *flow.Checklist) ProgressResponse {
	return ProgressResponse{
		Checked:        cl.Checked(),
		CheckedCount:   cl.CheckedCount(),
		Total:          cl.Total(),
		Progress:       cl.Progress(),
		Complete:       cl.IsComplete(),
		ShowCompletion: cl.ShowCompletion(),
	}
}
