package response

import (
	"studio_interiors/internal/domain/entities"
	"time"
)

type LineItemResponse struct {
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type MilestoneResponse struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

type EstimateResponse struct {
	ID                   string              `json:"id"`
	Title                string              `json:"title"`
	ClientID             string              `json:"client_id,omitempty"`
	ProjectID            string              `json:"project_id,omitempty"`
	Scope                entities.Scope      `json:"scope"`
	LineItems            []LineItemResponse  `json:"line_items"`
	Subtotal             float64             `json:"subtotal"`
	GSTAmount            float64             `json:"gst_amount"`
	Total                float64             `json:"total"`
	MilestonePercentages []float64           `json:"milestone_percentages,omitempty"`
	Milestones           []MilestoneResponse `json:"milestones"`
	Status               string              `json:"status"`
	IsTemplate           bool                `json:"is_template"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, it := range e.LineItems {
		items = append(items, LineItemResponse{Label: it.Label, Category: string(it.Category), Amount: it.Amount})
	}
	milestones := make([]MilestoneResponse, 0, len(e.Milestones))
	for _, m := range e.Milestones {
		milestones = append(milestones, MilestoneResponse{Percentage: m.Percentage, Amount: m.Amount})
	}
	return EstimateResponse{
		ID:                   e.ID,
		Title:                e.Title,
		ClientID:             e.ClientID,
		ProjectID:            e.ProjectID,
		Scope:                e.Scope,
		LineItems:            items,
		Subtotal:             e.Subtotal,
		GSTAmount:            e.GSTAmount,
		Total:                e.Total,
		MilestonePercentages: e.MilestonePercentages,
		Milestones:           milestones,
		Status:               string(e.Status),
		IsTemplate:           e.IsTemplate,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
