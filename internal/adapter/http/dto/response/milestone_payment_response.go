package response

import (
	"studio_interiors/internal/domain/entities"
	"time"
)

type MilestonePaymentResponse struct {
	ID             string    `json:"id"`
	EstimateID     string    `json:"estimate_id"`
	MilestoneIndex int       `json:"milestone_index"`
	Amount         float64   `json:"amount"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromMilestonePayment(p entities.MilestonePayment) MilestonePaymentResponse {
	return MilestonePaymentResponse{
		ID:                 p.ID,
		EstimateID:         p.EstimateID,
		MilestoneIndex:     p.MilestoneIndex,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

func FromMilestonePayments(payments []entities.MilestonePayment) []MilestonePaymentResponse {
	out := make([]MilestonePaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromMilestonePayment(p))
	}
	return out
}
