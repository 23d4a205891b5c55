package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
//
// The requested scope only needs to create/process and persist an approved
// payment. The type supports a denied status for completeness.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// MilestonePayment is one collected installment against an approved estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// MercadoPago payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because different MP integrations
//     may vary in schema.

type MilestonePayment struct {
	ID             string        `json:"id"`
	EstimateID     string        `json:"estimate_id"`
	MilestoneIndex int           `json:"milestone_index"`
	Amount         float64       `json:"amount"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
