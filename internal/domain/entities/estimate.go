package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate.
//
// Domain notes:
//   - Status transitions are explicit caller actions (send/approve/reject);
//     nothing moves an estimate forward implicitly.
//   - Template records are reusable scope blueprints, never live quotes.

type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusTemplate EstimateStatus = "template"
)

// LineItemCategory labels one slice of the cost breakdown.

type LineItemCategory string

const (
	CategoryBase            LineItemCategory = "base"
	CategoryRooms           LineItemCategory = "rooms"
	CategoryFurniture       LineItemCategory = "furniture"
	CategoryAppliances      LineItemCategory = "appliances"
	CategoryLighting        LineItemCategory = "lighting"
	CategoryCustomMaterials LineItemCategory = "custom_materials"
	CategoryServices        LineItemCategory = "services"
)

// LineItem is one labeled entry of the cost breakdown. Amounts are derived by
// the calculator and never independently editable.
type LineItem struct {
	Label    string           `json:"label"`
	Category LineItemCategory `json:"category"`
	Amount   float64          `json:"amount"`
}

// Milestone is one percentage-based installment of the estimate total.
type Milestone struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

// Estimate is the priced estimate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
//
// The scope is an immutable snapshot of the inputs; recalculation replaces
// every derived field (line items, subtotal, GST, total, milestones) in one
// step, never a single line item in place.
type Estimate struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	ClientID             string         `json:"client_id,omitempty"`
	ProjectID            string         `json:"project_id,omitempty"`
	Scope                Scope          `json:"scope"`
	LineItems            []LineItem     `json:"line_items"`
	Subtotal             float64        `json:"subtotal"`
	GSTAmount            float64        `json:"gst_amount"`
	Total                float64        `json:"total"`
	MilestonePercentages []float64      `json:"milestone_percentages"`
	Milestones           []Milestone    `json:"milestones"`
	Status               EstimateStatus `json:"status"`
	IsTemplate           bool           `json:"is_template"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}
