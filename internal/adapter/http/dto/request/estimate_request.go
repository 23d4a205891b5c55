package request

import (
	"strings"
	"studio_interiors/internal/domain/entities"
)

// ScopeRequest is the API shape of an estimate scope. Binding tags reject
// structurally malformed input at the edge; the pricing engine re-validates
// the assembled scope so nothing depends on this layer alone.
type ScopeRequest struct {
	ProjectType        string   `json:"project_type" binding:"required"`
	RoomCount          int      `json:"room_count" binding:"min=0"`
	Sqft               int      `json:"sqft" binding:"min=0"`
	LayoutType         string   `json:"layout_type"`
	Rooms              []string `json:"rooms"`
	Furniture          string   `json:"furniture" binding:"required,oneof=basic mid premium"`
	Appliances         string   `json:"appliances" binding:"required,oneof=basic mid premium"`
	Lighting           string   `json:"lighting" binding:"required,oneof=basic mid premium"`
	CustomMaterials    bool     `json:"custom_materials"`
	AdditionalServices []string `json:"additional_services"`
	Comments           string   `json:"comments"`
}

// ToScope maps the request onto the domain scope, trimming identifier-ish
// fields on the way in.
func (r ScopeRequest) ToScope() entities.Scope {
	rooms := make([]string, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, strings.TrimSpace(room))
	}
	services := make([]string, 0, len(r.AdditionalServices))
	for _, svc := range r.AdditionalServices {
		services = append(services, strings.TrimSpace(svc))
	}
	return entities.Scope{
		ProjectType:        strings.TrimSpace(r.ProjectType),
		RoomCount:          r.RoomCount,
		Sqft:               r.Sqft,
		LayoutType:         strings.TrimSpace(r.LayoutType),
		Rooms:              rooms,
		Furniture:          entities.Tier(r.Furniture),
		Appliances:         entities.Tier(r.Appliances),
		Lighting:           entities.Tier(r.Lighting),
		CustomMaterials:    r.CustomMaterials,
		AdditionalServices: services,
		Comments:           r.Comments,
	}
}

// CreateEstimateRequest creates a priced draft from a scope.
type CreateEstimateRequest struct {
	Title                string       `json:"title" binding:"required"`
	ClientID             string       `json:"client_id"`
	ProjectID            string       `json:"project_id"`
	Scope                ScopeRequest `json:"scope" binding:"required"`
	MilestonePercentages []float64    `json:"milestone_percentages"`
}

// CreateFromTemplateRequest instantiates a stored template; the scope comes
// from the template, only metadata is supplied here.
type CreateFromTemplateRequest struct {
	Title                string    `json:"title" binding:"required"`
	ClientID             string    `json:"client_id"`
	ProjectID            string    `json:"project_id"`
	MilestonePercentages []float64 `json:"milestone_percentages"`
}

// SaveAsTemplateRequest names the template built from an existing estimate.
type SaveAsTemplateRequest struct {
	Title string `json:"title" binding:"required"`
}
