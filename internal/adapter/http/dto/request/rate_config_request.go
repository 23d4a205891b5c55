package request

import (
	"strings"
	"studio_interiors/internal/domain/entities"
)

// RateConfigRequest upserts one named rate configuration. Exactly one payload
// member must be set and it must match the config type; the use case enforces
// that pairing.
type RateConfigRequest struct {
	ConfigType string                     `json:"config_type" binding:"required,oneof=pricing room_type service"`
	Name       string                     `json:"name" binding:"required"`
	Config     entities.RateConfigPayload `json:"config" binding:"required"`
}

func (r RateConfigRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
