package response

import (
	"studio_interiors/internal/domain/entities"
	"time"
)

type RateConfigResponse struct {
	ID         string                     `json:"id"`
	ConfigType string                     `json:"config_type"`
	Name       string                     `json:"name"`
	Config     entities.RateConfigPayload `json:"config"`
	IsActive   bool                       `json:"is_active"`
	CreatedAt  time.Time                  `json:"created_at"`
	UpdatedAt  time.Time                  `json:"updated_at"`
}

func FromRateConfig(c entities.RateConfig) RateConfigResponse {
	return RateConfigResponse{
		ID:         c.ID,
		ConfigType: string(c.ConfigType),
		Name:       c.Name,
		Config:     c.Config,
		IsActive:   c.IsActive,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromRateConfigs(configs []entities.RateConfig) []RateConfigResponse {
	out := make([]RateConfigResponse, 0, len(configs))
	for _, c := range configs {
		out = append(out, FromRateConfig(c))
	}
	return out
}
