// Package seed loads the initial rate catalogue and a few canonical scope
// templates. It is a one-time data-loading concern; the runtime calculator
// only ever reads what the repositories return.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase/interfaces"

	"github.com/google/uuid"
)

func defaultRateConfigs() []entities.RateConfig {
	return []entities.RateConfig{
		{
			ConfigType: entities.ConfigTypePricing,
			Name:       entities.BaseRatesConfigName,
			Config: entities.RateConfigPayload{
				Pricing: &entities.PricingRates{BaseRate: 20, PerRoomRate: 1500, GSTRate: 0.05, CustomMaterialsFee: 2500},
			},
		},
		{
			ConfigType: entities.ConfigTypePricing,
			Name:       entities.FurnitureConfigName,
			Config: entities.RateConfigPayload{
				Tiers: &entities.TierRates{
					Basic:   entities.TierRate{Rate: 15, Description: "Ready-made pieces from partner catalogues"},
					Mid:     entities.TierRate{Rate: 30, Description: "Mix of catalogue and semi-custom pieces"},
					Premium: entities.TierRate{Rate: 55, Description: "Fully custom and designer pieces"},
				},
			},
		},
		{
			ConfigType: entities.ConfigTypePricing,
			Name:       entities.AppliancesConfigName,
			Config: entities.RateConfigPayload{
				Tiers: &entities.TierRates{
					Basic:   entities.TierRate{Rate: 10, Description: "Standard domestic range"},
					Mid:     entities.TierRate{Rate: 20, Description: "Upper mid-range brands"},
					Premium: entities.TierRate{Rate: 40, Description: "Built-in premium appliances"},
				},
			},
		},
		{
			ConfigType: entities.ConfigTypePricing,
			Name:       entities.LightingConfigName,
			Config: entities.RateConfigPayload{
				Tiers: &entities.TierRates{
					Basic:   entities.TierRate{Rate: 6, Description: "Standard fixtures"},
					Mid:     entities.TierRate{Rate: 12, Description: "Layered lighting plan"},
					Premium: entities.TierRate{Rate: 25, Description: "Designer fixtures and smart controls"},
				},
			},
		},
		{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       "Kitchen",
			Config:     entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 2500, PerSqftRate: 25}},
		},
		{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       "Living Room",
			Config:     entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 1800, PerSqftRate: 18}},
		},
		{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       "Bedroom",
			Config:     entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 1500, PerSqftRate: 15}},
		},
		{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       "Bathroom",
			Config:     entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 2000, PerSqftRate: 30}},
		},
		{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       "Home Office",
			Config:     entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 1200, PerSqftRate: 12}},
		},
		{
			ConfigType: entities.ConfigTypeService,
			Name:       "3D Rendering",
			Config:     entities.RateConfigPayload{Service: &entities.ServiceRate{BaseRate: 800}},
		},
		{
			ConfigType: entities.ConfigTypeService,
			Name:       "Site Supervision",
			Config:     entities.RateConfigPayload{Service: &entities.ServiceRate{BaseRate: 1000, HasSqftComponent: true, PerSqftRate: 3}},
		},
		{
			ConfigType: entities.ConfigTypeService,
			Name:       "Procurement",
			Config:     entities.RateConfigPayload{Service: &entities.ServiceRate{BaseRate: 1200}},
		},
	}
}

func defaultTemplates() []entities.Estimate {
	return []entities.Estimate{
		{
			Title: "Two-room condo refresh",
			Scope: entities.Scope{
				ProjectType:        "residential",
				RoomCount:          2,
				Sqft:               900,
				LayoutType:         "open",
				Rooms:              []string{"Kitchen", "Living Room"},
				Furniture:          entities.TierMid,
				Appliances:         entities.TierMid,
				Lighting:           entities.TierMid,
				AdditionalServices: []string{"3D Rendering"},
			},
		},
		{
			Title: "Full apartment makeover",
			Scope: entities.Scope{
				ProjectType:        "residential",
				RoomCount:          4,
				Sqft:               1600,
				LayoutType:         "closed",
				Rooms:              []string{"Kitchen", "Living Room", "Bedroom", "Bathroom"},
				Furniture:          entities.TierPremium,
				Appliances:         entities.TierMid,
				Lighting:           entities.TierPremium,
				CustomMaterials:    true,
				AdditionalServices: []string{"3D Rendering", "Site Supervision"},
			},
		},
	}
}

// Run writes the default catalogue through the repositories. Configs that
// already have an active version keep it; templates are matched by title
// within the reserved seed project.
func Run(ctx context.Context, configRepo interfaces.IRateConfigRepository, estimateRepo interfaces.IEstimateRepository) error {
	now := time.Now().UTC()

	for _, cfg := range defaultRateConfigs() {
		existing, err := configRepo.FindActiveByTypeAndName(ctx, cfg.ConfigType, cfg.Name)
		if err != nil {
			return fmt.Errorf("seed: lookup %s/%s: %w", cfg.ConfigType, cfg.Name, err)
		}
		if existing.ID != "" {
			log.Printf("[seed] config exists type=%s name=%q id=%s", cfg.ConfigType, cfg.Name, existing.ID)
			continue
		}

		cfg.ID = uuid.New().String()
		cfg.IsActive = true
		cfg.CreatedAt = now
		cfg.UpdatedAt = now
		if _, err := configRepo.Create(ctx, cfg); err != nil {
			return fmt.Errorf("seed: create config %s/%s: %w", cfg.ConfigType, cfg.Name, err)
		}
		log.Printf("[seed] config created type=%s name=%q", cfg.ConfigType, cfg.Name)
	}

	existingTemplates, err := estimateRepo.ListByProjectID(ctx, SeedProjectID)
	if err != nil {
		return fmt.Errorf("seed: list templates: %w", err)
	}
	seen := make(map[string]bool, len(existingTemplates))
	for _, t := range existingTemplates {
		seen[t.Title] = true
	}

	for _, tpl := range defaultTemplates() {
		if seen[tpl.Title] {
			log.Printf("[seed] template exists title=%q", tpl.Title)
			continue
		}

		tpl.ID = uuid.New().String()
		tpl.ProjectID = SeedProjectID
		tpl.Status = entities.EstimateStatusTemplate
		tpl.IsTemplate = true
		tpl.CreatedAt = now
		tpl.UpdatedAt = now
		if _, err := estimateRepo.Create(ctx, tpl); err != nil {
			return fmt.Errorf("seed: create template %q: %w", tpl.Title, err)
		}
		log.Printf("[seed] template created title=%q", tpl.Title)
	}

	return nil
}

// SeedProjectID groups the canonical templates so they can be listed without
// scanning the whole table.
const SeedProjectID = "studio-templates"
