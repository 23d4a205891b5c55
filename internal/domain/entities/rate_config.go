package entities

import "time"

// ConfigType groups rate configurations by what they price.
//
// The set is closed by convention: new pricing concerns get a new name here,
// never a free-form string at the call site.

type ConfigType string

const (
	ConfigTypePricing  ConfigType = "pricing"
	ConfigTypeRoomType ConfigType = "room_type"
	ConfigTypeService  ConfigType = "service"
)

// Tier is a quality level for furniture, appliances or lighting.

type Tier string

const (
	TierBasic   Tier = "basic"
	TierMid     Tier = "mid"
	TierPremium Tier = "premium"
)

// PricingRates is the flat-rate payload of the "base_rates" pricing config.
//
// Monetary representation:
//   - BaseRate and the per-* rates are currency units per sqft/room.
//   - GSTRate is a fraction (0.05 = 5%).
type PricingRates struct {
	BaseRate           float64 `json:"base_rate"`
	PerRoomRate        float64 `json:"per_room_rate"`
	GSTRate            float64 `json:"gst_rate"`
	CustomMaterialsFee float64 `json:"custom_materials_fee"`
}

// TierRate is one quality level inside a tiered pricing config.
type TierRate struct {
	Rate        float64 `json:"rate"`
	Description string  `json:"description,omitempty"`
}

// TierRates is the payload of a tiered pricing config (furniture, appliances,
// lighting). Rates are per sqft.
type TierRates struct {
	Basic   TierRate `json:"basic"`
	Mid     TierRate `json:"mid"`
	Premium TierRate `json:"premium"`
}

// ByTier resolves a quality level to its rate entry.
func (t TierRates) ByTier(tier Tier) (TierRate, bool) {
	switch tier {
	case TierBasic:
		return t.Basic, true
	case TierMid:
		return t.Mid, true
	case TierPremium:
		return t.Premium, true
	}
	return TierRate{}, false
}

// RoomTypeRate is the payload of a room_type config: a flat fee for including
// the room plus a multiplier against the room's allocated square footage.
type RoomTypeRate struct {
	BaseRate    float64 `json:"base_rate"`
	PerSqftRate float64 `json:"per_sqft_rate"`
}

// ServiceRate is the payload of a service config. PerSqftRate only applies
// when HasSqftComponent is set.
type ServiceRate struct {
	BaseRate         float64 `json:"base_rate"`
	HasSqftComponent bool    `json:"has_sqft_component"`
	PerSqftRate      float64 `json:"per_sqft_rate,omitempty"`
}

// RateConfigPayload holds exactly one payload shape, selected by the owning
// config's ConfigType. Unused members stay nil.
type RateConfigPayload struct {
	Pricing  *PricingRates `json:"pricing,omitempty"`
	Tiers    *TierRates    `json:"tiers,omitempty"`
	RoomType *RoomTypeRate `json:"room_type,omitempty"`
	Service  *ServiceRate  `json:"service,omitempty"`
}

// RateConfig is a named, versioned rate record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (config_type-index): config_type
//
// Invariant: the calculator uses at most one active config per
// (config_type, name) pair; duplicates are resolved by most recent UpdatedAt.
type RateConfig struct {
	ID         string            `json:"id"`
	ConfigType ConfigType        `json:"config_type"`
	Name       string            `json:"name"`
	Config     RateConfigPayload `json:"config"`
	IsActive   bool              `json:"is_active"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// BaseRatesConfigName is the pricing config the calculator requires: flat
// base rates, per-room fee, GST rate and the custom-materials fee.
const BaseRatesConfigName = "base_rates"

// Tiered pricing config names, one per quality-tiered category.
const (
	FurnitureConfigName  = "furniture"
	AppliancesConfigName = "appliances"
	LightingConfigName   = "lighting"
)
