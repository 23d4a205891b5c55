package pricing

import (
	"studio_interiors/internal/domain/entities"
)

type snapshotKey struct {
	configType entities.ConfigType
	name       string
}

// Snapshot is an in-memory view of the active rate configurations used for a
// single calculation. The caller builds one per call (the only step that may
// perform I/O happens before, when fetching the configs); the snapshot itself
// is immutable and safe to share.
//
// Duplicate active configs for the same (config_type, name) pair are resolved
// by most recent UpdatedAt; on an exact timestamp tie the first one seen wins.
// Inactive configs are dropped outright: "found but inactive" and "not found"
// are the same hard error to the calculator.
type Snapshot struct {
	configs map[snapshotKey]entities.RateConfig
}

// NewSnapshot builds a snapshot from raw config records, keeping only active
// ones and applying the duplicate tie-break.
func NewSnapshot(configs []entities.RateConfig) Snapshot {
	m := make(map[snapshotKey]entities.RateConfig, len(configs))
	for _, c := range configs {
		if !c.IsActive {
			continue
		}
		k := snapshotKey{configType: c.ConfigType, name: c.Name}
		if existing, ok := m[k]; ok && !c.UpdatedAt.After(existing.UpdatedAt) {
			continue
		}
		m[k] = c
	}
	return Snapshot{configs: m}
}

// Len reports how many distinct active configs the snapshot holds.
func (s Snapshot) Len() int {
	return len(s.configs)
}

func (s Snapshot) lookup(configType entities.ConfigType, name string) (entities.RateConfig, error) {
	c, ok := s.configs[snapshotKey{configType: configType, name: name}]
	if !ok {
		return entities.RateConfig{}, &ConfigNotFoundError{ConfigType: configType, Name: name}
	}
	return c, nil
}

// BaseRates resolves the flat base-rates pricing config the calculator
// requires for every estimate.
func (s Snapshot) BaseRates() (entities.PricingRates, error) {
	c, err := s.lookup(entities.ConfigTypePricing, entities.BaseRatesConfigName)
	if err != nil {
		return entities.PricingRates{}, err
	}
	if c.Config.Pricing == nil {
		// A config whose payload cannot serve its type is as unusable as a
		// missing one.
		return entities.PricingRates{}, &ConfigNotFoundError{ConfigType: c.ConfigType, Name: c.Name}
	}
	return *c.Config.Pricing, nil
}

// TierRates resolves a tiered pricing config (furniture, appliances, lighting).
func (s Snapshot) TierRates(name string) (entities.TierRates, error) {
	c, err := s.lookup(entities.ConfigTypePricing, name)
	if err != nil {
		return entities.TierRates{}, err
	}
	if c.Config.Tiers == nil {
		return entities.TierRates{}, &ConfigNotFoundError{ConfigType: c.ConfigType, Name: c.Name}
	}
	return *c.Config.Tiers, nil
}

// RoomType resolves a room-type rate config by room name.
func (s Snapshot) RoomType(name string) (entities.RoomTypeRate, error) {
	c, err := s.lookup(entities.ConfigTypeRoomType, name)
	if err != nil {
		return entities.RoomTypeRate{}, err
	}
	if c.Config.RoomType == nil {
		return entities.RoomTypeRate{}, &ConfigNotFoundError{ConfigType: c.ConfigType, Name: c.Name}
	}
	return *c.Config.RoomType, nil
}

// Service resolves an additional-service rate config by service name.
func (s Snapshot) Service(name string) (entities.ServiceRate, error) {
	c, err := s.lookup(entities.ConfigTypeService, name)
	if err != nil {
		return entities.ServiceRate{}, err
	}
	if c.Config.Service == nil {
		return entities.ServiceRate{}, &ConfigNotFoundError{ConfigType: c.ConfigType, Name: c.Name}
	}
	return *c.Config.Service, nil
}
