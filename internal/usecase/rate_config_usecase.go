package usecase

import (
	"context"
	"errors"
	"strings"
	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRateConfigNotFound   = errors.New("rate config not found")
	ErrInvalidConfigType    = errors.New("invalid config type")
	ErrInvalidConfigName    = errors.New("invalid config name")
	ErrInvalidConfigPayload = errors.New("config payload does not match config type")
	ErrNegativeRate         = errors.New("rate values must not be negative")
)

// UpsertRateConfigInput describes a new configuration version.
type UpsertRateConfigInput struct {
	ConfigType entities.ConfigType
	Name       string
	Config     entities.RateConfigPayload
}

// IRateConfigUseCase manages the versioned rate catalogue.
//
// Upserting never edits a record in place: the prior active version is
// deactivated (kept for history) and a fresh record becomes the active one.
// Read paths still apply the most-recent-wins tie-break, so duplicates
// written out-of-band cannot make a calculation ambiguous.

type IRateConfigUseCase interface {
	UpsertConfig(ctx context.Context, input UpsertRateConfigInput) (entities.RateConfig, error)
	DeactivateConfig(ctx context.Context, configType entities.ConfigType, name string) (entities.RateConfig, error)
	GetActiveByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error)
	ListByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error)
}

type RateConfigUseCase struct {
	repo interfaces.IRateConfigRepository
}

var _ IRateConfigUseCase = (*RateConfigUseCase)(nil)

func NewRateConfigUseCase(repo interfaces.IRateConfigRepository) *RateConfigUseCase {
	return &RateConfigUseCase{repo: repo}
}

func validConfigType(t entities.ConfigType) bool {
	switch t {
	case entities.ConfigTypePricing, entities.ConfigTypeRoomType, entities.ConfigTypeService:
		return true
	}
	return false
}

// payloadMatchesType rejects payloads that could never serve the config type
// they claim, so a broken record fails loudly at write time instead of
// surfacing as a missing-config error during a calculation.
func payloadMatchesType(t entities.ConfigType, p entities.RateConfigPayload) bool {
	switch t {
	case entities.ConfigTypePricing:
		return (p.Pricing != nil) != (p.Tiers != nil) && p.RoomType == nil && p.Service == nil
	case entities.ConfigTypeRoomType:
		return p.RoomType != nil && p.Pricing == nil && p.Tiers == nil && p.Service == nil
	case entities.ConfigTypeService:
		return p.Service != nil && p.Pricing == nil && p.Tiers == nil && p.RoomType == nil
	}
	return false
}

// payloadRatesNonNegative catches negative rate values at write time; a
// negative rate stored here would silently shrink every later calculation.
func payloadRatesNonNegative(p entities.RateConfigPayload) bool {
	nonNegative := func(values ...float64) bool {
		for _, v := range values {
			if v < 0 {
				return false
			}
		}
		return true
	}
	if p.Pricing != nil && !nonNegative(p.Pricing.BaseRate, p.Pricing.PerRoomRate, p.Pricing.GSTRate, p.Pricing.CustomMaterialsFee) {
		return false
	}
	if p.Tiers != nil && !nonNegative(p.Tiers.Basic.Rate, p.Tiers.Mid.Rate, p.Tiers.Premium.Rate) {
		return false
	}
	if p.RoomType != nil && !nonNegative(p.RoomType.BaseRate, p.RoomType.PerSqftRate) {
		return false
	}
	if p.Service != nil && !nonNegative(p.Service.BaseRate, p.Service.PerSqftRate) {
		return false
	}
	return true
}

func (u *RateConfigUseCase) UpsertConfig(ctx context.Context, input UpsertRateConfigInput) (entities.RateConfig, error) {
	if !validConfigType(input.ConfigType) {
		return entities.RateConfig{}, ErrInvalidConfigType
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.RateConfig{}, ErrInvalidConfigName
	}
	if !payloadMatchesType(input.ConfigType, input.Config) {
		return entities.RateConfig{}, ErrInvalidConfigPayload
	}
	if !payloadRatesNonNegative(input.Config) {
		return entities.RateConfig{}, ErrNegativeRate
	}

	prior, err := u.repo.FindActiveByTypeAndName(ctx, input.ConfigType, input.Name)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if prior.ID != "" {
		if _, err := u.repo.DeactivateByID(ctx, prior.ID); err != nil {
			return entities.RateConfig{}, err
		}
	}

	now := time.Now().UTC()
	c := entities.RateConfig{
		ID:         uuid.NewString(),
		ConfigType: input.ConfigType,
		Name:       input.Name,
		Config:     input.Config,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, c)
}

func (u *RateConfigUseCase) DeactivateConfig(ctx context.Context, configType entities.ConfigType, name string) (entities.RateConfig, error) {
	if !validConfigType(configType) {
		return entities.RateConfig{}, ErrInvalidConfigType
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.RateConfig{}, ErrInvalidConfigName
	}

	active, err := u.repo.FindActiveByTypeAndName(ctx, configType, name)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if active.ID == "" {
		return entities.RateConfig{}, ErrRateConfigNotFound
	}

	deactivated, err := u.repo.DeactivateByID(ctx, active.ID)
	if err != nil {
		return entities.RateConfig{}, err
	}
	if deactivated.ID == "" {
		return entities.RateConfig{}, ErrRateConfigNotFound
	}
	return deactivated, nil
}

func (u *RateConfigUseCase) GetActiveByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error) {
	if !validConfigType(configType) {
		return nil, ErrInvalidConfigType
	}
	return u.repo.GetActiveByType(ctx, configType)
}

func (u *RateConfigUseCase) ListByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error) {
	if !validConfigType(configType) {
		return nil, ErrInvalidConfigType
	}
	return u.repo.ListByType(ctx, configType)
}
