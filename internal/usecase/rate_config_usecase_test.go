package usecase

import (
	"context"
	"errors"
	"testing"

	"studio_interiors/internal/domain/entities"
	mock_interfaces "studio_interiors/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRateConfigUseCase_UpsertConfig(t *testing.T) {
	roomPayload := entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 2500, PerSqftRate: 25}}

	t.Run("invalid type", func(t *testing.T) {
		uc := NewRateConfigUseCase(nil)
		_, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{ConfigType: "tax", Name: "x", Config: roomPayload})
		if !errors.Is(err, ErrInvalidConfigType) {
			t.Fatalf("expected ErrInvalidConfigType, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		uc := NewRateConfigUseCase(nil)
		_, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{ConfigType: entities.ConfigTypeRoomType, Name: "  ", Config: roomPayload})
		if !errors.Is(err, ErrInvalidConfigName) {
			t.Fatalf("expected ErrInvalidConfigName, got %v", err)
		}
	})

	t.Run("payload type mismatch", func(t *testing.T) {
		uc := NewRateConfigUseCase(nil)
		_, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{
			ConfigType: entities.ConfigTypeService,
			Name:       "3D Rendering",
			Config:     roomPayload,
		})
		if !errors.Is(err, ErrInvalidConfigPayload) {
			t.Fatalf("expected ErrInvalidConfigPayload, got %v", err)
		}
	})

	t.Run("pricing accepts either flat or tiered payload, not both", func(t *testing.T) {
		uc := NewRateConfigUseCase(nil)
		_, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{
			ConfigType: entities.ConfigTypePricing,
			Name:       entities.BaseRatesConfigName,
			Config: entities.RateConfigPayload{
				Pricing: &entities.PricingRates{BaseRate: 20},
				Tiers:   &entities.TierRates{},
			},
		})
		if !errors.Is(err, ErrInvalidConfigPayload) {
			t.Fatalf("expected ErrInvalidConfigPayload, got %v", err)
		}
	})

	t.Run("negative rates rejected", func(t *testing.T) {
		uc := NewRateConfigUseCase(nil)
		cases := []struct {
			name       string
			configType entities.ConfigType
			payload    entities.RateConfigPayload
		}{
			{
				name:       "negative base rate",
				configType: entities.ConfigTypePricing,
				payload:    entities.RateConfigPayload{Pricing: &entities.PricingRates{BaseRate: -20, PerRoomRate: 1500, GSTRate: 0.05}},
			},
			{
				name:       "negative tier rate",
				configType: entities.ConfigTypePricing,
				payload:    entities.RateConfigPayload{Tiers: &entities.TierRates{Basic: entities.TierRate{Rate: 15}, Mid: entities.TierRate{Rate: -30}, Premium: entities.TierRate{Rate: 55}}},
			},
			{
				name:       "negative room rate",
				configType: entities.ConfigTypeRoomType,
				payload:    entities.RateConfigPayload{RoomType: &entities.RoomTypeRate{BaseRate: 2500, PerSqftRate: -1}},
			},
			{
				name:       "negative service rate",
				configType: entities.ConfigTypeService,
				payload:    entities.RateConfigPayload{Service: &entities.ServiceRate{BaseRate: -800}},
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{
					ConfigType: tc.configType,
					Name:       "x",
					Config:     tc.payload,
				})
				if !errors.Is(err, ErrNegativeRate) {
					t.Fatalf("expected ErrNegativeRate, got %v", err)
				}
			})
		}
	})

	t.Run("first version created active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewRateConfigUseCase(repo)

		repo.EXPECT().FindActiveByTypeAndName(gomock.Any(), entities.ConfigTypeRoomType, "Kitchen").Return(entities.RateConfig{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RateConfig{})).DoAndReturn(
			func(_ context.Context, c entities.RateConfig) (entities.RateConfig, error) {
				if c.ID == "" || !c.IsActive || c.Name != "Kitchen" {
					t.Fatalf("unexpected config: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       " Kitchen ",
			Config:     roomPayload,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsActive {
			t.Fatalf("expected active config")
		}
	})

	t.Run("new version deactivates prior active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewRateConfigUseCase(repo)

		prior := entities.RateConfig{ID: "cfg-old", ConfigType: entities.ConfigTypeRoomType, Name: "Kitchen", IsActive: true}
		repo.EXPECT().FindActiveByTypeAndName(gomock.Any(), entities.ConfigTypeRoomType, "Kitchen").Return(prior, nil)
		repo.EXPECT().DeactivateByID(gomock.Any(), "cfg-old").Return(prior, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RateConfig{})).DoAndReturn(
			func(_ context.Context, c entities.RateConfig) (entities.RateConfig, error) {
				if c.ID == "cfg-old" {
					t.Fatalf("new version must get its own id")
				}
				return c, nil
			},
		)

		if _, err := uc.UpsertConfig(context.Background(), UpsertRateConfigInput{
			ConfigType: entities.ConfigTypeRoomType,
			Name:       "Kitchen",
			Config:     roomPayload,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRateConfigUseCase_DeactivateConfig(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewRateConfigUseCase(repo)

		repo.EXPECT().FindActiveByTypeAndName(gomock.Any(), entities.ConfigTypeService, "3D Rendering").Return(entities.RateConfig{}, nil)

		_, err := uc.DeactivateConfig(context.Background(), entities.ConfigTypeService, "3D Rendering")
		if !errors.Is(err, ErrRateConfigNotFound) {
			t.Fatalf("expected ErrRateConfigNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewRateConfigUseCase(repo)

		active := entities.RateConfig{ID: "cfg-1", ConfigType: entities.ConfigTypeService, Name: "3D Rendering", IsActive: true}
		deactivated := active
		deactivated.IsActive = false
		repo.EXPECT().FindActiveByTypeAndName(gomock.Any(), entities.ConfigTypeService, "3D Rendering").Return(active, nil)
		repo.EXPECT().DeactivateByID(gomock.Any(), "cfg-1").Return(deactivated, nil)

		res, err := uc.DeactivateConfig(context.Background(), entities.ConfigTypeService, " 3D Rendering ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsActive {
			t.Fatalf("expected deactivated config")
		}
	})
}

func TestRateConfigUseCase_GetActiveByType(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		uc := NewRateConfigUseCase(nil)
		_, err := uc.GetActiveByType(context.Background(), "unknown")
		if !errors.Is(err, ErrInvalidConfigType) {
			t.Fatalf("expected ErrInvalidConfigType, got %v", err)
		}
	})

	t.Run("passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
		uc := NewRateConfigUseCase(repo)

		want := []entities.RateConfig{{ID: "cfg-1"}}
		repo.EXPECT().GetActiveByType(gomock.Any(), entities.ConfigTypePricing).Return(want, nil)

		got, err := uc.GetActiveByType(context.Background(), entities.ConfigTypePricing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "cfg-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
