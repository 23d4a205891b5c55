package seed

import (
	"context"
	"errors"
	"testing"

	"studio_interiors/internal/domain/entities"
	mock_interfaces "studio_interiors/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRun_CreatesMissingConfigsAndTemplates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	configRepo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
	estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)

	configRepo.EXPECT().FindActiveByTypeAndName(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RateConfig{}, nil).AnyTimes()
	created := 0
	configRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.RateConfig) (entities.RateConfig, error) {
		if c.ID == "" || !c.IsActive {
			t.Fatalf("expected active config with id, got %+v", c)
		}
		created++
		return c, nil
	}).AnyTimes()

	estimateRepo.EXPECT().ListByProjectID(gomock.Any(), SeedProjectID).Return(nil, nil)
	templates := 0
	estimateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
		if !e.IsTemplate || e.Status != entities.EstimateStatusTemplate {
			t.Fatalf("expected template estimate, got %+v", e)
		}
		if e.ProjectID != SeedProjectID {
			t.Fatalf("expected seed project id, got %q", e.ProjectID)
		}
		templates++
		return e, nil
	}).AnyTimes()

	if err := Run(context.Background(), configRepo, estimateRepo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != len(defaultRateConfigs()) {
		t.Fatalf("expected %d configs created, got %d", len(defaultRateConfigs()), created)
	}
	if templates != len(defaultTemplates()) {
		t.Fatalf("expected %d templates created, got %d", len(defaultTemplates()), templates)
	}
}

func TestRun_SkipsExistingRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	configRepo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
	estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)

	configRepo.EXPECT().FindActiveByTypeAndName(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, configType entities.ConfigType, name string) (entities.RateConfig, error) {
		return entities.RateConfig{ID: "existing", ConfigType: configType, Name: name, IsActive: true}, nil
	}).AnyTimes()

	existing := make([]entities.Estimate, 0, len(defaultTemplates()))
	for _, tpl := range defaultTemplates() {
		existing = append(existing, entities.Estimate{ID: "tpl", Title: tpl.Title, IsTemplate: true})
	}
	estimateRepo.EXPECT().ListByProjectID(gomock.Any(), SeedProjectID).Return(existing, nil)

	if err := Run(context.Background(), configRepo, estimateRepo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_PropagatesLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	configRepo := mock_interfaces.NewMockIRateConfigRepository(ctrl)
	estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)

	boom := errors.New("dynamo down")
	configRepo.EXPECT().FindActiveByTypeAndName(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.RateConfig{}, boom)

	if err := Run(context.Background(), configRepo, estimateRepo); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}
}
