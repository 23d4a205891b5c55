package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"studio_interiors/internal/domain/entities"
	mock_interfaces "studio_interiors/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedEstimate() entities.Estimate {
	return entities.Estimate{
		ID:     "e-1",
		Status: entities.EstimateStatusApproved,
		Total:  33127.50,
		Milestones: []entities.Milestone{
			{Percentage: 40, Amount: 13251.00},
			{Percentage: 40, Amount: 13251.00},
			{Percentage: 20, Amount: 12625.50},
		},
	}
}

func TestMilestonePaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"client@example.com"}}`)

	t.Run("invalid estimate id", func(t *testing.T) {
		uc := NewMilestonePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "  ", 0, payload)
		if !errors.Is(err, ErrInvalidPaymentEstimateID) {
			t.Fatalf("expected ErrInvalidPaymentEstimateID, got %v", err)
		}
	})

	t.Run("negative milestone index", func(t *testing.T) {
		uc := NewMilestonePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "e-1", -1, payload)
		if !errors.Is(err, ErrInvalidMilestoneIndex) {
			t.Fatalf("expected ErrInvalidMilestoneIndex, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMilestonePaymentUseCase(nil, nil, gateway)

		_, err := uc.CreateAndApprove(context.Background(), "e-1", 0, json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMilestonePaymentUseCase(nil, estimateRepo, gateway)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Status: entities.EstimateStatusSent}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "e-1", 0, payload)
		if !errors.Is(err, ErrEstimateNotApproved) {
			t.Fatalf("expected ErrEstimateNotApproved, got %v", err)
		}
	})

	t.Run("milestone index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMilestonePaymentUseCase(nil, estimateRepo, gateway)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(approvedEstimate(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "e-1", 3, payload)
		if !errors.Is(err, ErrInvalidMilestoneIndex) {
			t.Fatalf("expected ErrInvalidMilestoneIndex, got %v", err)
		}
	})

	t.Run("gateway amount comes from stored milestone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMilestonePaymentRepository(ctrl)
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMilestonePaymentUseCase(repo, estimateRepo, gateway)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(approvedEstimate(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(requestPayload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if got := m["transaction_amount"].(float64); got != 12625.50 {
					t.Fatalf("transaction_amount = %v, want stored milestone amount", got)
				}
				if m["external_reference"] != "e-1#2" {
					t.Fatalf("external_reference = %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.MilestonePayment{})).DoAndReturn(
			func(_ context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error) {
				if p.ID != "mp-1" || p.EstimateID != "e-1" || p.MilestoneIndex != 2 || p.Amount != 12625.50 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusApproved {
					t.Fatalf("expected approved payment, got %s", p.Status)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "e-1", 2, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("unexpected payment id: %s", res.ID)
		}
	})

	t.Run("gateway errors classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMilestonePaymentRepository(ctrl)
		estimateRepo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMilestonePaymentUseCase(repo, estimateRepo, gateway)

		estimateRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(approvedEstimate(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "e-1", 0, payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}

func TestMilestonePaymentUseCase_Queries(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMilestonePaymentRepository(ctrl)
		uc := NewMilestonePaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.MilestonePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrMilestonePaymentNotFound) {
			t.Fatalf("expected ErrMilestonePaymentNotFound, got %v", err)
		}
	})

	t.Run("list by estimate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMilestonePaymentRepository(ctrl)
		uc := NewMilestonePaymentUseCase(repo, nil, nil)

		want := []entities.MilestonePayment{{ID: "p-1", EstimateID: "e-1"}}
		repo.EXPECT().ListByEstimateID(gomock.Any(), "e-1").Return(want, nil)

		got, err := uc.ListByEstimateID(context.Background(), " e-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
