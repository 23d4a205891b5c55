package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio_interiors/internal/adapter/http/handlers/mocks"
	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMilestonePaymentHandler_CreatePaymentByMilestone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/first", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/0", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid body tolerated in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", 0, json.RawMessage("{}")).Return(entities.MilestonePayment{ID: "pay-1", EstimateID: "est-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/0", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrapped provider_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", 1, json.RawMessage(`{"payment_method_id":"pix"}`)).Return(entities.MilestonePayment{ID: "pay-1", EstimateID: "est-1", MilestoneIndex: 1, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/1", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("estimate not approved maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", 0, gomock.Any()).Return(entities.MilestonePayment{}, usecase.ErrEstimateNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/0", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("index out of range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", 5, gomock.Any()).Return(entities.MilestonePayment{}, usecase.ErrInvalidMilestoneIndex)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/5", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:estimate_id/milestones/:index", h.CreatePaymentByMilestone)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", 2, gomock.Any()).Return(entities.MilestonePayment{ID: "pay-1", EstimateID: "est-1", MilestoneIndex: 2, Amount: 12625.50, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1/milestones/2", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["milestone_index"] != 2.0 || body["amount"] != 12625.50 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMilestonePaymentHandler_ListPaymentsByEstimateID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.ListPaymentsByEstimateID)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMilestonePaymentUseCase(ctrl)
		h := NewMilestonePaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.ListPaymentsByEstimateID)

		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.MilestonePayment{
			{ID: "pay-1", EstimateID: "est-1", MilestoneIndex: 0},
			{ID: "pay-2", EstimateID: "est-1", MilestoneIndex: 1},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapMilestonePaymentError(t *testing.T) {
	if got := mapMilestonePaymentError(usecase.ErrInvalidProviderPayload); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMilestonePaymentError(usecase.ErrInvalidMilestoneIndex); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMilestonePaymentError(usecase.ErrPaymentGatewayUnauthorized); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapMilestonePaymentError(usecase.ErrEstimateNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapMilestonePaymentError(usecase.ErrEstimateNotApproved); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapMilestonePaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock mode off")
	}
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock mode on")
	}
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected fallback env to enable mock mode")
	}
}
