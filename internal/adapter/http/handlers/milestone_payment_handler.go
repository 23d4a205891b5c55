package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	response "studio_interiors/internal/adapter/http/dto/response"
	"studio_interiors/internal/usecase"
	"studio_interiors/pkg"

	"github.com/gin-gonic/gin"
)

// MilestonePaymentHandler handles HTTP requests for milestone payments.

type MilestonePaymentHandler struct {
	usecase usecase.IMilestonePaymentUseCase
}

func NewMilestonePaymentHandler(uc usecase.IMilestonePaymentUseCase) *MilestonePaymentHandler {
	return &MilestonePaymentHandler{usecase: uc}
}

// CreatePaymentByMilestone creates/approves a payment for one milestone of an
// approved estimate. The charged amount comes from the stored milestone, not
// from the request body.
func (h *MilestonePaymentHandler) CreatePaymentByMilestone(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	index, err := strconv.Atoi(strings.TrimSpace(c.Param("index")))
	if err != nil {
		log.Printf("[payment][handler] invalid milestone index estimate_id=%s raw=%q", estimateID, c.Param("index"))
		appErr := pkg.NewDomainErrorSimple("INVALID_MILESTONE_INDEX", "Milestone index must be an integer", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start estimate_id=%s milestone=%d", estimateID, index)

	mockMode := isPaymentGatewayMockEnabled()
	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload estimate_id=%s err=%v", estimateID, err)
			providerPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload estimate_id=%s err=%v", estimateID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), estimateID, index, providerPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed estimate_id=%s milestone=%d err=%v", estimateID, index, err)
		appErr := mapMilestonePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success estimate_id=%s milestone=%d payment_id=%s status=%s", estimateID, index, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromMilestonePayment(created))
}

// ListPaymentsByEstimateID returns every recorded payment for an estimate.
func (h *MilestonePaymentHandler) ListPaymentsByEstimateID(c *gin.Context) {
	estimateID := c.Param("estimate_id")
	log.Printf("[payment][handler] list-by-estimate start estimate_id=%s", estimateID)

	payments, err := h.usecase.ListByEstimateID(c.Request.Context(), estimateID)
	if err != nil {
		log.Printf("[payment][handler] list-by-estimate failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapMilestonePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] list-by-estimate not-found estimate_id=%s", estimateID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] list-by-estimate success estimate_id=%s count=%d", estimateID, len(payments))

	c.JSON(http.StatusOK, response.FromMilestonePayments(payments))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapMilestonePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentEstimateID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMilestoneIndex):
		return pkg.NewDomainErrorSimple("INVALID_MILESTONE_INDEX", "Milestone index out of range for this estimate", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateIsTemplate):
		return pkg.NewDomainErrorSimple("ESTIMATE_IS_TEMPLATE", "Templates cannot be paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestonePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
