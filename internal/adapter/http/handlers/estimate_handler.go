package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	request "studio_interiors/internal/adapter/http/dto/request"
	response "studio_interiors/internal/adapter/http/dto/response"
	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/domain/pricing"
	"studio_interiors/internal/usecase"
	"studio_interiors/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for pricing estimates.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate prices the submitted scope against the active rate
// configuration and stores the result as a draft.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	input := usecase.CreateEstimateInput{
		Title:                strings.TrimSpace(payload.Title),
		ClientID:             strings.TrimSpace(payload.ClientID),
		ProjectID:            strings.TrimSpace(payload.ProjectID),
		Scope:                payload.Scope.ToScope(),
		MilestonePercentages: payload.MilestonePercentages,
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), input)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimates returns all estimates attached to a project.
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	projectID := strings.TrimSpace(c.Query("project_id"))
	if projectID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "project_id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	estimates, err := h.usecase.ListByProjectID(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.SendEstimate)
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.ApproveEstimate)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.RejectEstimate)
}

// RecalculateEstimate reprices an estimate against the current active rates.
// The scope is kept; every derived field is replaced.
func (h *EstimateHandler) RecalculateEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.RecalculateEstimate)
}

// SaveAsTemplate stores the scope of an estimate as a reusable template.
func (h *EstimateHandler) SaveAsTemplate(c *gin.Context) {
	var payload request.SaveAsTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	template, err := h.usecase.SaveAsTemplate(c.Request.Context(), c.Param("id"), strings.TrimSpace(payload.Title))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(template))
}

// CreateFromTemplate prices a fresh estimate from a stored template scope.
// Pricing always runs against the active rates, never the template's totals.
func (h *EstimateHandler) CreateFromTemplate(c *gin.Context) {
	var payload request.CreateFromTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	input := usecase.CreateEstimateInput{
		Title:                strings.TrimSpace(payload.Title),
		ClientID:             strings.TrimSpace(payload.ClientID),
		ProjectID:            strings.TrimSpace(payload.ProjectID),
		MilestonePercentages: payload.MilestonePercentages,
	}

	estimate, err := h.usecase.CreateFromTemplate(c.Request.Context(), c.Param("template_id"), input)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func mapEstimateError(err error) *pkg.AppError {
	var cfgErr *pricing.ConfigNotFoundError
	var scopeErr *pricing.InvalidScopeError
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidEstimateTitle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &scopeErr):
		return pkg.NewDomainErrorSimple("INVALID_SCOPE", scopeErr.Error(), http.StatusBadRequest)
	case errors.Is(err, pricing.ErrInvalidMilestones):
		return pkg.NewDomainErrorSimple("INVALID_MILESTONES", "Milestone percentages must have 2 or 3 non-negative entries summing to 100", http.StatusBadRequest)
	case errors.As(err, &cfgErr):
		return pkg.NewDomainErrorSimple("RATE_CONFIG_MISSING", cfgErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrNotTemplate):
		return pkg.NewDomainErrorSimple("NOT_A_TEMPLATE", "Estimate is not a template", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateIsTemplate):
		return pkg.NewDomainErrorSimple("ESTIMATE_IS_TEMPLATE", "Operation not allowed on a template", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition), errors.Is(err, usecase.ErrEstimateFinalized):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate status does not allow this operation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
