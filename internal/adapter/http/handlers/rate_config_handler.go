package handlers

import (
	"errors"
	"net/http"
	"strings"
	request "studio_interiors/internal/adapter/http/dto/request"
	response "studio_interiors/internal/adapter/http/dto/response"
	"studio_interiors/internal/domain/entities"
	"studio_interiors/internal/usecase"
	"studio_interiors/pkg"

	"github.com/gin-gonic/gin"
)

// RateConfigHandler handles HTTP requests for the rate catalogue.

type RateConfigHandler struct {
	usecase usecase.IRateConfigUseCase
}

func NewRateConfigHandler(uc usecase.IRateConfigUseCase) *RateConfigHandler {
	return &RateConfigHandler{usecase: uc}
}

// UpsertConfig publishes a new version of a named configuration. The prior
// active version with the same type and name is deactivated, never edited.
func (h *RateConfigHandler) UpsertConfig(c *gin.Context) {
	var payload request.RateConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid rate config payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.UpsertConfig(c.Request.Context(), usecase.UpsertRateConfigInput{
		ConfigType: entities.ConfigType(payload.ConfigType),
		Name:       payload.ResolveName(),
		Config:     payload.Config,
	})
	if err != nil {
		appErr := mapRateConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRateConfig(created))
}

// ListConfigsByType returns configurations of one type. By default only the
// active ones; ?all=true includes deactivated versions.
func (h *RateConfigHandler) ListConfigsByType(c *gin.Context) {
	configType := entities.ConfigType(strings.TrimSpace(c.Param("type")))

	var (
		configs []entities.RateConfig
		err     error
	)
	if strings.EqualFold(strings.TrimSpace(c.Query("all")), "true") {
		configs, err = h.usecase.ListByType(c.Request.Context(), configType)
	} else {
		configs, err = h.usecase.GetActiveByType(c.Request.Context(), configType)
	}
	if err != nil {
		appErr := mapRateConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateConfigs(configs))
}

// DeactivateConfig retires the active version of a named configuration.
func (h *RateConfigHandler) DeactivateConfig(c *gin.Context) {
	configType := entities.ConfigType(strings.TrimSpace(c.Param("type")))
	name := strings.TrimSpace(c.Param("name"))

	deactivated, err := h.usecase.DeactivateConfig(c.Request.Context(), configType, name)
	if err != nil {
		appErr := mapRateConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateConfig(deactivated))
}

func mapRateConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConfigType), errors.Is(err, usecase.ErrInvalidConfigName), errors.Is(err, usecase.ErrInvalidConfigPayload), errors.Is(err, usecase.ErrNegativeRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRateConfigNotFound):
		return pkg.NewDomainErrorSimple("RATE_CONFIG_NOT_FOUND", "Rate config not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
