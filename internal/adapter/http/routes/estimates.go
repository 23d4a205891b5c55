package routes

import (
	"studio_interiors/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates   = "/estimates"
	PathRateConfigs = "/rate-configs"
	PathPayments    = "/payments"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, rateConfigHandler *handlers.RateConfigHandler, paymentHandler *handlers.MilestonePaymentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PATCH("/:id/send", estimateHandler.SendEstimate)
		estimates.PATCH("/:id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:id/reject", estimateHandler.RejectEstimate)
		estimates.POST("/:id/recalculate", estimateHandler.RecalculateEstimate)
		estimates.POST("/:id/template", estimateHandler.SaveAsTemplate)
		estimates.POST("/from-template/:template_id", estimateHandler.CreateFromTemplate)
	}

	rateConfigs := rg.Group(PathRateConfigs)
	{
		rateConfigs.POST("", rateConfigHandler.UpsertConfig)
		rateConfigs.GET("/:type", rateConfigHandler.ListConfigsByType)
		rateConfigs.PATCH("/:type/:name/deactivate", rateConfigHandler.DeactivateConfig)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id/milestones/:index", paymentHandler.CreatePaymentByMilestone)
		payments.GET("/:estimate_id", paymentHandler.ListPaymentsByEstimateID)
	}
}
