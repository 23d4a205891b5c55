package interfaces

import (
	"context"
	"studio_interiors/internal/domain/entities"
)

// IMilestonePaymentRepository abstracts DynamoDB persistence for MilestonePayment.

type IMilestonePaymentRepository interface {
	Create(ctx context.Context, p entities.MilestonePayment) (entities.MilestonePayment, error)
	GetByID(ctx context.Context, id string) (entities.MilestonePayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.MilestonePayment, error)
}
