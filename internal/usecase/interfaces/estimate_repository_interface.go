package interfaces

import (
	"context"
	"studio_interiors/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The service must be able to:
//   - create an estimate (draft or template) from the calculator's output
//   - drive explicit status transitions (send/approve/reject)
//   - replace the derived pricing fields wholesale on recalculation
//   - list the estimates attached to a project

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
