package interfaces

import (
	"context"
	"studio_interiors/internal/domain/entities"
)

// IRateConfigRepository abstracts DynamoDB persistence for RateConfig.
//
// Inactive records are retained for history; the calculator only ever sees
// what GetActiveByType returns.

type IRateConfigRepository interface {
	Create(ctx context.Context, c entities.RateConfig) (entities.RateConfig, error)
	GetByID(ctx context.Context, id string) (entities.RateConfig, error)
	GetActiveByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error)
	FindActiveByTypeAndName(ctx context.Context, configType entities.ConfigType, name string) (entities.RateConfig, error)
	ListByType(ctx context.Context, configType entities.ConfigType) ([]entities.RateConfig, error)
	DeactivateByID(ctx context.Context, id string) (entities.RateConfig, error)
}
