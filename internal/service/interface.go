package service

import (
	"context"

	"weather-entities/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	CreateEntity(ctx context.Context, req model.CreateEntityRequest) (*model.Entity, error)
	GetEntity(ctx context.Context, name string) (*model.Entity, error)
	UpdateEntity(ctx context.Context, name string, req model.UpdateEntityRequest) (*model.Entity, error)
	DeleteEntity(ctx context.Context, name string) error
	ListEntities(ctx context.Context, q model.ListQuery) ([]model.Entity, error)
}
