package service

import (
	"context"
	"fmt"

	"weather-entities/internal/model"
	"weather-entities/internal/weather"
)

const (
	defaultLimit  = 10
	defaultSortBy = "name"
)

// CreateEntity enriches the payload with the upstream weather history and
// persists it. Client-supplied temperature values are discarded; the stored
// values always come from the reduction. Any failure before the insert
// leaves no partial record.
func (s *Service) CreateEntity(ctx context.Context, req model.CreateEntityRequest) (*model.Entity, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}

	place := fmt.Sprintf("%s, %s", req.TownName, req.CountryName)

	result, err := s.weather.FetchTimeline(ctx, place, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	summary, err := weather.Reduce(result.Days)
	if err != nil {
		return nil, err
	}

	entity := model.Entity{
		Name:        req.Name,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TempMin:     summary.Min,
		TempMax:     summary.Max,
		TempAvg:     summary.Avg,
		CountryName: req.CountryName,
		TownName:    req.TownName,
	}

	id, err := s.repo.Insert(ctx, entity)
	if err != nil {
		return nil, err
	}

	// Re-read by the assigned identity so the response matches what is now
	// durably stored, including store-side normalization.
	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back created entity: %w", err)
	}

	return created, nil
}

// GetEntity fetches an entity by its name business key.
func (s *Service) GetEntity(ctx context.Context, name string) (*model.Entity, error) {
	return s.repo.FindByName(ctx, name)
}

// UpdateEntity applies the non-null fields of the payload as a partial merge
// onto the record matching name and returns the record after the merge. An
// empty field-set is not an error: the operation degrades to a plain read.
func (s *Service) UpdateEntity(ctx context.Context, name string, req model.UpdateEntityRequest) (*model.Entity, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return s.repo.FindByName(ctx, name)
	}
	return s.repo.UpdateByName(ctx, name, fields)
}

// DeleteEntity physically removes the record matching name.
func (s *Service) DeleteEntity(ctx context.Context, name string) error {
	return s.repo.DeleteByName(ctx, name)
}

// ListEntities returns a sorted page of entities without identity fields.
// Defaults: skip=0, limit=10, sortBy=name, ascending.
func (s *Service) ListEntities(ctx context.Context, q model.ListQuery) ([]model.Entity, error) {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.SortBy == "" {
		q.SortBy = defaultSortBy
	}
	if q.Order == "" {
		q.Order = model.OrderAscending
	}
	return s.repo.List(ctx, q)
}
