package service

import (
	"errors"

	"weather-entities/internal/repository"
	"weather-entities/internal/weather"
)

// ErrInvalidDateRange is returned when end_date precedes start_date. The
// range is rejected before any upstream or store interaction.
var ErrInvalidDateRange = errors.New("end_date must not precede start_date")

// Service provides business logic for the API
type Service struct {
	repo    repository.EntityRepository
	weather weather.Fetcher
}

// NewService creates a new service instance
func NewService(repo repository.EntityRepository, fetcher weather.Fetcher) *Service {
	return &Service{
		repo:    repo,
		weather: fetcher,
	}
}
