package repository

import (
	"context"
	"errors"

	"weather-entities/internal/model"
)

var (
	// ErrNotFound is returned when no record matches a name-keyed lookup.
	ErrNotFound = errors.New("entity not found")
	// ErrDuplicateName is returned when an insert would violate the unique
	// name constraint.
	ErrDuplicateName = errors.New("entity name already exists")
	// ErrBadSortField is returned when a list query names a field that is
	// not sortable.
	ErrBadSortField = errors.New("unknown sort field")
)

// sortableFields whitelists the fields a list query may sort on. Both
// backends share it so the contract does not depend on the store type.
var sortableFields = map[string]bool{
	"name":         true,
	"start_date":   true,
	"end_date":     true,
	"temp_min":     true,
	"temp_max":     true,
	"temp_avg":     true,
	"country_name": true,
	"town_name":    true,
}

// EntityRepository is the store collaborator. Each method is a single
// atomic store operation.
type EntityRepository interface {
	// Insert persists a new entity and returns the store-assigned identity.
	Insert(ctx context.Context, e model.Entity) (string, error)
	// FindByID fetches a record by its store-assigned identity.
	FindByID(ctx context.Context, id string) (*model.Entity, error)
	// FindByName fetches a record by the name business key.
	FindByName(ctx context.Context, name string) (*model.Entity, error)
	// UpdateByName atomically merges the non-empty field-set into the record
	// matching name and returns the record after the merge.
	UpdateByName(ctx context.Context, name string, fields map[string]interface{}) (*model.Entity, error)
	// DeleteByName physically removes the record matching name; ErrNotFound
	// when nothing was removed.
	DeleteByName(ctx context.Context, name string) error
	// List returns a sorted page of entities with identities stripped.
	List(ctx context.Context, q model.ListQuery) ([]model.Entity, error)
	// Count returns the number of stored entities.
	Count(ctx context.Context) (int64, error)
}
