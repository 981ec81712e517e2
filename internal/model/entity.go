package model

import "time"

// Entity is the persisted unit: a named place/time-window query together
// with the temperature summary derived from the upstream weather history.
// The identity is assigned by the store on insert; `name` is the business
// key used by every lookup.
type Entity struct {
	ID          string    `json:"id,omitempty" db:"id"`
	Name        string    `json:"name" db:"name"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	TempMin     float64   `json:"temp_min" db:"temp_min"`
	TempMax     float64   `json:"temp_max" db:"temp_max"`
	TempAvg     float64   `json:"temp_avg" db:"temp_avg"`
	CountryName string    `json:"country_name" db:"country_name"`
	TownName    string    `json:"town_name" db:"town_name"`
}

// CreateEntityRequest is the create payload. The temperature fields are
// accepted for wire compatibility but always overwritten with the computed
// summary before the record is persisted.
type CreateEntityRequest struct {
	Name        string    `json:"name" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	CountryName string    `json:"country_name" validate:"required"`
	TownName    string    `json:"town_name" validate:"required"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	TempAvg     float64   `json:"temp_avg"`
}

// UpdateEntityRequest is the partial-update payload. Identity and name are
// never updatable. Every field is optional at the service boundary even
// though clients usually send the full document: absent and null fields are
// dropped before the merge is applied.
type UpdateEntityRequest struct {
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	TempMin     *float64   `json:"temp_min"`
	TempMax     *float64   `json:"temp_max"`
	TempAvg     *float64   `json:"temp_avg"`
	CountryName *string    `json:"country_name"`
	TownName    *string    `json:"town_name"`
}

// Fields returns the sparse field-set of the update: only fields that were
// present and non-null, keyed by their storage name. An empty map means the
// update degrades to a plain read.
func (r UpdateEntityRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.StartDate != nil {
		fields["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		fields["end_date"] = *r.EndDate
	}
	if r.TempMin != nil {
		fields["temp_min"] = *r.TempMin
	}
	if r.TempMax != nil {
		fields["temp_max"] = *r.TempMax
	}
	if r.TempAvg != nil {
		fields["temp_avg"] = *r.TempAvg
	}
	if r.CountryName != nil {
		fields["country_name"] = *r.CountryName
	}
	if r.TownName != nil {
		fields["town_name"] = *r.TownName
	}
	return fields
}

// SortOrder selects the direction of a single-key list sort.
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// ListQuery describes offset/limit pagination with a single-key sort.
type ListQuery struct {
	Skip   int64
	Limit  int64
	SortBy string
	Order  SortOrder
}

// ListResponse wraps a page of entities. Identity fields are omitted from
// the elements.
type ListResponse struct {
	Elements []Entity `json:"elements"`
}
