package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-entities/internal/model"
	"weather-entities/internal/repository"
	"weather-entities/internal/weather"
)

// MockEntityRepository implements repository.EntityRepository
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) Insert(ctx context.Context, e model.Entity) (string, error) {
	args := m.Called(ctx, e)
	return args.String(0), args.Error(1)
}

func (m *MockEntityRepository) FindByID(ctx context.Context, id string) (*model.Entity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entity), args.Error(1)
}

func (m *MockEntityRepository) FindByName(ctx context.Context, name string) (*model.Entity, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entity), args.Error(1)
}

func (m *MockEntityRepository) UpdateByName(ctx context.Context, name string, fields map[string]interface{}) (*model.Entity, error) {
	args := m.Called(ctx, name, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Entity), args.Error(1)
}

func (m *MockEntityRepository) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockEntityRepository) List(ctx context.Context, q model.ListQuery) ([]model.Entity, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entity), args.Error(1)
}

func (m *MockEntityRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockFetcher implements weather.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchTimeline(ctx context.Context, place string, start, end time.Time) (*weather.QueryResult, error) {
	args := m.Called(ctx, place, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.QueryResult), args.Error(1)
}

func createRequest() model.CreateEntityRequest {
	return model.CreateEntityRequest{
		Name:        "Krakow",
		StartDate:   time.Date(2014, 9, 24, 7, 51, 4, 0, time.UTC),
		EndDate:     time.Date(2014, 9, 26, 8, 51, 4, 0, time.UTC),
		CountryName: "Poland",
		TownName:    "Bielsko-Biala",
		// Placeholder stats the service must discard.
		TempMin: 30.1,
		TempMax: 38.2,
		TempAvg: 35.0,
	}
}

func TestService_CreateEntity(t *testing.T) {
	req := createRequest()

	days := []weather.Day{
		{TempMin: 10, TempMax: 20, Temp: 15},
		{TempMin: 5, TempMax: 25, Temp: 18},
		{TempMin: 12, TempMax: 22, Temp: 16},
	}

	repo := new(MockEntityRepository)
	fetcher := new(MockFetcher)

	fetcher.On("FetchTimeline", mock.Anything, "Bielsko-Biala, Poland", req.StartDate, req.EndDate).
		Return(&weather.QueryResult{Days: days}, nil)

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(e model.Entity) bool {
		return e.Name == "Krakow" &&
			e.TempMin == 5 && e.TempMax == 25 &&
			e.TempAvg > 16.33 && e.TempAvg < 16.34
	})).Return("65f0c0ffee", nil)

	stored := model.Entity{
		ID:          "65f0c0ffee",
		Name:        "Krakow",
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TempMin:     5,
		TempMax:     25,
		TempAvg:     49.0 / 3.0,
		CountryName: "Poland",
		TownName:    "Bielsko-Biala",
	}
	repo.On("FindByID", mock.Anything, "65f0c0ffee").Return(&stored, nil)

	svc := NewService(repo, fetcher)
	created, err := svc.CreateEntity(context.Background(), req)
	require.NoError(t, err)

	// The returned record is the stored one, with derived stats, not the
	// client placeholders.
	assert.Equal(t, 5.0, created.TempMin)
	assert.Equal(t, 25.0, created.TempMax)
	assert.InDelta(t, 16.3333, created.TempAvg, 0.001)

	repo.AssertExpectations(t)
	fetcher.AssertExpectations(t)
}

func TestService_CreateEntity_UpstreamFailure(t *testing.T) {
	req := createRequest()

	repo := new(MockEntityRepository)
	fetcher := new(MockFetcher)

	fetcher.On("FetchTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, weather.ErrUpstreamClient)

	svc := NewService(repo, fetcher)
	_, err := svc.CreateEntity(context.Background(), req)

	assert.ErrorIs(t, err, weather.ErrUpstreamClient)
	// Failed creates must not leave a partial record.
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_CreateEntity_EmptyWindow(t *testing.T) {
	req := createRequest()

	repo := new(MockEntityRepository)
	fetcher := new(MockFetcher)

	fetcher.On("FetchTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&weather.QueryResult{Days: nil}, nil)

	svc := NewService(repo, fetcher)
	_, err := svc.CreateEntity(context.Background(), req)

	assert.ErrorIs(t, err, weather.ErrEmptyWindow)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_CreateEntity_InvalidDateRange(t *testing.T) {
	req := createRequest()
	req.StartDate, req.EndDate = req.EndDate, req.StartDate

	repo := new(MockEntityRepository)
	fetcher := new(MockFetcher)

	svc := NewService(repo, fetcher)
	_, err := svc.CreateEntity(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	fetcher.AssertNotCalled(t, "FetchTimeline", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestService_UpdateEntity(t *testing.T) {
	town := "Gdansk"

	t.Run("partial update merges only present fields", func(t *testing.T) {
		repo := new(MockEntityRepository)

		updated := model.Entity{Name: "Krakow", TownName: town}
		repo.On("UpdateByName", mock.Anything, "Krakow", map[string]interface{}{"town_name": town}).
			Return(&updated, nil)

		svc := NewService(repo, new(MockFetcher))
		got, err := svc.UpdateEntity(context.Background(), "Krakow", model.UpdateEntityRequest{TownName: &town})
		require.NoError(t, err)
		assert.Equal(t, town, got.TownName)
		repo.AssertExpectations(t)
	})

	t.Run("empty field-set degrades to read", func(t *testing.T) {
		repo := new(MockEntityRepository)

		existing := model.Entity{Name: "Krakow", TownName: "Bielsko-Biala"}
		repo.On("FindByName", mock.Anything, "Krakow").Return(&existing, nil)

		svc := NewService(repo, new(MockFetcher))
		got, err := svc.UpdateEntity(context.Background(), "Krakow", model.UpdateEntityRequest{})
		require.NoError(t, err)
		assert.Equal(t, "Bielsko-Biala", got.TownName)
		repo.AssertNotCalled(t, "UpdateByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing name is not found", func(t *testing.T) {
		repo := new(MockEntityRepository)
		repo.On("UpdateByName", mock.Anything, "ghost", mock.Anything).
			Return(nil, repository.ErrNotFound)

		svc := NewService(repo, new(MockFetcher))
		_, err := svc.UpdateEntity(context.Background(), "ghost", model.UpdateEntityRequest{TownName: &town})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestService_DeleteEntity(t *testing.T) {
	repo := new(MockEntityRepository)
	repo.On("DeleteByName", mock.Anything, "Krakow").Return(nil)
	repo.On("DeleteByName", mock.Anything, "ghost").Return(repository.ErrNotFound)

	svc := NewService(repo, new(MockFetcher))

	assert.NoError(t, svc.DeleteEntity(context.Background(), "Krakow"))
	assert.ErrorIs(t, svc.DeleteEntity(context.Background(), "ghost"), repository.ErrNotFound)
}

func TestService_ListEntities_Defaults(t *testing.T) {
	repo := new(MockEntityRepository)

	repo.On("List", mock.Anything, model.ListQuery{
		Skip:   0,
		Limit:  10,
		SortBy: "name",
		Order:  model.OrderAscending,
	}).Return([]model.Entity{}, nil)

	svc := NewService(repo, new(MockFetcher))
	_, err := svc.ListEntities(context.Background(), model.ListQuery{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
