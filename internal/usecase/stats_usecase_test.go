package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/catalog-service/internal/domain"
	pkgerrors "github.com/catalog-service/internal/pkg/errors"
	"github.com/catalog-service/internal/usecase"
)

// MockStatsSource is a mock of StatsSourceRepository
type MockStatsSource struct {
	mock.Mock
}

func (m *MockStatsSource) CurrentVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockStatsSource) ReadAll(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: 1, Name: "First", Category: "A", Price: 10},
		{ID: 2, Name: "Second", Category: "A", Price: 20},
		{ID: 3, Name: "Third", Category: "B", Price: 30},
	}
}

func TestStatsUseCase_GetStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("cold start computes and caches", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("3:3", nil)
		source.On("ReadAll", mock.Anything).Return(testItems(), nil)

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 20.0, stats.AveragePrice)
		assert.Equal(t, 10.0, stats.MinPrice)
		assert.Equal(t, 30.0, stats.MaxPrice)
		assert.Equal(t, map[string]int{"A": 2, "B": 1}, stats.ByCategory)

		source.AssertNumberOfCalls(t, "ReadAll", 1)
	})

	t.Run("cache hit returns identical snapshot without reread", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("3:3", nil)
		source.On("ReadAll", mock.Anything).Return(testItems(), nil)

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		first, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)

		second, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)

		// Тот же снапшот, включая LastUpdated
		assert.Same(t, first, second)
		assert.Equal(t, first.LastUpdated, second.LastUpdated)
		source.AssertNumberOfCalls(t, "ReadAll", 1)
	})

	t.Run("expired TTL triggers recompute", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("3:3", nil)
		source.On("ReadAll", mock.Anything).Return(testItems(), nil)

		uc := usecase.NewStatsUseCase(source, logger, 30*time.Millisecond)

		_, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		_, err = uc.GetStatistics(ctx)
		assert.NoError(t, err)
		source.AssertNumberOfCalls(t, "ReadAll", 2)
	})

	t.Run("version change triggers recompute within TTL", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("3:3", nil).Once()
		source.On("ReadAll", mock.Anything).Return(testItems(), nil).Once()

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		first, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, first.Total)

		// Каталог изменился: токен версии другой
		newItems := append(testItems(), domain.Item{ID: 4, Name: "Fourth", Category: "B", Price: 40})
		source.On("CurrentVersion", mock.Anything).Return("4:4", nil)
		source.On("ReadAll", mock.Anything).Return(newItems, nil)

		second, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 4, second.Total)
		source.AssertNumberOfCalls(t, "ReadAll", 2)
	})

	t.Run("transient probe failure serves cached snapshot", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("3:3", nil).Once()
		source.On("ReadAll", mock.Anything).Return(testItems(), nil).Once()

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		first, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)

		source.On("CurrentVersion", mock.Anything).Return("", errors.New("connection reset"))

		second, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)
		assert.Same(t, first, second)
		source.AssertNumberOfCalls(t, "ReadAll", 1)
	})

	t.Run("cold start source failure propagates", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("", errors.New("connection refused"))

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)
		assert.Nil(t, stats)
		assert.Equal(t, pkgerrors.ErrSourceUnavailable, err)
	})

	t.Run("data read failure propagates", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("3:3", nil)
		source.On("ReadAll", mock.Anything).Return(nil, errors.New("connection refused"))

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)
		assert.Nil(t, stats)
		assert.Equal(t, pkgerrors.ErrSourceUnavailable, err)
	})

	t.Run("empty catalog yields zero stats without error", func(t *testing.T) {
		source := &MockStatsSource{}
		source.On("CurrentVersion", mock.Anything).Return("0:0", nil)
		source.On("ReadAll", mock.Anything).Return([]domain.Item{}, nil)

		uc := usecase.NewStatsUseCase(source, logger, time.Minute)

		stats, err := uc.GetStatistics(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, stats.Total)
		assert.Equal(t, 0.0, stats.AveragePrice)
		assert.Empty(t, stats.ByCategory)
	})
}

func TestStatsUseCase_Invalidate(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	source := &MockStatsSource{}
	source.On("CurrentVersion", mock.Anything).Return("3:3", nil)
	source.On("ReadAll", mock.Anything).Return(testItems(), nil)

	uc := usecase.NewStatsUseCase(source, logger, time.Minute)

	first, err := uc.GetStatistics(ctx)
	assert.NoError(t, err)

	// Идемпотентность
	uc.Invalidate()
	uc.Invalidate()

	time.Sleep(5 * time.Millisecond)

	second, err := uc.GetStatistics(ctx)
	assert.NoError(t, err)
	assert.True(t, second.LastUpdated.After(first.LastUpdated))
	source.AssertNumberOfCalls(t, "ReadAll", 2)
}

func TestStatsUseCase_RefreshStatistics(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	source := &MockStatsSource{}
	source.On("CurrentVersion", mock.Anything).Return("3:3", nil)
	source.On("ReadAll", mock.Anything).Return(testItems(), nil)

	uc := usecase.NewStatsUseCase(source, logger, time.Minute)

	_, err := uc.GetStatistics(ctx)
	assert.NoError(t, err)

	// Принудительный пересчет минует кеш, даже если снапшот валиден
	_, err = uc.RefreshStatistics(ctx)
	assert.NoError(t, err)
	source.AssertNumberOfCalls(t, "ReadAll", 2)
}
