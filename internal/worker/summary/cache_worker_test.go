package summary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/usecase"
	"github.com/sportops-analytics/internal/worker/summary"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockEventRepository is a mock of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) LoadWindow(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetByBounds(ctx context.Context, day time.Time, bounds domain.SpatialBounds, limit, offset int) ([]domain.Event, int, error) {
	args := m.Called(ctx, day, bounds, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Event), args.Int(1), args.Error(2)
}

func (m *MockEventRepository) Insert(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) InsertBatch(ctx context.Context, events []domain.Event) (int, error) {
	args := m.Called(ctx, events)
	return args.Int(0), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSummary(ctx context.Context, filter domain.FilterState) (*domain.Summary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func (m *MockCacheRepository) SetSummary(ctx context.Context, filter domain.FilterState, summary *domain.Summary, ttl time.Duration) error {
	args := m.Called(ctx, filter, summary, ttl)
	return args.Error(0)
}

func newSummaryUC(eventRepo *MockEventRepository, cacheRepo *MockCacheRepository) *usecase.SummaryUseCase {
	return usecase.NewSummaryUseCase(
		eventRepo,
		cacheRepo,
		analytics.NewEngine(nil, nil),
		30,
		time.Minute,
		zap.NewNop(),
	)
}

func TestCacheWorker_Start(t *testing.T) {
	logger := zap.NewNop()

	t.Run("refreshes the day cache and acks the message", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockEvents := &MockEventRepository{}
		mockCache := &MockCacheRepository{}

		messages := make(chan domain.StreamMessage, 1)
		messages <- domain.StreamMessage{
			ID:   "1-0",
			Data: `{"date_keys":["2025-06-14"],"count":3,"source":"api"}`,
		}
		close(messages)

		mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamEventsIngest, "summary-cache-workers").
			Return(nil)
		mockStream.On("ConsumeStream", mock.Anything, domain.StreamEventsIngest, "summary-cache-workers", mock.AnythingOfType("string")).
			Return((<-chan domain.StreamMessage)(messages), nil)
		mockStream.On("AckMessage", mock.Anything, domain.StreamEventsIngest, "summary-cache-workers", "1-0").
			Return(nil)

		mockCache.On("DeleteByPrefix", mock.Anything, "summary:2025-06-14").Return(nil)
		mockEvents.On("LoadWindow", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
			Return([]domain.Event{{ID: "e1", Date: "2025-06-14T12:00:00Z"}}, nil)
		mockCache.On("SetSummary", mock.Anything, mock.AnythingOfType("domain.FilterState"), mock.AnythingOfType("*domain.Summary"), time.Minute).
			Return(nil)

		w := summary.NewCacheWorker(mockStream, newSummaryUC(mockEvents, mockCache), "summary-cache-workers", 2, logger)

		err := w.Start(context.Background())

		assert.NoError(t, err)
		mockStream.AssertExpectations(t)
		mockCache.AssertExpectations(t)
		mockEvents.AssertExpectations(t)
	})

	t.Run("broken message is acked and skipped", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockEvents := &MockEventRepository{}
		mockCache := &MockCacheRepository{}

		messages := make(chan domain.StreamMessage, 1)
		messages <- domain.StreamMessage{ID: "2-0", Data: "not json"}
		close(messages)

		mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamEventsIngest, "g").Return(nil)
		mockStream.On("ConsumeStream", mock.Anything, domain.StreamEventsIngest, "g", mock.AnythingOfType("string")).
			Return((<-chan domain.StreamMessage)(messages), nil)
		mockStream.On("AckMessage", mock.Anything, domain.StreamEventsIngest, "g", "2-0").Return(nil)

		w := summary.NewCacheWorker(mockStream, newSummaryUC(mockEvents, mockCache), "g", 2, logger)

		err := w.Start(context.Background())

		assert.NoError(t, err)
		mockCache.AssertNotCalled(t, "DeleteByPrefix")
		mockStream.AssertExpectations(t)
	})

	t.Run("consumer group creation failure stops the worker", func(t *testing.T) {
		mockStream := &MockStreamRepository{}
		mockEvents := &MockEventRepository{}
		mockCache := &MockCacheRepository{}

		mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamEventsIngest, "g").
			Return(assert.AnError)

		w := summary.NewCacheWorker(mockStream, newSummaryUC(mockEvents, mockCache), "g", 2, logger)

		err := w.Start(context.Background())

		assert.Error(t, err)
		mockStream.AssertNotCalled(t, "ConsumeStream")
	})
}
