package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/usecase"
	"github.com/sportops-analytics/internal/usecase/dto"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestEventUseCase_IngestBatch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("stores events and publishes the affected day keys", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		mockEvents.On("InsertBatch", ctx, mock.AnythingOfType("[]domain.Event")).
			Return(2, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamEventsIngest, mock.AnythingOfType("domain.EventsIngestNotice")).
			Return(nil)

		resp, err := uc.IngestBatch(ctx, dto.BatchIngestRequest{
			Events: []dto.IngestEventRequest{
				{ID: "e1", Date: "2025-06-14T11:00:00Z", Sport: "football"},
				{Date: "2025-06-15T18:30:00Z", Sport: "rugby"},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Accepted)
		assert.Equal(t, 2, resp.Stored)
		assert.Equal(t, []string{"2025-06-14", "2025-06-15"}, resp.DateKeys)

		notice := mockStream.Calls[0].Arguments.Get(2).(domain.EventsIngestNotice)
		assert.Equal(t, []string{"2025-06-14", "2025-06-15"}, notice.DateKeys)
		assert.Equal(t, 2, notice.Count)

		mockEvents.AssertExpectations(t)
		mockStream.AssertExpectations(t)
	})

	t.Run("generates an id when the source omits it", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		mockEvents.On("InsertBatch", ctx, mock.AnythingOfType("[]domain.Event")).
			Return(1, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamEventsIngest, mock.Anything).
			Return(nil)

		_, err := uc.IngestBatch(ctx, dto.BatchIngestRequest{
			Events: []dto.IngestEventRequest{{Date: "2025-06-14T11:00:00Z"}},
		})

		assert.NoError(t, err)
		stored := mockEvents.Calls[0].Arguments.Get(1).([]domain.Event)
		assert.NotEmpty(t, stored[0].ID)
	})

	t.Run("events without parseable time are stored but not announced", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		mockEvents.On("InsertBatch", ctx, mock.AnythingOfType("[]domain.Event")).
			Return(1, nil)

		resp, err := uc.IngestBatch(ctx, dto.BatchIngestRequest{
			Events: []dto.IngestEventRequest{{ID: "e1", Date: "when we feel like it"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Stored)
		assert.Empty(t, resp.DateKeys)
		mockStream.AssertNotCalled(t, "PublishToStream")
	})

	t.Run("publish failure does not fail the ingest", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		mockEvents.On("InsertBatch", ctx, mock.AnythingOfType("[]domain.Event")).
			Return(1, nil)
		mockStream.On("PublishToStream", ctx, domain.StreamEventsIngest, mock.Anything).
			Return(errors.New("stream unavailable"))

		resp, err := uc.IngestBatch(ctx, dto.BatchIngestRequest{
			Events: []dto.IngestEventRequest{{ID: "e1", Date: "2025-06-14T11:00:00Z"}},
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, resp.Stored)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		resp, err := uc.IngestBatch(ctx, dto.BatchIngestRequest{})

		assert.Error(t, err)
		assert.Nil(t, resp)
		mockEvents.AssertNotCalled(t, "InsertBatch")
	})

	t.Run("database error is propagated", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		mockEvents.On("InsertBatch", ctx, mock.AnythingOfType("[]domain.Event")).
			Return(0, errors.New("connection refused"))

		resp, err := uc.IngestBatch(ctx, dto.BatchIngestRequest{
			Events: []dto.IngestEventRequest{{ID: "e1"}},
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		mockStream.AssertNotCalled(t, "PublishToStream")
	})
}

func TestEventUseCase_GetByViewport(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns a page of events inside the bounds", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		day := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
		bounds := domain.SpatialBounds{North: 42.0, South: 41.0, East: 2.5, West: 1.5}
		events := []domain.Event{{ID: "e1", City: "Barcelona"}}

		mockEvents.On("GetByBounds", ctx, day, bounds, 50, 0).
			Return(events, 120, nil)

		resp, err := uc.GetByViewport(ctx, dto.EventsViewportRequest{
			Date:  "2025-06-14",
			North: floatPtr(42.0),
			South: floatPtr(41.0),
			East:  floatPtr(2.5),
			West:  floatPtr(1.5),
			Limit: 50,
		})

		assert.NoError(t, err)
		assert.Len(t, resp.Events, 1)
		assert.Equal(t, 120, resp.Total)
		assert.Equal(t, 50, resp.Limit)
		mockEvents.AssertExpectations(t)
	})

	t.Run("applies the default limit", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		mockEvents.On("GetByBounds", ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("domain.SpatialBounds"), 100, 0).
			Return([]domain.Event{}, 0, nil)

		resp, err := uc.GetByViewport(ctx, dto.EventsViewportRequest{
			Date:  "2025-06-14",
			North: floatPtr(42.0),
			South: floatPtr(41.0),
			East:  floatPtr(2.5),
			West:  floatPtr(1.5),
		})

		assert.NoError(t, err)
		assert.Equal(t, 100, resp.Limit)
	})

	t.Run("missing bounds are rejected", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		resp, err := uc.GetByViewport(ctx, dto.EventsViewportRequest{
			Date:  "2025-06-14",
			North: floatPtr(42.0),
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		mockEvents.AssertNotCalled(t, "GetByBounds")
	})

	t.Run("inverted bounds are rejected", func(t *testing.T) {
		mockEvents := &MockEventRepository{}
		mockStream := &MockStreamRepository{}
		uc := usecase.NewEventUseCase(mockEvents, mockStream, logger)

		resp, err := uc.GetByViewport(ctx, dto.EventsViewportRequest{
			Date:  "2025-06-14",
			North: floatPtr(41.0),
			South: floatPtr(42.0),
			East:  floatPtr(2.5),
			West:  floatPtr(1.5),
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}
