package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/domain/repository"
	"github.com/sportops-analytics/internal/pkg/errors"
	"github.com/sportops-analytics/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultViewportLimit = 100

// EventUseCase обрабатывает приём событий и выборку по области
type EventUseCase struct {
	eventRepo  repository.EventRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewEventUseCase создает новый экземпляр EventUseCase
func NewEventUseCase(
	eventRepo repository.EventRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *EventUseCase {
	return &EventUseCase{
		eventRepo:  eventRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// GetByViewport возвращает события дня внутри области с пагинацией
func (uc *EventUseCase) GetByViewport(ctx context.Context, req dto.EventsViewportRequest) (*dto.EventsViewportResponse, error) {
	if !req.HasBounds() {
		return nil, errors.ErrInvalidBounds
	}
	if *req.North < *req.South {
		return nil, errors.ErrInvalidBounds
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.ErrInvalidDate
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultViewportLimit
	}

	bounds := domain.SpatialBounds{
		North: *req.North,
		South: *req.South,
		East:  *req.East,
		West:  *req.West,
	}

	events, total, err := uc.eventRepo.GetByBounds(ctx, day.UTC(), bounds, limit, req.Offset)
	if err != nil {
		return nil, fmt.Errorf("get events by bounds: %w", err)
	}

	return &dto.EventsViewportResponse{
		Events: events,
		Total:  total,
		Limit:  limit,
		Offset: req.Offset,
	}, nil
}

// Ingest принимает одно событие
func (uc *EventUseCase) Ingest(ctx context.Context, req dto.IngestEventRequest) (*dto.IngestResponse, error) {
	return uc.IngestBatch(ctx, dto.BatchIngestRequest{Events: []dto.IngestEventRequest{req}})
}

// IngestBatch принимает пакет событий и публикует уведомление в стрим.
// События без разбираемого времени всё равно сохраняются: движок аналитики
// молча исключит их из расчётов сам.
func (uc *EventUseCase) IngestBatch(ctx context.Context, req dto.BatchIngestRequest) (*dto.IngestResponse, error) {
	if len(req.Events) == 0 {
		return nil, errors.ErrInvalidEvent
	}

	events := make([]domain.Event, 0, len(req.Events))
	dateKeys := make(map[string]struct{})

	for _, in := range req.Events {
		event := toEvent(in)
		events = append(events, event)

		if start := analytics.StartOf(event); start != nil {
			dateKeys[analytics.DayKey(*start)] = struct{}{}
		}
	}

	stored, err := uc.eventRepo.InsertBatch(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("insert events: %w", err)
	}

	keys := make([]string, 0, len(dateKeys))
	for key := range dateKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	uc.logger.Info("Events ingested",
		zap.Int("accepted", len(events)),
		zap.Int("stored", stored),
		zap.Strings("date_keys", keys))

	// Уведомляем воркеры о затронутых днях, чтобы они сбросили кеш сводок
	if stored > 0 && len(keys) > 0 {
		notice := domain.EventsIngestNotice{
			DateKeys: keys,
			Count:    stored,
			Source:   "api",
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamEventsIngest, notice); err != nil {
			uc.logger.Warn("Failed to publish ingest notice", zap.Error(err))
			// Кеш доживёт до истечения TTL, данные уже сохранены
		}
	}

	return &dto.IngestResponse{
		Accepted: len(events),
		Stored:   stored,
		DateKeys: keys,
	}, nil
}

// toEvent конвертирует входной DTO в доменное событие
func toEvent(in dto.IngestEventRequest) domain.Event {
	event := domain.Event{
		ID:          in.ID,
		Date:        in.Date,
		UTCDate:     in.UTCDate,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Sport:       in.Sport,
		Competition: in.Competition,
		City:        in.City,
		Region:      in.Region,
		Kind:        in.Kind,
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if in.Lat != nil && in.Lng != nil {
		event.Location = &domain.Point{Lat: *in.Lat, Lng: *in.Lng}
	}

	return event
}
