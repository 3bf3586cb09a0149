package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sportops-analytics/internal/analytics"
	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/domain/repository"
	"github.com/sportops-analytics/internal/pkg/errors"
	"github.com/sportops-analytics/internal/usecase/dto"
	"go.uber.org/zap"
)

// SummaryUseCase строит сводку дня поверх движка аналитики,
// кешируя готовые сводки по ключу фильтра
type SummaryUseCase struct {
	eventRepo  repository.EventRepository
	cacheRepo  repository.CacheRepository
	engine     *analytics.Engine
	windowDays int
	cacheTTL   time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewSummaryUseCase создает новый экземпляр SummaryUseCase
func NewSummaryUseCase(
	eventRepo repository.EventRepository,
	cacheRepo repository.CacheRepository,
	engine *analytics.Engine,
	windowDays int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *SummaryUseCase {
	return &SummaryUseCase{
		eventRepo:  eventRepo,
		cacheRepo:  cacheRepo,
		engine:     engine,
		windowDays: windowDays,
		cacheTTL:   cacheTTL,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// GetSummary возвращает сводку активности, используя кеш когда возможно
func (uc *SummaryUseCase) GetSummary(ctx context.Context, req dto.SummaryRequest) (*dto.SummaryResponse, error) {
	filter, err := uc.buildFilter(req)
	if err != nil {
		return nil, err
	}

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetSummary(ctx, filter)
	if err == nil && cached != nil {
		uc.logger.Debug("Summary fetched from cache", zap.String("key", filter.CacheKey()))
		return &dto.SummaryResponse{Summary: cached, Cached: true}, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get summary from cache", zap.Error(err))
	}

	// 2. Считаем заново
	summary, err := uc.compute(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetSummary(ctx, filter, summary, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache summary", zap.Error(err))
		// Не возвращаем ошибку, т.к. сводка уже посчитана
	}

	return &dto.SummaryResponse{Summary: summary, Cached: false}, nil
}

// GetTimeline возвращает только таймлайн событий дня
func (uc *SummaryUseCase) GetTimeline(ctx context.Context, req dto.SummaryRequest) ([]domain.TimelineEntry, bool, error) {
	resp, err := uc.GetSummary(ctx, req)
	if err != nil {
		return nil, false, err
	}
	return resp.Summary.TimelineEvents, resp.Cached, nil
}

// RefreshSummary сбрасывает кеш дня и пересчитывает сводку без фильтров
func (uc *SummaryUseCase) RefreshSummary(ctx context.Context, dateKey string) (*domain.Summary, error) {
	uc.logger.Info("Refreshing summary", zap.String("date", dateKey))

	if err := uc.InvalidateDay(ctx, dateKey); err != nil {
		uc.logger.Warn("Failed to invalidate day cache", zap.String("date", dateKey), zap.Error(err))
	}

	return uc.WarmDay(ctx, dateKey)
}

// InvalidateDay удаляет из кеша все сводки указанного дня (с любыми фильтрами)
func (uc *SummaryUseCase) InvalidateDay(ctx context.Context, dateKey string) error {
	return uc.cacheRepo.DeleteByPrefix(ctx, "summary:"+dateKey)
}

// WarmDay пересчитывает и кеширует сводку дня без часового и пространственного фильтров
func (uc *SummaryUseCase) WarmDay(ctx context.Context, dateKey string) (*domain.Summary, error) {
	activeDate, err := time.Parse("2006-01-02", dateKey)
	if err != nil {
		return nil, errors.ErrInvalidDate
	}

	filter := domain.FilterState{ActiveDate: activeDate.UTC()}

	summary, err := uc.compute(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetSummary(ctx, filter, summary, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache summary", zap.Error(err))
	}

	return summary, nil
}

// compute загружает историческое окно событий и прогоняет его через движок
func (uc *SummaryUseCase) compute(ctx context.Context, filter domain.FilterState) (*domain.Summary, error) {
	// Окно заканчивается на следующий день после активной даты,
	// чтобы активный день попал в выборку целиком
	to := filter.ActiveDate.UTC().AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -uc.windowDays)

	events, err := uc.eventRepo.LoadWindow(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load event window: %w", err)
	}

	uc.logger.Debug("Computing summary",
		zap.String("key", filter.CacheKey()),
		zap.Int("events", len(events)))

	return uc.engine.ComputeViews(events, filter, uc.now()), nil
}

// buildFilter собирает FilterState из запроса
func (uc *SummaryUseCase) buildFilter(req dto.SummaryRequest) (domain.FilterState, error) {
	activeDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.FilterState{}, errors.ErrInvalidDate
	}

	filter := domain.FilterState{
		ActiveDate: activeDate.UTC(),
		ActiveHour: req.Hour,
	}

	if req.HasBounds() {
		if *req.North < *req.South {
			return domain.FilterState{}, errors.ErrInvalidBounds
		}
		filter.Bounds = &domain.SpatialBounds{
			North: *req.North,
			South: *req.South,
			East:  *req.East,
			West:  *req.West,
		}
	}

	return filter, nil
}
