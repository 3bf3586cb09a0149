package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sportops-analytics/internal/domain"
	"github.com/sportops-analytics/internal/domain/repository"
	"github.com/sportops-analytics/internal/usecase"
	"github.com/sportops-analytics/internal/worker"
	"go.uber.org/zap"
)

// retryDelay - пауза между повторными попытками прогрева
const retryDelay = 500 * time.Millisecond

// CacheWorker слушает уведомления о приёме событий и поддерживает кеш сводок:
// сбрасывает устаревшие сводки затронутых дней и прогревает их заново
type CacheWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	summaryUC    *usecase.SummaryUseCase
	consumerName string
	maxRetries   int
}

// NewCacheWorker создает новый CacheWorker
func NewCacheWorker(
	streamRepo repository.StreamRepository,
	summaryUC *usecase.SummaryUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CacheWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CacheWorker{
		BaseWorker:   worker.NewBaseWorker("summary-cache", consumerGroup, logger),
		streamRepo:   streamRepo,
		summaryUC:    summaryUC,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает воркер
func (w *CacheWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting summary cache worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamEventsIngest, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamEventsIngest, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

// handleMessage обрабатывает одно уведомление; битые сообщения подтверждаются
// сразу, чтобы не застревали в pending-списке группы
func (w *CacheWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	notice, err := parseNotice(msg)
	if err != nil {
		logger.Warn("Failed to parse ingest notice, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	logger.Info("Processing ingest notice",
		zap.Strings("date_keys", notice.DateKeys),
		zap.Int("count", notice.Count),
		zap.String("source", notice.Source))

	for _, dateKey := range notice.DateKeys {
		if err := w.refreshDay(ctx, dateKey); err != nil {
			logger.Error("Failed to refresh day cache",
				zap.String("date", dateKey),
				zap.Error(err))
			// Кеш дня сброшен, следующий запрос пересчитает сводку сам
		}
	}

	w.ack(ctx, msg.ID)
}

// refreshDay сбрасывает кеш дня и прогревает дефолтную сводку с повторами
func (w *CacheWorker) refreshDay(ctx context.Context, dateKey string) error {
	if err := w.summaryUC.InvalidateDay(ctx, dateKey); err != nil {
		return fmt.Errorf("invalidate day %s: %w", dateKey, err)
	}

	var lastErr error
	for attempt := 0; attempt <= w.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		if _, lastErr = w.summaryUC.WarmDay(ctx, dateKey); lastErr == nil {
			w.Logger().Debug("Day cache warmed", zap.String("date", dateKey))
			return nil
		}
	}

	return fmt.Errorf("warm day %s: %w", dateKey, lastErr)
}

// ack подтверждает обработку сообщения
func (w *CacheWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamEventsIngest, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}

// parseNotice разбирает уведомление из сообщения стрима
func parseNotice(msg domain.StreamMessage) (*domain.EventsIngestNotice, error) {
	var notice domain.EventsIngestNotice
	if err := json.Unmarshal([]byte(msg.Data), &notice); err != nil {
		return nil, fmt.Errorf("unmarshal notice: %w", err)
	}

	if len(notice.DateKeys) == 0 {
		return nil, fmt.Errorf("notice has no date keys")
	}

	return &notice, nil
}
