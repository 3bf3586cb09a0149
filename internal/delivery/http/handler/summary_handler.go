package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sportops-analytics/internal/pkg/errors"
	"github.com/sportops-analytics/internal/pkg/utils"
	"github.com/sportops-analytics/internal/pkg/validator"
	"github.com/sportops-analytics/internal/usecase"
	"github.com/sportops-analytics/internal/usecase/dto"
	"go.uber.org/zap"
)

// SummaryHandler обрабатывает запросы сводки активности
type SummaryHandler struct {
	summaryUC *usecase.SummaryUseCase
	logger    *zap.Logger
}

// NewSummaryHandler создает новый экземпляр SummaryHandler
func NewSummaryHandler(summaryUC *usecase.SummaryUseCase, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// GetSummary godoc
// @Summary Get activity summary for a day
// @Description Возвращает сводку активности за день: почасовые интервалы, пик, базлайн, разбивки и таймлайн
// @Tags Summary
// @Accept json
// @Produce json
// @Param date query string true "Активный день (YYYY-MM-DD)"
// @Param hour query int false "Активный час (0-23)"
// @Param north query number false "Северная граница области"
// @Param south query number false "Южная граница области"
// @Param east query number false "Восточная граница области"
// @Param west query number false "Западная граница области"
// @Success 200 {object} utils.SuccessResponse "Сводка активности"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	started := time.Now()

	req, err := parseSummaryQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.summaryUC.GetSummary(c.Context(), *req)
	if err != nil {
		h.logger.Error("Failed to get summary", zap.String("date", req.Date), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp.Summary, &utils.Meta{
		Cached:   resp.Cached,
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000.0,
	})
}

// GetTimeline godoc
// @Summary Get the event timeline for a day
// @Description Возвращает только таймлайн событий дня, отсортированный по статусу времени
// @Tags Summary
// @Accept json
// @Produce json
// @Param date query string true "Активный день (YYYY-MM-DD)"
// @Param hour query int false "Активный час (0-23)"
// @Param north query number false "Северная граница области"
// @Param south query number false "Южная граница области"
// @Param east query number false "Восточная граница области"
// @Param west query number false "Западная граница области"
// @Success 200 {object} utils.SuccessResponse "Таймлайн событий"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/summary/timeline [get]
func (h *SummaryHandler) GetTimeline(c *fiber.Ctx) error {
	req, err := parseSummaryQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	timeline, cached, err := h.summaryUC.GetTimeline(c.Context(), *req)
	if err != nil {
		h.logger.Error("Failed to get timeline", zap.String("date", req.Date), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, timeline, &utils.Meta{
		Total:  len(timeline),
		Cached: cached,
	})
}

// RefreshSummary godoc
// @Summary Force a summary recomputation
// @Description Сбрасывает кеш дня и пересчитывает сводку заново
// @Tags Summary
// @Accept json
// @Produce json
// @Param request body dto.RefreshSummaryRequest true "День для пересчёта"
// @Success 200 {object} utils.SuccessResponse "Пересчитанная сводка"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/summary/refresh [post]
func (h *SummaryHandler) RefreshSummary(c *fiber.Ctx) error {
	var req dto.RefreshSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.summaryUC.RefreshSummary(c.Context(), req.Date)
	if err != nil {
		h.logger.Error("Failed to refresh summary", zap.String("date", req.Date), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary, nil)
}

// parseSummaryQuery собирает SummaryRequest из query-параметров
func parseSummaryQuery(c *fiber.Ctx) (*dto.SummaryRequest, error) {
	req := &dto.SummaryRequest{
		Date: c.Query("date"),
	}

	if raw := c.Query("hour"); raw != "" {
		hour, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.ErrInvalidHour
		}
		req.Hour = &hour
	}

	var err error
	if req.North, err = queryFloat(c, "north"); err != nil {
		return nil, err
	}
	if req.South, err = queryFloat(c, "south"); err != nil {
		return nil, err
	}
	if req.East, err = queryFloat(c, "east"); err != nil {
		return nil, err
	}
	if req.West, err = queryFloat(c, "west"); err != nil {
		return nil, err
	}

	return req, nil
}

// queryFloat читает опциональный float из query
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ErrInvalidBounds
	}
	return &v, nil
}
