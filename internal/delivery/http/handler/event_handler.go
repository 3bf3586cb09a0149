package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sportops-analytics/internal/pkg/utils"
	"github.com/sportops-analytics/internal/pkg/validator"
	"github.com/sportops-analytics/internal/usecase"
	"github.com/sportops-analytics/internal/usecase/dto"
	"go.uber.org/zap"
)

// EventHandler обрабатывает запросы приёма и выборки событий
type EventHandler struct {
	eventUC *usecase.EventUseCase
	logger  *zap.Logger
}

// NewEventHandler создает новый экземпляр EventHandler
func NewEventHandler(eventUC *usecase.EventUseCase, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventUC: eventUC,
		logger:  logger,
	}
}

// GetEvents godoc
// @Summary List events of a day inside a bounding box
// @Description Возвращает события дня в пределах области с пагинацией
// @Tags Events
// @Accept json
// @Produce json
// @Param date query string true "Активный день (YYYY-MM-DD)"
// @Param north query number true "Северная граница области"
// @Param south query number true "Южная граница области"
// @Param east query number true "Восточная граница области"
// @Param west query number true "Западная граница области"
// @Param limit query int false "Максимум событий на страницу" default(100)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse "Страница событий"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/events [get]
func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	req := dto.EventsViewportRequest{
		Date: c.Query("date"),
	}

	var err error
	if req.North, err = queryFloat(c, "north"); err != nil {
		return utils.SendError(c, err)
	}
	if req.South, err = queryFloat(c, "south"); err != nil {
		return utils.SendError(c, err)
	}
	if req.East, err = queryFloat(c, "east"); err != nil {
		return utils.SendError(c, err)
	}
	if req.West, err = queryFloat(c, "west"); err != nil {
		return utils.SendError(c, err)
	}

	req.Limit, _ = strconv.Atoi(c.Query("limit", "100"))
	req.Offset, _ = strconv.Atoi(c.Query("offset", "0"))

	if err := validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.eventUC.GetByViewport(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to get events by viewport", zap.String("date", req.Date), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp.Events, &utils.Meta{
		Total:  resp.Total,
		Limit:  resp.Limit,
		Offset: resp.Offset,
	})
}

// IngestEvent godoc
// @Summary Ingest a single event
// @Description Принимает одно событие. Временные поля передаются как строки источника.
// @Tags Events
// @Accept json
// @Produce json
// @Param request body dto.IngestEventRequest true "Событие"
// @Success 201 {object} utils.SuccessResponse "Результат приёма"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/events [post]
func (h *EventHandler) IngestEvent(c *fiber.Ctx) error {
	var req dto.IngestEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.eventUC.Ingest(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to ingest event", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}

// IngestBatch godoc
// @Summary Ingest a batch of events
// @Description Принимает пакет событий (до 1000 за раз)
// @Tags Events
// @Accept json
// @Produce json
// @Param request body dto.BatchIngestRequest true "Пакет событий"
// @Success 201 {object} utils.SuccessResponse "Результат приёма"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/batch/events [post]
func (h *EventHandler) IngestBatch(c *fiber.Ctx) error {
	var req dto.BatchIngestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	resp, err := h.eventUC.IngestBatch(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to ingest batch", zap.Int("events", len(req.Events)), zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, resp)
}
