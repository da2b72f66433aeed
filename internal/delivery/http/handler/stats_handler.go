package handler

import (
	"github.com/catalog-service/internal/pkg/utils"
	"github.com/catalog-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики каталога
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика каталога
// @Description Возвращает агрегированную статистику по каталогу (количество, цены, разбивка по категориям)
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogStats}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.Context()

	h.logger.Debug("Handling get statistics request")

	stats, err := h.statsUC.GetStatistics(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// RefreshStatistics godoc
// @Summary Принудительный пересчет статистики
// @Description Пересчитывает статистику, минуя проверку валидности кеша
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogStats}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stats/refresh [post]
func (h *StatsHandler) RefreshStatistics(c *fiber.Ctx) error {
	stats, err := h.statsUC.RefreshStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to refresh statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// InvalidateCache godoc
// @Summary Сброс кеша статистики
// @Description Очищает закешированный снапшот статистики. Операция идемпотентна.
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Подтверждение сброса"
// @Router /api/v1/stats/cache [delete]
func (h *StatsHandler) InvalidateCache(c *fiber.Ctx) error {
	h.statsUC.Invalidate()

	return c.JSON(fiber.Map{
		"status": "invalidated",
	})
}
