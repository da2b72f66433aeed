package handler

import (
	"strconv"
	"strings"

	"github.com/catalog-service/internal/pkg/errors"
	"github.com/catalog-service/internal/pkg/utils"
	"github.com/catalog-service/internal/pkg/validator"
	"github.com/catalog-service/internal/usecase"
	"github.com/catalog-service/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ItemHandler - обработчик для запросов каталога
type ItemHandler struct {
	itemUC *usecase.ItemUseCase
	logger *zap.Logger
}

// NewItemHandler - создание нового ItemHandler
func NewItemHandler(itemUC *usecase.ItemUseCase, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		itemUC: itemUC,
		logger: logger,
	}
}

// List godoc
// @Summary Листинг каталога
// @Description Возвращает страницу каталога с поиском по названию и фильтром по категориям
// @Tags Items
// @Accept json
// @Produce json
// @Param q query string false "Поиск по названию (подстрока)"
// @Param category query string false "Фильтр по категориям (через запятую)"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.ItemListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var req dto.ListItemsRequest
	req.Query = c.Query("q")
	req.Categories = parseCategories(c.Query("category"))
	req.Page = c.QueryInt("page", 1)
	req.Limit = c.QueryInt("limit", 0)

	// Валидация
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.itemUC.List(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to list items", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Page:  result.Page,
		Limit: result.Limit,
	})
}

// GetByID godoc
// @Summary Получить запись каталога
// @Description Возвращает запись каталога по идентификатору
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} utils.SuccessResponse{data=domain.Item}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return utils.SendError(c, errors.ErrInvalidItemID)
	}

	item, err := h.itemUC.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, item, nil)
}

// Create godoc
// @Summary Создать запись каталога
// @Description Добавляет новую запись (название, категория, цена) в каталог
// @Tags Items
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Новая запись"
// @Success 201 {object} utils.SuccessResponse{data=domain.Item}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	item, err := h.itemUC.Create(c.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create item", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, item)
}

// GetCategories godoc
// @Summary Список категорий
// @Description Возвращает список уникальных категорий каталога
// @Tags Items
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CategoriesResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/categories [get]
func (h *ItemHandler) GetCategories(c *fiber.Ctx) error {
	result, err := h.itemUC.Categories(c.Context())
	if err != nil {
		h.logger.Error("Failed to get categories", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// parseCategories разбирает значение query-параметра category через запятую
func parseCategories(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
