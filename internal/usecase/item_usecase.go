package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/catalog-service/internal/domain"
	"github.com/catalog-service/internal/domain/repository"
	"github.com/catalog-service/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	listCachePrefix    = "items:"
	categoriesCacheKey = "categories"
)

// ItemUseCase обрабатывает бизнес-логику каталога
type ItemUseCase struct {
	itemRepo     repository.ItemRepository
	cacheRepo    repository.CacheRepository
	logger       *zap.Logger
	listTTL      time.Duration
	defaultLimit int
	maxLimit     int
}

// NewItemUseCase создает новый экземпляр ItemUseCase
func NewItemUseCase(
	itemRepo repository.ItemRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	listTTL time.Duration,
	defaultLimit, maxLimit int,
) *ItemUseCase {
	return &ItemUseCase{
		itemRepo:     itemRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		listTTL:      listTTL,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// List возвращает страницу каталога, используя кеш когда возможно
func (uc *ItemUseCase) List(ctx context.Context, req dto.ListItemsRequest) (*dto.ItemListResponse, error) {
	filter := uc.buildFilter(req)
	key := listCacheKey(filter)

	// 1. Проверяем кеш
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var resp dto.ItemListResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			uc.logger.Debug("Item list fetched from cache", zap.String("key", key))
			return &resp, nil
		}
		uc.logger.Warn("Failed to unmarshal cached item list", zap.String("key", key))
	} else if err != nil {
		uc.logger.Warn("Failed to get item list from cache", zap.Error(err))
	}

	// 2. Получаем из БД
	items, total, err := uc.itemRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ItemListResponse{
		Items: items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}

	// 3. Кешируем страницу
	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.listTTL); err != nil {
			uc.logger.Warn("Failed to cache item list", zap.Error(err))
			// Не возвращаем ошибку, т.к. данные уже получены
		}
	}

	return resp, nil
}

// GetByID возвращает запись каталога по идентификатору
func (uc *ItemUseCase) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	return uc.itemRepo.GetByID(ctx, id)
}

// Create добавляет запись в каталог и сбрасывает кеш листинга
func (uc *ItemUseCase) Create(ctx context.Context, req dto.CreateItemRequest) (*domain.Item, error) {
	item := &domain.Item{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	uc.logger.Info("Item created",
		zap.Int64("id", item.ID),
		zap.String("category", item.Category),
	)

	// Закешированные страницы и список категорий устарели
	if err := uc.cacheRepo.DeleteByPrefix(ctx, listCachePrefix); err != nil {
		uc.logger.Warn("Failed to invalidate list cache", zap.Error(err))
	}
	if err := uc.cacheRepo.Delete(ctx, categoriesCacheKey); err != nil {
		uc.logger.Warn("Failed to invalidate categories cache", zap.Error(err))
	}

	return item, nil
}

// Categories возвращает список уникальных категорий каталога
func (uc *ItemUseCase) Categories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if cached, err := uc.cacheRepo.Get(ctx, categoriesCacheKey); err == nil && cached != nil {
		var resp dto.CategoriesResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			uc.logger.Debug("Categories fetched from cache")
			return &resp, nil
		}
	}

	categories, err := uc.itemRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.CategoriesResponse{Categories: categories}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, categoriesCacheKey, data, uc.listTTL); err != nil {
			uc.logger.Warn("Failed to cache categories", zap.Error(err))
		}
	}

	return resp, nil
}

// buildFilter нормализует пагинацию: страница от 1, лимит в пределах
// настроенного максимума
func (uc *ItemUseCase) buildFilter(req dto.ListItemsRequest) domain.ItemFilter {
	page := req.Page
	if page < 1 {
		page = 1
	}

	limit := req.Limit
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if limit > uc.maxLimit {
		limit = uc.maxLimit
	}

	return domain.ItemFilter{
		Query:      req.Query,
		Categories: req.Categories,
		Page:       page,
		Limit:      limit,
	}
}

func listCacheKey(filter domain.ItemFilter) string {
	return fmt.Sprintf("%sq=%s:cat=%s:page=%d:limit=%d",
		listCachePrefix,
		filter.Query,
		strings.Join(filter.Categories, ","),
		filter.Page,
		filter.Limit,
	)
}
