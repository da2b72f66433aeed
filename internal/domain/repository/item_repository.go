package repository

import (
	"context"

	"github.com/catalog-service/internal/domain"
)

// ItemRepository интерфейс для работы с записями каталога
type ItemRepository interface {
	// List возвращает страницу каталога и общее число записей под фильтром
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, int, error)

	// GetByID возвращает запись по идентификатору
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// Create добавляет новую запись и заполняет ID/CreatedAt
	Create(ctx context.Context, item *domain.Item) error

	// Categories возвращает список уникальных категорий
	Categories(ctx context.Context) ([]string, error)
}
