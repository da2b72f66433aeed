package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/catalog-service/internal/domain"
	"github.com/catalog-service/internal/domain/repository"
	"github.com/catalog-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type itemRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewItemRepository создает новый экземпляр item repository
func NewItemRepository(db *DB) repository.ItemRepository {
	return &itemRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// NewStatsSource возвращает репозиторий каталога как источник данных статистики
func NewStatsSource(db *DB) repository.StatsSourceRepository {
	return &itemRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *itemRepository) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, int, error) {
	where, args := buildItemFilter(filter)

	countQuery := "SELECT COUNT(*) FROM catalog_items" + where
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.logger.Error("Failed to count items", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	query := fmt.Sprintf(
		"SELECT id, name, category, price, created_at FROM catalog_items%s ORDER BY id LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset())

	items := []domain.Item{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.Error("Failed to list items", zap.Error(err))
		return nil, 0, errors.ErrDatabaseError
	}

	return items, total, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `
		SELECT id, name, category, price, created_at
		FROM catalog_items
		WHERE id = $1
	`

	var item domain.Item
	err := r.db.GetContext(ctx, &item, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrItemNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get item by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO catalog_items (name, category, price)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, item.Name, item.Category, item.Price).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create item", zap.String("name", item.Name), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *itemRepository) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category FROM catalog_items ORDER BY category`

	categories := []string{}
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		r.logger.Error("Failed to get categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return categories, nil
}

// CurrentVersion возвращает токен версии каталога вида "count:maxID".
// Записи не обновляются на месте и не удаляются приложением, поэтому
// любая вставка меняет токен. Запрос дешевый: COUNT и MAX по первичному
// ключу идут по индексу.
func (r *itemRepository) CurrentVersion(ctx context.Context) (string, error) {
	query := `SELECT COUNT(*), COALESCE(MAX(id), 0) FROM catalog_items`

	var count, maxID int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&count, &maxID); err != nil {
		return "", fmt.Errorf("query catalog version: %w", err)
	}

	return fmt.Sprintf("%d:%d", count, maxID), nil
}

// ReadAll возвращает полную коллекцию каталога для пересчета статистики
func (r *itemRepository) ReadAll(ctx context.Context) ([]domain.Item, error) {
	query := `SELECT id, name, category, price, created_at FROM catalog_items ORDER BY id`

	items := []domain.Item{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("read catalog items: %w", err)
	}

	return items, nil
}

// buildItemFilter собирает WHERE из фильтра; плейсхолдеры нумеруются с $1
func buildItemFilter(filter domain.ItemFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	if len(filter.Categories) > 0 {
		args = append(args, pq.Array(filter.Categories))
		conditions = append(conditions, fmt.Sprintf("category = ANY($%d)", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}
