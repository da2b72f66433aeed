package repository

import (
	"context"

	"github.com/catalog-service/internal/domain"
)

// StatsSourceRepository - источник данных для вычисления статистики.
// CurrentVersion должен быть дешевым: он вызывается на каждом запросе
// статистики, ReadAll - только при обновлении снапшота.
type StatsSourceRepository interface {
	// CurrentVersion возвращает непрозрачный токен версии данных.
	// Токен меняется при любом изменении каталога.
	CurrentVersion(ctx context.Context) (string, error)

	// ReadAll возвращает полную коллекцию записей каталога
	ReadAll(ctx context.Context) ([]domain.Item, error)
}
