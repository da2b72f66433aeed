package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/catalog-service/internal/domain"
	"github.com/catalog-service/internal/domain/repository"
	"github.com/catalog-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// statsEntry - одно закешированное состояние статистики. Заполняется
// целиком и заменяется целиком: либо все три поля валидны, либо entry
// равен nil. Частичных обновлений не бывает.
type statsEntry struct {
	stats         *domain.CatalogStats
	sourceVersion string
	expiresAt     time.Time
}

// StatsUseCase кеширует снапшот статистики каталога в памяти процесса.
// Снапшот считается валидным, пока не истек TTL и токен версии
// источника совпадает с сохраненным. Ровно один снапшот на процесс.
type StatsUseCase struct {
	source repository.StatsSourceRepository
	logger *zap.Logger
	ttl    time.Duration

	mu    sync.RWMutex
	entry *statsEntry
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	source repository.StatsSourceRepository,
	logger *zap.Logger,
	ttl time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		source: source,
		logger: logger,
		ttl:    ttl,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно.
// Возвращаемый снапшот разделяется между вызовами: мутировать его нельзя.
//
// Сбой дешевой пробы версии при живом незадохшемся снапшоте трактуется
// как "изменений нет" - отдаем закешированное значение вместо ошибки.
// Полный отказ источника при обязательном пересчете наружу выходит как
// errors.ErrSourceUnavailable.
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	uc.mu.RLock()
	entry := uc.entry
	uc.mu.RUnlock()

	if entry != nil && time.Now().Before(entry.expiresAt) {
		version, err := uc.source.CurrentVersion(ctx)
		if err != nil {
			uc.logger.Warn("Version probe failed, serving cached statistics", zap.Error(err))
			return entry.stats, nil
		}
		if version == entry.sourceVersion {
			uc.logger.Debug("Statistics served from cache")
			return entry.stats, nil
		}
		uc.logger.Debug("Catalog version changed",
			zap.String("cached", entry.sourceVersion),
			zap.String("current", version),
		)
	}

	return uc.refresh(ctx)
}

// RefreshStatistics принудительно пересчитывает статистику, минуя
// проверку валидности кеша
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.CatalogStats, error) {
	uc.logger.Info("Refreshing statistics")
	return uc.refresh(ctx)
}

// Invalidate сбрасывает кеш: следующий запрос статистики обязан
// перечитать источник. Идемпотентна, предназначена для операторов и тестов.
func (uc *StatsUseCase) Invalidate() {
	uc.mu.Lock()
	uc.entry = nil
	uc.mu.Unlock()

	uc.logger.Info("Statistics cache invalidated")
}

// refresh перечитывает источник и заменяет entry одним присваиванием
// под локом, чтобы конкурентный читатель не увидел полусобранное
// состояние. Токен версии читается до данных: вставка, успевшая между
// этими двумя чтениями, оставит снапшот с уже устаревшим токеном, и
// следующий запрос корректно обнаружит расхождение. Конкурентные
// промахи могут пересчитать независимо, выигрывает последняя запись.
func (uc *StatsUseCase) refresh(ctx context.Context) (*domain.CatalogStats, error) {
	version, err := uc.source.CurrentVersion(ctx)
	if err != nil {
		uc.logger.Error("Failed to read catalog version", zap.Error(err))
		return nil, errors.ErrSourceUnavailable
	}

	items, err := uc.source.ReadAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to read catalog items", zap.Error(err))
		return nil, errors.ErrSourceUnavailable
	}

	stats := ComputeStats(items)

	entry := &statsEntry{
		stats:         &stats,
		sourceVersion: version,
		expiresAt:     time.Now().Add(uc.ttl),
	}

	uc.mu.Lock()
	uc.entry = entry
	uc.mu.Unlock()

	uc.logger.Debug("Statistics recomputed",
		zap.Int("total", stats.Total),
		zap.String("version", version),
	)

	return entry.stats, nil
}
