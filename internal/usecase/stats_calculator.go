package usecase

import (
	"math"
	"time"

	"github.com/catalog-service/internal/domain"
)

// ComputeStats вычисляет агрегированную статистику по коллекции записей.
// Чистая функция без side effects: одинаковый вход дает одинаковый
// результат (кроме LastUpdated).
//
// Пустая коллекция обрабатывается отдельной веткой, чтобы исключить
// деление на ноль: Total=0, AveragePrice=0, пустой ByCategory.
// Запись с нулевой ценой учитывается как 0, запись с пустой категорией
// попадает в категорию domain.UnknownCategory.
func ComputeStats(items []domain.Item) domain.CatalogStats {
	if len(items) == 0 {
		return domain.CatalogStats{
			Total:        0,
			AveragePrice: 0,
			ByCategory:   map[string]int{},
			LastUpdated:  time.Now(),
		}
	}

	var sum float64
	minPrice := items[0].Price
	maxPrice := items[0].Price
	byCategory := make(map[string]int)

	for _, item := range items {
		sum += item.Price
		if item.Price < minPrice {
			minPrice = item.Price
		}
		if item.Price > maxPrice {
			maxPrice = item.Price
		}

		category := item.Category
		if category == "" {
			category = domain.UnknownCategory
		}
		byCategory[category]++
	}

	return domain.CatalogStats{
		Total:        len(items),
		AveragePrice: roundPrice(sum / float64(len(items))),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		ByCategory:   byCategory,
		LastUpdated:  time.Now(),
	}
}

// roundPrice округляет до 2 знаков, половина - от нуля (10.005 -> 10.01)
func roundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
