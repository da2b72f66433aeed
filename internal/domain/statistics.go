package domain

import "time"

// CatalogStats представляет агрегированную статистику по каталогу.
// Снапшот неизменяемый: при обновлении заменяется целиком, поля
// по отдельности никогда не мутируются.
type CatalogStats struct {
	Total        int            `json:"total"`
	AveragePrice float64        `json:"average_price"`
	MinPrice     float64        `json:"min_price"`
	MaxPrice     float64        `json:"max_price"`
	ByCategory   map[string]int `json:"by_category"`
	LastUpdated  time.Time      `json:"last_updated"`
}

// UnknownCategory подставляется вместо пустой категории при агрегации
const UnknownCategory = "Unknown"
