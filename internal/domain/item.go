package domain

import "time"

// Item представляет запись товара в каталоге
type Item struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  string    `json:"category" db:"category"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ItemFilter - параметры поиска и пагинации каталога
type ItemFilter struct {
	Query      string
	Categories []string
	Page       int
	Limit      int
}

// Offset возвращает смещение для SQL LIMIT/OFFSET
func (f ItemFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
