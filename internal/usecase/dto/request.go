package dto

// ListItemsRequest - параметры листинга и поиска по каталогу
type ListItemsRequest struct {
	Query      string   `json:"query" validate:"omitempty,min=1,max=255"`
	Categories []string `json:"categories,omitempty" validate:"omitempty,max=20,dive,min=1"`
	Page       int      `json:"page" validate:"omitempty,min=1"`
	Limit      int      `json:"limit" validate:"omitempty,min=1,max=100"`
}

// CreateItemRequest - запрос на создание записи каталога
type CreateItemRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=255"`
	Category string  `json:"category" validate:"required,min=1,max=100"`
	Price    float64 `json:"price" validate:"min=0"`
}
