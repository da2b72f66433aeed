package dto

import "github.com/catalog-service/internal/domain"

// ItemListResponse - страница каталога
type ItemListResponse struct {
	Items []domain.Item `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// CategoriesResponse - список категорий каталога
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
