package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedItem inserts a catalog item and returns its ID
func SeedItem(db *sql.DB, name, category string, price float64) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO catalog_items (name, category, price) VALUES ($1, $2, $3) RETURNING id",
		name, category, price,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed item %q: %w", name, err)
	}
	return id, nil
}
