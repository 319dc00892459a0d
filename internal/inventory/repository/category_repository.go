package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type MySQLCategoryRepository struct {
	db *sql.DB
}

func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{db: db}
}

func (r *MySQLCategoryRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM Categories WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying category existence: %w", err)
	}
	return true, nil
}
