package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tally/internal/domain"
)

type MySQLOrderDetailRepository struct {
	db *sql.DB
}

func NewMySQLOrderDetailRepository(db *sql.DB) *MySQLOrderDetailRepository {
	return &MySQLOrderDetailRepository{db: db}
}

func (r *MySQLOrderDetailRepository) Insert(ctx context.Context, tx *sql.Tx, detail domain.OrderDetail) (uint, error) {
	query := `INSERT INTO OrderDetails (orderId, productId, quantity, soldPrice) VALUES (?, ?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, detail.OrderID, detail.ProductID, detail.Quantity, detail.SoldPrice)
	if err != nil {
		return 0, fmt.Errorf("inserting order detail: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}
