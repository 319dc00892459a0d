package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tally/internal/domain"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert creates the order inside tx and returns it with the generated
// id and the database-assigned order date.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, customerName string) (*domain.Order, error) {
	result, err := tx.ExecContext(ctx, `INSERT INTO Orders (customerName) VALUES (?)`, customerName)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting last insert id: %w", err)
	}

	var orderDate time.Time
	err = tx.QueryRowContext(ctx, `SELECT orderDate FROM Orders WHERE id = ?`, lastInsertID).Scan(&orderDate)
	if err != nil {
		return nil, fmt.Errorf("reading order date: %w", err)
	}

	return &domain.Order{
		ID:           uint(lastInsertID),
		CustomerName: customerName,
		OrderDate:    orderDate,
	}, nil
}
