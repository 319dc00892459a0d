package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tally/internal/domain"
	"tally/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

func (r *MySQLProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT p.id, p.name, p.categoryId, c.name, p.price, p.stockQuantity, p.createdAt
		FROM Products p
		JOIN Categories c ON p.categoryId = c.id
		ORDER BY p.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.CategoryID, &p.CategoryName,
			&p.Price, &p.StockQuantity, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) (uint, error) {
	query := `INSERT INTO Products (name, categoryId, price, stockQuantity) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.CategoryID, p.Price, p.StockQuantity)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindByIDForUpdate locks the product row for the lifetime of tx.
// Concurrent sales of the same product serialize on this lock.
func (r *MySQLProductRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
	query := `
		SELECT id, name, categoryId, price, stockQuantity, createdAt
		FROM Products
		WHERE id = ?
		FOR UPDATE
	`

	var p domain.Product
	err := tx.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.Price, &p.StockQuantity, &p.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}

	return &p, nil
}

// DeductStock decrements stockQuantity by quantity. The WHERE guard
// refuses the update if it would drive the stock negative.
func (r *MySQLProductRepository) DeductStock(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
	query := `
		UPDATE Products
		SET stockQuantity = stockQuantity - ?
		WHERE id = ? AND stockQuantity >= ?
	`

	result, err := tx.ExecContext(ctx, query, quantity, id, quantity)
	if err != nil {
		return fmt.Errorf("deducting stock: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("stock deduction refused for product %d", id))
	}

	return nil
}
