package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tally/internal/domain"
)

type MySQLSalesRepository struct {
	db *sql.DB
}

func NewMySQLSalesRepository(db *sql.DB) *MySQLSalesRepository {
	return &MySQLSalesRepository{db: db}
}

func (r *MySQLSalesRepository) FindSalesHistory(ctx context.Context) ([]domain.SaleEntry, error) {
	query := `
		SELECT o.id, o.orderDate, o.customerName, p.name,
		       od.quantity, od.quantity * od.soldPrice AS totalRevenue
		FROM OrderDetails od
		JOIN Orders o ON od.orderId = o.id
		JOIN Products p ON od.productId = p.id
		ORDER BY o.orderDate DESC, o.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sales history: %w", err)
	}
	defer rows.Close()

	var entries []domain.SaleEntry
	for rows.Next() {
		var e domain.SaleEntry
		err := rows.Scan(
			&e.OrderID, &e.OrderDate, &e.CustomerName,
			&e.ProductName, &e.Quantity, &e.TotalRevenue,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sales history row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales history rows: %w", err)
	}

	return entries, nil
}

func (r *MySQLSalesRepository) SumRevenueByProduct(ctx context.Context) ([]domain.ProductRevenue, error) {
	query := `
		SELECT p.name, SUM(od.quantity * od.soldPrice) AS totalRevenue
		FROM OrderDetails od
		JOIN Products p ON od.productId = p.id
		GROUP BY p.id, p.name
		ORDER BY totalRevenue DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying revenue by product: %w", err)
	}
	defer rows.Close()

	var revenues []domain.ProductRevenue
	for rows.Next() {
		var pr domain.ProductRevenue
		if err := rows.Scan(&pr.ProductName, &pr.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scanning revenue row: %w", err)
		}
		revenues = append(revenues, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revenue rows: %w", err)
	}

	return revenues, nil
}
