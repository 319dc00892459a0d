package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

var createTables = []struct {
	name  string
	query string
}{
	{"Categories", `
	CREATE TABLE IF NOT EXISTS Categories (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL
	)`},
	{"Products", `
	CREATE TABLE IF NOT EXISTS Products (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		categoryId INT UNSIGNED NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		stockQuantity INT NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (categoryId) REFERENCES Categories(id),
		INDEX idx_category (categoryId),
		CONSTRAINT chk_stock_non_negative CHECK (stockQuantity >= 0)
	)`},
	{"Orders", `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customerName VARCHAR(150) NOT NULL DEFAULT '',
		orderDate DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`},
	{"OrderDetails", `
	CREATE TABLE IF NOT EXISTS OrderDetails (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		productId INT UNSIGNED NOT NULL,
		quantity INT NOT NULL,
		soldPrice DECIMAL(10,2) NOT NULL,
		FOREIGN KEY (orderId) REFERENCES Orders(id),
		FOREIGN KEY (productId) REFERENCES Products(id),
		INDEX idx_order (orderId),
		INDEX idx_product (productId)
	)`},
}

// Initialize creates the schema if absent and seeds baseline data the
// first time. Safe to call on every startup. Stock deduction has no
// trigger here: it is an explicit statement inside the sale transaction.
func Initialize(ctx context.Context, db *sql.DB) error {
	if err := CreateTables(ctx, db); err != nil {
		return err
	}

	return seedIfEmpty(ctx, db)
}

func CreateTables(ctx context.Context, db *sql.DB) error {
	for _, tbl := range createTables {
		if _, err := db.ExecContext(ctx, tbl.query); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.name, err)
		}
	}
	return nil
}

func seedIfEmpty(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Categories`).Scan(&count); err != nil {
		return fmt.Errorf("counting categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO Categories (name) VALUES ('Electronics'), ('Home'), ('Clothing')`,
	); err != nil {
		return fmt.Errorf("seeding categories: %w", err)
	}

	seedProducts := []struct {
		name       string
		categoryID int
		price      float64
		stock      int
	}{
		{"iPhone 14", 1, 999.00, 20},
		{"Coffee Maker", 2, 85.00, 15},
	}

	for _, p := range seedProducts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO Products (name, categoryId, price, stockQuantity) VALUES (?, ?, ?, ?)`,
			p.name, p.categoryID, p.price, p.stock,
		); err != nil {
			return fmt.Errorf("seeding product %s: %w", p.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	return nil
}
