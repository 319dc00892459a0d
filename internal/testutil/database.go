package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"

	"tally/internal/infrastructure/mysql"
)

// SetupTestDB opens the integration test database. Expects a MySQL at
// localhost:3306 with a database named 'tally_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/tally_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// SetupTestTables creates the schema without seed data.
func SetupTestTables(t *testing.T, db *sql.DB) {
	if err := mysql.CreateTables(context.Background(), db); err != nil {
		t.Fatalf("failed to create test tables: %v", err)
	}
}

// CleanupTestDB empties the tables in FK order and closes the handle.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderDetails", "Orders", "Products", "Categories"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SeedCategory inserts a category and returns its id.
func SeedCategory(t *testing.T, db *sql.DB, name string) uint {
	result, err := db.Exec(`INSERT INTO Categories (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get category id: %v", err)
	}
	return uint(id)
}

// SeedProduct inserts a product and returns its id.
func SeedProduct(t *testing.T, db *sql.DB, name string, categoryID uint, price float64, stock int) uint {
	result, err := db.Exec(
		`INSERT INTO Products (name, categoryId, price, stockQuantity) VALUES (?, ?, ?, ?)`,
		name, categoryID, price, stock,
	)
	if err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get product id: %v", err)
	}
	return uint(id)
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	var count int
	err := db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}
