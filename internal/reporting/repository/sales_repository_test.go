package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/testutil"
)

// Unit Tests

func TestNewMySQLSalesRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLSalesRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func seedSale(t *testing.T, db *sql.DB, customer string, orderDate string, productID uint, quantity int, soldPrice float64) int64 {
	result, err := db.Exec(`INSERT INTO Orders (customerName, orderDate) VALUES (?, ?)`, customer, orderDate)
	require.NoError(t, err)
	orderID, err := result.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO OrderDetails (orderId, productId, quantity, soldPrice) VALUES (?, ?, ?, ?)`,
		orderID, productID, quantity, soldPrice,
	)
	require.NoError(t, err)

	return orderID
}

func TestSalesRepository_FindSalesHistory_OrderedByDateDesc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	catID := testutil.SeedCategory(t, db, "Electronics")
	phoneID := testutil.SeedProduct(t, db, "iPhone 14", catID, 999.00, 20)
	makerID := testutil.SeedProduct(t, db, "Coffee Maker", catID, 85.00, 15)

	seedSale(t, db, "John", "2026-08-01 09:00:00", phoneID, 1, 999.00)
	seedSale(t, db, "Jane", "2026-08-03 14:30:00", makerID, 2, 85.00)
	seedSale(t, db, "Bob", "2026-08-02 11:00:00", phoneID, 3, 999.00)

	repo := NewMySQLSalesRepository(db)

	entries, err := repo.FindSalesHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Jane", entries[0].CustomerName)
	assert.Equal(t, "Bob", entries[1].CustomerName)
	assert.Equal(t, "John", entries[2].CustomerName)

	assert.Equal(t, "Coffee Maker", entries[0].ProductName)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, 170.00, entries[0].TotalRevenue)
	assert.Equal(t, 2997.00, entries[1].TotalRevenue)
}

func TestSalesRepository_FindSalesHistory_TiesBrokenByOrderIDDesc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	catID := testutil.SeedCategory(t, db, "Home")
	productID := testutil.SeedProduct(t, db, "Coffee Maker", catID, 85.00, 15)

	first := seedSale(t, db, "First", "2026-08-01 09:00:00", productID, 1, 85.00)
	second := seedSale(t, db, "Second", "2026-08-01 09:00:00", productID, 1, 85.00)
	require.Greater(t, second, first)

	repo := NewMySQLSalesRepository(db)

	entries, err := repo.FindSalesHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Second", entries[0].CustomerName)
	assert.Equal(t, "First", entries[1].CustomerName)
}

func TestSalesRepository_FindSalesHistory_RevenueUsesSoldPrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	catID := testutil.SeedCategory(t, db, "Electronics")
	productID := testutil.SeedProduct(t, db, "iPhone 14", catID, 1099.00, 20)

	// Sold at the old price; the report must use the snapshot, not the
	// current product price.
	seedSale(t, db, "John", "2026-08-01 09:00:00", productID, 2, 999.00)

	repo := NewMySQLSalesRepository(db)

	entries, err := repo.FindSalesHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1998.00, entries[0].TotalRevenue)
}

func TestSalesRepository_FindSalesHistory_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLSalesRepository(db)

	entries, err := repo.FindSalesHistory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSalesRepository_SumRevenueByProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	catID := testutil.SeedCategory(t, db, "Electronics")
	phoneID := testutil.SeedProduct(t, db, "iPhone 14", catID, 999.00, 20)
	makerID := testutil.SeedProduct(t, db, "Coffee Maker", catID, 85.00, 15)

	seedSale(t, db, "John", "2026-08-01 09:00:00", phoneID, 1, 999.00)
	seedSale(t, db, "Jane", "2026-08-02 09:00:00", phoneID, 2, 999.00)
	seedSale(t, db, "Bob", "2026-08-03 09:00:00", makerID, 1, 85.00)

	repo := NewMySQLSalesRepository(db)

	revenues, err := repo.SumRevenueByProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, revenues, 2)
	assert.Equal(t, "iPhone 14", revenues[0].ProductName)
	assert.Equal(t, 2997.00, revenues[0].TotalRevenue)
	assert.Equal(t, "Coffee Maker", revenues[1].ProductName)
	assert.Equal(t, 85.00, revenues[1].TotalRevenue)
}
