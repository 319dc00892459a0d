package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally/internal/domain"
	"tally/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewMySQLOrderDetailRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderDetailRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestOrderRepository_Insert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	order, err := repo.Insert(context.Background(), tx, "John Doe")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NotZero(t, order.ID)
	assert.Equal(t, "John Doe", order.CustomerName)
	assert.False(t, order.OrderDate.IsZero())
}

func TestOrderRepository_Insert_EmptyCustomerName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	order, err := repo.Insert(context.Background(), tx, "")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NotZero(t, order.ID)
	assert.Empty(t, order.CustomerName)
}

func TestOrderRepository_Insert_RollbackLeavesNoRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	order, err := repo.Insert(context.Background(), tx, "Jane Smith")
	require.NoError(t, err)
	assert.NotZero(t, order.ID)

	require.NoError(t, tx.Rollback())

	assert.Equal(t, 0, testutil.CountRows(t, db, "Orders"))
}

func TestOrderDetailRepository_Insert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	catID := testutil.SeedCategory(t, db, "Electronics")
	productID := testutil.SeedProduct(t, db, "iPhone 14", catID, 999.00, 20)

	orderRepo := NewMySQLOrderRepository(db)
	detailRepo := NewMySQLOrderDetailRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	order, err := orderRepo.Insert(context.Background(), tx, "John Doe")
	require.NoError(t, err)

	detailID, err := detailRepo.Insert(context.Background(), tx, domain.OrderDetail{
		OrderID:   order.ID,
		ProductID: productID,
		Quantity:  2,
		SoldPrice: 999.00,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.NotZero(t, detailID)
	assert.Equal(t, 1, testutil.CountRows(t, db, "OrderDetails"))
}

func TestOrderDetailRepository_Insert_UnknownOrderFails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	catID := testutil.SeedCategory(t, db, "Electronics")
	productID := testutil.SeedProduct(t, db, "iPhone 14", catID, 999.00, 20)

	detailRepo := NewMySQLOrderDetailRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = detailRepo.Insert(context.Background(), tx, domain.OrderDetail{
		OrderID:   9999,
		ProductID: productID,
		Quantity:  1,
		SoldPrice: 999.00,
	})
	assert.Error(t, err)
}
