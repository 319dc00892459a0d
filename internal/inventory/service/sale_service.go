package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"tally/internal/domain"
	"tally/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type ProductRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error)
	DeductStock(ctx context.Context, tx *sql.Tx, id uint, quantity int) error
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, customerName string) (*domain.Order, error)
}

type OrderDetailRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, detail domain.OrderDetail) (uint, error)
}

type SaleService struct {
	db              TransactionManager
	productRepo     ProductRepository
	orderRepo       OrderRepository
	orderDetailRepo OrderDetailRepository
	logger          *zap.Logger
	txTimeout       time.Duration
}

func NewSaleService(
	db TransactionManager,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	orderDetailRepo OrderDetailRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *SaleService {
	return &SaleService{
		db:              db,
		productRepo:     productRepo,
		orderRepo:       orderRepo,
		orderDetailRepo: orderDetailRepo,
		logger:          logger,
		txTimeout:       txTimeout,
	}
}

// Sell records one sale as a single transaction: lock the product row,
// check stock, create the order and its detail with the price captured
// under the lock, deduct stock, commit. Any failure rolls the whole
// operation back.
func (s *SaleService) Sell(ctx context.Context, customerName string, productID uint, quantity int) (*domain.Order, *domain.OrderDetail, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, nil, errors.NewInternalError("beginning sale transaction", err)
	}
	// Ensure rollback on any exit path. MySQL ignores rollback if already committed.
	defer tx.Rollback()

	product, err := s.productRepo.FindByIDForUpdate(txCtx, tx, productID)
	if err != nil {
		return nil, nil, err
	}

	if !product.CanSell(quantity) {
		s.logger.Warn("sale refused, insufficient stock",
			zap.Uint("productId", productID),
			zap.Int("requested", quantity),
			zap.Int("available", product.StockQuantity),
		)
		return nil, nil, errors.NewInsufficientStockError(product.StockQuantity)
	}

	order, err := s.orderRepo.Insert(txCtx, tx, customerName)
	if err != nil {
		s.logger.Error("failed to insert order", zap.Error(err))
		return nil, nil, err
	}

	detail := domain.OrderDetail{
		OrderID:   order.ID,
		ProductID: productID,
		Quantity:  quantity,
		SoldPrice: product.Price,
	}

	detailID, err := s.orderDetailRepo.Insert(txCtx, tx, detail)
	if err != nil {
		s.logger.Error("failed to insert order detail", zap.Uint("orderId", order.ID), zap.Error(err))
		return nil, nil, err
	}
	detail.ID = detailID

	if err := s.productRepo.DeductStock(txCtx, tx, productID, quantity); err != nil {
		s.logger.Error("failed to deduct stock", zap.Uint("orderId", order.ID), zap.Error(err))
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit sale", zap.Uint("orderId", order.ID), zap.Error(err))
		return nil, nil, errors.NewInternalError("committing sale transaction", err)
	}

	s.logger.Info("sale committed",
		zap.Uint("orderId", order.ID),
		zap.Uint("productId", productID),
		zap.Int("quantity", quantity),
		zap.Float64("soldPrice", detail.SoldPrice),
	)

	return order, &detail, nil
}
