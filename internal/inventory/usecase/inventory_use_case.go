package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"tally/internal/domain"
	"tally/internal/dto"
	apperrors "tally/internal/errors"
)

type SaleService interface {
	Sell(ctx context.Context, customerName string, productID uint, quantity int) (*domain.Order, *domain.OrderDetail, error)
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (uint, error)
}

type CategoryRepository interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type InventoryUseCase struct {
	productRepo      ProductRepository
	categoryRepo     CategoryRepository
	saleSvc          SaleService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewInventoryUseCase(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	saleSvc SaleService,
	logger *zap.Logger,
	maxRetryAttempts int,
) *InventoryUseCase {
	return &InventoryUseCase{
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		saleSvc:          saleSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *InventoryUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return uc.productRepo.FindAll(ctx)
}

func (uc *InventoryUseCase) StockSummary(ctx context.Context) (*dto.StockSummaryResponse, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totalValue := 0.0
	for _, p := range products {
		totalValue += p.StockValue()
	}

	return &dto.StockSummaryResponse{
		TotalProducts:   len(products),
		TotalStockValue: totalValue,
	}, nil
}

func (uc *InventoryUseCase) AddProduct(ctx context.Context, req dto.AddProductRequest) (*domain.Product, error) {
	if err := validateAddProduct(req); err != nil {
		return nil, err
	}

	exists, err := uc.categoryRepo.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("category with id %d not found", req.CategoryID))
	}

	product := domain.Product{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Price:         req.Price,
		StockQuantity: req.InitialStock,
	}

	id, err := uc.productRepo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	uc.logger.Info("product added",
		zap.Uint("productId", id),
		zap.String("name", product.Name),
		zap.Int("initialStock", product.StockQuantity),
	)

	return &product, nil
}

func (uc *InventoryUseCase) SellProduct(ctx context.Context, req dto.SellProductRequest) (*domain.Order, *domain.OrderDetail, error) {
	if err := validateSellProduct(req); err != nil {
		return nil, nil, err
	}

	uc.logger.Info("sale started",
		zap.Uint("productId", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	return uc.sellWithRetry(ctx, req)
}

func (uc *InventoryUseCase) sellWithRetry(ctx context.Context, req dto.SellProductRequest) (*domain.Order, *domain.OrderDetail, error) {
	maxAttempts := uc.maxRetryAttempts
	// Backoff intervals: attempt 1 (0ms), attempt 2 (100ms), attempt 3 (200ms), etc.
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		order, detail, err := uc.saleSvc.Sell(ctx, req.CustomerName, req.ProductID, req.Quantity)
		if err == nil {
			return order, detail, nil
		}

		if isDeadlockError(err) {
			if attempt < maxAttempts {
				backoff := backoffs[min(attempt, len(backoffs))-1]
				// Jitter: ±20% of the backoff base
				jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
				time.Sleep(jitter)
				uc.logger.Warn("deadlock detected, retrying",
					zap.Int("attempt", attempt),
					zap.Int("maxAttempts", maxAttempts),
					zap.Uint("productId", req.ProductID),
				)
				continue
			}
			break
		}

		return nil, nil, err
	}

	return nil, nil, apperrors.NewConflictError("max retries exceeded")
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}

func validateAddProduct(req dto.AddProductRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if req.CategoryID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "categoryId",
			Message: "categoryId is required",
		})
	}

	if req.Price < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be non-negative",
		})
	}

	if req.InitialStock < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "initialStock",
			Message: "initialStock must be at least 1",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func validateSellProduct(req dto.SellProductRequest) error {
	var details []apperrors.ValidationDetail

	if req.ProductID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId is required",
		})
	}

	if req.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
