package inventory

import (
	"database/sql"

	"go.uber.org/zap"

	"tally/internal/config"
	"tally/internal/inventory/controller"
	"tally/internal/inventory/repository"
	"tally/internal/inventory/service"
	"tally/internal/inventory/usecase"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.InventoryController {
	productRepo := repository.NewMySQLProductRepository(db)
	categoryRepo := repository.NewMySQLCategoryRepository(db)
	orderRepo := repository.NewMySQLOrderRepository(db)
	orderDetailRepo := repository.NewMySQLOrderDetailRepository(db)

	saleSvc := service.NewSaleService(
		db,
		productRepo,
		orderRepo,
		orderDetailRepo,
		logger,
		cfg.Sale.TxTimeout,
	)

	uc := usecase.NewInventoryUseCase(
		productRepo,
		categoryRepo,
		saleSvc,
		logger,
		cfg.Sale.MaxRetryAttempts,
	)

	return controller.NewInventoryController(uc, logger)
}
