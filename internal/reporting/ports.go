package reporting

import (
	"context"

	"tally/internal/domain"
	"tally/internal/dto"
)

type ReportUseCase interface {
	SalesHistory(ctx context.Context) (*dto.SalesHistoryResponse, error)
	RevenueByProduct(ctx context.Context) (*dto.RevenueByProductResponse, error)
}

type Repository interface {
	FindSalesHistory(ctx context.Context) ([]domain.SaleEntry, error)
	SumRevenueByProduct(ctx context.Context) ([]domain.ProductRevenue, error)
}
