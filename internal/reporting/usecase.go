package reporting

import (
	"context"

	"tally/internal/dto"
)

type reportUseCase struct {
	repo Repository
}

func NewReportUseCase(repo Repository) ReportUseCase {
	return &reportUseCase{repo: repo}
}

func (uc *reportUseCase) SalesHistory(ctx context.Context) (*dto.SalesHistoryResponse, error) {
	entries, err := uc.repo.FindSalesHistory(ctx)
	if err != nil {
		return nil, err
	}

	sales := make([]dto.SaleEntryDTO, 0, len(entries))
	for _, e := range entries {
		sales = append(sales, dto.SaleEntryDTO{
			OrderID:      e.OrderID,
			OrderDate:    e.OrderDate,
			CustomerName: e.CustomerName,
			Product:      e.ProductName,
			Quantity:     e.Quantity,
			TotalRevenue: e.TotalRevenue,
		})
	}

	return &dto.SalesHistoryResponse{Sales: sales}, nil
}

func (uc *reportUseCase) RevenueByProduct(ctx context.Context) (*dto.RevenueByProductResponse, error) {
	revenues, err := uc.repo.SumRevenueByProduct(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]dto.ProductRevenueDTO, 0, len(revenues))
	for _, pr := range revenues {
		products = append(products, dto.ProductRevenueDTO{
			Product:      pr.ProductName,
			TotalRevenue: pr.TotalRevenue,
		})
	}

	return &dto.RevenueByProductResponse{Products: products}, nil
}
