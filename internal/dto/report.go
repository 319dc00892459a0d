package dto

import "time"

type SaleEntryDTO struct {
	OrderID      uint      `json:"orderId"`
	OrderDate    time.Time `json:"orderDate"`
	CustomerName string    `json:"customerName"`
	Product      string    `json:"product"`
	Quantity     int       `json:"quantity"`
	TotalRevenue float64   `json:"totalRevenue"`
}

type SalesHistoryResponse struct {
	Sales []SaleEntryDTO `json:"sales"`
}

type ProductRevenueDTO struct {
	Product      string  `json:"product"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type RevenueByProductResponse struct {
	Products []ProductRevenueDTO `json:"products"`
}
