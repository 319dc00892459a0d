package dto

import "time"

type SellProductRequest struct {
	CustomerName string `json:"customerName"`
	ProductID    uint   `json:"productId"`
	Quantity     int    `json:"quantity"`
}

type InsufficientStockResponse struct {
	TraceID   string `json:"traceId"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Available int    `json:"available"`
}

type SellProductResponse struct {
	TraceID      string    `json:"traceId"`
	OrderID      uint      `json:"orderId"`
	CustomerName string    `json:"customerName"`
	ProductID    uint      `json:"productId"`
	Quantity     int       `json:"quantity"`
	SoldPrice    float64   `json:"soldPrice"`
	Total        float64   `json:"total"`
	OrderDate    time.Time `json:"orderDate"`
}
