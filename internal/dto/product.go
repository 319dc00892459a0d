package dto

type AddProductRequest struct {
	Name         string  `json:"name"`
	CategoryID   uint    `json:"categoryId"`
	Price        float64 `json:"price"`
	InitialStock int     `json:"initialStock"`
}

type ProductDTO struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	CategoryID    uint    `json:"categoryId"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
}

type StockSummaryResponse struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalStockValue float64 `json:"totalStockValue"`
}
