package domain

import "time"

type Product struct {
	ID            uint
	Name          string
	CategoryID    uint
	CategoryName  string
	Price         float64
	StockQuantity int
	CreatedAt     time.Time
}

// CanSell reports whether quantity units can be taken from stock.
func (p Product) CanSell(quantity int) bool {
	return quantity > 0 && p.StockQuantity >= quantity
}

func (p Product) StockValue() float64 {
	return p.Price * float64(p.StockQuantity)
}
