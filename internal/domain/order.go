package domain

import "time"

type Order struct {
	ID           uint
	CustomerName string
	OrderDate    time.Time
}

// OrderDetail is one sold line of an Order. SoldPrice is the product
// price captured at sale time; later price changes never touch it.
type OrderDetail struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Quantity  int
	SoldPrice float64
}

func (d OrderDetail) Revenue() float64 {
	return float64(d.Quantity) * d.SoldPrice
}
