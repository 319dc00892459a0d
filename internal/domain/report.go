package domain

import "time"

// SaleEntry is one row of the sales history view: an order joined to
// its detail and product, with revenue computed from the sold price.
type SaleEntry struct {
	OrderID      uint
	OrderDate    time.Time
	CustomerName string
	ProductName  string
	Quantity     int
	TotalRevenue float64
}

type ProductRevenue struct {
	ProductName  string
	TotalRevenue float64
}
