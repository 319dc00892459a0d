package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_CanSell(t *testing.T) {
	p := Product{ID: 1, Name: "Widget", StockQuantity: 5}

	assert.True(t, p.CanSell(1))
	assert.True(t, p.CanSell(5))
	assert.False(t, p.CanSell(6))
	assert.False(t, p.CanSell(0))
	assert.False(t, p.CanSell(-1))
}

func TestProduct_CanSell_ZeroStock(t *testing.T) {
	p := Product{ID: 1, Name: "Widget", StockQuantity: 0}

	assert.False(t, p.CanSell(1))
}

func TestProduct_StockValue(t *testing.T) {
	p := Product{Price: 9.99, StockQuantity: 10}

	assert.InDelta(t, 99.9, p.StockValue(), 0.0001)
}

func TestProduct_StockValue_EmptyStock(t *testing.T) {
	p := Product{Price: 100.0, StockQuantity: 0}

	assert.Equal(t, 0.0, p.StockValue())
}
