package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusFor(t *testing.T) {
	assert.Equal(t, StockOutOfStock, StockStatusFor(0, 5))
	assert.Equal(t, StockOutOfStock, StockStatusFor(-3, 5))
	assert.Equal(t, StockLowStock, StockStatusFor(1, 5))
	assert.Equal(t, StockLowStock, StockStatusFor(5, 5))
	assert.Equal(t, StockInStock, StockStatusFor(6, 5))
	assert.Equal(t, StockInStock, StockStatusFor(100, 5))
}

func TestStockStatusForDefaultThreshold(t *testing.T) {
	// A missing threshold falls back to the default of 5.
	assert.Equal(t, StockLowStock, StockStatusFor(5, 0))
	assert.Equal(t, StockInStock, StockStatusFor(6, 0))
	assert.Equal(t, StockLowStock, StockStatusFor(3, -1))
}
