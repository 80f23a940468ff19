package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stock statuses derived from countInStock.
const (
	StockInStock    = "in_stock"
	StockLowStock   = "low_stock"
	StockOutOfStock = "out_of_stock"
)

const DefaultLowStockThreshold = 5

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ExternalID        string             `bson:"externalId" json:"externalId" validate:"required"`
	Name              string             `bson:"name" json:"name" validate:"required"`
	Image             string             `bson:"image" json:"image"`
	Brand             string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Category          string             `bson:"category" json:"category" validate:"required"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Price             float64            `bson:"price" json:"price" validate:"gte=0"`
	CountInStock      int                `bson:"countInStock" json:"countInStock" validate:"gte=0"`
	LowStockThreshold int                `bson:"lowStockThreshold" json:"lowStockThreshold"`
	StockStatus       string             `bson:"stockStatus" json:"stockStatus"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StockStatusFor maps a stock count onto the status enum. A zero threshold
// falls back to the default.
func StockStatusFor(countInStock, lowStockThreshold int) string {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	switch {
	case countInStock <= 0:
		return StockOutOfStock
	case countInStock <= lowStockThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}
