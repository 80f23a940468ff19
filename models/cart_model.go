package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	Product primitive.ObjectID `bson:"product" json:"product" validate:"required"`
	Qty     int                `bson:"qty" json:"qty" validate:"required,min=1"`
}

// Cart is a per-user singleton keyed by the user field.
type Cart struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Items     []CartItem         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MergeItems coalesces duplicate product lines by summing quantities,
// preserving first-seen order. Stored carts are always deduplicated.
func MergeItems(items []CartItem) []CartItem {
	if len(items) == 0 {
		return items
	}
	merged := make([]CartItem, 0, len(items))
	index := make(map[primitive.ObjectID]int, len(items))
	for _, item := range items {
		if i, ok := index[item.Product]; ok {
			merged[i].Qty += item.Qty
			continue
		}
		index[item.Product] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
