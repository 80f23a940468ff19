package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeliveredUser struct {
	ID    string `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type DeliveredItem struct {
	Name  string  `bson:"name" json:"name"`
	Qty   int     `bson:"qty" json:"qty"`
	Price float64 `bson:"price" json:"price"`
	Image string  `bson:"image,omitempty" json:"image,omitempty"`
}

type DeliveredPartner struct {
	ID    string `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// DeliveredOrder is a denormalized archival copy of a completed order,
// written once at delivery time for reporting. Its lifecycle is independent
// of the live Order.
type DeliveredOrder struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OriginalOrderID primitive.ObjectID `bson:"originalOrderId" json:"originalOrderId"`
	User            DeliveredUser      `bson:"user" json:"user"`
	Items           []DeliveredItem    `bson:"items" json:"items"`
	ShippingAddress string             `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	Mobile          string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	PaymentMethod   string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	ItemsPrice      float64            `bson:"itemsPrice" json:"itemsPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	AssignedTo      DeliveredPartner   `bson:"assignedTo" json:"assignedTo"`
	PaymentResult   *PaymentResult     `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	DeliveryStage   int                `bson:"deliveryStage" json:"deliveryStage"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
