package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses.
const (
	OrderPending    = "Pending"
	OrderProcessing = "Processing"
	OrderShipped    = "Shipped"
	OrderDelivered  = "Delivered"
	OrderCancelled  = "Cancelled"
)

// Payment methods carried on the order.
const (
	MethodCOD  = "COD"
	MethodQR   = "qr"
	MethodCard = "card"
)

// OrderItem is a snapshot of the product at order time; name, image and
// price are copied, not live-linked.
type OrderItem struct {
	Name    string             `bson:"name" json:"name"`
	Qty     int                `bson:"qty" json:"qty"`
	Image   string             `bson:"image,omitempty" json:"image,omitempty"`
	Price   float64            `bson:"price" json:"price"`
	Product primitive.ObjectID `bson:"product" json:"product"`
}

type PaymentResult struct {
	TransactionID string `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string `bson:"status,omitempty" json:"status,omitempty"`
	UpdateTime    string `bson:"update_time,omitempty" json:"update_time,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty"`
	Method        string `bson:"method,omitempty" json:"method,omitempty"`
	ConfirmedBy   string `bson:"confirmedBy,omitempty" json:"confirmedBy,omitempty"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress string             `bson:"shippingAddress" json:"shippingAddress"`
	Mobile          string             `bson:"mobile" json:"mobile"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`

	ItemsPrice    float64 `bson:"itemsPrice" json:"itemsPrice"`
	ShippingPrice float64 `bson:"shippingPrice" json:"shippingPrice"`
	TaxPrice      float64 `bson:"taxPrice" json:"taxPrice"`
	TotalPrice    float64 `bson:"totalPrice" json:"totalPrice"`

	IsPaid        bool           `bson:"isPaid" json:"isPaid"`
	PaidAt        *time.Time     `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	PaymentResult *PaymentResult `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`

	IsDelivered bool                `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt *time.Time          `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Status      string              `bson:"status" json:"status"`

	ExpectedDeliveryDate *time.Time `bson:"expectedDeliveryDate,omitempty" json:"expectedDeliveryDate,omitempty"`
	DeliveryStage        int        `bson:"deliveryStage" json:"deliveryStage"`
	DelayMessage         bool       `bson:"delayMessage" json:"delayMessage"`

	IsCanceled   bool       `bson:"isCanceled" json:"isCanceled"`
	CancelReason string     `bson:"cancelReason,omitempty" json:"cancelReason,omitempty"`
	CanceledAt   *time.Time `bson:"canceledAt,omitempty" json:"canceledAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ShortID is the human-facing order reference used in email subjects.
func (o *Order) ShortID() string {
	hex := o.ID.Hex()
	if len(hex) <= 6 {
		return hex
	}
	return hex[len(hex)-6:]
}
