package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses.
const (
	PaymentPending    = "pending"
	PaymentPaid       = "paid"
	PaymentFailed     = "failed"
	PaymentCODPending = "cod_pending"
)

// Payment methods on payment attempts (lowercase, unlike Order.PaymentMethod
// which keeps the legacy "COD" spelling).
const (
	PayMethodQR   = "qr"
	PayMethodCard = "card"
	PayMethodCOD  = "cod"
)

// Payment records one payment attempt for an order. Only the most recent
// attempt carries Active=true; older attempts are kept for audit.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Order         primitive.ObjectID `bson:"order" json:"order"`
	User          primitive.ObjectID `bson:"user" json:"user"`
	Amount        float64            `bson:"amount" json:"amount"`
	Method        string             `bson:"method" json:"method" validate:"oneof=qr card cod"`
	Status        string             `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	QRCodeURL     string             `bson:"qrCodeUrl,omitempty" json:"qrCodeUrl,omitempty"`
	CardLast4     string             `bson:"cardLast4,omitempty" json:"cardLast4,omitempty"`
	Active        bool               `bson:"active" json:"active"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CardLast4 keeps only the last four digits; the full card number is never
// stored.
func CardLast4(number string) string {
	number = strings.ReplaceAll(number, " ", "")
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}

// NewTransactionID mints a human-readable transaction reference.
func NewTransactionID() string {
	return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
