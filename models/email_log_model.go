package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Email log statuses.
const (
	EmailSent   = "sent"
	EmailFailed = "failed"
)

// EmailLog records the outcome of every send attempt for auditing.
type EmailLog struct {
	Id        primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	To        string              `bson:"to" json:"to"`
	Subject   string              `bson:"subject" json:"subject"`
	OrderID   *primitive.ObjectID `bson:"orderId,omitempty" json:"orderId,omitempty"`
	Status    string              `bson:"status" json:"status"`
	MessageID string              `bson:"messageId,omitempty" json:"messageId,omitempty"`
	Error     string              `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
