package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTP purposes.
const (
	OtpPurposeRegister         = "register"
	OtpPurposeResetPassword    = "reset_password"
	OtpPurposeDeliveryRegister = "delivery_register"
)

// OtpExpiry is how long a code stays valid.
const OtpExpiry = 5 * time.Minute

// OtpPayload carries pending registration fields until the code is verified.
type OtpPayload struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Password string `bson:"password,omitempty" json:"-"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// Otp holds a one-time passcode. A unique index on (email, purpose) keeps at
// most one live code per pair, and a TTL index on expiresAt reaps stale ones.
type Otp struct {
	Id        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Otp       string             `bson:"otp" json:"-"`
	Purpose   string             `bson:"purpose" json:"purpose"`
	Payload   *OtpPayload        `bson:"payload,omitempty" json:"payload,omitempty"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (o *Otp) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
