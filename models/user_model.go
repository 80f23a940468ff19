package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
	RoleDelivery   = "delivery"
)

// Account statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Avatar struct {
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	PublicID string `bson:"publicId,omitempty" json:"publicId,omitempty"`
}

type User struct {
	Id              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	Email           string             `bson:"email" json:"email" validate:"required,email"`
	Password        string             `bson:"password" json:"-"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar          *Avatar            `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role            string             `bson:"role" json:"role" validate:"oneof=user admin superadmin delivery"`
	Status          string             `bson:"status" json:"status" validate:"oneof=active inactive"`
	IsEmailVerified bool               `bson:"isEmailVerified" json:"isEmailVerified"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AvatarURL returns the avatar URL or empty when the user has none.
func (u *User) AvatarURL() string {
	if u.Avatar == nil {
		return ""
	}
	return u.Avatar.URL
}
