package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleVisitor = "visitor"
	RoleMember  = "member"
	RoleAdmin   = "admin"
)

type User struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name" json:"name"`
	MatricNumber  string        `bson:"matric_number,omitempty" json:"matric_number,omitempty"`
	Email         string        `bson:"email" json:"email"`
	Phone         string        `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash  string        `bson:"password_hash" json:"-"`
	Role          string        `bson:"role" json:"role"`
	EmailVerified bool          `bson:"email_verified" json:"email_verified"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// OTPRequest holds a pending signup until the emailed code is confirmed.
type OTPRequest struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	OTP       string        `bson:"otp" json:"-"`
	ExpiresAt time.Time     `bson:"expires_at" json:"expires_at"`
	UserData  SignupData    `bson:"user_data" json:"-"`
}

type SignupData struct {
	Name         string `bson:"name"`
	MatricNumber string `bson:"matric_number,omitempty"`
	Email        string `bson:"email"`
	Phone        string `bson:"phone,omitempty"`
	Password     string `bson:"password"`
}
