package dto

// RegisterForm is the multipart form accompanying an event registration.
// The uploaded receipt file travels separately.
type RegisterForm struct {
	Phone         string `form:"phone" json:"phone"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
}
