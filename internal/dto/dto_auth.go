package dto

type SignupRequest struct {
	Name         string `json:"name" validate:"required"`
	MatricNumber string `json:"matric_number"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Password     string `json:"password" validate:"required,min=8"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
