package controllers

import (
	"context"
	"crypto/rand"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"clubhub-backend/internal/dto"
	"clubhub-backend/internal/mailer"
	"clubhub-backend/internal/models"
	"clubhub-backend/internal/repository"
)

const (
	otpLength   = 6
	otpLifetime = 10 * time.Minute
	tokenExpiry = 12 * time.Hour
)

type AuthController struct {
	Users     *repository.UserRepository
	OTPs      *repository.OTPRepository
	Mailer    *mailer.Mailer
	JWTSecret string
	Log       zerolog.Logger
}

// GenerateOTP creates a numeric code of the given length.
func GenerateOTP(length int) (string, error) {
	const digits = "0123456789"
	otp := make([]byte, length)
	if _, err := rand.Read(otp); err != nil {
		return "", err
	}
	for i := range otp {
		otp[i] = digits[otp[i]%10]
	}
	return string(otp), nil
}

// Signup godoc
// @Summary Request a signup verification code
// @Description Stores the pending signup and emails an OTP to the address
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignupRequest true "Signup request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /auth/signup [post]
func (a *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := a.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
	}

	otp, err := GenerateOTP(otpLength)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate OTP"})
	}

	if err := a.Mailer.SendOTP(req.Email, otp); err != nil {
		a.Log.Warn().Err(err).Str("email", req.Email).Msg("OTP email send failed")
	}

	err = a.OTPs.Upsert(ctx, models.OTPRequest{
		ID:        bson.NewObjectID(),
		Email:     req.Email,
		OTP:       otp,
		ExpiresAt: time.Now().Add(otpLifetime),
		UserData: models.SignupData{
			Name:         req.Name,
			MatricNumber: req.MatricNumber,
			Email:        strings.ToLower(req.Email),
			Phone:        req.Phone,
			Password:     req.Password,
		},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store OTP"})
	}

	return c.JSON(fiber.Map{"message": "Verification code sent to email."})
}

// VerifyOTP godoc
// @Summary Confirm the emailed code and create the account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.VerifyOTPRequest true "OTP confirmation"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/verify-otp [post]
func (a *AuthController) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	record, err := a.OTPs.FindByEmail(ctx, req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if record == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No verification code found for this email"})
	}
	if record.OTP != req.OTP {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid verification code"})
	}
	if time.Now().After(record.ExpiresAt) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Verification code expired"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(record.UserData.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	now := time.Now().UTC()
	user := models.User{
		ID:            bson.NewObjectID(),
		Name:          record.UserData.Name,
		MatricNumber:  record.UserData.MatricNumber,
		Email:         record.UserData.Email,
		Phone:         record.UserData.Phone,
		PasswordHash:  string(hashed),
		Role:          models.RoleMember,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := a.Users.Insert(ctx, user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	_ = a.OTPs.Delete(ctx, req.Email)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully.",
		"user_id": user.ID.Hex(),
	})
}

// Login godoc
// @Summary Log in and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Login request"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (a *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := a.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database query failed"})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"uid":  user.ID.Hex(),
		"sub":  user.ID.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.JWTSecret))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}

	return c.JSON(fiber.Map{
		"user":        user,
		"accessToken": signed,
	})
}
