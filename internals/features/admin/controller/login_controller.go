package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"codekar_backend/internals/configs"
	helper "codekar_backend/internals/helpers"
	authMiddleware "codekar_backend/internals/middlewares/auth"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminController struct {
	Validate *validator.Validate
}

func NewAdminController() *AdminController {
	return &AdminController{Validate: validator.New()}
}

// Login checks the env-configured organizer credential and issues a JWT.
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var body LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.AdminEmail == "" || configs.AdminPasswordHash == "" || configs.JWTSecret == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Admin access is not configured")
	}

	if !strings.EqualFold(body.Email, configs.AdminEmail) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(body.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	claims := &authMiddleware.AdminClaims{
		Email: configs.AdminEmail,
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.Success(c, "Login successful", fiber.Map{"token": signed})
}
