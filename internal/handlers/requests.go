package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// LoginRequest is the login form. Identifier accepts a username or an email,
// which is why it is not validated as an email address.
type LoginRequest struct {
	Identifier string `form:"username" validate:"required,max=254"`
	Password   string `form:"password" validate:"required,max=128"`
}
