package controllers

import (
	"errors"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, "Missing required fields or incorrect format", nil)
		return
	}

	user, err := ctl.auth.Register(input.Email, input.Password, input.FullName)
	if errors.Is(err, services.ErrDuplicate) {
		respond(c, http.StatusConflict, "Email already registered", nil)
		return
	}
	if err != nil {
		respondInternal(c, "register user", err)
		return
	}
	respond(c, http.StatusCreated, "Registration successful", gin.H{"id": user.ID, "email": user.Email})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, "Missing required fields or incorrect format", nil)
		return
	}

	token, err := ctl.auth.Login(input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		respond(c, http.StatusUnauthorized, "Invalid email or password", nil)
		return
	}
	if err != nil {
		respondInternal(c, "login", err)
		return
	}
	respond(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// POST /auth/forgot-password
func (ctl *AuthController) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, "Missing required fields or incorrect format", nil)
		return
	}

	if err := ctl.auth.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		respondInternal(c, "forgot password", err)
		return
	}
	respond(c, http.StatusOK, "If the email exists, a reset code has been sent", nil)
}

// POST /auth/reset-password
func (ctl *AuthController) ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, http.StatusBadRequest, "Missing required fields or incorrect format", nil)
		return
	}

	err := ctl.auth.ResetPassword(input.Token, input.NewPassword)
	if errors.Is(err, services.ErrInvalidToken) {
		respond(c, http.StatusBadRequest, "Invalid or expired token", nil)
		return
	}
	if err != nil {
		respondInternal(c, "reset password", err)
		return
	}
	respond(c, http.StatusOK, "Password has been reset", nil)
}
