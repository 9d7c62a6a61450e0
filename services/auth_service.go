package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
	mailer utils.Mailer
}

func NewAuthService(db *gorm.DB, secret []byte, mailer utils.Mailer) *AuthService {
	return &AuthService{db: db, secret: secret, mailer: mailer}
}

func (s *AuthService) Register(email, password, fullName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	err = s.db.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(s.secret, user.ID, user.Email)
}

// ForgotPassword emails a reset code if the account exists. It reports
// nothing about whether the email is registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}

	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", token)
	return s.mailer.Send(ctx, user.Email, "Password Reset Code", body)
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" {
		return ErrInvalidToken
	}

	var user models.User
	if err := s.db.First(&user, "reset_token = ?", token).Error; err != nil {
		return ErrInvalidToken
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrInvalidToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
