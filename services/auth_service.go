package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const invalidCredentialsMsg = "Invalid credentials"

type AuthService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAuthService(db *gorm.DB, log *logrus.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

// AuthResult is the register/login response body.
type AuthResult struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

func (s *AuthService) Register(email, password, name string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Msg: "Email and password are required"}
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &ConflictError{Msg: "User with this email already exists"}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, Password: hashed, Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}

	token, err := s.getOrCreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.WithField("email", user.Email).Info("user registered")
	return &AuthResult{Token: token.Key, User: user.Summary()}, nil
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Msg: "Email and password are required"}
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &AuthError{Msg: invalidCredentialsMsg}
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, &AuthError{Msg: invalidCredentialsMsg}
	}

	token, err := s.getOrCreateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token.Key, User: user.Summary()}, nil
}

// Logout drops the user's token. It never fails from the caller's point
// of view; a second logout is stopped earlier, by the auth middleware.
func (s *AuthService) Logout(user *models.User) {
	if err := s.db.Unscoped().Where("user_id = ?", user.ID).Delete(&models.Token{}).Error; err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("token deletion failed during logout")
	}
}

// ResolveToken maps a presented token key to its live user.
func (s *AuthService) ResolveToken(key string) (*models.User, error) {
	var token models.Token
	if err := s.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &PermissionError{Msg: "Invalid token"}
		}
		return nil, err
	}
	return &token.User, nil
}

// getOrCreateToken returns the user's existing token, minting one only
// if none is live. Tokens are hard-deleted on logout so the unique
// user_id index never collides with a soft-deleted row.
func (s *AuthService) getOrCreateToken(userID uint) (*models.Token, error) {
	var token models.Token
	err := s.db.Where(models.Token{UserID: userID}).
		Attrs(models.Token{Key: utils.GenerateTokenKey()}).
		FirstOrCreate(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}
