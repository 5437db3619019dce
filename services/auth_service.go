package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sambit-git/ai-nutri-journal/models"
	"github.com/sambit-git/ai-nutri-journal/utils"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.New("email already registered")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	result := s.db.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(s.jwtSecret, user.ID, user.Email)
}
