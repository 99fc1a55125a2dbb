package services

import (
	"errors"

	"bean-bloom/models"
	"bean-bloom/repositories"
	"bean-bloom/utils"
)

var ErrInvalidCredentials = errors.New("incorrect username or password")

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{
		userRepo: repositories.NewUserRepository(),
	}
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(user.PasswordHash, password)
	if err != nil || !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
