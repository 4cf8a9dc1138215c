package services

import (
	"context"
	"errors"
	"fmt"
	"plantie/models"
	"plantie/repositories"

	"gorm.io/gorm"
)

type IAuthService interface {
	Login(ctx context.Context, userID uint, password string) (*models.User, error)
	SignIn(ctx context.Context, email string, password string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IUserRepository
}

func NewAuthService(repository repositories.IUserRepository) IAuthService {
	return &AuthService{repository: repository}
}

// Login verifies an id+password pair.
func (s *AuthService) Login(ctx context.Context, userID uint, password string) (*models.User, error) {
	foundUser, err := s.repository.FindByID(ctx, userID)
	return s.verify(foundUser, err, password)
}

// SignIn verifies an email+password pair. Several users may share an
// email; the first one whose password matches is signed in.
func (s *AuthService) SignIn(ctx context.Context, email string, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	candidates, err := s.repository.FindAllByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find users by email: %w", err)
	}
	for i := range candidates {
		if CheckPassword(candidates[i].Password, password) {
			return &candidates[i], nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (s *AuthService) verify(foundUser *models.User, err error, password string) (*models.User, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !CheckPassword(foundUser.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return foundUser, nil
}
