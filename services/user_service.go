package services

import (
	"context"
	"errors"
	"fmt"
	"plantie/dto"
	"plantie/models"
	"plantie/repositories"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type IUserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, createUserInput dto.CreateUserInput) (*models.User, error)
	Delete(ctx context.Context, userID uint) error
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, createUserInput dto.CreateUserInput) (*models.User, error) {
	hashedPassword, err := HashPassword(createUserInput.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := models.User{
		FirstName: createUserInput.FirstName,
		LastName:  createUserInput.LastName,
		Email:     createUserInput.Email,
		Password:  hashedPassword,
		Address:   createUserInput.Address,
		Contact:   createUserInput.Contact,
	}
	created, err := s.repository.Create(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Delete removes the user. An unknown id is not an error.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	err := s.repository.Delete(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Uint("user_id", userID).Msg("Delete user: no matching row")
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
