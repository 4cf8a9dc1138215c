package services

import (
	"context"
	"errors"
	"fmt"
	"plantie/models"
	"plantie/repositories"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type IAdminService interface {
	Exists(ctx context.Context, adminID string) (bool, error)
	FindAllRequests(ctx context.Context) ([]models.AdminRequest, error)
	CreateRequest(ctx context.Context, message string) (*models.AdminRequest, error)
	DeleteRequest(ctx context.Context, requestID uint) error
}

type AdminService struct {
	adminRepository   repositories.IAdminRepository
	requestRepository repositories.IAdminRequestRepository
}

func NewAdminService(adminRepository repositories.IAdminRepository, requestRepository repositories.IAdminRequestRepository) IAdminService {
	return &AdminService{
		adminRepository:   adminRepository,
		requestRepository: requestRepository,
	}
}

// Exists reports whether adminID names an admin. Ids that are not unsigned
// integers cannot match and skip the store.
func (s *AdminService) Exists(ctx context.Context, adminID string) (bool, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(adminID), 10, 64)
	if err != nil {
		return false, nil
	}

	exists, err := s.adminRepository.Exists(ctx, uint(id))
	if err != nil {
		return false, fmt.Errorf("check admin %d: %w", id, err)
	}
	return exists, nil
}

func (s *AdminService) FindAllRequests(ctx context.Context) ([]models.AdminRequest, error) {
	requests, err := s.requestRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find admin requests: %w", err)
	}
	return requests, nil
}

// CreateRequest stores a message for the admins. Blank messages are rejected
// before the store is touched.
func (s *AdminService) CreateRequest(ctx context.Context, message string) (*models.AdminRequest, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrValidation
	}

	created, err := s.requestRepository.Create(ctx, models.AdminRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("create admin request: %w", err)
	}
	return created, nil
}

func (s *AdminService) DeleteRequest(ctx context.Context, requestID uint) error {
	err := s.requestRepository.Delete(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Uint("request_id", requestID).Msg("Delete admin request: no matching row")
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete admin request: %w", err)
	}
	return nil
}
