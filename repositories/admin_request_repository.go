package repositories

import (
	"context"
	"plantie/models"

	"gorm.io/gorm"
)

type IAdminRequestRepository interface {
	FindAll(ctx context.Context) ([]models.AdminRequest, error)
	Create(ctx context.Context, newRequest models.AdminRequest) (*models.AdminRequest, error)
	Delete(ctx context.Context, requestID uint) error
}

type AdminRequestRepository struct {
	db *gorm.DB
}

func NewAdminRequestRepository(db *gorm.DB) IAdminRequestRepository {
	return &AdminRequestRepository{db: db}
}

func (r *AdminRequestRepository) FindAll(ctx context.Context) ([]models.AdminRequest, error) {
	var requests []models.AdminRequest
	result := r.db.WithContext(ctx).Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}

func (r *AdminRequestRepository) Create(ctx context.Context, newRequest models.AdminRequest) (*models.AdminRequest, error) {
	result := r.db.WithContext(ctx).Create(&newRequest)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newRequest, nil
}

func (r *AdminRequestRepository) Delete(ctx context.Context, requestID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AdminRequest{}, requestID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
