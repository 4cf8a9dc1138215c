package repositories

import (
	"context"
	"plantie/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IPlantRepository interface {
	Search(ctx context.Context, filters ...PlantFilter) ([]models.Plant, error)
	FindByName(ctx context.Context, name string) (*models.Plant, error)
	Create(ctx context.Context, newPlant models.Plant) (*models.Plant, error)
	Delete(ctx context.Context, code uint) error
}

type PlantRepository struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) IPlantRepository {
	return &PlantRepository{db: db}
}

// Search lists plants matching every filter; no filters lists them all.
func (r *PlantRepository) Search(ctx context.Context, filters ...PlantFilter) ([]models.Plant, error) {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, len(filters))
	for _, f := range filters {
		scopes = append(scopes, f)
	}

	var plants []models.Plant
	result := r.db.WithContext(ctx).Scopes(scopes...).Find(&plants)
	if result.Error != nil {
		return nil, result.Error
	}
	return plants, nil
}

func (r *PlantRepository) FindByName(ctx context.Context, name string) (*models.Plant, error) {
	var plant models.Plant
	result := r.db.WithContext(ctx).Where(clause.Eq{Column: clause.Column{Name: "nazivBiljke"}, Value: name}).First(&plant)
	if result.Error != nil {
		return nil, result.Error
	}
	return &plant, nil
}

func (r *PlantRepository) Create(ctx context.Context, newPlant models.Plant) (*models.Plant, error) {
	result := r.db.WithContext(ctx).Create(&newPlant)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newPlant, nil
}

func (r *PlantRepository) Delete(ctx context.Context, code uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Plant{}, code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
