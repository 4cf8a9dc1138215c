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

type IPlantService interface {
	Search(ctx context.Context, query dto.PlantSearchQuery) ([]models.Plant, error)
	FindByName(ctx context.Context, name string) (*models.Plant, error)
	Create(ctx context.Context, createPlantInput dto.CreatePlantInput) (*models.Plant, error)
	Delete(ctx context.Context, code uint) error
}

type PlantService struct {
	repository repositories.IPlantRepository
}

func NewPlantService(repository repositories.IPlantRepository) IPlantService {
	return &PlantService{repository: repository}
}

func (s *PlantService) Search(ctx context.Context, query dto.PlantSearchQuery) ([]models.Plant, error) {
	filters := repositories.BuildPlantFilters(query.Term, query.SearchByCategory(), query.SearchByName())
	plants, err := s.repository.Search(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("search plants: %w", err)
	}

	for i := range plants {
		plants[i].ImageURL = DecodePlantImage(plants[i].Image)
	}
	return plants, nil
}

func (s *PlantService) FindByName(ctx context.Context, name string) (*models.Plant, error) {
	plant, err := s.repository.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find plant %q: %w", name, err)
	}

	plant.ImageURL = DecodePlantImage(plant.Image)
	return plant, nil
}

func (s *PlantService) Create(ctx context.Context, createPlantInput dto.CreatePlantInput) (*models.Plant, error) {
	newPlant := models.Plant{
		Name:        createPlantInput.Name,
		Kind:        createPlantInput.Kind,
		Description: createPlantInput.Description,
		Quantity:    createPlantInput.Quantity,
		Price:       createPlantInput.Price,
		Image:       EncodePlantImage(createPlantInput.ImageURL),
	}
	created, err := s.repository.Create(ctx, newPlant)
	if err != nil {
		return nil, fmt.Errorf("create plant: %w", err)
	}

	created.ImageURL = DecodePlantImage(created.Image)
	return created, nil
}

// Delete removes the plant. Cart lines that reference it are left alone and
// an unknown code is not an error.
func (s *PlantService) Delete(ctx context.Context, code uint) error {
	err := s.repository.Delete(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Debug().Uint("plant_code", code).Msg("Delete plant: no matching row")
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete plant: %w", err)
	}
	return nil
}
