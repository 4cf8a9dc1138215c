package services

import (
	"context"
	"errors"
	"fmt"
	"plantie/dto"
	"plantie/models"
	"plantie/repositories"

	"gorm.io/gorm"
)

type IOrderService interface {
	FindAll(ctx context.Context) ([]models.CartOrder, error)
	FindByUser(ctx context.Context, userID uint) ([]models.UserOrder, error)
	Create(ctx context.Context, createOrderInput dto.CreateOrderInput) (*models.CartOrder, error)
	Delete(ctx context.Context, orderID uint) error
}

type OrderService struct {
	repository repositories.IOrderRepository
}

func NewOrderService(repository repositories.IOrderRepository) IOrderService {
	return &OrderService{repository: repository}
}

func (s *OrderService) FindAll(ctx context.Context) ([]models.CartOrder, error) {
	orders, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) FindByUser(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	orders, err := s.repository.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find orders of user %d: %w", userID, err)
	}
	return orders, nil
}

func (s *OrderService) Create(ctx context.Context, createOrderInput dto.CreateOrderInput) (*models.CartOrder, error) {
	newOrder := models.CartOrder{
		PlantName: createOrderInput.PlantName,
		PlantSize: createOrderInput.PlantSize,
		Quantity:  createOrderInput.Quantity,
		UserID:    createOrderInput.UserID,
		PlantCode: createOrderInput.PlantCode,
	}
	created, err := s.repository.Create(ctx, newOrder)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return created, nil
}

// Delete removes one cart line and reports ErrNotFound when none matched.
func (s *OrderService) Delete(ctx context.Context, orderID uint) error {
	err := s.repository.Delete(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
