package repositories

import (
	"context"
	"plantie/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IOrderRepository interface {
	FindAll(ctx context.Context) ([]models.CartOrder, error)
	FindByUser(ctx context.Context, userID uint) ([]models.UserOrder, error)
	Create(ctx context.Context, newOrder models.CartOrder) (*models.CartOrder, error)
	Delete(ctx context.Context, orderID uint) error
}

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]models.CartOrder, error) {
	var orders []models.CartOrder
	result := r.db.WithContext(ctx).Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}

// FindByUser returns the user's cart lines joined with the ordered plant.
// Lines whose plant no longer exists are dropped by the inner join.
func (r *OrderRepository) FindByUser(ctx context.Context, userID uint) ([]models.UserOrder, error) {
	cart := clause.Table{Name: models.CartOrder{}.TableName(), Alias: "k"}
	plant := clause.Table{Name: models.Plant{}.TableName(), Alias: "b"}

	from := clause.From{
		Tables: []clause.Table{cart},
		Joins: []clause.Join{{
			Type:  clause.InnerJoin,
			Table: plant,
			ON: clause.Where{Exprs: []clause.Expression{
				clause.Eq{
					Column: clause.Column{Table: "k", Name: "sifraBiljke"},
					Value:  clause.Column{Table: "b", Name: "sifraBiljke"},
				},
			}},
		}},
	}
	sel := clause.Select{Columns: []clause.Column{
		{Table: "k", Name: "ID_Kosarice"},
		{Table: "b", Name: "nazivBiljke"},
		{Table: "k", Name: "velicinaBiljke"},
		{Table: "k", Name: "kolicina"},
		{Table: "k", Name: "ID_korisnika"},
		{Table: "k", Name: "sifraBiljke"},
		{Table: "b", Name: "vrstaBiljke"},
		{Table: "b", Name: "opisBiljke"},
	}}

	var orders []models.UserOrder
	result := r.db.WithContext(ctx).
		Model(&models.CartOrder{}).
		Clauses(from, sel).
		Where(clause.Eq{Column: clause.Column{Table: "k", Name: "ID_korisnika"}, Value: userID}).
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, newOrder models.CartOrder) (*models.CartOrder, error) {
	result := r.db.WithContext(ctx).Create(&newOrder)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newOrder, nil
}

func (r *OrderRepository) Delete(ctx context.Context, orderID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CartOrder{}, orderID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
