package repositories

import (
	"context"
	"plantie/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IUserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, userID uint) (*models.User, error)
	FindAllByEmail(ctx context.Context, email string) ([]models.User, error)
	Create(ctx context.Context, newUser models.User) (*models.User, error)
	Delete(ctx context.Context, userID uint) error
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

// FindAllByEmail returns every user registered with the address, oldest
// first. Email is not unique in the schema.
func (r *UserRepository) FindAllByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "Email_korisnika"}, Value: email}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "ID_korisnika"}}).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *UserRepository) Create(ctx context.Context, newUser models.User) (*models.User, error) {
	result := r.db.WithContext(ctx).Create(&newUser)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newUser, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
