package repositories

import (
	"context"
	"fmt"
	"plantie/models"

	"gorm.io/gorm"
)

type IAdminRepository interface {
	Exists(ctx context.Context, adminID uint) (bool, error)
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) IAdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Exists(ctx context.Context, adminID uint) (bool, error) {
	stmt := r.db.Statement
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?) AS id_exists",
		stmt.Quote(models.Admin{}.TableName()), stmt.Quote("ID_admina"))

	var exists bool
	result := r.db.WithContext(ctx).Raw(query, adminID).Scan(&exists)
	if result.Error != nil {
		return false, result.Error
	}
	return exists, nil
}
