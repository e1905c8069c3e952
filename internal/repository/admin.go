package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/veritable/veritable-go/internal/model"
)

var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository handles administrator persistence operations.
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername retrieves an admin by username.
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.WithContext(ctx).Where("username = ?", username).First(admin).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// GetByID retrieves an admin by id.
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.WithContext(ctx).First(admin, id).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// Count returns the number of administrator accounts.
func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&count).Error
	return count, err
}
