package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/veritable/veritable-go/internal/model"
)

var ErrPublicationNotFound = errors.New("publication not found")

// PublicationRepository handles publication persistence operations.
type PublicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository creates a new PublicationRepository.
func NewPublicationRepository(db *gorm.DB) *PublicationRepository {
	return &PublicationRepository{db: db}
}

// Create inserts a new publication and sets the generated ID.
func (r *PublicationRepository) Create(ctx context.Context, pub *model.Publication) error {
	return r.db.WithContext(ctx).Create(pub).Error
}

// GetByID retrieves a publication by id.
func (r *PublicationRepository) GetByID(ctx context.Context, id int64) (*model.Publication, error) {
	pub := &model.Publication{}
	err := r.db.WithContext(ctx).First(pub, id).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}
	return pub, nil
}

// List returns every publication in primary-key order.
func (r *PublicationRepository) List(ctx context.Context) ([]model.Publication, error) {
	var pubs []model.Publication
	err := r.db.WithContext(ctx).Order("id ASC").Find(&pubs).Error
	return pubs, err
}

// Update persists all fields of the given publication row.
func (r *PublicationRepository) Update(ctx context.Context, pub *model.Publication) error {
	return r.db.WithContext(ctx).Save(pub).Error
}

// Delete removes a publication row. Returns ErrPublicationNotFound when no row matched.
func (r *PublicationRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Publication{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPublicationNotFound
	}
	return nil
}

// Count returns the total number of publications.
func (r *PublicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Publication{}).Count(&count).Error
	return count, err
}

// CountByType returns the number of publications of the given type.
func (r *PublicationRepository) CountByType(ctx context.Context, pubType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Publication{}).Where("type = ?", pubType).Count(&count).Error
	return count, err
}
