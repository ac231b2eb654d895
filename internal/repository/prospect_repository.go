package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prospectmanager/internal/model"
)

// ProspectRepository defines prospect persistence operations.
type ProspectRepository interface {
	Create(ctx context.Context, prospect *model.Prospect) error
	Update(ctx context.Context, prospect *model.Prospect) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Prospect, error)
	List(ctx context.Context) ([]model.Prospect, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Prospect, error)
}

type prospectRepository struct {
	db *gorm.DB
}

// NewProspectRepository builds a GORM-backed repository.
func NewProspectRepository(db *gorm.DB) ProspectRepository {
	return &prospectRepository{db: db}
}

func (r *prospectRepository) Create(ctx context.Context, prospect *model.Prospect) error {
	return r.db.WithContext(ctx).Create(prospect).Error
}

func (r *prospectRepository) Update(ctx context.Context, prospect *model.Prospect) error {
	return r.db.WithContext(ctx).Save(prospect).Error
}

func (r *prospectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Prospect{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *prospectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Prospect, error) {
	var prospect model.Prospect
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&prospect).Error; err != nil {
		return nil, err
	}
	return &prospect, nil
}

func (r *prospectRepository) List(ctx context.Context) ([]model.Prospect, error) {
	var prospects []model.Prospect
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&prospects).Error; err != nil {
		return nil, err
	}
	return prospects, nil
}

func (r *prospectRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Prospect, error) {
	var prospects []model.Prospect
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&prospects).Error; err != nil {
		return nil, err
	}
	return prospects, nil
}
