package repository

import (
	"context"

	"gorm.io/gorm"

	"prospectmanager/internal/model"
)

// LinkedInProfileRepository defines persistence operations for reference profiles.
type LinkedInProfileRepository interface {
	Create(ctx context.Context, profile *model.LinkedInProfile) error
	Update(ctx context.Context, profile *model.LinkedInProfile) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.LinkedInProfile, error)
	FindByName(ctx context.Context, name string) (*model.LinkedInProfile, error)
	List(ctx context.Context) ([]model.LinkedInProfile, error)
}

type linkedInProfileRepository struct {
	db *gorm.DB
}

// NewLinkedInProfileRepository builds a GORM-backed repository.
func NewLinkedInProfileRepository(db *gorm.DB) LinkedInProfileRepository {
	return &linkedInProfileRepository{db: db}
}

func (r *linkedInProfileRepository) Create(ctx context.Context, profile *model.LinkedInProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *linkedInProfileRepository) Update(ctx context.Context, profile *model.LinkedInProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *linkedInProfileRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.LinkedInProfile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *linkedInProfileRepository) FindByID(ctx context.Context, id uint) (*model.LinkedInProfile, error) {
	var profile model.LinkedInProfile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *linkedInProfileRepository) FindByName(ctx context.Context, name string) (*model.LinkedInProfile, error) {
	var profile model.LinkedInProfile
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *linkedInProfileRepository) List(ctx context.Context) ([]model.LinkedInProfile, error) {
	var profiles []model.LinkedInProfile
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
