package repository

import (
	"context"

	"gorm.io/gorm"

	"prospectmanager/internal/model"
)

// SkillRepository defines persistence operations for reference skills.
type SkillRepository interface {
	Create(ctx context.Context, skill *model.Skill) error
	Delete(ctx context.Context, id uint) error
	FindByName(ctx context.Context, name string) (*model.Skill, error)
	List(ctx context.Context) ([]model.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository builds a GORM-backed repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *model.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Skill{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *skillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) List(ctx context.Context) ([]model.Skill, error) {
	var skills []model.Skill
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
