package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/cache"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

const (
	profileListCacheKey = "linkedin_profiles"
	profileListCacheTTL = 5 * time.Minute
)

// ReferenceService manages the seeded lookup tables: LinkedIn profiles and skills.
type ReferenceService interface {
	ListProfiles(ctx context.Context) ([]model.LinkedInProfile, error)
	CreateProfile(ctx context.Context, profile *model.LinkedInProfile) (*model.LinkedInProfile, error)
	UpdateProfile(ctx context.Context, profile *model.LinkedInProfile) (*model.LinkedInProfile, error)
	DeleteProfile(ctx context.Context, id uint) error
	ListSkills(ctx context.Context) ([]model.Skill, error)
	CreateSkill(ctx context.Context, skill *model.Skill) (*model.Skill, error)
	DeleteSkill(ctx context.Context, id uint) error
}

type referenceService struct {
	profiles repository.LinkedInProfileRepository
	skills   repository.SkillRepository
	cache    *cache.Client
}

// NewReferenceService builds a ReferenceService.
func NewReferenceService(profiles repository.LinkedInProfileRepository, skills repository.SkillRepository, cache *cache.Client) ReferenceService {
	return &referenceService{profiles: profiles, skills: skills, cache: cache}
}

func (s *referenceService) ListProfiles(ctx context.Context) ([]model.LinkedInProfile, error) {
	if data, _ := s.cache.Get(ctx, profileListCacheKey); data != nil {
		var cached []model.LinkedInProfile
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(profiles); err == nil {
		_ = s.cache.Set(ctx, profileListCacheKey, payload, profileListCacheTTL)
	}
	return profiles, nil
}

func (s *referenceService) CreateProfile(ctx context.Context, profile *model.LinkedInProfile) (*model.LinkedInProfile, error) {
	if err := s.profiles.Create(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)
	return profile, nil
}

func (s *referenceService) UpdateProfile(ctx context.Context, profile *model.LinkedInProfile) (*model.LinkedInProfile, error) {
	if _, err := s.profiles.FindByID(ctx, profile.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	if err := s.profiles.Update(ctx, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)
	return profile, nil
}

func (s *referenceService) DeleteProfile(ctx context.Context, id uint) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileListCacheKey)
	return nil
}

func (s *referenceService) ListSkills(ctx context.Context) ([]model.Skill, error) {
	return s.skills.List(ctx)
}

func (s *referenceService) CreateSkill(ctx context.Context, skill *model.Skill) (*model.Skill, error) {
	if err := s.skills.Create(ctx, skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return skill, nil
}

func (s *referenceService) DeleteSkill(ctx context.Context, id uint) error {
	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}
