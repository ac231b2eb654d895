package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prospectmanager/internal/apperrors"
	"prospectmanager/internal/cache"
	"prospectmanager/internal/model"
	"prospectmanager/internal/repository"
)

// Short TTL: the extension polls per-user lists aggressively, but edits from
// the dashboard should not stay stale for long.
const prospectListCacheTTL = time.Minute

// ProspectService exposes prospect operations.
type ProspectService interface {
	CreateProspect(ctx context.Context, prospect *model.Prospect) (*model.Prospect, error)
	GetProspect(ctx context.Context, id uuid.UUID) (*model.Prospect, error)
	ListProspects(ctx context.Context) ([]model.Prospect, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Prospect, error)
	UpdateProspect(ctx context.Context, prospect *model.Prospect) (*model.Prospect, error)
	DeleteProspect(ctx context.Context, id uuid.UUID) error
}

type prospectService struct {
	repo  repository.ProspectRepository
	cache *cache.Client
}

// NewProspectService builds a ProspectService with repository and cache.
func NewProspectService(repo repository.ProspectRepository, cache *cache.Client) ProspectService {
	return &prospectService{repo: repo, cache: cache}
}

func (s *prospectService) userListKey(userID uuid.UUID) string {
	return fmt.Sprintf("prospects:user:%s", userID)
}

func (s *prospectService) CreateProspect(ctx context.Context, prospect *model.Prospect) (*model.Prospect, error) {
	if prospect.ID == uuid.Nil {
		prospect.ID = uuid.New()
	}
	if prospect.Status == "" {
		prospect.Status = model.ProspectStatusNew
	}
	if err := s.repo.Create(ctx, prospect); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("create prospect: %w", err)
	}
	_ = s.cache.Delete(ctx, s.userListKey(prospect.UserID))
	return prospect, nil
}

func (s *prospectService) GetProspect(ctx context.Context, id uuid.UUID) (*model.Prospect, error) {
	prospect, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProspectNotFound
		}
		return nil, err
	}
	return prospect, nil
}

func (s *prospectService) ListProspects(ctx context.Context) ([]model.Prospect, error) {
	return s.repo.List(ctx)
}

func (s *prospectService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Prospect, error) {
	if data, _ := s.cache.Get(ctx, s.userListKey(userID)); data != nil {
		var cached []model.Prospect
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	prospects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(prospects); err == nil {
		_ = s.cache.Set(ctx, s.userListKey(userID), payload, prospectListCacheTTL)
	}
	return prospects, nil
}

func (s *prospectService) UpdateProspect(ctx context.Context, prospect *model.Prospect) (*model.Prospect, error) {
	if err := s.repo.Update(ctx, prospect); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProspectNotFound
		}
		return nil, fmt.Errorf("update prospect: %w", err)
	}
	_ = s.cache.Delete(ctx, s.userListKey(prospect.UserID))
	return prospect, nil
}

func (s *prospectService) DeleteProspect(ctx context.Context, id uuid.UUID) error {
	prospect, err := s.GetProspect(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProspectNotFound
		}
		return fmt.Errorf("delete prospect: %w", err)
	}
	_ = s.cache.Delete(ctx, s.userListKey(prospect.UserID))
	return nil
}
