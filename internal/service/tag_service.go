package service

import (
	"context"
	"errors"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
	"taskboard/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TagService struct {
	tags *repository.TagRepository
}

func NewTagService(tags *repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) List(ctx context.Context, userID string) ([]*domain.TagWithCount, error) {
	return s.tags.ListByUser(ctx, userID)
}

// Create rejects a name the user already has as ErrTagNameTaken;
// the same name under a different user is fine.
func (s *TagService) Create(ctx context.Context, userID string, in *validation.TagInput) (*domain.Tag, error) {
	if _, err := s.tags.GetByName(ctx, userID, in.Name); err == nil {
		return nil, ErrTagNameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	t := &domain.Tag{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   in.Name,
		Color:  in.Color,
	}
	if err := s.tags.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrTagNameTaken
		}
		return nil, err
	}
	return t, nil
}

func (s *TagService) Update(ctx context.Context, userID, id string, req *validation.UpdateTagRequest) (*domain.Tag, error) {
	existing, err := s.tags.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapNoRows(err)
	}

	if req.Name != nil && *req.Name != existing.Name {
		if _, err := s.tags.GetByName(ctx, userID, *req.Name); err == nil {
			return nil, ErrTagNameTaken
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	if err := s.tags.Update(ctx, userID, id, req.Name, req.Color); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, ErrTagNameTaken
		}
		return nil, mapNoRows(err)
	}
	return s.tags.GetByID(ctx, userID, id)
}

func (s *TagService) Delete(ctx context.Context, userID, id string) error {
	return mapNoRows(s.tags.Delete(ctx, userID, id))
}
