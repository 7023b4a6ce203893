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

type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(ctx context.Context, userID string, in *validation.TaskInput) (*domain.Task, error) {
	t := &domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	if err := s.tasks.Create(ctx, t, in.TagIDs); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, userID, t.ID)
}

func (s *TaskService) List(ctx context.Context, userID string, f domain.TaskFilter) ([]*domain.Task, error) {
	return s.tasks.List(ctx, userID, f)
}

func (s *TaskService) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, userID, id string, up *validation.TaskUpdate) (*domain.Task, error) {
	if err := s.tasks.Update(ctx, userID, id, up); err != nil {
		return nil, mapNoRows(err)
	}
	return s.tasks.GetByID(ctx, userID, id)
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return mapNoRows(s.tasks.Delete(ctx, userID, id))
}

// mapNoRows folds a store miss into the uniform not-found error.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
