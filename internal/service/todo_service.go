package service

import (
	"context"
	"strings"

	"github.com/taskbrief/taskbrief/internal/domain"
)

type TodoService interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Create(ctx context.Context, title, description string) (*domain.Todo, error)
	Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

type todoService struct {
	repo domain.TodoRepository
}

func NewTodoService(repo domain.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) List(ctx context.Context) ([]domain.Todo, error) {
	return s.repo.List(ctx)
}

func (s *todoService) Create(ctx context.Context, title, description string) (*domain.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	todo := &domain.Todo{
		Title:       title,
		Description: strings.TrimSpace(description),
		Completed:   false,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

// Update applies a partial patch. A patch may not blank the title: a record's
// title is never empty once validated.
func (s *todoService) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		patch.Title = &title
	}
	if patch.Description != nil {
		description := strings.TrimSpace(*patch.Description)
		patch.Description = &description
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *todoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
