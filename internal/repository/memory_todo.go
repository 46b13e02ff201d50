package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskbrief/taskbrief/internal/domain"
)

// MemoryTodoRepository is a mutex-guarded in-process store. It backs the
// service when no GCP project is configured, and the tests.
type MemoryTodoRepository struct {
	mu     sync.RWMutex
	todos  map[int64]domain.Todo
	nextID int64
}

func NewMemoryTodoRepository() *MemoryTodoRepository {
	return &MemoryTodoRepository{todos: make(map[int64]domain.Todo)}
}

func (r *MemoryTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.nextID++
	todo.ID = r.nextID
	todo.CreatedAt = now
	todo.UpdatedAt = now

	r.todos[todo.ID] = *todo
	return nil
}

func (r *MemoryTodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(domain.Todo) bool { return true }), nil
}

func (r *MemoryTodoRepository) ListIncomplete(ctx context.Context) ([]domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(t domain.Todo) bool { return !t.Completed }), nil
}

// collect returns matching todos ordered by created_at descending. IDs break
// ties because successive creates can share a timestamp.
func (r *MemoryTodoRepository) collect(match func(domain.Todo) bool) []domain.Todo {
	todos := make([]domain.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		if match(t) {
			todos = append(todos, t)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})
	return todos
}

func (r *MemoryTodoRepository) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	todo.UpdatedAt = time.Now().UTC()

	r.todos[id] = todo
	return &todo, nil
}

func (r *MemoryTodoRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.todos, id)
	return nil
}
