package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/datastore"

	"github.com/taskbrief/taskbrief/internal/domain"
)

const KindTodo = "Todo"

// DatastoreTodoRepository persists todos as Datastore entities of kind Todo.
// The entity key ID is the todo ID.
type DatastoreTodoRepository struct {
	ds *datastore.Client
}

func NewDatastoreTodoRepository(ctx context.Context, projectID string) (*DatastoreTodoRepository, error) {
	ds, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore client: %w", err)
	}
	return &DatastoreTodoRepository{ds: ds}, nil
}

// Close closes the underlying datastore client.
func (r *DatastoreTodoRepository) Close() error {
	return r.ds.Close()
}

func (r *DatastoreTodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	now := time.Now().UTC()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	key := datastore.IncompleteKey(KindTodo, nil)
	newKey, err := r.ds.Put(ctx, key, todo)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	todo.ID = newKey.ID
	return nil
}

func (r *DatastoreTodoRepository) List(ctx context.Context) ([]domain.Todo, error) {
	query := datastore.NewQuery(KindTodo).Order("-created_at")
	return r.runQuery(ctx, query)
}

func (r *DatastoreTodoRepository) ListIncomplete(ctx context.Context) ([]domain.Todo, error) {
	query := datastore.NewQuery(KindTodo).
		Filter("completed =", false).
		Order("-created_at")
	return r.runQuery(ctx, query)
}

func (r *DatastoreTodoRepository) runQuery(ctx context.Context, query *datastore.Query) ([]domain.Todo, error) {
	var todos []domain.Todo
	keys, err := r.ds.GetAll(ctx, query, &todos)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	for i, key := range keys {
		todos[i].ID = key.ID
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

// Update applies the patch inside a transaction so the read-modify-write is
// atomic. UpdatedAt is always stamped server-side, never taken from the caller.
func (r *DatastoreTodoRepository) Update(ctx context.Context, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	key := datastore.IDKey(KindTodo, id, nil)

	var todo domain.Todo
	_, err := r.ds.RunInTransaction(ctx, func(tx *datastore.Transaction) error {
		if err := tx.Get(key, &todo); err != nil {
			return err
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

		_, err := tx.Put(key, &todo)
		return err
	})
	if err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	todo.ID = id
	return &todo, nil
}

// Delete removes the todo. The existence check and the delete run in one
// transaction so a missing record is reported as ErrNotFound, not swallowed.
func (r *DatastoreTodoRepository) Delete(ctx context.Context, id int64) error {
	key := datastore.IDKey(KindTodo, id, nil)

	_, err := r.ds.RunInTransaction(ctx, func(tx *datastore.Transaction) error {
		var todo domain.Todo
		if err := tx.Get(key, &todo); err != nil {
			return err
		}
		return tx.Delete(key)
	})
	if err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}
