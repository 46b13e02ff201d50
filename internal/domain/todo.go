package domain

import (
	"context"
	"time"
)

// Todo represents a single task record.
type Todo struct {
	ID          int64     `datastore:"-" json:"id"` // Key ID (auto-generated int64)
	Title       string    `datastore:"title" json:"title"`
	Description string    `datastore:"description,noindex" json:"description"`
	Completed   bool      `datastore:"completed" json:"completed"`
	CreatedAt   time.Time `datastore:"created_at" json:"created_at"`
	UpdatedAt   time.Time `datastore:"updated_at" json:"updated_at"`
}

// TodoPatch carries a partial update. Nil fields are left untouched.
type TodoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TodoRepository is the persistence port for todo records.
// List and ListIncomplete return records ordered by created_at descending.
type TodoRepository interface {
	Create(ctx context.Context, todo *Todo) error
	List(ctx context.Context) ([]Todo, error)
	ListIncomplete(ctx context.Context) ([]Todo, error)
	Update(ctx context.Context, id int64, patch TodoPatch) (*Todo, error)
	Delete(ctx context.Context, id int64) error
}

// SummaryResult is the outcome of the summarize workflow. Summary may be
// populated even when the workflow as a whole failed, so callers can surface
// partial results.
type SummaryResult struct {
	Summary string
	Message string
}
