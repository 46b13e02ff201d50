package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/repository"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestMemoryTodoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create assigns ID and timestamps", func(t *testing.T) {
		repo := repository.NewMemoryTodoRepository()

		todo := &domain.Todo{Title: "Buy milk"}
		require.NoError(t, repo.Create(ctx, todo))

		assert.NotZero(t, todo.ID)
		assert.False(t, todo.CreatedAt.IsZero())
		assert.Equal(t, todo.CreatedAt, todo.UpdatedAt)
		assert.False(t, todo.Completed)
	})

	t.Run("List returns newest first", func(t *testing.T) {
		repo := repository.NewMemoryTodoRepository()

		for _, title := range []string{"first", "second", "third"} {
			require.NoError(t, repo.Create(ctx, &domain.Todo{Title: title}))
		}

		todos, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 3)
		assert.Equal(t, "third", todos[0].Title)
		assert.Equal(t, "second", todos[1].Title)
		assert.Equal(t, "first", todos[2].Title)
	})

	t.Run("ListIncomplete filters completed records", func(t *testing.T) {
		repo := repository.NewMemoryTodoRepository()

		done := &domain.Todo{Title: "done"}
		require.NoError(t, repo.Create(ctx, done))
		require.NoError(t, repo.Create(ctx, &domain.Todo{Title: "open"}))

		_, err := repo.Update(ctx, done.ID, domain.TodoPatch{Completed: boolPtr(true)})
		require.NoError(t, err)

		todos, err := repo.ListIncomplete(ctx)
		require.NoError(t, err)
		require.Len(t, todos, 1)
		assert.Equal(t, "open", todos[0].Title)
	})

	t.Run("Update patches only provided fields and stamps UpdatedAt", func(t *testing.T) {
		repo := repository.NewMemoryTodoRepository()

		todo := &domain.Todo{Title: "Pay bills", Description: "due Friday"}
		require.NoError(t, repo.Create(ctx, todo))
		before := todo.UpdatedAt

		updated, err := repo.Update(ctx, todo.ID, domain.TodoPatch{Completed: boolPtr(true)})
		require.NoError(t, err)

		assert.Equal(t, "Pay bills", updated.Title)
		assert.Equal(t, "due Friday", updated.Description)
		assert.True(t, updated.Completed)
		assert.False(t, updated.UpdatedAt.Before(before))
		assert.Equal(t, todo.CreatedAt, updated.CreatedAt)
	})

	t.Run("Update unknown ID returns ErrNotFound", func(t *testing.T) {
		repo := repository.NewMemoryTodoRepository()

		_, err := repo.Update(ctx, 42, domain.TodoPatch{Title: strPtr("nope")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete twice fails the second time", func(t *testing.T) {
		repo := repository.NewMemoryTodoRepository()

		todo := &domain.Todo{Title: "ephemeral"}
		require.NoError(t, repo.Create(ctx, todo))

		require.NoError(t, repo.Delete(ctx, todo.ID))
		assert.ErrorIs(t, repo.Delete(ctx, todo.ID), domain.ErrNotFound)
	})
}
