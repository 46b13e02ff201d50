package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskbrief/taskbrief/internal/domain"
	"github.com/taskbrief/taskbrief/internal/logger"
)

const summarySystemPrompt = "You are a helpful assistant that summarizes todo lists " +
	"in a concise, organized way. Identify patterns, priorities, and suggest a logical " +
	"order of completion if possible."

// TextGenerator produces natural-language text from a prompt.
type TextGenerator interface {
	Configured() bool
	Complete(ctx context.Context, system, user string) (string, error)
}

// Notifier delivers a message to a chat channel.
type Notifier interface {
	Configured() bool
	PostMessage(ctx context.Context, text string) error
}

type SummaryService interface {
	// Summarize runs the summarize-and-notify workflow. When a step fails
	// after the summary was generated, the partial result is returned
	// alongside the error so callers can still surface the summary.
	Summarize(ctx context.Context) (*domain.SummaryResult, error)
}

type summaryService struct {
	repo     domain.TodoRepository
	llm      TextGenerator
	notifier Notifier
}

func NewSummaryService(repo domain.TodoRepository, llm TextGenerator, notifier Notifier) SummaryService {
	return &summaryService{repo: repo, llm: llm, notifier: notifier}
}

// Summarize runs each step exactly once and stops at the first failure.
func (s *summaryService) Summarize(ctx context.Context) (*domain.SummaryResult, error) {
	todos, err := s.repo.ListIncomplete(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch incomplete todos: %w", err)
	}
	logger.DebugLog(ctx, "found %d incomplete todos", len(todos))

	if len(todos) == 0 {
		return nil, domain.ErrNothingToSummarize
	}

	prompt := FormatTodoList(todos)

	if !s.llm.Configured() {
		return nil, &domain.ConfigurationError{Setting: "OpenAI API key"}
	}

	summary, err := s.llm.Complete(ctx, summarySystemPrompt,
		"Please summarize the following todo list:\n\n"+prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	result := &domain.SummaryResult{Summary: summary}

	if !s.notifier.Configured() {
		return result, &domain.ConfigurationError{Setting: "Slack webhook URL"}
	}

	if err := s.notifier.PostMessage(ctx, "*Todo Summary*\n\n"+summary); err != nil {
		return result, &domain.NotificationDeliveryError{Err: err}
	}

	result.Message = "Summary generated and sent to Slack successfully"
	return result, nil
}

// FormatTodoList renders todos as "- {title}" lines, with ": {description}"
// appended when a description is present.
func FormatTodoList(todos []domain.Todo) string {
	lines := make([]string, len(todos))
	for i, todo := range todos {
		line := "- " + todo.Title
		if todo.Description != "" {
			line += ": " + todo.Description
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
