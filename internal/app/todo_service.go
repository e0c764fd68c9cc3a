package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/quitcard/internal/ports/primary"
	"github.com/example/quitcard/internal/ports/secondary"
)

// TodoServiceImpl implements the TodoService interface.
type TodoServiceImpl struct {
	todoRepo secondary.TodoRepository
}

// NewTodoService creates a new TodoService with injected dependencies.
func NewTodoService(todoRepo secondary.TodoRepository) *TodoServiceImpl {
	return &TodoServiceImpl{todoRepo: todoRepo}
}

// AddTodo creates a checklist item.
func (s *TodoServiceImpl) AddTodo(ctx context.Context, title string) (*primary.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("todo title cannot be empty")
	}

	nextID, err := s.todoRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate todo ID: %w", err)
	}

	record := &secondary.TodoRecord{ID: nextID, Title: title}
	if err := s.todoRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	return &primary.Todo{ID: record.ID, Title: record.Title}, nil
}

// ListTodos returns all checklist items, oldest first.
func (s *TodoServiceImpl) ListTodos(ctx context.Context) ([]*primary.Todo, error) {
	records, err := s.todoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}

	todos := make([]*primary.Todo, len(records))
	for i, r := range records {
		todos[i] = &primary.Todo{ID: r.ID, Title: r.Title, Done: r.Done, CreatedAt: r.CreatedAt}
	}
	return todos, nil
}

// SetDone marks a checklist item done or not done.
func (s *TodoServiceImpl) SetDone(ctx context.Context, todoID string, done bool) error {
	return s.todoRepo.SetDone(ctx, todoID, done)
}

// DeleteTodo removes a checklist item.
func (s *TodoServiceImpl) DeleteTodo(ctx context.Context, todoID string) error {
	return s.todoRepo.Delete(ctx, todoID)
}

// Ensure TodoServiceImpl implements the interface
var _ primary.TodoService = (*TodoServiceImpl)(nil)
