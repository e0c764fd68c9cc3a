package primary

import "context"

// Todo is one resignation-plan checklist item.
type Todo struct {
	ID        string
	Title     string
	Done      bool
	CreatedAt string
}

// TodoService manages the resignation-plan checklist.
type TodoService interface {
	AddTodo(ctx context.Context, title string) (*Todo, error)
	ListTodos(ctx context.Context) ([]*Todo, error)
	SetDone(ctx context.Context, todoID string, done bool) error
	DeleteTodo(ctx context.Context, todoID string) error
}
