package models

// Todo is a single entry within a List.
type Todo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Identity returns the todo's id within its owning list.
func (t *Todo) Identity() int { return t.ID }

// List represents a named, ordered collection of todos.
type List struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Todos []*Todo `json:"todos"`

	// LastTodoID is the highest todo id ever assigned in this list.
	LastTodoID int `json:"last_todo_id"`
}

// Identity returns the list's id within the session.
func (l *List) Identity() int { return l.ID }

// TodosCount returns the number of todos in the list.
func (l *List) TodosCount() int {
	return len(l.Todos)
}

// TodosRemainingCount returns the number of todos not yet completed.
func (l *List) TodosRemainingCount() int {
	remaining := 0
	for _, todo := range l.Todos {
		if !todo.Completed {
			remaining++
		}
	}
	return remaining
}

// IsComplete reports whether the list has todos and all of them are done.
// Completion is never stored on the list.
func (l *List) IsComplete() bool {
	return l.TodosCount() > 0 && l.TodosRemainingCount() == 0
}
