package services

import (
	"slices"
	"strings"
	"unicode/utf8"

	"todo-lists/app/models"
)

const (
	minNameLength = 1
	maxNameLength = 100
)

// TodoStore validates and applies every change to a session's lists.
// It holds no state of its own; the caller passes the session in.
type TodoStore struct{}

// NewTodoStore creates a new instance of TodoStore.
func NewTodoStore() *TodoStore {
	return &TodoStore{}
}

func validLength(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minNameLength && n <= maxNameLength
}

// validateListName trims name and checks it against the length bounds and
// every list other than the one with id exclude (0 excludes nothing).
func validateListName(state *models.Session, name string, exclude int) (string, error) {
	name = strings.TrimSpace(name)
	if !validLength(name) {
		return "", newInvalidLengthError(msgListNameLength)
	}
	for _, list := range state.Lists {
		if list.ID != exclude && list.Name == name {
			return "", newDuplicateNameError()
		}
	}
	return name, nil
}

// FindList resolves a list by id.
func (s *TodoStore) FindList(state *models.Session, listID int) (*models.List, error) {
	list, ok := FindByID(state.Lists, listID)
	if !ok {
		return nil, newListNotFoundError(listID)
	}
	return list, nil
}

func (s *TodoStore) findTodo(state *models.Session, listID, todoID int) (*models.List, *models.Todo, error) {
	list, err := s.FindList(state, listID)
	if err != nil {
		return nil, nil, err
	}
	todo, ok := FindByID(list.Todos, todoID)
	if !ok {
		return nil, nil, newTodoNotFoundError(todoID)
	}
	return list, todo, nil
}

// CreateList adds a new empty list named name.
func (s *TodoStore) CreateList(state *models.Session, name string) (*models.List, error) {
	name, err := validateListName(state, name, 0)
	if err != nil {
		return nil, err
	}

	list := &models.List{
		ID:    NextID(state.Lists, state.LastListID),
		Name:  name,
		Todos: []*models.Todo{},
	}
	state.LastListID = list.ID
	state.Lists = append(state.Lists, list)
	return list, nil
}

// RenameList changes a list's name. Keeping the current name is allowed.
func (s *TodoStore) RenameList(state *models.Session, listID int, newName string) error {
	list, err := s.FindList(state, listID)
	if err != nil {
		return err
	}

	name, err := validateListName(state, newName, list.ID)
	if err != nil {
		return err
	}
	list.Name = name
	return nil
}

// DeleteList removes a list and all of its todos.
func (s *TodoStore) DeleteList(state *models.Session, listID int) error {
	if _, err := s.FindList(state, listID); err != nil {
		return err
	}
	state.Lists = slices.DeleteFunc(state.Lists, func(l *models.List) bool {
		return l.ID == listID
	})
	return nil
}

// AddTodo appends a new incomplete todo to a list.
func (s *TodoStore) AddTodo(state *models.Session, listID int, text string) (*models.Todo, error) {
	list, err := s.FindList(state, listID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if !validLength(text) {
		return nil, newInvalidLengthError(msgTodoLength)
	}

	todo := &models.Todo{
		ID:   NextID(list.Todos, list.LastTodoID),
		Name: text,
	}
	list.LastTodoID = todo.ID
	list.Todos = append(list.Todos, todo)
	return todo, nil
}

// DeleteTodo removes one todo from a list.
func (s *TodoStore) DeleteTodo(state *models.Session, listID, todoID int) error {
	list, _, err := s.findTodo(state, listID, todoID)
	if err != nil {
		return err
	}
	list.Todos = slices.DeleteFunc(list.Todos, func(t *models.Todo) bool {
		return t.ID == todoID
	})
	return nil
}

// SetTodoCompleted marks a todo done or not done.
func (s *TodoStore) SetTodoCompleted(state *models.Session, listID, todoID int, completed bool) error {
	_, todo, err := s.findTodo(state, listID, todoID)
	if err != nil {
		return err
	}
	todo.Completed = completed
	return nil
}

// CompleteAll marks every todo in a list done.
func (s *TodoStore) CompleteAll(state *models.Session, listID int) error {
	list, err := s.FindList(state, listID)
	if err != nil {
		return err
	}
	for _, todo := range list.Todos {
		todo.Completed = true
	}
	return nil
}

// SortLists orders lists for display, incomplete lists first.
func SortLists(lists []*models.List) []*models.List {
	return SortForDisplay(lists, (*models.List).IsComplete)
}

// SortTodos orders todos for display, open todos first.
func SortTodos(todos []*models.Todo) []*models.Todo {
	return SortForDisplay(todos, func(t *models.Todo) bool { return t.Completed })
}
