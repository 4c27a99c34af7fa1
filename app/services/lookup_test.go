package services

import (
	"errors"
	"fmt"
	"testing"

	"todo-lists/app/models"

	"github.com/stretchr/testify/assert"
)

func TestFindByID(t *testing.T) {
	todos := []*models.Todo{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 3, Name: "dup"}}

	todo, ok := FindByID(todos, 3)
	assert.True(t, ok)
	assert.Equal(t, "c", todo.Name, "first match wins")

	todo, ok = FindByID(todos, 2)
	assert.False(t, ok)
	assert.Nil(t, todo)

	_, ok = FindByID([]*models.Todo(nil), 1)
	assert.False(t, ok)
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		items []*models.List
		last  int
		want  int
	}{
		{name: "should start at 1", items: nil, want: 1},
		{name: "should follow the largest id", items: []*models.List{{ID: 4}, {ID: 2}}, want: 5},
		{name: "should not depend on position", items: []*models.List{{ID: 9}}, want: 10},
		{name: "should stay above the last assigned id", items: []*models.List{{ID: 1}}, last: 3, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.items, tt.last))
		})
	}
}

func TestSortForDisplay(t *testing.T) {
	todos := []*models.Todo{
		{ID: 1, Name: "A", Completed: true},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C", Completed: true},
		{ID: 4, Name: "D"},
	}

	sorted := SortTodos(todos)

	names := make([]string, 0, len(sorted))
	for _, todo := range sorted {
		names = append(names, todo.Name)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
	assert.Equal(t, "A", todos[0].Name, "input order is untouched")
	assert.Equal(t, 1, todos[0].ID)
}

func TestSortLists(t *testing.T) {
	done := &models.List{ID: 1, Name: "done", Todos: []*models.Todo{{ID: 1, Completed: true}}}
	empty := &models.List{ID: 2, Name: "empty"}
	open := &models.List{ID: 3, Name: "open", Todos: []*models.Todo{{ID: 1}}}

	sorted := SortLists([]*models.List{done, empty, open})

	assert.Equal(t, []*models.List{empty, open, done}, sorted)
}

func TestSortForDisplay_Empty(t *testing.T) {
	assert.Empty(t, SortForDisplay([]int(nil), func(int) bool { return true }))
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", newTodoNotFoundError(5))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.True(t, IsValidation(newDuplicateNameError()))
	assert.False(t, errors.Is(err, ErrInvalidLength))
	assert.Equal(t, "not_found: todo 5", newTodoNotFoundError(5).Error())
	assert.Equal(t, "An unexpected error occurred. Please try again.", UserMessage(errors.New("boom")))
}
