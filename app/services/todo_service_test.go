package services

import (
	"strings"
	"testing"

	"todo-lists/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTodoStore(t *testing.T) (*TodoStore, *models.Session) {
	t.Helper()
	return NewTodoStore(), models.NewSession()
}

func todoIDs(list *models.List) []int {
	ids := make([]int, 0, len(list.Todos))
	for _, todo := range list.Todos {
		ids = append(ids, todo.ID)
	}
	return ids
}

func TestTodoStore_CreateList(t *testing.T) {
	tests := []struct {
		name      string
		listName  string
		wantName  string
		wantError error
	}{
		{
			name:     "should create list with valid name",
			listName: "Groceries",
			wantName: "Groceries",
		},
		{
			name:     "should trim surrounding whitespace",
			listName: "  Groceries \n",
			wantName: "Groceries",
		},
		{
			name:     "should accept a one character name",
			listName: "G",
			wantName: "G",
		},
		{
			name:     "should accept a 100 character name",
			listName: strings.Repeat("a", 100),
			wantName: strings.Repeat("a", 100),
		},
		{
			name:     "should count characters rather than bytes",
			listName: strings.Repeat("é", 100),
			wantName: strings.Repeat("é", 100),
		},
		{
			name:      "should reject an empty name",
			listName:  "",
			wantError: ErrInvalidLength,
		},
		{
			name:      "should reject a whitespace-only name",
			listName:  "   \t ",
			wantError: ErrInvalidLength,
		},
		{
			name:      "should reject a 101 character name",
			listName:  strings.Repeat("a", 101),
			wantError: ErrInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, state := setupTodoStore(t)

			list, err := store.CreateList(state, tt.listName)

			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, list)
				assert.Empty(t, state.Lists)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, list)
			assert.Equal(t, 1, list.ID)
			assert.Equal(t, tt.wantName, list.Name)
			assert.Empty(t, list.Todos)
			assert.Equal(t, []*models.List{list}, state.Lists)
		})
	}
}

func TestTodoStore_CreateListRejectsDuplicateName(t *testing.T) {
	store, state := setupTodoStore(t)

	_, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)

	list, err := store.CreateList(state, " Groceries ")
	require.ErrorIs(t, err, ErrDuplicateName)
	assert.Nil(t, list)
	assert.Equal(t, "List name must be unique.", UserMessage(err))
	assert.Len(t, state.Lists, 1)

	_, err = store.CreateList(state, "groceries")
	assert.NoError(t, err, "uniqueness is case-sensitive")
}

func TestTodoStore_RenameList(t *testing.T) {
	store, state := setupTodoStore(t)
	groceries, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)
	chores, err := store.CreateList(state, "Chores")
	require.NoError(t, err)

	t.Run("should reject renaming to another list's name", func(t *testing.T) {
		err := store.RenameList(state, chores.ID, "Groceries")
		require.ErrorIs(t, err, ErrDuplicateName)
		assert.Equal(t, "Chores", chores.Name)
	})

	t.Run("should allow renaming a list to its own name", func(t *testing.T) {
		err := store.RenameList(state, groceries.ID, "Groceries")
		require.NoError(t, err)
		assert.Equal(t, "Groceries", groceries.Name)
	})

	t.Run("should reject an invalid length", func(t *testing.T) {
		err := store.RenameList(state, groceries.ID, "  ")
		require.ErrorIs(t, err, ErrInvalidLength)
		assert.Equal(t, "The list name must be between 1 and 100 characters.", UserMessage(err))
		assert.Equal(t, "Groceries", groceries.Name)
	})

	t.Run("should rename in place", func(t *testing.T) {
		err := store.RenameList(state, chores.ID, " Weekend chores ")
		require.NoError(t, err)
		assert.Equal(t, "Weekend chores", chores.Name)
		assert.Equal(t, 2, chores.ID)
		assert.Same(t, chores, state.Lists[1])
	})

	t.Run("should report a missing list", func(t *testing.T) {
		err := store.RenameList(state, 99, "Anything")
		require.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, "The specified list was not found.", UserMessage(err))
	})
}

func TestTodoStore_DeleteList(t *testing.T) {
	store, state := setupTodoStore(t)
	for _, name := range []string{"One", "Two", "Three"} {
		_, err := store.CreateList(state, name)
		require.NoError(t, err)
	}

	require.NoError(t, store.DeleteList(state, 2))
	require.Len(t, state.Lists, 2)
	assert.Equal(t, 1, state.Lists[0].ID)
	assert.Equal(t, 3, state.Lists[1].ID)

	err := store.DeleteList(state, 2)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, state.Lists, 2)

	list, err := store.CreateList(state, "Four")
	require.NoError(t, err)
	assert.Equal(t, 4, list.ID)
}

func TestTodoStore_ListIDsAreNeverReused(t *testing.T) {
	store, state := setupTodoStore(t)
	_, err := store.CreateList(state, "One")
	require.NoError(t, err)
	last, err := store.CreateList(state, "Two")
	require.NoError(t, err)

	require.NoError(t, store.DeleteList(state, last.ID))

	list, err := store.CreateList(state, "Three")
	require.NoError(t, err)
	assert.Equal(t, 3, list.ID)
}

func TestTodoStore_AddTodo(t *testing.T) {
	tests := []struct {
		name      string
		listID    int
		text      string
		wantName  string
		wantError error
	}{
		{
			name:     "should add todo with valid text",
			listID:   1,
			text:     "Milk",
			wantName: "Milk",
		},
		{
			name:     "should trim the text",
			listID:   1,
			text:     "  Milk  ",
			wantName: "Milk",
		},
		{
			name:      "should reject empty text",
			listID:    1,
			text:      " ",
			wantError: ErrInvalidLength,
		},
		{
			name:      "should reject text over 100 characters",
			listID:    1,
			text:      strings.Repeat("x", 101),
			wantError: ErrInvalidLength,
		},
		{
			name:      "should report a missing list",
			listID:    7,
			text:      "Milk",
			wantError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, state := setupTodoStore(t)
			list, err := store.CreateList(state, "Groceries")
			require.NoError(t, err)

			todo, err := store.AddTodo(state, tt.listID, tt.text)

			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, todo)
				assert.Empty(t, list.Todos)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, todo.ID)
			assert.Equal(t, tt.wantName, todo.Name)
			assert.False(t, todo.Completed)
			assert.Equal(t, []*models.Todo{todo}, list.Todos)
		})
	}
}

func TestTodoStore_AddTodoAllowsDuplicateText(t *testing.T) {
	store, state := setupTodoStore(t)
	list, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)

	_, err = store.AddTodo(state, list.ID, "Milk")
	require.NoError(t, err)
	_, err = store.AddTodo(state, list.ID, "Milk")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, todoIDs(list))
}

func TestTodoStore_TodoIDStability(t *testing.T) {
	store, state := setupTodoStore(t)
	list, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)
	for _, text := range []string{"Milk", "Eggs", "Bread"} {
		_, err := store.AddTodo(state, list.ID, text)
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2, 3}, todoIDs(list))

	require.NoError(t, store.DeleteTodo(state, list.ID, 2))
	assert.Equal(t, []int{1, 3}, todoIDs(list))
	assert.Equal(t, "Bread", list.Todos[1].Name, "remaining todos keep their order")

	todo, err := store.AddTodo(state, list.ID, "Butter")
	require.NoError(t, err)
	assert.Equal(t, 4, todo.ID)

	require.NoError(t, store.DeleteTodo(state, list.ID, 4))
	todo, err = store.AddTodo(state, list.ID, "Jam")
	require.NoError(t, err)
	assert.Equal(t, 5, todo.ID, "the id of a deleted last todo is not handed out again")
}

func TestTodoStore_TodoIDsAreScopedToTheirList(t *testing.T) {
	store, state := setupTodoStore(t)
	first, err := store.CreateList(state, "First")
	require.NoError(t, err)
	second, err := store.CreateList(state, "Second")
	require.NoError(t, err)

	_, err = store.AddTodo(state, first.ID, "a")
	require.NoError(t, err)
	_, err = store.AddTodo(state, first.ID, "b")
	require.NoError(t, err)
	todo, err := store.AddTodo(state, second.ID, "c")
	require.NoError(t, err)
	assert.Equal(t, 1, todo.ID)
}

func TestTodoStore_DeleteTodo(t *testing.T) {
	store, state := setupTodoStore(t)
	list, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)
	_, err = store.AddTodo(state, list.ID, "Milk")
	require.NoError(t, err)

	tests := []struct {
		name   string
		listID int
		todoID int
	}{
		{name: "should report a missing list", listID: 2, todoID: 1},
		{name: "should report a missing todo", listID: 1, todoID: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.DeleteTodo(state, tt.listID, tt.todoID)
			require.ErrorIs(t, err, ErrNotFound)
			assert.Len(t, list.Todos, 1)
		})
	}
}

func TestTodoStore_SetTodoCompleted(t *testing.T) {
	store, state := setupTodoStore(t)
	list, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)
	milk, err := store.AddTodo(state, list.ID, "Milk")
	require.NoError(t, err)
	eggs, err := store.AddTodo(state, list.ID, "Eggs")
	require.NoError(t, err)

	require.NoError(t, store.SetTodoCompleted(state, list.ID, milk.ID, true))
	assert.True(t, milk.Completed)
	assert.False(t, list.IsComplete())

	require.NoError(t, store.SetTodoCompleted(state, list.ID, eggs.ID, true))
	assert.True(t, list.IsComplete())

	require.NoError(t, store.SetTodoCompleted(state, list.ID, milk.ID, false))
	assert.False(t, milk.Completed)
	assert.False(t, list.IsComplete())

	err = store.SetTodoCompleted(state, list.ID, 42, true)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "The specified todo was not found.", UserMessage(err))

	err = store.SetTodoCompleted(state, 42, milk.ID, true)
	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, milk.Completed)
}

func TestTodoStore_CompleteAll(t *testing.T) {
	store, state := setupTodoStore(t)
	empty, err := store.CreateList(state, "Empty")
	require.NoError(t, err)
	list, err := store.CreateList(state, "Groceries")
	require.NoError(t, err)
	for _, text := range []string{"Milk", "Eggs"} {
		_, err := store.AddTodo(state, list.ID, text)
		require.NoError(t, err)
	}

	for i := 0; i < 2; i++ {
		require.NoError(t, store.CompleteAll(state, list.ID))
		for _, todo := range list.Todos {
			assert.True(t, todo.Completed)
		}
		assert.True(t, list.IsComplete())
	}

	require.NoError(t, store.CompleteAll(state, empty.ID))
	assert.Empty(t, empty.Todos)
	assert.False(t, empty.IsComplete())

	require.ErrorIs(t, store.CompleteAll(state, 99), ErrNotFound)
}
