package views

import (
	"bytes"
	"strings"
	"testing"

	"todo-lists/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestRenderer_Lists(t *testing.T) {
	r := setupRenderer(t)
	var buf bytes.Buffer

	err := r.Render(&buf, Lists, Page{
		Success: "The list has been created.",
		Lists: []*models.List{
			{ID: 1, Name: "Done list", Todos: []*models.Todo{{ID: 1, Completed: true}}},
			{ID: 2, Name: "Open <list>", Todos: []*models.Todo{{ID: 1}, {ID: 2, Completed: true}}},
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "The list has been created.")
	assert.Contains(t, out, "Open &lt;list&gt;", "names are escaped")
	assert.Contains(t, out, "1 / 2")
	assert.Less(t, strings.Index(out, `href="/lists/2"`), strings.Index(out, `href="/lists/1"`),
		"incomplete lists come first")
	assert.Contains(t, out, `<li class="complete">`)
}

func TestRenderer_List(t *testing.T) {
	r := setupRenderer(t)
	var buf bytes.Buffer

	err := r.Render(&buf, List, Page{
		Error: "Todo must be between 1 and 100 characters.",
		List: &models.List{ID: 7, Name: "Groceries", Todos: []*models.Todo{
			{ID: 1, Name: "Milk", Completed: true},
			{ID: 4, Name: "Eggs"},
		}},
		Todo: "   ",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Todo must be between 1 and 100 characters.")
	assert.Contains(t, out, `action="/lists/7/todos/4/destroy"`)
	assert.Contains(t, out, `action="/lists/7/complete_all"`)
	assert.Less(t, strings.Index(out, "Eggs"), strings.Index(out, "Milk"), "open todos come first")
}

func TestRenderer_Forms(t *testing.T) {
	r := setupRenderer(t)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, NewList, Page{ListName: "draft"}))
	assert.Contains(t, buf.String(), `value="draft"`)

	buf.Reset()
	require.NoError(t, r.Render(&buf, EditList, Page{List: &models.List{ID: 3, Name: "Chores"}, ListName: "Chores"}))
	assert.Contains(t, buf.String(), "Editing 'Chores'")
	assert.Contains(t, buf.String(), `action="/lists/3/destroy"`)

	buf.Reset()
	require.NoError(t, r.Render(&buf, NotFound, Page{}))
	assert.Contains(t, buf.String(), "Page not found")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r := setupRenderer(t)
	assert.Error(t, r.Render(&bytes.Buffer{}, "missing", Page{}))
}
