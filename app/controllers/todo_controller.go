package controllers

import (
	"fmt"
	"net/http"

	"todo-lists/app/views"
)

// CreateTodo handles POST /lists/{list_id}/todos.
func (c *Controller) CreateTodo(w http.ResponseWriter, r *http.Request) {
	s := state(r)
	listID := pathID(r, "list_id")
	text := r.FormValue("todo")

	if _, err := c.Store.AddTodo(s, listID, text); err != nil {
		// AddTodo only validates text once the list exists
		list, _ := c.Store.FindList(s, listID)
		page := views.Page{List: list, Todo: text}
		if list != nil {
			page.Title = list.Name
		}
		c.fail(w, r, err, views.List, page)
		return
	}
	c.redirect(w, r, fmt.Sprintf("/lists/%d", listID), "The todo was added.")
}

// DeleteTodo handles POST /lists/{list_id}/todos/{todo_id}/destroy.
func (c *Controller) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	listID := pathID(r, "list_id")
	if err := c.Store.DeleteTodo(state(r), listID, pathID(r, "todo_id")); err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}

	if isXHR(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	c.redirect(w, r, fmt.Sprintf("/lists/%d", listID), "The todo has been deleted.")
}

// UpdateTodo handles POST /lists/{list_id}/todos/{todo_id}.
func (c *Controller) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	listID := pathID(r, "list_id")
	completed := r.FormValue("completed") == "true"

	if err := c.Store.SetTodoCompleted(state(r), listID, pathID(r, "todo_id"), completed); err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}
	c.redirect(w, r, fmt.Sprintf("/lists/%d", listID), "The todo has been updated.")
}

// CompleteAll handles POST /lists/{list_id}/complete_all.
func (c *Controller) CompleteAll(w http.ResponseWriter, r *http.Request) {
	listID := pathID(r, "list_id")
	if err := c.Store.CompleteAll(state(r), listID); err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}
	c.redirect(w, r, fmt.Sprintf("/lists/%d", listID), "All todos have been completed.")
}
