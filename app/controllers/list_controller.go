package controllers

import (
	"fmt"
	"net/http"

	"todo-lists/app/views"
)

// GetLists handles GET /lists.
func (c *Controller) GetLists(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, views.Lists, views.Page{Lists: state(r).Lists})
}

// NewList handles GET /lists/new.
func (c *Controller) NewList(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, views.NewList, views.Page{Title: "New list"})
}

// CreateList handles POST /lists.
func (c *Controller) CreateList(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("list_name")
	if _, err := c.Store.CreateList(state(r), name); err != nil {
		c.fail(w, r, err, views.NewList, views.Page{Title: "New list", ListName: name})
		return
	}
	c.redirect(w, r, "/lists", "The list has been created.")
}

// GetList handles GET /lists/{list_id}.
func (c *Controller) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := c.Store.FindList(state(r), pathID(r, "list_id"))
	if err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}
	c.render(w, r, http.StatusOK, views.List, views.Page{Title: list.Name, List: list})
}

// EditList handles GET /lists/{list_id}/edit.
func (c *Controller) EditList(w http.ResponseWriter, r *http.Request) {
	list, err := c.Store.FindList(state(r), pathID(r, "list_id"))
	if err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}
	c.render(w, r, http.StatusOK, views.EditList, views.Page{Title: "Edit list", List: list, ListName: list.Name})
}

// UpdateList handles POST /lists/{list_id}.
func (c *Controller) UpdateList(w http.ResponseWriter, r *http.Request) {
	s := state(r)
	list, err := c.Store.FindList(s, pathID(r, "list_id"))
	if err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}

	name := r.FormValue("list_name")
	if err := c.Store.RenameList(s, list.ID, name); err != nil {
		c.fail(w, r, err, views.EditList, views.Page{Title: "Edit list", List: list, ListName: name})
		return
	}
	c.redirect(w, r, fmt.Sprintf("/lists/%d", list.ID), "The list has been updated.")
}

// DeleteList handles POST /lists/{list_id}/destroy.
func (c *Controller) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := c.Store.DeleteList(state(r), pathID(r, "list_id")); err != nil {
		c.fail(w, r, err, "", views.Page{})
		return
	}

	if isXHR(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	c.redirect(w, r, "/lists", "The list has been deleted.")
}
