package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"todo-lists/app/models"
	"todo-lists/app/services"
	"todo-lists/app/sessions"
	"todo-lists/app/views"
)

// Controller handles HTTP requests for lists and todos.
type Controller struct {
	Store  *services.TodoStore
	Views  *views.Renderer
	Logger *log.Logger
}

// NewController creates a new Controller.
func NewController(store *services.TodoStore, renderer *views.Renderer, logger *log.Logger) *Controller {
	return &Controller{Store: store, Views: renderer, Logger: logger}
}

func state(r *http.Request) *models.Session {
	return sessions.FromContext(r.Context())
}

// pathID reads a numeric route variable. Values that do not fit an int
// come back as 0, which never names a list or todo.
func pathID(r *http.Request, key string) int {
	id, err := strconv.Atoi(mux.Vars(r)[key])
	if err != nil {
		return 0
	}
	return id
}

func isXHR(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}

// render writes a page, consuming the session's flash messages.
func (c *Controller) render(w http.ResponseWriter, r *http.Request, status int, name string, page views.Page) {
	page.Error, page.Success = state(r).TakeFlash()

	var buf bytes.Buffer
	if err := c.Views.Render(&buf, name, page); err != nil {
		c.Logger.Error("render page", "page", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (c *Controller) redirect(w http.ResponseWriter, r *http.Request, path, success string) {
	if success != "" {
		state(r).Success = success
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// fail reports err to the user. Missing lists and todos send the user back
// to the overview; invalid input redisplays the form given by name and page.
func (c *Controller) fail(w http.ResponseWriter, r *http.Request, err error, name string, page views.Page) {
	switch {
	case services.IsNotFound(err):
		c.Logger.Debug("stale reference", "path", r.URL.Path, "err", err)
		state(r).Error = services.UserMessage(err)
		if isXHR(r) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Redirect(w, r, "/lists", http.StatusSeeOther)
	case services.IsValidation(err):
		c.Logger.Debug("rejected input", "path", r.URL.Path, "err", err)
		state(r).Error = services.UserMessage(err)
		c.render(w, r, http.StatusUnprocessableEntity, name, page)
	default:
		c.Logger.Error("request failed", "path", r.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// Home handles GET /.
func (c *Controller) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/lists", http.StatusSeeOther)
}

// NotFound renders the not-found page for unmatched routes.
func (c *Controller) NotFound(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusNotFound, views.NotFound, views.Page{Title: "Not found"})
}
