// Package views renders the HTML pages from embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"todo-lists/app/models"
	"todo-lists/app/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	Lists    = "lists"
	List     = "list"
	NewList  = "new_list"
	EditList = "edit_list"
	NotFound = "not_found"
)

// Page is the data every template receives.
type Page struct {
	Title   string
	Error   string
	Success string

	Lists []*models.List
	List  *models.List

	// ListName and Todo echo rejected form input back into the form.
	ListName string
	Todo     string
}

var funcs = template.FuncMap{
	"listClass": func(list *models.List) string {
		if list.IsComplete() {
			return "complete"
		}
		return ""
	},
	"todoClass": func(todo *models.Todo) string {
		if todo.Completed {
			return "complete"
		}
		return ""
	},
	"sortLists": services.SortLists,
	"sortTodos": services.SortTodos,
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses the layout together with every page.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, name := range []string{Lists, List, NewList, EditList, NotFound} {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes page name with data to w.
func (r *Renderer) Render(w io.Writer, name string, data Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
