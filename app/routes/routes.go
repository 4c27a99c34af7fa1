package routes

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"todo-lists/app/controllers"
	"todo-lists/app/logging"
	"todo-lists/app/sessions"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, c *controllers.Controller) {
	router.HandleFunc("/", c.Home).Methods(http.MethodGet)

	router.HandleFunc("/lists", c.GetLists).Methods(http.MethodGet)
	router.HandleFunc("/lists", c.CreateList).Methods(http.MethodPost)
	router.HandleFunc("/lists/new", c.NewList).Methods(http.MethodGet)
	router.HandleFunc("/lists/{list_id:[0-9]+}", c.GetList).Methods(http.MethodGet)
	router.HandleFunc("/lists/{list_id:[0-9]+}", c.UpdateList).Methods(http.MethodPost)
	router.HandleFunc("/lists/{list_id:[0-9]+}/edit", c.EditList).Methods(http.MethodGet)
	router.HandleFunc("/lists/{list_id:[0-9]+}/destroy", c.DeleteList).Methods(http.MethodPost)
	router.HandleFunc("/lists/{list_id:[0-9]+}/complete_all", c.CompleteAll).Methods(http.MethodPost)

	router.HandleFunc("/lists/{list_id:[0-9]+}/todos", c.CreateTodo).Methods(http.MethodPost)
	router.HandleFunc("/lists/{list_id:[0-9]+}/todos/{todo_id:[0-9]+}", c.UpdateTodo).Methods(http.MethodPost)
	router.HandleFunc("/lists/{list_id:[0-9]+}/todos/{todo_id:[0-9]+}/destroy", c.DeleteTodo).Methods(http.MethodPost)
}

// NewRouter builds the application router with logging, security headers
// and session handling applied to every route, including the not-found page.
func NewRouter(c *controllers.Controller, manager *sessions.Manager, logger *log.Logger) *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router, c)

	middleware := []mux.MiddlewareFunc{logging.Middleware(logger), SecurityHeaders, manager.Middleware}
	router.Use(middleware...)

	var notFound http.Handler = http.HandlerFunc(c.NotFound)
	for i := len(middleware) - 1; i >= 0; i-- {
		notFound = middleware[i](notFound)
	}
	router.NotFoundHandler = notFound

	return router
}

// SecurityHeaders sets conservative browser security headers.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
