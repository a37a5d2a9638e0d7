package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dtroode/gophtasks-server/internal/api/http/handler"
	"github.com/dtroode/gophtasks-server/internal/api/http/middleware"
	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/logger"
	"github.com/dtroode/gophtasks-server/internal/model"
)

// Router wires the HTTP handlers and middleware.
type Router struct {
	taskHandler    *handler.Task
	userHandler    *handler.User
	contextManager model.ContextManager
	registry       *prometheus.Registry
	logger         *logger.Logger
}

// New creates a new Router. It fails with INVALID_ARGUMENT when a collaborator is missing.
func New(
	taskHandler *handler.Task,
	userHandler *handler.User,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	logger *logger.Logger,
) (*Router, error) {
	switch {
	case taskHandler == nil:
		return nil, apierrors.NewErrInvalidArgument("taskHandler")
	case userHandler == nil:
		return nil, apierrors.NewErrInvalidArgument("userHandler")
	case contextManager == nil:
		return nil, apierrors.NewErrInvalidArgument("contextManager")
	case registry == nil:
		return nil, apierrors.NewErrInvalidArgument("registry")
	case logger == nil:
		return nil, apierrors.NewErrInvalidArgument("logger")
	}

	return &Router{
		taskHandler:    taskHandler,
		userHandler:    userHandler,
		contextManager: contextManager,
		registry:       registry,
		logger:         logger,
	}, nil
}

// Register builds the route tree. Task routes require a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	metrics := middleware.NewMetrics(r.registry)
	token := middleware.NewToken(r.contextManager)

	root := mux.NewRouter()
	root.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	root.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)
	root.Use(logging.Handle, metrics.Handle)

	root.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	root.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	root.HandleFunc("/users", r.userHandler.AddUser).Methods(http.MethodPost)

	tasks := root.PathPrefix("/tasks").Subrouter()
	tasks.Use(token.Handle)
	tasks.HandleFunc("", r.taskHandler.GetAllTasks).Methods(http.MethodGet)
	tasks.HandleFunc("", r.taskHandler.AddTask).Methods(http.MethodPost)
	tasks.HandleFunc("", r.taskHandler.UpdateTask).Methods(http.MethodPut)
	tasks.HandleFunc("", r.taskHandler.DeleteTask).Methods(http.MethodDelete)
	tasks.HandleFunc("/{taskId}", r.taskHandler.GetTask).Methods(http.MethodGet)
	tasks.HandleFunc("/{taskId}", r.taskHandler.UpdateTask).Methods(http.MethodPut)
	tasks.HandleFunc("/{taskId}", r.taskHandler.DeleteTask).Methods(http.MethodDelete)

	return root
}
