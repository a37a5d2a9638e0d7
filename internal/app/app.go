// Package app assembles the storage, service and HTTP layers for the configured backend.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpctx "github.com/dtroode/gophtasks-server/internal/api/http/context"
	"github.com/dtroode/gophtasks-server/internal/api/http/handler"
	"github.com/dtroode/gophtasks-server/internal/api/http/router"
	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/config"
	"github.com/dtroode/gophtasks-server/internal/logger"
	"github.com/dtroode/gophtasks-server/internal/model"
	"github.com/dtroode/gophtasks-server/internal/repository/elastic"
	"github.com/dtroode/gophtasks-server/internal/repository/memory"
	"github.com/dtroode/gophtasks-server/internal/repository/postgres"
	"github.com/dtroode/gophtasks-server/internal/server"
	"github.com/dtroode/gophtasks-server/internal/service"
)

// App is the fully wired application.
type App struct {
	Server  *server.HTTPServer
	Handler http.Handler

	closers []func() error
}

type stores struct {
	tasks  model.TaskStore
	users  model.UserStore
	closer func() error
}

// New builds stores, services, handlers and the router bottom up.
// No listener is opened; any failure is returned before the caller can serve.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, apierrors.NewErrInvalidArgument("config")
	}
	if logger == nil {
		return nil, apierrors.NewErrInvalidArgument("logger")
	}

	st, err := newStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a := &App{}
	if st.closer != nil {
		a.closers = append(a.closers, st.closer)
	}

	h, err := newHandler(st, logger)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	a.Handler = h
	a.Server = server.NewHTTPServer(h, fmt.Sprintf(":%s", cfg.HTTP.Port))
	return a, nil
}

// SecurityLayer returns the listener factory selected by the HTTP config.
func SecurityLayer(cfg config.HTTP) model.SecurityLayer {
	if cfg.EnableHTTPS {
		return server.NewTLSListener(cfg.CertFileName, cfg.PrivateKeyFileName)
	}
	return server.NewPlainListener()
}

// Close releases backend resources.
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func newStores(ctx context.Context, cfg *config.Config, logger *logger.Logger) (stores, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Info("using in-memory storage")
		return stores{
			tasks: memory.NewTaskRepository(memory.SeedTasks()),
			users: memory.NewUserRepository(memory.SeedUsers()),
		}, nil

	case config.BackendElastic:
		conn, err := elastic.NewConnection(ctx, cfg.Elastic.Addresses, elastic.Indices{
			Tasks: cfg.Elastic.TasksIndex,
			Users: cfg.Elastic.UsersIndex,
		}, cfg.Elastic.RequestTimeout)
		if err != nil {
			return stores{}, fmt.Errorf("failed to initialize search engine storage: %w", err)
		}
		logger.Info("using search engine storage", "addresses", cfg.Elastic.Addresses)
		return stores{
			tasks: elastic.NewTaskRepository(conn),
			users: elastic.NewUserRepository(conn),
		}, nil

	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return stores{}, fmt.Errorf("failed to initialize database storage: %w", err)
		}
		logger.Info("using database storage")
		return stores{
			tasks:  postgres.NewTaskRepository(db),
			users:  postgres.NewUserRepository(db),
			closer: db.Close,
		}, nil

	default:
		return stores{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func newHandler(st stores, logger *logger.Logger) (http.Handler, error) {
	userService, err := service.NewUser(st.users, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := service.NewTask(st.tasks, userService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	ctxMgr := httpctx.NewManager()

	taskHandler, err := handler.NewTask(taskService, ctxMgr, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task handler: %w", err)
	}

	userHandler, err := handler.NewUser(userService, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user handler: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r, err := router.New(taskHandler, userHandler, ctxMgr, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	return r.Register(), nil
}
