package simple

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/trellisdev/trellis/core/api"
	"github.com/trellisdev/trellis/core/config"
	"github.com/trellisdev/trellis/core/router"
	"github.com/trellisdev/trellis/core/server"
	"github.com/trellisdev/trellis/core/static"
	"github.com/trellisdev/trellis/middleware"
)

// App wires the demo API: declarations built into a route tree, served
// behind the HTTP adapter with graceful shutdown.
type App struct {
	config Config
	logger *slog.Logger
	comps  *Components
	router *router.Router[*Components]
	server *server.Server
}

type AppOption func(*App) error

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}

func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	app.comps = &Components{
		Logger: app.logger,
		Users:  NewUserStore(),
	}

	b := api.NewBuilder[*Components]()
	declareRoutes(b, cfg)
	spec, err := b.Build()
	if err != nil {
		return nil, err
	}

	app.router, err = router.New(spec,
		router.WithLogger[*Components](app.logger),
		router.WithCORSFilter(middleware.CORS[*Components]()),
	)
	if err != nil {
		return nil, err
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	files := static.NewFiles(static.FS(os.DirFS(a.config.StaticDir)))
	adapter := server.NewAdapter(a.router, a.comps,
		server.WithStaticFiles[*Components](files),
		server.WithAdapterLogger[*Components](a.logger),
	)
	return a.server.Run(ctx, adapter)()
}
