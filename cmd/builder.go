package cmd

import (
	"context"
	"net/http"

	"layerit/api"
	apicatalog "layerit/api/catalog"
	apicompat "layerit/api/compat"
	"layerit/api/health"
	apiquiz "layerit/api/quiz"
	apisession "layerit/api/session"
	"layerit/config"
	"layerit/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppBuilder builds an App with customizable components
type AppBuilder struct {
	cfg          *config.Config
	controllers  []api.ControllerRegister
	middlewares  []api.MiddlewareRegister
	customRoutes []api.Route
}

// NewBuilder creates a new AppBuilder
func NewBuilder(cfg *config.Config) *AppBuilder {
	return &AppBuilder{
		cfg:          cfg,
		controllers:  []api.ControllerRegister{},
		middlewares:  []api.MiddlewareRegister{},
		customRoutes: []api.Route{},
	}
}

// WithController adds a controller to the app
func (b *AppBuilder) WithController(c api.ControllerRegister) *AppBuilder {
	b.controllers = append(b.controllers, c)
	return b
}

// WithMiddleware adds a middleware to the app
func (b *AppBuilder) WithMiddleware(m api.MiddlewareRegister) *AppBuilder {
	b.middlewares = append(b.middlewares, m)
	return b
}

// WithRoute adds a custom route
func (b *AppBuilder) WithRoute(method, path string, handler gin.HandlerFunc) *AppBuilder {
	b.customRoutes = append(b.customRoutes, api.Route{
		Method:  method,
		Path:    path,
		Handler: handler,
	})
	return b
}

// Build creates the App instance. The logger must already be initialised.
func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	logger.Info("Starting application",
		zap.String("app", b.cfg.App.Name),
		zap.String("version", b.cfg.App.Version),
		zap.String("env", b.cfg.App.Env))

	c, err := newCore(ctx, b.cfg)
	if err != nil {
		return nil, err
	}

	controllers := []api.ControllerRegister{
		health.NewController(b.cfg, c.products, c.store),
		apicatalog.NewController(c.catalog),
		apicompat.NewController(c.catalog),
		apiquiz.NewController(c.catalog),
		apisession.NewController(c.session),
	}
	controllers = append(controllers, b.controllers...)

	router := api.NewRouter(b.cfg, controllers, b.middlewares, b.customRoutes)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         ":" + b.cfg.Server.Port,
		Handler:      router.GetEngine(),
		ReadTimeout:  b.cfg.Server.ReadTimeout,
		WriteTimeout: b.cfg.Server.WriteTimeout,
	}

	return &App{
		config: b.cfg,
		router: router,
		server: server,
		core:   c,
	}, nil
}
