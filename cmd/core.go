package cmd

import (
	"context"
	"errors"
	"fmt"

	catalogapp "layerit/application/catalog"
	sessionapp "layerit/application/session"
	"layerit/config"
	"layerit/domain/compat"
	"layerit/domain/session"
	"layerit/domain/shared"
	infracatalog "layerit/infrastructure/catalog"
	"layerit/infrastructure/persistence/file"
	"layerit/infrastructure/persistence/memory"
	"layerit/infrastructure/persistence/mysql"
	"layerit/infrastructure/persistence/retry"
	"layerit/pkg/logger"

	"go.uber.org/zap"
)

// core 是 serve 和其它子命令共用的组件
type core struct {
	products *memory.ProductRepository
	store    session.Store
	bus      *shared.EventBus
	catalog  *catalogapp.ApplicationService
	session  *sessionapp.ApplicationService
	closers  []func() error
}

func newCore(ctx context.Context, cfg *config.Config) (*core, error) {
	products, err := infracatalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	repo, err := memory.NewProductRepository(products)
	if err != nil {
		return nil, fmt.Errorf("index catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		zap.Int("products", repo.Count()),
		zap.String("path", catalogSource(cfg.Catalog.Path)))

	c := &core{products: repo, bus: shared.NewEventBus()}

	store, closer, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	c.store = store
	if closer != nil {
		c.closers = append(c.closers, closer)
	}

	if err := sessionapp.RegisterEventHandlers(c.bus); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("register event handlers: %w", err)
	}

	matcher := compat.NewMatcher()
	c.catalog = catalogapp.NewApplicationService(repo, matcher)
	c.session = sessionapp.NewApplicationService(repo, store, c.bus, matcher)
	if err := c.session.Load(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return c, nil
}

// openStore 按 storage.type 选择会话状态存储
func openStore(ctx context.Context, cfg *config.Config) (session.Store, func() error, error) {
	switch cfg.Storage.Type {
	case config.StorageFile:
		logger.Info("Using file storage", zap.String("path", cfg.Storage.FilePath))
		return file.NewKVStore(cfg.Storage.FilePath), nil, nil

	case config.StorageMySQL:
		logger.Info("Using MySQL/GORM storage")
		db, err := mysql.FromAppConfig(&cfg.Database).Connect(ctx)
		if err != nil {
			return nil, nil, err
		}
		store := mysql.NewKVStore(db, retry.FromAppConfig(&cfg.Database.Retry))
		if err := store.AutoMigrate(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		logger.Info("Using in-memory storage, state is lost on exit")
		return memory.NewKVStore(), nil, nil
	}
}

func (c *core) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
