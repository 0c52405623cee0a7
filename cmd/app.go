package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"layerit/api"
	"layerit/config"
	"layerit/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

// App 应用程序结构体
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	core   *core
}

// Run 启动 HTTP 服务，ctx 取消或服务出错后优雅关闭
func (a *App) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server starting",
			zap.String("addr", a.server.Addr),
			zap.String("health", fmt.Sprintf("http://localhost:%s/api/v1/health", a.config.Server.Port)))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return a.Shutdown()
	})

	return g.Wait()
}

// Shutdown 关闭 HTTP 服务和存储连接
func (a *App) Shutdown() error {
	timeout := a.config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Shutting down server...")
	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown: %w", err))
	}
	if err := a.core.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	logger.Info("Server stopped")
	return errors.Join(errs...)
}

// GetServer 获取 gin 引擎（用于测试）
func (a *App) GetServer() *gin.Engine {
	return a.router.GetEngine()
}
