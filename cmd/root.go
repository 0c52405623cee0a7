// Package cmd is the layerit command line: the HTTP server plus terminal
// versions of the quiz, compatibility checker, catalog and routine screens.
package cmd

import (
	"context"
	"fmt"
	"os"

	"layerit/config"
	"layerit/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	cfgFile string
	verbose bool

	cfg *config.Config
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "layerit",
		Short: "Skincare product compatibility checker",
		Long: `layerit checks whether skincare products can be layered together,
runs a short quiz to determine your skin type, and keeps a personal routine.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./config.yaml or ./config/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newServeCmd(opts),
		newQuizCmd(opts),
		newCheckCmd(opts),
		newProductsCmd(opts),
		newRoutineCmd(opts),
	)
	return root
}

// load 读取配置并初始化日志
// 除 serve 以外的命令日志写到 stderr，stdout 只留给命令输出
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	logCfg := cfg.Log
	if cmd.Name() != "serve" {
		if logCfg.Output == "stdout" {
			logCfg.Output = "stderr"
		}
		if !o.verbose {
			logCfg.Level = "warn"
		}
	} else if o.verbose {
		logCfg.Level = "debug"
	}

	if err := logger.Init(&logCfg, cfg.App.Env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Configuration loaded",
		zap.String("env", cfg.App.Env),
		zap.String("storage", cfg.Storage.Type))
	o.cfg = cfg
	return nil
}

// withCore 为命令构建共用组件，结束时关闭存储
func (o *rootOptions) withCore(ctx context.Context, fn func(c *core) error) error {
	c, err := newCore(ctx, o.cfg)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}
