// Package commands implements the shipcheck subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ctaps04/shipment-data-validation-pipeline/internal/cli/config"
	"github.com/ctaps04/shipment-data-validation-pipeline/internal/cli/output"
)

type configKey struct{}
type rendererKey struct{}
type loggerKey struct{}
type logCloserKey struct{}

// WithConfig stores the loaded config in the command context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithRenderer stores the renderer in the command context.
func WithRenderer(ctx context.Context, r *output.Renderer) context.Context {
	return context.WithValue(ctx, rendererKey{}, r)
}

// WithLogger stores the logger and its closer in the command context.
func WithLogger(ctx context.Context, logger *slog.Logger, closeLog func()) context.Context {
	ctx = context.WithValue(ctx, loggerKey{}, logger)
	return context.WithValue(ctx, logCloserKey{}, closeLog)
}

// CloseLogger flushes and closes the log sink, if one was opened.
func CloseLogger(ctx context.Context) {
	if closeLog, ok := ctx.Value(logCloserKey{}).(func()); ok && closeLog != nil {
		closeLog()
	}
}

// CommandContext bundles the collaborators every subcommand needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Logger   *slog.Logger
}

// NewCommandContext extracts the command context populated by the root
// command, falling back to safe defaults so commands stay testable in
// isolation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cc := &CommandContext{}
	ctx := cmd.Context()

	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		cc.Cfg = cfg
	} else {
		cc.Cfg = &config.Config{Output: config.DefaultOutput, HeaderRows: config.DefaultHeaderRows}
	}
	if r, ok := ctx.Value(rendererKey{}).(*output.Renderer); ok {
		cc.Renderer = r
	} else {
		cc.Renderer = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cc.Cfg.Output))
	}
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		cc.Logger = logger
	} else {
		cc.Logger = slog.Default()
	}
	return cc
}
