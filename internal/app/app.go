package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/iomapper/internal/config"
	"github.com/vk/iomapper/internal/ctxlog"
	"github.com/vk/iomapper/internal/output"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *config.Settings
	writer   *output.Writer
}

// NewApp is the constructor for the main application. It builds an isolated
// logger and resolves the generator settings: the settings file when one is
// configured, the built-in defaults otherwise.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings := config.Defaults()
	if appConfig.SettingsPath != "" {
		loaded, err := loader.Load(ctx, appConfig.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
		logger.Debug("Settings loaded from file.", "path", appConfig.SettingsPath)
	} else if err := settings.Validate(); err != nil {
		// Defaults are constants; failing here is a programmer error.
		panic(err)
	}

	le, err := output.ParseLineEnding(settings.Output.LineEnding)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		settings: settings,
		writer:   output.NewWriter(le),
	}, nil
}

// Settings returns the resolved generator settings. This is primarily for testing.
func (a *App) Settings() *config.Settings {
	return a.settings
}
