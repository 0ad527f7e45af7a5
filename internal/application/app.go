package application

import (
	"context"
	"errors"
	"os"
	"time"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
	"gorm.io/gorm"

	"mfsim/internal/config"
	"mfsim/internal/container"
	"mfsim/internal/database"
	"mfsim/internal/messages"
	"mfsim/internal/preferences"
	"mfsim/internal/transport"
	"mfsim/internal/valueitem"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ctx       context.Context
	container *container.Container
	wailsApp  *transport.WailsApp
	config    *config.Config
	db        *gorm.DB

	loadConfig func() (*config.Config, error)
	showDialog func(ctx context.Context, options wailsruntime.MessageDialogOptions) (string, error)
	exit       func(code int)
}

func NewApp() *App {
	return &App{
		loadConfig: config.New,
		showDialog: wailsruntime.MessageDialog,
		exit:       os.Exit,
	}
}

func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	// Initialize configuration
	cfg, err := a.loadConfig()
	if err != nil {
		a.fail(NewStartupError("configuration", err))
		return
	}
	a.config = cfg

	// Initialize database; preferences work without snapshots
	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Error().Err(err).Str("path", cfg.DatabasePath).Msg("Failed to initialize database, snapshots disabled")
		db = nil
	}
	a.db = db

	// Initialize dependency container
	c, err := container.New(cfg, db, transport.NewWailsNotifier(ctx, cfg.Logger))
	if err != nil {
		cfg.Logger.Error().Err(err).Msg("Failed to initialize preferences")
		a.fail(NewStartupError("preferences", err))
		return
	}
	a.container = c
	c.GetAutosave().Start()

	// Initialize transport layer
	a.wailsApp = transport.NewWailsApp(ctx, c.GetPreferencesService(), cfg.Logger)

	cfg.Logger.Info().
		Str("data_dir", cfg.DataDir).
		Str("source_dir", cfg.SourceDir).
		Str("database_path", cfg.DatabasePath).
		Bool("snapshots", db != nil).
		Msg("MFsim initialized")
}

func (a *App) OnShutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if a.container != nil {
		if err := a.container.Shutdown(ctx); err != nil {
			a.config.Logger.Error().Err(err).Msg("Failed to write preferences on shutdown")
		}
		a.container = nil
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.config.Logger.Warn().Err(err).Msg("Failed to close database")
		}
		a.db = nil
	}
	if a.config != nil {
		a.config.Logger.Info().Msg("MFsim stopped")
		_ = a.config.Close()
	}
}

// fail shows the startup error and terminates the process
func (a *App) fail(err error) {
	message := err.Error()
	if errors.Is(err, preferences.ErrDirectoryCreation) {
		message = messages.Format("StartupFailureMessage", errors.Unwrap(err).Error())
	}
	_, _ = a.showDialog(a.ctx, wailsruntime.MessageDialogOptions{
		Type:    wailsruntime.ErrorDialog,
		Title:   messages.Get("TitleStartupFailure"),
		Message: message,
	})
	if a.config != nil {
		_ = a.config.Close()
	}
	a.exit(-1)
}

func (a *App) GetEditablePreferences(group string) ([]*valueitem.ValueItem, error) {
	if a.wailsApp == nil {
		return nil, ErrNotInitialized
	}
	return a.wailsApp.GetEditablePreferences(group)
}

func (a *App) SetEditablePreferences(items []*valueitem.ValueItem) []string {
	if a.wailsApp == nil {
		return nil
	}
	return a.wailsApp.SetEditablePreferences(items)
}

func (a *App) SavePreferences() error {
	if a.wailsApp == nil {
		return ErrNotInitialized
	}
	return a.wailsApp.SavePreferences()
}

func (a *App) ClearJobInputFilter() bool {
	return a.wailsApp != nil && a.wailsApp.ClearJobInputFilter()
}

func (a *App) ClearJobResultFilter() bool {
	return a.wailsApp != nil && a.wailsApp.ClearJobResultFilter()
}

func (a *App) GetStatus() transport.Status {
	if a.wailsApp == nil {
		return transport.Status{}
	}
	return a.wailsApp.GetStatus()
}

func (a *App) OpenDirectoryDialog(title string) (string, error) {
	if a.wailsApp == nil {
		return "", ErrNotInitialized
	}
	return a.wailsApp.OpenDirectoryDialog(title)
}

func (a *App) ImportSchemaValueItems(merge bool) (int, error) {
	if a.wailsApp == nil {
		return 0, ErrNotInitialized
	}
	return a.wailsApp.ImportSchemaValueItems(merge)
}

func (a *App) ExportSchemaValueItems() (string, error) {
	if a.wailsApp == nil {
		return "", ErrNotInitialized
	}
	return a.wailsApp.ExportSchemaValueItems()
}
