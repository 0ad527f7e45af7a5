package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"mfsim/internal/config"
	"mfsim/internal/database"
	preferencesDomain "mfsim/internal/domain/preferences"
	"mfsim/internal/fileutil"
	"mfsim/internal/preferences"
	"mfsim/internal/scheduler"
)

// deletionWorkers bounds the background deletion tasks
const deletionWorkers = 2

// Container holds all dependencies for the application
type Container struct {
	config *config.Config
	db     *gorm.DB
	logger zerolog.Logger

	// Services
	snapshots          *database.SnapshotRepository
	deleter            *fileutil.Deleter
	store              *preferences.Store
	preferencesService *PreferencesServiceAdapter
	autosave           *scheduler.Autosave
}

// New creates a new dependency injection container. The notifier may be nil.
func New(cfg *config.Config, db *gorm.DB, notifier preferencesDomain.Notifier) (*Container, error) {
	c := &Container{
		config: cfg,
		db:     db,
		logger: cfg.Logger,
	}

	if err := c.initServices(notifier); err != nil {
		c.release()
		return nil, err
	}
	return c, nil
}

// initServices initializes all services with their dependencies
func (c *Container) initServices(notifier preferencesDomain.Notifier) error {
	deleter, err := fileutil.NewDeleter(deletionWorkers, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create deletion pool: %w", err)
	}
	c.deleter = deleter

	opts := preferences.Options{
		DataDir:         c.config.DataDir,
		SourceDir:       c.config.SourceDir,
		PreferencesFile: c.config.PreferencesFile,
		Logger:          c.logger,
		Notifier:        notifier,
		Deleter:         deleter,
	}
	if c.db != nil {
		c.snapshots = database.NewSnapshotRepository(c.db, c.config.SnapshotLimit)
		opts.Snapshots = c.snapshots
	}

	store, err := preferences.New(opts)
	if err != nil {
		return err
	}
	c.store = store
	c.preferencesService = NewPreferencesServiceAdapter(store)

	autosave, err := scheduler.NewAutosave(c.config.AutosaveSpec, c.preferencesService, c.logger)
	if err != nil {
		return err
	}
	c.autosave = autosave

	c.logger.Debug().
		Str("data_dir", c.config.DataDir).
		Bool("snapshots", c.snapshots != nil).
		Bool("autosave", autosave.Enabled()).
		Msg("Container initialized")
	return nil
}

// GetPreferencesService returns the preferences service
func (c *Container) GetPreferencesService() preferencesDomain.Service {
	return c.preferencesService
}

// GetStore returns the preferences store
func (c *Container) GetStore() *preferences.Store {
	return c.store
}

// GetAutosave returns the autosave scheduler
func (c *Container) GetAutosave() *scheduler.Autosave {
	return c.autosave
}

// GetSnapshots returns the snapshot repository, nil without a database
func (c *Container) GetSnapshots() *database.SnapshotRepository {
	return c.snapshots
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Shutdown stops the autosave, writes modified preferences and waits for the
// temp-directory cleanup before releasing the store and the deletion pool.
func (c *Container) Shutdown(ctx context.Context) error {
	var writeErr error
	if c.autosave != nil {
		c.autosave.Stop()
	}
	if c.store != nil && c.preferencesService.IsModified() {
		writeErr = c.preferencesService.WritePersistenceXmlInformation()
	}
	if c.store != nil {
		if task := c.store.TempCleanup(); task != nil {
			if err := task.Wait(ctx); err != nil {
				c.logger.Warn().Err(err).Msg("Temp cleanup did not finish")
			}
		}
	}
	c.release()
	return writeErr
}

func (c *Container) release() {
	if c.store != nil {
		c.store.Close()
		c.store = nil
	}
	if c.deleter != nil {
		c.deleter.Release()
		c.deleter = nil
	}
}
