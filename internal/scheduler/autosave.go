package scheduler

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DisabledSpec turns autosave off
const DisabledSpec = "off"

// Saver is the part of the preferences store the autosave job needs
type Saver interface {
	IsModified() bool
	WritePersistenceXmlInformation() error
}

// Autosave periodically writes modified preferences
type Autosave struct {
	cron    *cron.Cron
	saver   Saver
	logger  zerolog.Logger
	mu      sync.Mutex
	entryID cron.EntryID
	started bool
}

// NewAutosave schedules the save job with a standard cron spec or an
// "@every" descriptor. DisabledSpec yields an autosave that never runs.
func NewAutosave(spec string, saver Saver, logger zerolog.Logger) (*Autosave, error) {
	a := &Autosave{
		cron:   cron.New(),
		saver:  saver,
		logger: logger.With().Str("component", "autosave").Logger(),
	}
	if spec == DisabledSpec {
		return a, nil
	}

	entryID, err := a.cron.AddFunc(spec, func() { _, _ = a.RunOnce() })
	if err != nil {
		return nil, fmt.Errorf("add autosave job %q: %w", spec, err)
	}
	a.entryID = entryID
	return a, nil
}

// Enabled reports whether a save job is scheduled
func (a *Autosave) Enabled() bool {
	return a.entryID != 0
}

// RunOnce writes the preferences if they changed since the last write.
// It reports whether a write happened.
func (a *Autosave) RunOnce() (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.saver.IsModified() {
		return false, nil
	}
	if err := a.saver.WritePersistenceXmlInformation(); err != nil {
		a.logger.Error().Err(err).Msg("Autosave failed")
		return false, err
	}
	a.logger.Debug().Msg("Preferences autosaved")
	return true, nil
}

// Start begins the schedule
func (a *Autosave) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.started && a.Enabled() {
		a.cron.Start()
		a.started = true
	}
}

// Stop halts the schedule and waits for a running save to finish
func (a *Autosave) Stop() {
	a.mu.Lock()
	if !a.started {
		a.mu.Unlock()
		return
	}
	a.started = false
	a.mu.Unlock()

	<-a.cron.Stop().Done()
}
