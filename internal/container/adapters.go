package container

import (
	"sync"

	preferencesDomain "mfsim/internal/domain/preferences"
	"mfsim/internal/preferences"
	"mfsim/internal/valueitem"
)

// PreferencesServiceAdapter adapts preferences.Store to preferencesDomain.Service.
// Wails bound methods and the autosave job run on different goroutines, so
// every call is serialized.
type PreferencesServiceAdapter struct {
	mu    sync.Mutex
	store *preferences.Store
}

var _ preferencesDomain.Service = (*PreferencesServiceAdapter)(nil)

func NewPreferencesServiceAdapter(store *preferences.Store) *PreferencesServiceAdapter {
	return &PreferencesServiceAdapter{store: store}
}

func (a *PreferencesServiceAdapter) EditablePreferences(group preferencesDomain.Group) (*valueitem.Container, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.EditablePreferences(group)
}

func (a *PreferencesServiceAdapter) SetEditablePreferences(container *valueitem.Container) []preferencesDomain.EditableKey {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.SetEditablePreferences(container)
}

func (a *PreferencesServiceAdapter) WritePersistenceXmlInformation() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.WritePersistenceXmlInformation()
}

func (a *PreferencesServiceAdapter) IsModified() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.IsModified()
}

func (a *PreferencesServiceAdapter) HasJobInputFilter() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.HasJobInputFilter()
}

func (a *PreferencesServiceAdapter) HasJobResultFilter() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.HasJobResultFilter()
}

func (a *PreferencesServiceAdapter) ClearJobInputFilter() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.ClearJobInputFilter()
}

func (a *PreferencesServiceAdapter) ClearJobResultFilter() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.ClearJobResultFilter()
}

func (a *PreferencesServiceAdapter) IsJobWorking() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.IsJobWorking()
}

func (a *PreferencesServiceAdapter) DataDirectory() string {
	return a.store.DataDirectory()
}

func (a *PreferencesServiceAdapter) PreferencesFilePath() string {
	return a.store.PreferencesFilePath()
}

func (a *PreferencesServiceAdapter) LastSelectedPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.LastSelectedPath()
}

func (a *PreferencesServiceAdapter) SetLastSelectedPath(path string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.SetLastSelectedPath(path).Changed
}

func (a *PreferencesServiceAdapter) NumberOfSchemaValueItems() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.NumberOfSchemaValueItems()
}

func (a *PreferencesServiceAdapter) ReadSchemaValueItemContainerFromFile(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.ReadSchemaValueItemContainerFromFile(path)
}

func (a *PreferencesServiceAdapter) MergeSchemaValueItemContainerFromFile(path string) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.MergeSchemaValueItemContainerFromFile(path)
}

func (a *PreferencesServiceAdapter) WriteSchemaValueItemContainerToFile(path string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.WriteSchemaValueItemContainerToFile(path)
}
