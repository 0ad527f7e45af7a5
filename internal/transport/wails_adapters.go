package transport

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"mfsim/internal/common"
	preferencesDomain "mfsim/internal/domain/preferences"
	"mfsim/internal/messages"
	"mfsim/internal/valueitem"
)

const schemaExportFilename = "SchemaValueItems.xml"

var schemaFileFilter = FileFilter{
	DisplayName: messages.Get("FilterSchemaFiles"),
	Pattern:     "*.xml",
}

type WailsApp struct {
	ctx            context.Context
	preferences    preferencesDomain.Service
	dialogsHandler DialogHandler
	emit           EventEmitter
	logger         zerolog.Logger
}

func NewWailsApp(
	ctx context.Context,
	preferences preferencesDomain.Service,
	logger zerolog.Logger,
) *WailsApp {
	return &WailsApp{
		ctx:            ctx,
		preferences:    preferences,
		dialogsHandler: NewDialogsHandler(ctx),
		emit:           wailsruntime.EventsEmit,
		logger:         logger.With().Str("component", "transport").Logger(),
	}
}

// GetEditablePreferences returns the items of an editable group in display order
func (a *WailsApp) GetEditablePreferences(group string) ([]*valueitem.ValueItem, error) {
	container, err := a.preferences.EditablePreferences(preferencesDomain.Group(group))
	if err != nil {
		return nil, err
	}
	return container.Items(), nil
}

// SetEditablePreferences applies edited items and returns the keys that changed
func (a *WailsApp) SetEditablePreferences(items []*valueitem.ValueItem) []string {
	container := valueitem.NewContainer()
	container.Add(lo.Compact(items)...)

	changed := lo.Map(a.preferences.SetEditablePreferences(container), func(key preferencesDomain.EditableKey, _ int) string {
		return string(key)
	})
	if len(changed) > 0 {
		a.publishChanged(changed...)
	}
	return changed
}

func (a *WailsApp) SavePreferences() error {
	if err := a.preferences.WritePersistenceXmlInformation(); err != nil {
		return err
	}
	a.emit(a.ctx, common.EventPreferencesSaved, ChangeEvent{})
	return nil
}

func (a *WailsApp) ClearJobInputFilter() bool {
	cleared := a.preferences.ClearJobInputFilter()
	if cleared {
		a.publishChanged(
			string(preferencesDomain.EditableJobInputFilterAfterTimestamp),
			string(preferencesDomain.EditableJobInputFilterBeforeTimestamp),
			string(preferencesDomain.EditableJobInputFilterContainsPhrase),
		)
	}
	return cleared
}

func (a *WailsApp) ClearJobResultFilter() bool {
	cleared := a.preferences.ClearJobResultFilter()
	if cleared {
		a.publishChanged(
			string(preferencesDomain.EditableJobResultFilterAfterTimestamp),
			string(preferencesDomain.EditableJobResultFilterBeforeTimestamp),
			string(preferencesDomain.EditableJobResultFilterContainsPhrase),
		)
	}
	return cleared
}

func (a *WailsApp) GetStatus() Status {
	return Status{
		DataDirectory:    a.preferences.DataDirectory(),
		PreferencesFile:  a.preferences.PreferencesFilePath(),
		Modified:         a.preferences.IsModified(),
		JobWorking:       a.preferences.IsJobWorking(),
		JobInputFilter:   a.preferences.HasJobInputFilter(),
		JobResultFilter:  a.preferences.HasJobResultFilter(),
		SchemaValueItems: a.preferences.NumberOfSchemaValueItems(),
		LastSelectedPath: a.preferences.LastSelectedPath(),
	}
}

// OpenDirectoryDialog starts in the last selected directory and remembers the new selection
func (a *WailsApp) OpenDirectoryDialog(title string) (string, error) {
	if title == "" {
		title = messages.Get("DialogSelectDirectory")
	}
	selection, err := a.dialogsHandler.OpenDirectoryDialog(title, a.preferences.LastSelectedPath())
	if err != nil || selection == "" {
		return "", err
	}
	a.preferences.SetLastSelectedPath(selection)
	return selection, nil
}

// ImportSchemaValueItems loads a schema file chosen by the user. With merge
// set the file is merged into the existing items, otherwise it replaces them.
// It returns the number of items added.
func (a *WailsApp) ImportSchemaValueItems(merge bool) (int, error) {
	path, err := a.dialogsHandler.OpenFileDialog(messages.Get("DialogSelectFile"), a.preferences.LastSelectedPath(), schemaFileFilter)
	if err != nil || path == "" {
		return 0, err
	}
	a.preferences.SetLastSelectedPath(filepath.Dir(path))

	var added int
	if merge {
		added, err = a.preferences.MergeSchemaValueItemContainerFromFile(path)
	} else {
		err = a.preferences.ReadSchemaValueItemContainerFromFile(path)
		added = a.preferences.NumberOfSchemaValueItems()
	}
	if err != nil {
		a.logger.Error().Err(err).Str("file", path).Msg("Failed to import schema value items")
		return 0, err
	}
	a.publishChanged()
	return added, nil
}

// ExportSchemaValueItems writes the schema items to a file chosen by the user
func (a *WailsApp) ExportSchemaValueItems() (string, error) {
	path, err := a.dialogsHandler.ShowSaveDialog(messages.Get("DialogSaveFile"), a.preferences.LastSelectedPath(), schemaExportFilename, schemaFileFilter)
	if err != nil || path == "" {
		return "", err
	}
	if err := a.preferences.WriteSchemaValueItemContainerToFile(path); err != nil {
		a.logger.Error().Err(err).Str("file", path).Msg("Failed to export schema value items")
		return "", err
	}
	a.preferences.SetLastSelectedPath(filepath.Dir(path))
	return path, nil
}

func (a *WailsApp) publishChanged(keys ...string) {
	a.logger.Debug().Strs("keys", keys).Msg("Preferences changed")
	a.emit(a.ctx, common.EventPreferencesChanged, ChangeEvent{Keys: keys})
}
