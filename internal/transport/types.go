package transport

import "context"

// Transport layer types for Wails API

// Status summarizes the preferences store for the frontend
type Status struct {
	DataDirectory    string `json:"data_directory"`
	PreferencesFile  string `json:"preferences_file"`
	Modified         bool   `json:"modified"`
	JobWorking       bool   `json:"job_working"`
	JobInputFilter   bool   `json:"job_input_filter"`
	JobResultFilter  bool   `json:"job_result_filter"`
	SchemaValueItems int    `json:"schema_value_items"`
	LastSelectedPath string `json:"last_selected_path,omitempty"`
}

// ChangeEvent is the payload of the preferences events
type ChangeEvent struct {
	Keys []string `json:"keys,omitempty"`
}

// FileFilter restricts the files offered by a dialog
type FileFilter struct {
	DisplayName string
	Pattern     string
}

// Dialog interface for system dialogs
type DialogHandler interface {
	OpenDirectoryDialog(title, defaultDirectory string) (string, error)
	OpenFileDialog(title, defaultDirectory string, filter FileFilter) (string, error)
	ShowSaveDialog(title, defaultDirectory, filename string, filter FileFilter) (string, error)
}

// EventEmitter publishes an event to the frontend
type EventEmitter func(ctx context.Context, eventName string, optionalData ...interface{})
