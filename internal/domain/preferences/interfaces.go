package preferences

import (
	"mfsim/internal/valueitem"
)

// Notifier shows user-facing failures
type Notifier interface {
	ShowError(title, message string)
}

// SnapshotRepository keeps a history of written preference documents
type SnapshotRepository interface {
	Save(document []byte) error
	Latest() ([]byte, error)
}

// Group names an editable preference view
type Group string

const (
	GroupAll                       Group = "all"
	GroupSlicer                    Group = "slicer"
	GroupCompartmentGraphics       Group = "compartment-graphics"
	GroupJmolViewer                Group = "jmol-viewer"
	GroupProteinViewer             Group = "protein-viewer"
	GroupJobResultArchive          Group = "job-result-archive"
	GroupJobResultSettings         Group = "job-result-settings"
	GroupDirectories               Group = "directories"
	GroupParticleSet               Group = "particle-set"
	GroupAnimation                 Group = "animation"
	GroupSimulationMovie           Group = "simulation-movie"
	GroupChartMovie                Group = "chart-movie"
	GroupJobInputFilter            Group = "job-input-filter"
	GroupJobResultFilter           Group = "job-result-filter"
	GroupRotationAndShift          Group = "rotation-and-shift"
	GroupCustomDialogSize          Group = "custom-dialog-size"
	GroupSlicerTimeSteps           Group = "slicer-time-steps"
	GroupSlicerSpinSteps           Group = "slicer-spin-steps"
	GroupVolumeSettings            Group = "volume-settings"
	GroupAdditionalStepsForRestart Group = "additional-steps-for-restart"
)

// Service is the preferences surface used by the UI layer
type Service interface {
	EditablePreferences(group Group) (*valueitem.Container, error)
	SetEditablePreferences(container *valueitem.Container) []EditableKey
	WritePersistenceXmlInformation() error
	IsModified() bool
	HasJobInputFilter() bool
	HasJobResultFilter() bool
	ClearJobInputFilter() bool
	ClearJobResultFilter() bool
	IsJobWorking() bool
	DataDirectory() string
	PreferencesFilePath() string
	LastSelectedPath() string
	SetLastSelectedPath(path string) bool
	NumberOfSchemaValueItems() int
	ReadSchemaValueItemContainerFromFile(path string) error
	MergeSchemaValueItemContainerFromFile(path string) (int, error)
	WriteSchemaValueItemContainerToFile(path string) error
}
