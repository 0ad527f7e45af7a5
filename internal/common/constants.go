package common

const (
	// Application
	AppName          = "MFsim"
	ConfigFileName   = "mfsim.yaml"
	DatabaseFileName = "preferences.sqlite3"

	// Data directory layout
	DataDirectoryName             = "MFsim_Data"
	SourceDirectoryName           = "MFsim_Source"
	ParticlesDirectoryName        = "particles"
	CustomParticlesDirectoryName  = "CustomParticles"
	JobInputsDirectoryName        = "JobInputs"
	JobResultsDirectoryName       = "JobResults"
	TempDirectoryName             = "Temp"
	SimulationMoviesDirectoryName = "SimulationMovies"
	ChartMoviesDirectoryName      = "ChartMovies"
	ImagesDirectoryName           = "Images"
	MoviesDirectoryName           = "Movies"

	// Files
	PreferencesFileName   = "BasicPreferences.xml"
	LogFileName           = "MFsim_Logfile.txt"
	ParticleSetFilePrefix = "ParticleSet"

	// File operation constants
	DefaultFilePermissions = 0755

	// Event names
	EventPreferencesChanged = "preferences:changed"
	EventPreferencesSaved   = "preferences:saved"
)
