package preferences

import (
	"path/filepath"

	"mfsim/internal/common"
	"mfsim/internal/fileutil"
)

func (s *Store) setPathDefaults() {
	s.internalMFsimJobPath = ""
	s.internalTempPath = ""
	s.currentParticleSetFilename = s.DefaultCurrentParticleSetFilename()
	s.simulationMovieImagePath = ""
	s.chartMovieImagePath = ""
	s.lastSelectedPath = s.homeDir
}

// DataDirectory returns the base directory of all MFsim data
func (s *Store) DataDirectory() string { return s.dataDir }

func (s *Store) SourceDirectory() string { return s.sourceDir }

func (s *Store) PreferencesFilePath() string { return s.preferencesFile }

func (s *Store) LogFilePath() string {
	return filepath.Join(s.dataDir, common.LogFileName)
}

func (s *Store) jobBasePath() string {
	if s.internalMFsimJobPath != "" {
		return s.internalMFsimJobPath
	}
	return s.dataDir
}

func (s *Store) JobInputPath() string {
	return filepath.Join(s.jobBasePath(), common.JobInputsDirectoryName)
}

func (s *Store) JobResultPath() string {
	return filepath.Join(s.jobBasePath(), common.JobResultsDirectoryName)
}

func (s *Store) CustomParticlesPath() string {
	return filepath.Join(s.dataDir, common.CustomParticlesDirectoryName)
}

func (s *Store) SourceParticlesPath() string {
	return filepath.Join(s.sourceDir, common.ParticlesDirectoryName)
}

// TempPath returns the internal temp path when set, the data directory's Temp otherwise
func (s *Store) TempPath() string {
	if s.internalTempPath != "" {
		return s.internalTempPath
	}
	return filepath.Join(s.dataDir, common.TempDirectoryName)
}

// Internal job and temp paths

func (s *Store) InternalMFsimJobPath() string { return s.internalMFsimJobPath }

// SetInternalMFsimJobPath moves job inputs and results below path. An empty
// path restores the data directory. The path must exist and cannot change
// while a job is working.
func (s *Store) SetInternalMFsimJobPath(path string) Result[string] {
	previous := s.internalMFsimJobPath
	if s.IsJobWorking() || !isXMLText(path) || (path != "" && !fileutil.IsDirectory(path)) {
		return unchanged(previous)
	}

	s.internalMFsimJobPath = path
	if path != "" {
		for _, dir := range []string{s.JobInputPath(), s.JobResultPath()} {
			if err := fileutil.EnsureDirectory(dir); err != nil {
				s.logger.Warn().Err(err).Str("path", path).Msg("Internal job path not usable")
				s.internalMFsimJobPath = ""
				break
			}
		}
	}
	return Result[string]{Changed: previous != s.internalMFsimJobPath, Value: s.internalMFsimJobPath}
}

func (s *Store) InternalTempPath() string { return s.internalTempPath }

// SetInternalTempPath follows the rules of SetInternalMFsimJobPath for the temp directory
func (s *Store) SetInternalTempPath(path string) Result[string] {
	previous := s.internalTempPath
	if s.IsJobWorking() || !isXMLText(path) || (path != "" && !fileutil.IsDirectory(path)) {
		return unchanged(previous)
	}

	s.internalTempPath = path
	if path != "" {
		if err := fileutil.EnsureDirectory(path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Internal temp path not usable")
			s.internalTempPath = ""
		}
	}
	return Result[string]{Changed: previous != s.internalTempPath, Value: s.internalTempPath}
}

// Particle set

func (s *Store) CurrentParticleSetFilename() string { return s.currentParticleSetFilename }

// DefaultCurrentParticleSetFilename returns the newest ParticleSet file of
// the source particles directory, or an empty string when there is none.
func (s *Store) DefaultCurrentParticleSetFilename() string {
	names, err := fileutil.FilenamesWithPrefix(s.SourceParticlesPath(), common.ParticleSetFilePrefix)
	if err != nil || len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}

// SetCurrentParticleSetFilename accepts only files present in the source or
// custom particles directory.
func (s *Store) SetCurrentParticleSetFilename(filename string) Result[string] {
	if !isXMLText(filename) || s.ParticleSetFilePath(filename) == "" {
		return unchanged(s.currentParticleSetFilename)
	}
	return assign(&s.currentParticleSetFilename, filename)
}

// ParticleSetFilePath resolves filename against the custom and the source
// particles directory. It returns an empty string for unknown files.
func (s *Store) ParticleSetFilePath(filename string) string {
	if filename == "" || filepath.Base(filename) != filename {
		return ""
	}
	for _, dir := range []string{s.CustomParticlesPath(), s.SourceParticlesPath()} {
		path := filepath.Join(dir, filename)
		if fileutil.IsFile(path) {
			return path
		}
	}
	return ""
}

// ParticleSetFilenames lists the selectable particle set files of both directories
func (s *Store) ParticleSetFilenames() []string {
	var result []string
	seen := make(map[string]bool)
	for _, dir := range []string{s.SourceParticlesPath(), s.CustomParticlesPath()} {
		names, err := fileutil.FilenamesWithPrefix(dir, common.ParticleSetFilePrefix)
		if err != nil {
			continue
		}
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				result = append(result, name)
			}
		}
	}
	return result
}

// Movie directories

func (s *Store) SimulationMovieImagePath() string { return s.simulationMovieImagePath }

// SimulationMoviePath returns the configured simulation movie directory or its default
func (s *Store) SimulationMoviePath() string {
	if s.simulationMovieImagePath != "" {
		return s.simulationMovieImagePath
	}
	return filepath.Join(s.dataDir, common.SimulationMoviesDirectoryName)
}

func (s *Store) SimulationMovieImageDirectory() string {
	return filepath.Join(s.SimulationMoviePath(), common.ImagesDirectoryName)
}

func (s *Store) SimulationMovieMovieDirectory() string {
	return filepath.Join(s.SimulationMoviePath(), common.MoviesDirectoryName)
}

// SetSimulationMovieImagePath requires the Images and Movies subdirectories
// to be creatable below path. An empty path restores the default.
func (s *Store) SetSimulationMovieImagePath(path string) Result[string] {
	if !isXMLText(path) || (path != "" && !s.prepareMovieDirectory(path)) {
		return unchanged(s.simulationMovieImagePath)
	}
	return assign(&s.simulationMovieImagePath, path)
}

func (s *Store) ChartMovieImagePath() string { return s.chartMovieImagePath }

func (s *Store) ChartMoviePath() string {
	if s.chartMovieImagePath != "" {
		return s.chartMovieImagePath
	}
	return filepath.Join(s.dataDir, common.ChartMoviesDirectoryName)
}

func (s *Store) ChartMovieImageDirectory() string {
	return filepath.Join(s.ChartMoviePath(), common.ImagesDirectoryName)
}

func (s *Store) ChartMovieMovieDirectory() string {
	return filepath.Join(s.ChartMoviePath(), common.MoviesDirectoryName)
}

func (s *Store) SetChartMovieImagePath(path string) Result[string] {
	if !isXMLText(path) || (path != "" && !s.prepareMovieDirectory(path)) {
		return unchanged(s.chartMovieImagePath)
	}
	return assign(&s.chartMovieImagePath, path)
}

func (s *Store) prepareMovieDirectory(path string) bool {
	for _, name := range []string{common.ImagesDirectoryName, common.MoviesDirectoryName} {
		if err := fileutil.EnsureDirectory(filepath.Join(path, name)); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Movie directory not usable")
			return false
		}
	}
	return true
}

func (s *Store) LastSelectedPath() string { return s.lastSelectedPath }

func (s *Store) SetLastSelectedPath(path string) Result[string] {
	if !isXMLText(path) {
		return unchanged(s.lastSelectedPath)
	}
	return assign(&s.lastSelectedPath, path)
}
