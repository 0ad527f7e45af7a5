// Package preferences holds the process-wide MFsim preferences: validated
// setters, editable value-item views and the versioned XML persistence.
//
// A Store is driven from a single UI goroutine and is not safe for
// concurrent mutation. The temp-directory cleanup started by New is the only
// background activity.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"mfsim/internal/common"
	domain "mfsim/internal/domain/preferences"
	"mfsim/internal/fileutil"
	"mfsim/internal/valueitem"
)

// Options configures a Store
type Options struct {
	DataDir         string
	SourceDir       string
	PreferencesFile string
	Logger          zerolog.Logger
	Notifier        domain.Notifier
	Snapshots       domain.SnapshotRepository
	Deleter         *fileutil.Deleter
}

// Store holds the current preference values
type Store struct {
	dataDir         string
	sourceDir       string
	preferencesFile string
	homeDir         string

	logger      zerolog.Logger
	notifier    domain.Notifier
	snapshots   domain.SnapshotRepository
	deleter     *fileutil.Deleter
	ownsDeleter bool
	tempCleanup *fileutil.DeletionTask

	lastDocument []byte

	// Slicer
	firstSliceIndex                 int
	numberOfSlicesPerView           int
	numberOfBoxWaitSteps            int
	numberOfFramePointsSlicer       int
	timeStepDisplaySlicer           int
	maxSelectedMoleculeNumberSlicer int
	xShiftInPixelSlicer             int
	yShiftInPixelSlicer             int
	numberOfSpinSteps               int
	slicerGraphicsMode              domain.GraphicsMode
	imageStorageMode                domain.ImageStorage
	boxViewDisplay                  domain.SimulationBoxView
	isSimulationBoxSlicer           bool
	isSingleSliceDisplay            bool
	isFrameDisplaySlicer            bool
	simulationBoxBackgroundColor    domain.StandardColor
	measurementColorSlicer          domain.StandardColor
	moleculeSelectionColorSlicer    domain.StandardColor
	frameColorSlicer                domain.StandardColor
	specularWhiteAttenuationSlicer  float64
	depthAttenuationSlicer          float64
	colorGradientAttenuationSlicer  float64
	specularWhiteSizeSlicer         float32
	radialGradientMagnification     float32
	radialGradientFocusFactorX      float32
	radialGradientFocusFactorY      float32
	jpegImageQuality                float32
	simulationBoxMagnification      int
	imageVersion                    int

	// Rotation and shift
	rotationX      int
	rotationY      int
	rotationZ      int
	particleShiftX int
	particleShiftY int
	particleShiftZ int

	// Compartment graphics
	depthAttenuationCompartment         float64
	compartmentBodyChangeResponseFactor float64
	colorGradientAttenuationCompartment float64
	colorTransparencyCompartment        float32
	isConstantCompartmentBodyVolume     bool
	numberOfTrialsForCompartment        int

	// Viewers
	jmolBackgroundColor              domain.StandardColor
	proteinViewerBackgroundColor     domain.StandardColor
	jmolShadePower                   int
	jmolAmbientLightPercentage       int
	jmolDiffuseLightPercentage       int
	jmolSpecularReflectionExponent   int
	jmolSpecularReflectionPercentage int
	jmolSpecularReflectionPower      int
	particleColorDisplayMode         domain.ParticleColorDisplay
	isStandardParticleSizeDisplay    bool

	// Job execution and results
	isParticleUpdateForJobInput                    bool
	isJobResultArchiveStepFileInclusion            bool
	isVolumeScalingForConcentrationCalculation     bool
	isJobInputInclusion                            bool
	isParticleDistributionInclusion                bool
	isSimulationStepInclusion                      bool
	isNearestNeighborEvaluationInclusion           bool
	isJobResultArchiveProcessParallelInBackground  bool
	isJobResultArchiveFileUncompressed             bool
	isDeterministicRandom                          bool
	isJdpdKernelDoublePrecision                    bool
	isJdpdLogLevelException                        bool
	delayForFilesInMilliseconds                    int64
	delayForJobStartInMilliseconds                 int64
	timerIntervalInMilliseconds                    int
	minimumBondLengthDpd                           float64
	maximumNumberOfParticlesForGraphicalDisplay    int
	numberOfStepsForRdfCalculation                 int
	numberOfVolumeBins                             int
	animationSpeed                                 int
	numberOfSimulationBoxCellsForParallelization   int
	numberOfBondsForParallelization                int
	numberOfAdditionalStepsForJobRestart           int
	numberOfParallelSimulations                    int
	numberOfParallelSlicers                        int
	numberOfParallelCalculators                    int
	numberOfParallelParticlePositionWriters        int
	numberOfAfterDecimalDigitsForParticlePositions int
	maximumNumberOfPositionCorrectionTrials        int
	movieQuality                                   int

	// Paths
	internalMFsimJobPath       string
	internalTempPath           string
	currentParticleSetFilename string
	simulationMovieImagePath   string
	chartMovieImagePath        string
	lastSelectedPath           string

	// Dialogs
	dialogSizes      map[Dialog]DialogSize
	customDialogSize DialogSize
	mainFrameSize    DialogSize

	jobInputFilter  Filter
	jobResultFilter Filter

	previousMonomers   []string
	previousStructures []string
	previousPeptides   []string

	schemaValueItems *valueitem.Container

	runtime runtimeState
}

// New creates the data directories, starts the temp-directory cleanup and
// loads the persisted preferences on top of the defaults.
func New(opts Options) (*Store, error) {
	if opts.DataDir == "" {
		return nil, fmt.Errorf("%w: no data directory configured", ErrDirectoryCreation)
	}

	s := &Store{
		dataDir:         opts.DataDir,
		sourceDir:       opts.SourceDir,
		preferencesFile: opts.PreferencesFile,
		logger:          opts.Logger.With().Str("component", "preferences").Logger(),
		notifier:        opts.Notifier,
		snapshots:       opts.Snapshots,
		deleter:         opts.Deleter,
	}
	if s.preferencesFile == "" {
		s.preferencesFile = filepath.Join(s.dataDir, common.PreferencesFileName)
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	if home, err := os.UserHomeDir(); err == nil {
		s.homeDir = home
	}
	if s.deleter == nil {
		deleter, err := fileutil.NewDeleter(1, s.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create temp cleanup pool: %w", err)
		}
		s.deleter = deleter
		s.ownsDeleter = true
	}

	if err := s.initialize(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	if err := s.createDirectories(); err != nil {
		return err
	}

	s.SetInitialDefaultValues()
	if err := s.ReadPersistenceXmlInformation(); err != nil {
		// A broken preferences file leaves the remaining fields at their defaults
		s.logger.Error().Err(err).Str("file", s.preferencesFile).Msg("Failed to read preferences")
	}

	s.startTempCleanup()
	return nil
}

func (s *Store) createDirectories() error {
	for _, dir := range []string{s.dataDir, s.JobInputPath(), s.JobResultPath(), s.CustomParticlesPath()} {
		if err := fileutil.EnsureDirectory(dir); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDirectoryCreation, dir, err)
		}
	}
	return nil
}

func (s *Store) startTempCleanup() {
	tempDir := s.TempPath()
	if !fileutil.IsDirectory(tempDir) {
		if err := fileutil.EnsureDirectory(tempDir); err != nil {
			s.logger.Warn().Err(err).Str("dir", tempDir).Msg("Failed to create temp directory")
		}
	}

	entries, err := fileutil.DirectoryEntries(tempDir)
	if err != nil {
		s.logger.Warn().Err(err).Str("dir", tempDir).Msg("Failed to list temp directory")
	}
	s.tempCleanup = s.deleter.Delete(context.Background(), entries...)
	s.logger.Debug().Str("task", s.tempCleanup.ID).Int("entries", len(entries)).Msg("Temp directory cleanup started")
}

// TempCleanup returns the handle of the temp-directory cleanup started at construction
func (s *Store) TempCleanup() *fileutil.DeletionTask {
	return s.tempCleanup
}

// DeleteJobInputAndJobResultDirectories removes all job inputs and results
// and reinitializes the store from scratch.
func (s *Store) DeleteJobInputAndJobResultDirectories() error {
	if s.tempCleanup != nil {
		s.tempCleanup.Cancel()
	}

	var errs []error
	for _, dir := range []string{s.JobInputPath(), s.JobResultPath()} {
		if err := os.RemoveAll(dir); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", dir, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	s.runtime = runtimeState{}
	s.lastDocument = nil
	return s.initialize()
}

// Close releases the cleanup pool when the store created it
func (s *Store) Close() {
	if s.ownsDeleter && s.deleter != nil {
		s.deleter.Release()
	}
}

// SetInitialDefaultValues assigns every field its default value
func (s *Store) SetInitialDefaultValues() {
	s.setSlicerDefaults()
	s.setCompartmentDefaults()
	s.setViewerDefaults()
	s.setJobDefaults()
	s.setPathDefaults()
	s.setDialogDefaults()

	s.jobInputFilter = Filter{}
	s.jobResultFilter = Filter{}
	s.previousMonomers = nil
	s.previousStructures = nil
	s.previousPeptides = nil
	s.schemaValueItems = valueitem.NewContainer()
}

type noopNotifier struct{}

func (noopNotifier) ShowError(string, string) {}
