package preferences

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfsim/internal/common"
	domain "mfsim/internal/domain/preferences"
)

type recordingNotifier struct {
	titles   []string
	messages []string
}

func (n *recordingNotifier) ShowError(title, message string) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		DataDir:   filepath.Join(t.TempDir(), "MFsim"),
		SourceDir: t.TempDir(),
		Logger:    zerolog.Nop(),
	}
}

func newTestStoreWith(t *testing.T, opts Options) *Store {
	t.Helper()
	s, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if task := s.TempCleanup(); task != nil {
			_ = task.Wait(ctx)
		}
		s.Close()
	})
	return s
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return newTestStoreWith(t, testOptions(t))
}

func waitForCleanup(t *testing.T, s *Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.TempCleanup().Wait(ctx))
}

func TestNew_RequiresDataDirectory(t *testing.T) {
	_, err := New(Options{Logger: zerolog.Nop()})
	assert.ErrorIs(t, err, ErrDirectoryCreation)
}

func TestNew_DataDirectoryBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := New(Options{DataDir: filepath.Join(blocker, "MFsim"), Logger: zerolog.Nop()})
	assert.ErrorIs(t, err, ErrDirectoryCreation)
}

func TestNew_CreatesDirectories(t *testing.T) {
	s := newTestStore(t)

	for _, dir := range []string{s.DataDirectory(), s.JobInputPath(), s.JobResultPath(), s.CustomParticlesPath(), s.TempPath()} {
		info, err := os.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}
	assert.Equal(t, filepath.Join(s.DataDirectory(), common.PreferencesFileName), s.PreferencesFilePath())
}

func TestNew_DefaultsWithoutPreferencesFile(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 100, s.NumberOfSlicesPerView())
	assert.Equal(t, 0, s.FirstSliceIndex())
	assert.True(t, s.IsSimulationBoxSlicer())
	assert.False(t, s.IsSingleSliceDisplay())
	assert.Equal(t, 180, s.NumberOfSpinSteps())
	assert.Equal(t, domain.GraphicsModeBufferedImageFinal, s.SlicerGraphicsMode())
	assert.Equal(t, domain.ColorBlack, s.SimulationBoxBackgroundColorSlicer())
	assert.Equal(t, domain.ColorBeige, s.FrameColorSlicer())
	assert.Equal(t, float32(1.0), s.JpegImageQuality())
	assert.Equal(t, DialogSize{Height: 890, Width: 1050}, s.DialogSize(DialogPeptideEdit))
	assert.Equal(t, DialogSize{Height: 730, Width: 820}, s.MainFrameSize())
	assert.False(t, s.HasJobInputFilter())
	assert.False(t, s.HasPreviousMonomers())
	assert.False(t, s.HasSchemaValueItems())
	assert.Empty(t, s.CurrentParticleSetFilename())
	assert.False(t, s.IsJobWorking())
	assert.Nil(t, s.StepRangeSlicer())
}

func TestNew_DefaultParticleSetIsNewestSourceFile(t *testing.T) {
	opts := testOptions(t)
	particles := filepath.Join(opts.SourceDir, common.ParticlesDirectoryName)
	require.NoError(t, os.MkdirAll(particles, 0755))
	for _, name := range []string{"ParticleSet_2023.txt", "ParticleSet_2024.txt", "Other.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(particles, name), nil, 0644))
	}

	s := newTestStoreWith(t, opts)
	assert.Equal(t, "ParticleSet_2024.txt", s.CurrentParticleSetFilename())
	assert.Equal(t, "ParticleSet_2024.txt", s.DefaultCurrentParticleSetFilename())
}

func TestNew_CleansTempDirectory(t *testing.T) {
	opts := testOptions(t)
	temp := filepath.Join(opts.DataDir, common.TempDirectoryName)
	require.NoError(t, os.MkdirAll(filepath.Join(temp, "job", "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(temp, "stale.txt"), []byte("x"), 0644))

	s := newTestStoreWith(t, opts)
	waitForCleanup(t, s)

	assert.True(t, s.TempCleanup().Finished())
	assert.NoError(t, s.TempCleanup().Err())
	entries, err := os.ReadDir(temp)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew_UnusablePersistedJobPathFallsBackToDataDirectory(t *testing.T) {
	opts := testOptions(t)
	jobPath := filepath.Join(t.TempDir(), "jobs")
	require.NoError(t, os.MkdirAll(jobPath, 0755))

	s := newTestStoreWith(t, opts)
	require.True(t, s.SetInternalMFsimJobPath(jobPath).Changed)
	require.NoError(t, s.WritePersistenceXmlInformation())

	require.NoError(t, os.RemoveAll(jobPath))
	require.NoError(t, os.WriteFile(jobPath, []byte("x"), 0644))

	reloaded := newTestStoreWith(t, opts)

	assert.Empty(t, reloaded.InternalMFsimJobPath())
	assert.Equal(t, filepath.Join(opts.DataDir, common.JobInputsDirectoryName), reloaded.JobInputPath())
	assert.DirExists(t, reloaded.JobInputPath())
	assert.DirExists(t, reloaded.JobResultPath())
}

func TestDeleteJobInputAndJobResultDirectories(t *testing.T) {
	s := newTestStore(t)
	waitForCleanup(t, s)

	input := filepath.Join(s.JobInputPath(), "Job1")
	result := filepath.Join(s.JobResultPath(), "Job1")
	require.NoError(t, os.MkdirAll(input, 0755))
	require.NoError(t, os.MkdirAll(result, 0755))
	s.SetNumberOfSlicesPerView(300)
	s.IncrementNumberOfWorkingJobResultExecutionTasks()

	require.NoError(t, s.DeleteJobInputAndJobResultDirectories())

	assert.NoDirExists(t, input)
	assert.NoDirExists(t, result)
	assert.DirExists(t, s.JobInputPath())
	assert.DirExists(t, s.JobResultPath())
	assert.Equal(t, DefaultNumberOfSlicesPerView, s.NumberOfSlicesPerView())
	assert.False(t, s.IsJobWorking())
	assert.NotNil(t, s.TempCleanup())
}

func TestSetInitialDefaultValues(t *testing.T) {
	s := newTestStore(t)
	s.SetNumberOfSlicesPerView(500)
	s.AddPreviousPeptide("AAA")
	s.SetJobResultFilterContainsPhrase("water")

	s.SetInitialDefaultValues()

	assert.Equal(t, DefaultNumberOfSlicesPerView, s.NumberOfSlicesPerView())
	assert.False(t, s.HasPreviousPeptides())
	assert.False(t, s.HasJobResultFilter())
}

func TestRuntimeState(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 1, s.IncrementNumberOfWorkingJobResultExecutionTasks())
	assert.Equal(t, 2, s.IncrementNumberOfWorkingJobResultExecutionTasks())
	assert.True(t, s.IsJobWorking())
	assert.Equal(t, 1, s.DecrementNumberOfWorkingJobResultExecutionTasks())
	assert.Equal(t, 0, s.DecrementNumberOfWorkingJobResultExecutionTasks())
	assert.Equal(t, 0, s.DecrementNumberOfWorkingJobResultExecutionTasks())
	assert.False(t, s.IsJobWorking())

	assert.True(t, s.SetStepRangeSlicer(10, 20).Changed)
	assert.Equal(t, &StepRange{First: 10, Last: 20}, s.StepRangeSlicer())
	assert.False(t, s.SetStepRangeSlicer(10, 20).Changed)
	assert.False(t, s.SetStepRangeSlicer(30, 20).Changed)
	assert.False(t, s.SetStepRangeSlicer(-1, 20).Changed)
	s.ClearStepRangeSlicer()
	assert.Nil(t, s.StepRangeSlicer())

	s.SetRotationAroundXaxisAngle(10)
	s.SetRotationAroundZaxisAngle(30)
	s.SaveAndRemoveRotation()
	assert.Equal(t, 0, s.RotationAroundXaxisAngle())
	assert.True(t, s.RestoreRotation())
	assert.Equal(t, 10, s.RotationAroundXaxisAngle())
	assert.Equal(t, 30, s.RotationAroundZaxisAngle())
	assert.False(t, s.RestoreRotation())

	assert.True(t, s.SetLogEvent(true).Changed)
	assert.True(t, s.IsLogEvent())
}

func TestSlicerConfiguration(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.SlicerConfiguration())

	s.SetFirstSliceIndex(5)
	captured := s.CaptureSlicerConfiguration()
	require.NotNil(t, captured)
	assert.Same(t, captured, s.SlicerConfiguration())

	s.ClearSlicerConfiguration()
	assert.Nil(t, s.SlicerConfiguration())
}
