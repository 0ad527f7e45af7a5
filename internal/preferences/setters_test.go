package preferences

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfsim/internal/common"
	domain "mfsim/internal/domain/preferences"
)

func TestBounds_Correct(t *testing.T) {
	tests := []struct {
		name     string
		bounds   Bounds[int]
		input    int
		expected int
		accepted bool
	}{
		{"clamp inside", clampBounds(1, 10), 5, 5, true},
		{"clamp below", clampBounds(1, 10), -5, 1, true},
		{"clamp above", clampBounds(1, 10), 50, 10, true},
		{"reject inside", rejectBounds(1, 10), 10, 10, true},
		{"reject below", rejectBounds(1, 10), 0, 0, false},
		{"reject above", rejectBounds(1, 10), 11, 11, false},
		{"wrap inside", rotationBounds, 359, 359, true},
		{"wrap full turn", rotationBounds, 360, 0, true},
		{"wrap above", rotationBounds, 370, 10, true},
		{"wrap negative", rotationBounds, -10, 350, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.bounds.Correct(tt.input)
			assert.Equal(t, tt.accepted, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBounds_RejectsNaN(t *testing.T) {
	_, ok := clampBounds(0.0, 1.0).Correct(math.NaN())
	assert.False(t, ok)
}

func TestBounds_Open(t *testing.T) {
	assert.True(t, maxSelectedMoleculeNumberBounds.Open())
	assert.False(t, numberOfSlicesBounds.Open())
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "clamp", Clamp.String())
	assert.Equal(t, "reject", Reject.String())
	assert.Equal(t, "wrap", Wrap.String())
}

func TestIntSetters_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		set      func(*Store, int) Result[int]
		get      func(*Store) int
		input    int
		expected int
	}{
		{"max selected molecules below", (*Store).SetMaxSelectedMoleculeNumberSlicer, (*Store).MaxSelectedMoleculeNumberSlicer, -5, 1},
		{"slices below", (*Store).SetNumberOfSlicesPerView, (*Store).NumberOfSlicesPerView, 3, 10},
		{"slices above", (*Store).SetNumberOfSlicesPerView, (*Store).NumberOfSlicesPerView, 5000, 1000},
		{"frame points", (*Store).SetNumberOfFramePointsSlicer, (*Store).NumberOfFramePointsSlicer, 0, 2},
		{"time step display", (*Store).SetTimeStepDisplaySlicer, (*Store).TimeStepDisplaySlicer, 250, 100},
		{"magnification", (*Store).SetSimulationBoxMagnificationPercentage, (*Store).SimulationBoxMagnificationPercentage, 99, 95},
		{"particle shift", (*Store).SetParticleShiftX, (*Store).ParticleShiftX, -300, -100},
		{"jmol shade power", (*Store).SetJmolShadePower, (*Store).JmolShadePower, 7, 3},
		{"jmol ambient light", (*Store).SetJmolAmbientLightPercentage, (*Store).JmolAmbientLightPercentage, 101, 100},
		{"timer interval", (*Store).SetTimerIntervalInMilliseconds, (*Store).TimerIntervalInMilliseconds, 1, 100},
		{"animation speed", (*Store).SetAnimationSpeed, (*Store).AnimationSpeed, 1000, 200},
		{"after decimal digits", (*Store).SetNumberOfAfterDecimalDigitsForParticlePositions, (*Store).NumberOfAfterDecimalDigitsForParticlePositions, 1, 3},
		{"movie quality", (*Store).SetMovieQuality, (*Store).MovieQuality, 40, 36},
		{"parallel simulations", (*Store).SetNumberOfParallelSimulations, (*Store).NumberOfParallelSimulations, 0, 1},
		{"volume bins", (*Store).SetNumberOfVolumeBins, (*Store).NumberOfVolumeBins, 1, 2},
		{"restart steps", (*Store).SetNumberOfAdditionalStepsForJobRestart, (*Store).NumberOfAdditionalStepsForJobRestart, 5, 10},
		{"custom dialog height", (*Store).SetCustomDialogHeight, func(s *Store) int { return s.CustomDialogSize().Height }, 100, 890},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			result := tt.set(s, tt.input)
			assert.Equal(t, tt.expected, result.Value)
			assert.Equal(t, tt.expected, tt.get(s))
		})
	}
}

func TestFloatSetters(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 1.0, s.SetSpecularWhiteAttenuationSlicer(3).Value)
	assert.Equal(t, 0.0, s.SetDepthAttenuationSlicer(-1).Value)
	assert.Equal(t, float32(0.01), s.SetSpecularWhiteSizeSlicer(0).Value)
	assert.Equal(t, float32(1.9), s.SetRadialGradientPaintFocusFactorY(5).Value)
	assert.Equal(t, 0.000001, s.SetCompartmentBodyChangeResponseFactor(0).Value)
	assert.Equal(t, 5.0, s.SetDepthAttenuationCompartment(10).Value)
	assert.Equal(t, int64(100), s.SetDelayForFilesInMilliseconds(1000).Value)
	assert.Equal(t, int64(60000), s.SetDelayForJobStartInMilliseconds(1 << 40).Value)
}

func TestFloatSetters_Reject(t *testing.T) {
	s := newTestStore(t)

	result := s.SetJpegImageQuality(1.5)
	assert.False(t, result.Changed)
	assert.Equal(t, float32(1.0), s.JpegImageQuality())

	result = s.SetJpegImageQuality(0.5)
	assert.True(t, result.Changed)
	assert.Equal(t, float32(0.5), s.JpegImageQuality())

	assert.False(t, s.SetColorTransparencyCompartment(-0.1).Changed)
	assert.Equal(t, float32(0), s.ColorTransparencyCompartment())
	assert.True(t, s.SetColorTransparencyCompartment(0.3).Changed)

	assert.False(t, s.SetJpegImageQuality(float32(math.NaN())).Changed)
	assert.Equal(t, float32(0.5), s.JpegImageQuality())
}

func TestSetters_ChangeFlag(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.SetAnimationSpeed(40).Changed)
	assert.False(t, s.SetAnimationSpeed(40).Changed)
	assert.True(t, s.SetAnimationSpeed(500).Changed)
	assert.Equal(t, 200, s.AnimationSpeed())

	s.SetMovieQuality(36)
	assert.False(t, s.SetMovieQuality(99).Changed, "clamped to the current value")

	assert.True(t, s.SetDeterministicRandom(false).Changed)
	assert.False(t, s.SetDeterministicRandom(false).Changed)
}

func TestRotation_Wraps(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 10, s.SetRotationAroundXaxisAngle(370).Value)
	assert.Equal(t, 270, s.SetRotationAroundYaxisAngle(-90).Value)
	assert.Equal(t, 0, s.SetRotationAroundZaxisAngle(720).Value)
}

func TestParticleShift(t *testing.T) {
	s := newTestStore(t)
	assert.False(t, s.IsParticleShift())

	s.SetParticleShiftZ(4)
	assert.True(t, s.IsParticleShift())
}

func TestSetNumberOfSpinSteps(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{180, 180},
		{-180, -180},
		{5, 20},
		{0, 20},
		{-5, -20},
		{-20, -20},
		{50000, 36000},
		{-50000, -36000},
	}

	s := newTestStore(t)
	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.SetNumberOfSpinSteps(tt.input).Value, "input %d", tt.input)
	}
}

func TestFirstSliceIndex_FollowsNumberOfSlices(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 99, s.SetFirstSliceIndex(500).Value)
	assert.Equal(t, 0, s.SetFirstSliceIndex(-2).Value)

	s.SetFirstSliceIndex(50)
	s.SetNumberOfSlicesPerView(40)
	assert.Equal(t, 0, s.FirstSliceIndex())

	s.SetFirstSliceIndex(20)
	s.SetNumberOfSlicesPerView(400)
	assert.Equal(t, 20, s.FirstSliceIndex())
}

func TestChoiceSetters(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.SetSlicerGraphicsMode(domain.GraphicsModePixelAll).Changed)
	assert.Equal(t, domain.GraphicsModePixelAll, s.SlicerGraphicsMode())

	assert.False(t, s.SetSlicerGraphicsMode(domain.GraphicsMode("NOT_A_MODE")).Changed)
	assert.Equal(t, domain.GraphicsModePixelAll, s.SlicerGraphicsMode())

	assert.True(t, s.SetFrameColorSlicer(domain.ColorCobalt).Changed)
	assert.False(t, s.SetFrameColorSlicer(domain.ColorCobalt).Changed)
}

func TestCurrentParticleSetFilename(t *testing.T) {
	s := newTestStore(t)
	custom := filepath.Join(s.CustomParticlesPath(), "ParticleSet_custom.txt")
	require.NoError(t, os.WriteFile(custom, nil, 0644))

	assert.False(t, s.SetCurrentParticleSetFilename("ParticleSet_missing.txt").Changed)
	assert.Empty(t, s.CurrentParticleSetFilename())
	assert.False(t, s.SetCurrentParticleSetFilename("../ParticleSet_custom.txt").Changed)

	assert.True(t, s.SetCurrentParticleSetFilename("ParticleSet_custom.txt").Changed)
	assert.Equal(t, custom, s.ParticleSetFilePath(s.CurrentParticleSetFilename()))
	assert.Equal(t, []string{"ParticleSet_custom.txt"}, s.ParticleSetFilenames())
}

func TestSetInternalMFsimJobPath(t *testing.T) {
	s := newTestStore(t)
	target := t.TempDir()

	assert.False(t, s.SetInternalMFsimJobPath(filepath.Join(target, "missing")).Changed)

	s.IncrementNumberOfWorkingJobResultExecutionTasks()
	assert.False(t, s.SetInternalMFsimJobPath(target).Changed)
	s.DecrementNumberOfWorkingJobResultExecutionTasks()

	result := s.SetInternalMFsimJobPath(target)
	assert.True(t, result.Changed)
	assert.Equal(t, filepath.Join(target, common.JobInputsDirectoryName), s.JobInputPath())
	assert.DirExists(t, s.JobInputPath())
	assert.DirExists(t, s.JobResultPath())

	assert.True(t, s.SetInternalMFsimJobPath("").Changed)
	assert.Equal(t, filepath.Join(s.DataDirectory(), common.JobInputsDirectoryName), s.JobInputPath())
}

func TestSetInternalTempPath(t *testing.T) {
	s := newTestStore(t)
	target := t.TempDir()

	s.IncrementNumberOfWorkingJobResultExecutionTasks()
	assert.False(t, s.SetInternalTempPath(target).Changed)
	s.DecrementNumberOfWorkingJobResultExecutionTasks()

	assert.True(t, s.SetInternalTempPath(target).Changed)
	assert.Equal(t, target, s.TempPath())
}

func TestMovieImagePaths(t *testing.T) {
	s := newTestStore(t)
	target := t.TempDir()

	assert.True(t, s.SetSimulationMovieImagePath(target).Changed)
	assert.DirExists(t, s.SimulationMovieImageDirectory())
	assert.DirExists(t, s.SimulationMovieMovieDirectory())

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	assert.False(t, s.SetChartMovieImagePath(blocker).Changed)
	assert.Equal(t, filepath.Join(s.DataDirectory(), common.ChartMoviesDirectoryName), s.ChartMoviePath())
}

func TestDialogSizes(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.SetDialogSize(DialogTextEdit, DialogSize{Height: 100, Width: 2000}).Changed)
	assert.False(t, s.SetDialogSize(Dialog("Unknown"), DialogSize{Height: 1000, Width: 2000}).Changed)

	result := s.SetDialogSize(DialogTextEdit, DialogSize{Height: 1000, Width: 1200})
	assert.True(t, result.Changed)
	assert.Equal(t, DialogSize{Height: 1000, Width: 1200}, s.DialogSize(DialogTextEdit))
	assert.Equal(t, s.DefaultDialogSize(), s.DialogSize(DialogSlicerShow))

	assert.False(t, s.SetMainFrameSize(DialogSize{Height: 700, Width: 900}).Changed)
	s.SetMainFrameMaximumSize(DialogSize{Height: 1000, Width: 1000})
	assert.False(t, s.SetMainFrameSize(DialogSize{Height: 1200, Width: 900}).Changed)
	assert.True(t, s.SetMainFrameSize(DialogSize{Height: 900, Width: 900}).Changed)
}

func TestMainFrameSize_FloorIsWindowMinimum(t *testing.T) {
	s := newTestStore(t)
	floor := DialogSize{Height: DefaultMainFrameHeight, Width: DefaultMainFrameWidth}

	assert.Equal(t, DialogSize{Height: 730, Width: 820}, floor)
	assert.Equal(t, floor, s.DefaultMainFrameSize())
	assert.False(t, s.SetMainFrameSize(DialogSize{Height: 820, Width: 730}).Changed)
	assert.True(t, s.SetMainFrameSize(DialogSize{Height: 731, Width: 821}).Changed)
}

func TestXMLText(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"plain", "water box", "water box"},
		{"markup is kept", "<lipid> & \"water\"", "<lipid> & \"water\""},
		{"whitespace controls are kept", "a\tb\nc\rd", "a\tb\nc\rd"},
		{"other controls are dropped", "ctl\x01x\x1f", "ctlx"},
		{"invalid utf8 is dropped", "bad\xffutf", "badutf"},
		{"noncharacter is dropped", "x\uFFFEy", "xy"},
		{"multibyte is kept", "Größe µm", "Größe µm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, xmlText(tt.value))
			assert.True(t, isXMLText(xmlText(tt.value)))
		})
	}
}

func TestTextSetters_DropUnencodableCharacters(t *testing.T) {
	s := newTestStore(t)

	result := s.SetJobInputFilterContainsPhrase("ctl\x01x")
	assert.True(t, result.Changed)
	assert.Equal(t, "ctlx", result.Value)
	assert.Equal(t, "ctlx", s.JobInputFilterContainsPhrase())

	s.SetJobResultFilterContainsPhrase("bad\xffutf")
	assert.Equal(t, "badutf", s.JobResultFilterContainsPhrase())

	assert.False(t, s.SetJobInputFilterContainsPhrase("ctl\x02x").Changed)

	s.AddPreviousPeptide("GLY\x00ALA")
	assert.Equal(t, []string{"GLYALA"}, s.PreviousPeptides())
}

func TestPathSetters_RejectUnencodableCharacters(t *testing.T) {
	s := newTestStore(t)
	require.True(t, s.SetLastSelectedPath("/jobs").Changed)

	assert.False(t, s.SetLastSelectedPath("/jobs\x01new").Changed)
	assert.Equal(t, "/jobs", s.LastSelectedPath())

	assert.False(t, s.SetInternalMFsimJobPath(t.TempDir()+"\xff").Changed)
	assert.Empty(t, s.InternalMFsimJobPath())
}
