package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "mfsim/internal/domain/preferences"
	"mfsim/internal/valueitem"
)

func TestEditableSetters_CoverEveryKey(t *testing.T) {
	for _, key := range domain.EditableKeys() {
		_, ok := editableSetters[key]
		assert.True(t, ok, "no setter for %s", key)
	}
	assert.Len(t, editableSetters, len(domain.EditableKeys()))
}

func TestAllEditablePreferences_ContainsEveryKey(t *testing.T) {
	s := newTestStore(t)
	s.SetStepRangeSlicer(0, 100)

	container := s.AllEditablePreferences()
	for _, key := range domain.EditableKeys() {
		item, ok := container.Get(string(key))
		if assert.True(t, ok, "missing %s", key) {
			assert.NotEmpty(t, item.DisplayName, key)
			assert.NotEmpty(t, item.NodeNames, key)
			assert.True(t, item.IsValid(), "invalid default for %s: %v", key, item.Values)
		}
	}
	assert.Equal(t, len(domain.EditableKeys()), container.Len())
}

func TestEditablePreferences_Groups(t *testing.T) {
	s := newTestStore(t)

	groups := []domain.Group{
		domain.GroupSlicer,
		domain.GroupCompartmentGraphics,
		domain.GroupJmolViewer,
		domain.GroupProteinViewer,
		domain.GroupJobResultArchive,
		domain.GroupJobResultSettings,
		domain.GroupDirectories,
		domain.GroupParticleSet,
		domain.GroupAnimation,
		domain.GroupSimulationMovie,
		domain.GroupChartMovie,
		domain.GroupJobInputFilter,
		domain.GroupJobResultFilter,
		domain.GroupRotationAndShift,
		domain.GroupCustomDialogSize,
		domain.GroupSlicerSpinSteps,
		domain.GroupVolumeSettings,
		domain.GroupAdditionalStepsForRestart,
	}
	for _, group := range groups {
		t.Run(string(group), func(t *testing.T) {
			container, err := s.EditablePreferences(group)
			require.NoError(t, err)
			assert.Positive(t, container.Len())
		})
	}

	all, err := s.EditablePreferences(domain.GroupAll)
	require.NoError(t, err)
	assert.Equal(t, s.AllEditablePreferences().Len(), all.Len())

	_, err = s.EditablePreferences(domain.Group("nonsense"))
	assert.ErrorIs(t, err, ErrUnknownGroup)
}

func TestSlicerTimeStepsEditablePreferences(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, 0, s.SlicerTimeStepsEditablePreferences().Len())

	s.SetStepRangeSlicer(5, 50)
	container := s.SlicerTimeStepsEditablePreferences()
	item, ok := container.Get(string(domain.EditableStepInfoArraySlicer))
	require.True(t, ok)
	assert.Equal(t, []string{"5", "50"}, item.Values)
}

func TestSetEditablePreferences_AppliesChanges(t *testing.T) {
	s := newTestStore(t)
	container := s.SlicerEditablePreferences()

	require.NoError(t, container.SetValue(string(domain.EditableMaxSelectedMoleculeNumberSlicer), "-5"))
	require.NoError(t, container.SetValue(string(domain.EditableFrameColorSlicer), domain.ColorCobalt.Representation()))
	require.NoError(t, container.SetValue(string(domain.EditableIsSingleSliceDisplay), "true"))
	require.NoError(t, container.SetValue(string(domain.EditableShiftsSlicer), "10", "-20"))

	changed := s.SetEditablePreferences(container)

	assert.ElementsMatch(t, []domain.EditableKey{
		domain.EditableMaxSelectedMoleculeNumberSlicer,
		domain.EditableFrameColorSlicer,
		domain.EditableIsSingleSliceDisplay,
		domain.EditableShiftsSlicer,
	}, changed)
	assert.True(t, HasChanged(changed))
	assert.Equal(t, 1, s.MaxSelectedMoleculeNumberSlicer())
	assert.Equal(t, domain.ColorCobalt, s.FrameColorSlicer())
	assert.True(t, s.IsSingleSliceDisplay())
	assert.Equal(t, 10, s.XShiftInPixelSlicer())
	assert.Equal(t, -20, s.YShiftInPixelSlicer())

	assert.Empty(t, s.SetEditablePreferences(s.SlicerEditablePreferences()))
	assert.False(t, HasChanged(s.SetEditablePreferences(nil)))
}

func TestSetEditablePreferences_NumberOfSlicesFirst(t *testing.T) {
	s := newTestStore(t)
	container := valueitem.NewContainer()

	first := valueitem.New(string(domain.EditableFirstSliceIndex), "first", valueitem.NumericFormat(0, 999, 0))
	first.SetInt(150)
	slices := valueitem.New(string(domain.EditableNumberOfSlices), "slices", valueitem.NumericFormat(10, 1000, 0))
	slices.SetInt(200)
	container.Add(first, slices)

	s.SetEditablePreferences(container)

	assert.Equal(t, 200, s.NumberOfSlicesPerView())
	assert.Equal(t, 150, s.FirstSliceIndex())
}

func TestSetEditablePreferences_SkipsUnparsableAndUnknown(t *testing.T) {
	s := newTestStore(t)
	container := valueitem.NewContainer()

	broken := valueitem.New(string(domain.EditableAnimationSpeed), "speed", valueitem.NumericFormat(1, 200, 0))
	broken.SetValue("fast")
	unknown := valueitem.New("NOT_A_PREFERENCE", "unknown", valueitem.TextFormat())
	unknown.SetValue("x")
	color := valueitem.New(string(domain.EditableJmolSimulationBoxBackgroundColor), "color", valueitem.TextFormat())
	color.SetValue("no such color")
	bins := valueitem.New(string(domain.EditableNumberOfZoomVolumeBins), "bins", valueitem.NumericFormat(2, 1000, 0))
	bins.SetInt(30)
	container.Add(broken, unknown, color, bins)

	changed := s.SetEditablePreferences(container)

	assert.Equal(t, []domain.EditableKey{domain.EditableNumberOfZoomVolumeBins}, changed)
	assert.Equal(t, DefaultAnimationSpeed, s.AnimationSpeed())
	assert.Equal(t, DefaultJmolSimulationBoxBackgroundColor, s.JmolSimulationBoxBackgroundColor())
	assert.Equal(t, 30, s.NumberOfVolumeBins())
}

func TestFirstSliceIndexFollower(t *testing.T) {
	s := newTestStore(t)
	s.SetFirstSliceIndex(50)
	container := s.SlicerEditablePreferences()

	require.NoError(t, container.SetValue(string(domain.EditableNumberOfSlices), "40"))

	first, ok := container.Get(string(domain.EditableFirstSliceIndex))
	require.True(t, ok)
	assert.Equal(t, "0", first.Value())
	assert.Equal(t, 39.0, first.Format.Max)

	require.NoError(t, container.SetValue(string(domain.EditableFirstSliceIndex), "12"))
	require.NoError(t, container.SetValue(string(domain.EditableNumberOfSlices), "30"))
	assert.Equal(t, "12", first.Value())
}
