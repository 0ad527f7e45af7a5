package preferences

import (
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfsim/internal/common"
	domain "mfsim/internal/domain/preferences"
)

type memorySnapshots struct {
	documents [][]byte
	err       error
}

func (m *memorySnapshots) Save(document []byte) error {
	if m.err != nil {
		return m.err
	}
	m.documents = append(m.documents, append([]byte(nil), document...))
	return nil
}

func (m *memorySnapshots) Latest() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.documents) == 0 {
		return nil, nil
	}
	return m.documents[len(m.documents)-1], nil
}

func TestPersistence_RoundTrip(t *testing.T) {
	opts := testOptions(t)
	s := newTestStoreWith(t, opts)
	jobPath := t.TempDir()

	s.SetNumberOfSlicesPerView(250)
	s.SetFirstSliceIndex(200)
	s.SetSlicerGraphicsMode(domain.GraphicsModeVolatileImageAll)
	s.SetFrameColorSlicer(domain.ColorGold)
	s.SetJpegImageQuality(0.85)
	s.SetCompartmentBodyChangeResponseFactor(0.0025)
	s.SetRotationAroundYaxisAngle(45)
	s.SetDelayForJobStartInMilliseconds(2500)
	s.SetDialogSize(DialogPeptideEdit, DialogSize{Height: 900, Width: 1100})
	s.SetCustomDialogWidth(1500)
	s.SetMainFrameSize(DialogSize{Height: 800, Width: 1000})
	s.SetJobInputFilterContainsPhrase("lipid <bilayer> & water")
	s.AddPreviousMonomer("A")
	s.AddPreviousMonomer("B")
	s.AddPreviousPeptide("GLY-ALA")
	s.AddSchemaValueItem(schemaItem("a", "Alpha", "1"))
	s.SetDeterministicRandom(false)
	s.SetJdpdKernelDoublePrecision(true)
	require.True(t, s.SetInternalMFsimJobPath(jobPath).Changed)
	require.NoError(t, s.WritePersistenceXmlInformation())

	reloaded := newTestStoreWith(t, opts)

	assert.Equal(t, 250, reloaded.NumberOfSlicesPerView())
	assert.Equal(t, 200, reloaded.FirstSliceIndex())
	assert.Equal(t, domain.GraphicsModeVolatileImageAll, reloaded.SlicerGraphicsMode())
	assert.Equal(t, domain.ColorGold, reloaded.FrameColorSlicer())
	assert.Equal(t, float32(0.85), reloaded.JpegImageQuality())
	assert.Equal(t, 0.0025, reloaded.CompartmentBodyChangeResponseFactor())
	assert.Equal(t, 45, reloaded.RotationAroundYaxisAngle())
	assert.Equal(t, int64(2500), reloaded.DelayForJobStartInMilliseconds())
	assert.Equal(t, DialogSize{Height: 900, Width: 1100}, reloaded.DialogSize(DialogPeptideEdit))
	assert.Equal(t, 1500, reloaded.CustomDialogSize().Width)
	assert.Equal(t, DialogSize{Height: 800, Width: 1000}, reloaded.MainFrameSize())
	assert.Equal(t, "lipid <bilayer> & water", reloaded.JobInputFilterContainsPhrase())
	assert.Equal(t, []string{"B", "A"}, reloaded.PreviousMonomers())
	assert.Equal(t, []string{"GLY-ALA"}, reloaded.PreviousPeptides())
	assert.False(t, reloaded.HasPreviousStructures())
	assert.Equal(t, []string{"a"}, reloaded.SortedSchemaValueItemNames())
	assert.False(t, reloaded.IsDeterministicRandom())
	assert.True(t, reloaded.IsJdpdKernelDoublePrecision())
	assert.Equal(t, jobPath, reloaded.InternalMFsimJobPath())
	assert.False(t, reloaded.IsModified())
}

func TestPersistence_TextFieldsRoundTrip(t *testing.T) {
	opts := testOptions(t)
	s := newTestStoreWith(t, opts)

	s.SetJobInputFilterContainsPhrase("tab\tnew\nline ctl\x01 bad\xff end")
	s.SetJobResultFilterContainsPhrase("carriage\rreturn")
	s.AddPreviousMonomer("H2O\x07")
	require.NoError(t, s.WritePersistenceXmlInformation())

	reloaded := newTestStoreWith(t, opts)

	assert.Equal(t, s.JobInputFilterContainsPhrase(), reloaded.JobInputFilterContainsPhrase())
	assert.Equal(t, "tab\tnew\nline ctl bad end", reloaded.JobInputFilterContainsPhrase())
	assert.Equal(t, "carriage\rreturn", reloaded.JobResultFilterContainsPhrase())
	assert.Equal(t, []string{"H2O"}, reloaded.PreviousMonomers())
}

func TestPersistence_DocumentLayout(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WritePersistenceXmlInformation())

	data, err := os.ReadFile(s.PreferencesFilePath())
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, xml.Header))
	assert.Contains(t, content, `<BasicPreferences schemaVersion="1">`)
	assert.Contains(t, content, "<Version>Version 1.0.0</Version>")
	assert.Contains(t, content, "<NumberOfSlices>100</NumberOfSlices>")
	assert.Contains(t, content, "<SlicerGraphicsMode>BUFFERED_IMAGE_FINAL</SlicerGraphicsMode>")
	assert.Contains(t, content, "<DialogCompartmentEditWidth>1050</DialogCompartmentEditWidth>")

	assert.Less(t, strings.Index(content, "<FirstSliceIndex>"), strings.Index(content, "<NumberOfSlices>"))
	assert.Less(t, strings.Index(content, "<DialogSlicerShowHeight>"), strings.Index(content, "<CustomDialogHeight>"))
	assert.Less(t, strings.Index(content, "<PreviousPeptides>"), strings.Index(content, "<SchemaValueItemContainer>"))
}

func TestPersistence_FieldTagsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, field := range persistedFields {
		assert.False(t, seen[field.tag], "duplicate tag %s", field.tag)
		seen[field.tag] = true
	}
}

func TestPersistence_MissingElementsKeepDefaults(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(opts.DataDir, 0755))
	document := `<?xml version="1.0" encoding="UTF-8"?>
<BasicPreferences>
  <Version>Version 1.0.0</Version>
  <NumberOfSlices>300</NumberOfSlices>
  <UnknownElement>ignored</UnknownElement>
</BasicPreferences>`
	require.NoError(t, os.WriteFile(filepath.Join(opts.DataDir, common.PreferencesFileName), []byte(document), 0644))

	s := newTestStoreWith(t, opts)

	assert.Equal(t, 300, s.NumberOfSlicesPerView())
	assert.Equal(t, DefaultAnimationSpeed, s.AnimationSpeed())
	assert.False(t, s.IsModified())
}

func TestPersistence_MFsimOnlyElementsDefaultWhenAbsent(t *testing.T) {
	opts := testOptions(t)
	require.NoError(t, os.MkdirAll(opts.DataDir, 0755))
	document := `<?xml version="1.0" encoding="UTF-8"?>
<BasicPreferences>
  <Version>Version 1.0.0</Version>
  <IsJobInputInclusion>false</IsJobInputInclusion>
</BasicPreferences>`
	require.NoError(t, os.WriteFile(filepath.Join(opts.DataDir, common.PreferencesFileName), []byte(document), 0644))

	s := newTestStoreWith(t, opts)

	assert.True(t, s.IsVolumeScalingForConcentrationCalculation())
	assert.True(t, s.IsJdpdKernelDoublePrecision())
	assert.False(t, s.IsMoleculeDisplayWithStandardParticleSize())

	require.NoError(t, s.WritePersistenceXmlInformation())
	data, err := os.ReadFile(s.PreferencesFilePath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "<IsVolumeScalingForConcentrationCalculation>true</IsVolumeScalingForConcentrationCalculation>")
	assert.Contains(t, content, "<IsJdpdKernelDoublePrecision>true</IsJdpdKernelDoublePrecision>")
	assert.Contains(t, content, "<IsMoleculeDisplayWithStandardParticleSize>false</IsMoleculeDisplayWithStandardParticleSize>")
}

func TestReadPersistenceXmlInformation_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
		expected error
	}{
		{
			name:     "unknown root",
			document: `<Preferences><Version>Version 1.0.0</Version></Preferences>`,
			expected: ErrUnknownRootElement,
		},
		{
			name:     "missing version",
			document: `<BasicPreferences><NumberOfSlices>300</NumberOfSlices></BasicPreferences>`,
			expected: ErrMissingVersion,
		},
		{
			name:     "unsupported version",
			document: `<BasicPreferences><Version>Version 2.0.0</Version></BasicPreferences>`,
			expected: ErrUnsupportedVersion,
		},
		{
			name:     "unsupported schema version",
			document: `<BasicPreferences schemaVersion="7"><Version>Version 1.0.0</Version></BasicPreferences>`,
			expected: ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, os.WriteFile(s.PreferencesFilePath(), []byte(tt.document), 0644))

			err := s.ReadPersistenceXmlInformation()
			assert.ErrorIs(t, err, tt.expected)

			var persistenceErr *PersistenceError
			require.ErrorAs(t, err, &persistenceErr)
			assert.Equal(t, "read", persistenceErr.Operation)
		})
	}
}

func TestReadPersistenceXmlInformation_ParseErrorStopsRead(t *testing.T) {
	s := newTestStore(t)
	document := `<BasicPreferences>
  <Version>Version 1.0.0</Version>
  <FirstSliceIndex>7</FirstSliceIndex>
  <NumberOfBoxWaitSteps>many</NumberOfBoxWaitSteps>
  <NumberOfSlices>300</NumberOfSlices>
</BasicPreferences>`
	require.NoError(t, os.WriteFile(s.PreferencesFilePath(), []byte(document), 0644))

	err := s.ReadPersistenceXmlInformation()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NumberOfBoxWaitSteps")
	assert.Equal(t, 7, s.FirstSliceIndex())
	assert.Equal(t, DefaultNumberOfSlicesPerView, s.NumberOfSlicesPerView())
}

func TestReadPersistenceXmlInformation_UnknownEnumName(t *testing.T) {
	s := newTestStore(t)
	document := `<BasicPreferences><Version>Version 1.0.0</Version><BoxViewDisplay>DIAGONAL</BoxViewDisplay></BasicPreferences>`
	require.NoError(t, os.WriteFile(s.PreferencesFilePath(), []byte(document), 0644))

	assert.Error(t, s.ReadPersistenceXmlInformation())
	assert.Equal(t, DefaultBoxViewDisplay, s.BoxViewDisplay())
}

func TestReadPersistenceXmlInformation_RecoversFromSnapshot(t *testing.T) {
	snapshots := &memorySnapshots{}
	opts := testOptions(t)
	opts.Snapshots = snapshots

	s := newTestStoreWith(t, opts)
	s.SetAnimationSpeed(77)
	require.NoError(t, s.WritePersistenceXmlInformation())
	require.Len(t, snapshots.documents, 1)

	require.NoError(t, os.WriteFile(s.PreferencesFilePath(), []byte("<BasicPreferences><Version>"), 0644))
	s.SetInitialDefaultValues()

	require.NoError(t, s.ReadPersistenceXmlInformation())
	assert.Equal(t, 77, s.AnimationSpeed())

	kept, err := os.ReadFile(s.PreferencesFilePath() + malformedSuffix)
	require.NoError(t, err)
	assert.Equal(t, "<BasicPreferences><Version>", string(kept))
}

func TestReadPersistenceXmlInformation_MalformedWithoutSnapshot(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.PreferencesFilePath(), []byte("not xml at all <"), 0644))

	err := s.ReadPersistenceXmlInformation()
	assert.Error(t, err)
}

func TestWritePersistenceXmlInformation_SnapshotFailureIsNotFatal(t *testing.T) {
	opts := testOptions(t)
	opts.Snapshots = &memorySnapshots{err: errors.New("database locked")}
	s := newTestStoreWith(t, opts)

	assert.NoError(t, s.WritePersistenceXmlInformation())
	assert.FileExists(t, s.PreferencesFilePath())
}

func TestWritePersistenceXmlInformation_NotifiesOnFailure(t *testing.T) {
	notifier := &recordingNotifier{}
	opts := testOptions(t)
	opts.Notifier = notifier
	s := newTestStoreWith(t, opts)

	// A directory at the file location cannot be replaced by the write
	require.NoError(t, os.MkdirAll(filepath.Join(s.PreferencesFilePath(), "child"), 0755))

	err := s.WritePersistenceXmlInformation()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileDeletion)
	require.Len(t, notifier.titles, 1)
	assert.Equal(t, "Preferences", notifier.titles[0])
}

func TestIsModified(t *testing.T) {
	s := newTestStore(t)
	assert.True(t, s.IsModified(), "nothing written yet")

	require.NoError(t, s.WritePersistenceXmlInformation())
	assert.False(t, s.IsModified())

	s.SetAnimationSpeed(99)
	assert.True(t, s.IsModified())

	s.SetAnimationSpeed(DefaultAnimationSpeed)
	assert.False(t, s.IsModified())

	s.SetStepRangeSlicer(1, 2)
	assert.False(t, s.IsModified(), "runtime state is not persisted")
}
