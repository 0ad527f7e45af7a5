package preferences

import (
	"fmt"

	domain "mfsim/internal/domain/preferences"
	"mfsim/internal/messages"
	"mfsim/internal/valueitem"
)

// editableBuilder collects editable value items below the current node path
type editableBuilder struct {
	container *valueitem.Container
	nodes     []string
}

func newEditableBuilder() *editableBuilder {
	return &editableBuilder{container: valueitem.NewContainer()}
}

// under sets the node path, given as message keys, for the following items
func (b *editableBuilder) under(nodeKeys ...string) *editableBuilder {
	b.nodes = make([]string, 0, len(nodeKeys))
	for _, key := range nodeKeys {
		b.nodes = append(b.nodes, messages.Get(key))
	}
	return b
}

func (b *editableBuilder) add(key domain.EditableKey, format valueitem.Format) *valueitem.ValueItem {
	nodes := make([]string, len(b.nodes))
	copy(nodes, b.nodes)
	item := valueitem.New(string(key), messages.Get(string(key)), format, nodes...)
	b.container.Add(item)
	return item
}

func addNumber[T number](b *editableBuilder, key domain.EditableKey, value T, bounds Bounds[T], decimals int) {
	item := b.add(key, valueitem.NumericFormat(float64(bounds.Min), float64(bounds.Max), decimals))
	item.Description = rangeDescription(bounds)
	item.SetValue(formatNumber(value))
}

func addTuple[T number](b *editableBuilder, key domain.EditableKey, bounds Bounds[T], decimals int, columns []string, values ...T) {
	item := b.add(key, valueitem.TupleFormat(float64(bounds.Min), float64(bounds.Max), decimals, columns...))
	item.Description = rangeDescription(bounds)
	formatted := make([]string, len(values))
	for i, v := range values {
		formatted[i] = formatNumber(v)
	}
	item.SetValues(formatted...)
}

func rangeDescription[T number](bounds Bounds[T]) string {
	if bounds.Open() {
		return messages.Format("RangeDescriptionOpen", messages.Number(bounds.Min))
	}
	return messages.Format("RangeDescription", messages.Number(bounds.Min), messages.Number(bounds.Max))
}

func (b *editableBuilder) flag(key domain.EditableKey, value bool) {
	b.add(key, valueitem.FlagFormat()).SetBool(value)
}

func (b *editableBuilder) choice(key domain.EditableKey, representation string, choices []string) {
	b.add(key, valueitem.SelectionFormat(choices...)).SetValue(representation)
}

func (b *editableBuilder) text(key domain.EditableKey, value string) {
	b.add(key, valueitem.TextFormat()).SetValue(value)
}

func (b *editableBuilder) timestamp(key domain.EditableKey, value string) {
	b.add(key, valueitem.TimestampFormat()).SetValue(value)
}

func (b *editableBuilder) directory(key domain.EditableKey, value, defaultPath string) {
	item := b.add(key, valueitem.DirectoryFormat())
	item.Description = messages.Format("DirectoryDefaultDescription", defaultPath)
	item.SetValue(value)
}

var (
	xyColumns          = []string{"x", "y"}
	xyzColumns         = []string{"x", "y", "z"}
	heightWidthColumns = []string{"height", "width"}
	firstLastColumns   = []string{"first", "last"}
)

func (s *Store) addSlicerItems(b *editableBuilder) {
	b.under("NodeSlicer")
	addNumber(b, domain.EditableNumberOfSlices, s.numberOfSlicesPerView, numberOfSlicesBounds, 0)
	addNumber(b, domain.EditableFirstSliceIndex, s.firstSliceIndex, s.firstSliceIndexBounds(), 0)
	b.choice(domain.EditableSlicerGraphicsMode, s.slicerGraphicsMode.Representation(), domain.GraphicsModeRepresentations())
	b.choice(domain.EditableImageStorageMode, s.imageStorageMode.Representation(), domain.ImageStorageRepresentations())
	b.choice(domain.EditableBoxViewDisplay, s.boxViewDisplay.Representation(), domain.SimulationBoxViewRepresentations())
	b.flag(domain.EditableIsSimulationBoxSlicer, s.isSimulationBoxSlicer)
	b.flag(domain.EditableIsSingleSliceDisplay, s.isSingleSliceDisplay)
	b.flag(domain.EditableIsFrameDisplaySlicer, s.isFrameDisplaySlicer)
	addNumber(b, domain.EditableNumberOfFramePointsSlicer, s.numberOfFramePointsSlicer, numberOfFramePointsSlicerBounds, 0)
	addNumber(b, domain.EditableTimeStepDisplaySlicer, s.timeStepDisplaySlicer, timeStepDisplaySlicerBounds, 0)
	addNumber(b, domain.EditableMaxSelectedMoleculeNumberSlicer, s.maxSelectedMoleculeNumberSlicer, maxSelectedMoleculeNumberBounds, 0)
	addTuple(b, domain.EditableShiftsSlicer, shiftInPixelBounds, 0, xyColumns, s.xShiftInPixelSlicer, s.yShiftInPixelSlicer)
	addNumber(b, domain.EditableSimulationBoxMagnificationPercentage, s.simulationBoxMagnification, simulationBoxMagnificationBounds, 0)

	colors := domain.StandardColorRepresentations()
	b.choice(domain.EditableSimulationBoxBackgroundColorSlicer, s.simulationBoxBackgroundColor.Representation(), colors)
	b.choice(domain.EditableMeasurementColorSlicer, s.measurementColorSlicer.Representation(), colors)
	b.choice(domain.EditableMoleculeSelectionColorSlicer, s.moleculeSelectionColorSlicer.Representation(), colors)
	b.choice(domain.EditableFrameColorSlicer, s.frameColorSlicer.Representation(), colors)

	addNumber(b, domain.EditableSpecularWhiteAttenuationSlicer, s.specularWhiteAttenuationSlicer, specularWhiteAttenuationSlicerBounds, 2)
	addNumber(b, domain.EditableSpecularWhiteSizeSlicer, s.specularWhiteSizeSlicer, specularWhiteSizeSlicerBounds, 2)
	addNumber(b, domain.EditableDepthAttenuationSlicer, s.depthAttenuationSlicer, depthAttenuationSlicerBounds, 2)
	addNumber(b, domain.EditableColorGradientAttenuationSlicer, s.colorGradientAttenuationSlicer, colorGradientAttenuationBounds, 2)
	addNumber(b, domain.EditableRadialGradientPaintRadiusMagnification, s.radialGradientMagnification, radialGradientMagnificationBounds, 2)
	addTuple(b, domain.EditableRadialGradientPaintFocusFactors, radialGradientFocusFactorBounds, 2, xyColumns,
		s.radialGradientFocusFactorX, s.radialGradientFocusFactorY)
	addNumber(b, domain.EditableJpegImageQuality, s.jpegImageQuality, jpegImageQualityBounds, 2)
}

func (s *Store) addCompartmentItems(b *editableBuilder) {
	b.under("NodeCompartment")
	addNumber(b, domain.EditableColorTransparencyCompartment, s.colorTransparencyCompartment, colorTransparencyCompartmentBounds, 2)
	addNumber(b, domain.EditableColorGradientAttenuationCompartment, s.colorGradientAttenuationCompartment, colorGradientAttenuationBounds, 2)
	addNumber(b, domain.EditableColorShapeAttenuationCompartment, s.depthAttenuationCompartment, depthAttenuationCompartmentBounds, 2)
	addNumber(b, domain.EditableCompartmentBodyChangeResponseFactor, s.compartmentBodyChangeResponseFactor, compartmentBodyChangeResponseBounds, 6)
	b.flag(domain.EditableIsConstantCompartmentBodyVolume, s.isConstantCompartmentBodyVolume)
	addNumber(b, domain.EditableNumberOfTrialsForCompartment, s.numberOfTrialsForCompartment, numberOfTrialsForCompartmentBounds, 0)
}

func (s *Store) addJmolViewerItems(b *editableBuilder) {
	b.under("NodeJmol")
	b.choice(domain.EditableJmolSimulationBoxBackgroundColor, s.jmolBackgroundColor.Representation(), domain.StandardColorRepresentations())
	addNumber(b, domain.EditableJmolShadePower, s.jmolShadePower, jmolShadePowerBounds, 0)
	addNumber(b, domain.EditableJmolAmbientLightPercentage, s.jmolAmbientLightPercentage, jmolPercentageBounds, 0)
	addNumber(b, domain.EditableJmolDiffuseLightPercentage, s.jmolDiffuseLightPercentage, jmolPercentageBounds, 0)
	addNumber(b, domain.EditableJmolSpecularReflectionExponent, s.jmolSpecularReflectionExponent, jmolSpecularReflectionExponentBounds, 0)
	addNumber(b, domain.EditableJmolSpecularReflectionPercentage, s.jmolSpecularReflectionPercentage, jmolPercentageBounds, 0)
	addNumber(b, domain.EditableJmolSpecularReflectionPower, s.jmolSpecularReflectionPower, jmolPercentageBounds, 0)

	b.under("NodeJmol", "NodeMoleculeDisplay")
	b.choice(domain.EditableParticleColorDisplayMode, s.particleColorDisplayMode.Representation(), domain.ParticleColorDisplayRepresentations())
	b.flag(domain.EditableIsMoleculeDisplayWithStandardParticleSize, s.isStandardParticleSizeDisplay)
}

func (s *Store) addProteinViewerItems(b *editableBuilder) {
	b.under("NodeProteinViewer")
	b.choice(domain.EditableProteinViewerBackgroundColor, s.proteinViewerBackgroundColor.Representation(), domain.StandardColorRepresentations())
}

func (s *Store) addJobResultArchiveItems(b *editableBuilder) {
	b.under("NodeJobResult", "NodeJobResultArchive")
	b.flag(domain.EditableIsJobResultArchiveStepFileInclusion, s.isJobResultArchiveStepFileInclusion)
	b.flag(domain.EditableIsJobInputInclusion, s.isJobInputInclusion)
	b.flag(domain.EditableIsParticleDistributionInclusion, s.isParticleDistributionInclusion)
	b.flag(domain.EditableIsSimulationStepInclusion, s.isSimulationStepInclusion)
	b.flag(domain.EditableIsNearestNeighborEvaluationInclusion, s.isNearestNeighborEvaluationInclusion)
	b.flag(domain.EditableIsJobResultArchiveProcessParallelInBackground, s.isJobResultArchiveProcessParallelInBackground)
	b.flag(domain.EditableIsJobResultArchiveFileUncompressed, s.isJobResultArchiveFileUncompressed)
}

func (s *Store) addJobResultSettingsItems(b *editableBuilder) {
	b.under("NodeJobResult")
	addNumber(b, domain.EditableMaximumNumberOfParticlesForGraphicalDisplay, s.maximumNumberOfParticlesForGraphicalDisplay, maximumParticlesForDisplayBounds, 0)
	addNumber(b, domain.EditableNumberOfStepsForRdfCalculation, s.numberOfStepsForRdfCalculation, numberOfStepsForRdfBounds, 0)
	b.flag(domain.EditableIsVolumeScalingForConcentrationCalculation, s.isVolumeScalingForConcentrationCalculation)
	addNumber(b, domain.EditableMinimumBondLengthDpd, s.minimumBondLengthDpd, minimumBondLengthDpdBounds, 2)
	b.flag(domain.EditableIsJdpdKernelDoublePrecision, s.isJdpdKernelDoublePrecision)
	b.flag(domain.EditableIsJdpdLogLevelException, s.isJdpdLogLevelException)
	addNumber(b, domain.EditableNumberOfAfterDecimalSeparatorDigitsForParticlePositions, s.numberOfAfterDecimalDigitsForParticlePositions, afterDecimalDigitsBounds, 0)
	addNumber(b, domain.EditableMaximumNumberOfPositionCorrectionTrials, s.maximumNumberOfPositionCorrectionTrials, positionCorrectionTrialsBounds, 0)
}

func (s *Store) addParallelizationItems(b *editableBuilder) {
	b.under("NodeGeneral", "NodeParallelization")
	addNumber(b, domain.EditableNumberOfParallelSimulations, s.numberOfParallelSimulations, numberOfParallelTasksBounds, 0)
	addNumber(b, domain.EditableNumberOfParallelSlicers, s.numberOfParallelSlicers, numberOfParallelTasksBounds, 0)
	addNumber(b, domain.EditableNumberOfParallelCalculators, s.numberOfParallelCalculators, numberOfParallelTasksBounds, 0)
	addNumber(b, domain.EditableNumberOfParallelParticlePositionWriters, s.numberOfParallelParticlePositionWriters, numberOfParallelTasksBounds, 0)
	addNumber(b, domain.EditableNumberOfSimulationBoxCellsForParallelization, s.numberOfSimulationBoxCellsForParallelization, parallelizationThresholdBounds, 0)
	addNumber(b, domain.EditableNumberOfBondsForParallelization, s.numberOfBondsForParallelization, parallelizationThresholdBounds, 0)
}

func (s *Store) addTimingItems(b *editableBuilder) {
	b.under("NodeGeneral", "NodeTiming")
	addNumber(b, domain.EditableDelayForFilesInMilliseconds, s.delayForFilesInMilliseconds, delayForFilesBounds, 0)
	addNumber(b, domain.EditableDelayForJobStartInMilliseconds, s.delayForJobStartInMilliseconds, delayForJobStartBounds, 0)
	addNumber(b, domain.EditableTimerIntervalInMilliseconds, s.timerIntervalInMilliseconds, timerIntervalBounds, 0)
}

func (s *Store) addDirectoryItems(b *editableBuilder) {
	b.under("NodeDirectories")
	b.directory(domain.EditableInternalMFsimJobPath, s.internalMFsimJobPath, s.dataDir)
	b.directory(domain.EditableInternalTempPath, s.internalTempPath, s.TempPath())
}

func (s *Store) addParticleSetItems(b *editableBuilder) {
	b.under("NodeParticleSet")
	choices := s.ParticleSetFilenames()
	if len(choices) == 0 {
		b.text(domain.EditableCurrentParticleSetFilename, s.currentParticleSetFilename)
		return
	}
	b.choice(domain.EditableCurrentParticleSetFilename, s.currentParticleSetFilename, choices)
}

func (s *Store) addAnimationItems(b *editableBuilder) {
	b.under("NodeMovies")
	addNumber(b, domain.EditableAnimationSpeed, s.animationSpeed, animationSpeedBounds, 0)
}

func (s *Store) addSimulationMovieItems(b *editableBuilder) {
	b.under("NodeMovies", "NodeSimulationMovie")
	b.directory(domain.EditableSimulationMovieImagePath, s.simulationMovieImagePath, s.SimulationMoviePath())
	addNumber(b, domain.EditableMovieQuality, s.movieQuality, movieQualityBounds, 0)
}

func (s *Store) addChartMovieItems(b *editableBuilder) {
	b.under("NodeMovies", "NodeChartMovie")
	b.directory(domain.EditableChartMovieImagePath, s.chartMovieImagePath, s.ChartMoviePath())
	addNumber(b, domain.EditableMovieQuality, s.movieQuality, movieQualityBounds, 0)
}

func (s *Store) addJobInputFilterItems(b *editableBuilder) {
	b.under("NodeJobInputFilter")
	b.timestamp(domain.EditableJobInputFilterAfterTimestamp, s.jobInputFilter.AfterTimestamp)
	b.timestamp(domain.EditableJobInputFilterBeforeTimestamp, s.jobInputFilter.BeforeTimestamp)
	b.text(domain.EditableJobInputFilterContainsPhrase, s.jobInputFilter.ContainsPhrase)
}

func (s *Store) addJobResultFilterItems(b *editableBuilder) {
	b.under("NodeJobResultFilter")
	b.timestamp(domain.EditableJobResultFilterAfterTimestamp, s.jobResultFilter.AfterTimestamp)
	b.timestamp(domain.EditableJobResultFilterBeforeTimestamp, s.jobResultFilter.BeforeTimestamp)
	b.text(domain.EditableJobResultFilterContainsPhrase, s.jobResultFilter.ContainsPhrase)
}

func (s *Store) addRotationAndShiftItems(b *editableBuilder) {
	b.under("NodeRotationShift")
	addTuple(b, domain.EditableRotationAngles, Bounds[int]{Min: 0, Max: 359}, 0, xyzColumns, s.rotationX, s.rotationY, s.rotationZ)
	addTuple(b, domain.EditableParticleShifts, particleShiftBounds, 0, xyzColumns, s.particleShiftX, s.particleShiftY, s.particleShiftZ)
}

func (s *Store) addCustomDialogSizeItems(b *editableBuilder) {
	b.under("NodeDialogs")
	addTuple(b, domain.EditableCustomDialogSize, customDialogHeightBounds, 0, heightWidthColumns,
		s.customDialogSize.Height, s.customDialogSize.Width)
}

// addSlicerTimeStepsItems adds the step range only once one has been selected
func (s *Store) addSlicerTimeStepsItems(b *editableBuilder) {
	if s.runtime.stepRange == nil {
		return
	}
	b.under("NodeSlicer")
	addTuple(b, domain.EditableStepInfoArraySlicer, clampBounds(0, unbounded), 0, firstLastColumns,
		s.runtime.stepRange.First, s.runtime.stepRange.Last)
}

func (s *Store) addSlicerSpinStepsItems(b *editableBuilder) {
	b.under("NodeSlicer")
	addNumber(b, domain.EditableNumberOfSpinSteps, s.numberOfSpinSteps, numberOfSpinStepsBounds, 0)
}

func (s *Store) addVolumeSettingsItems(b *editableBuilder) {
	b.under("NodeVolume")
	addNumber(b, domain.EditableNumberOfZoomVolumeBins, s.numberOfVolumeBins, numberOfVolumeBinsBounds, 0)
}

func (s *Store) addAdditionalStepsForRestartItems(b *editableBuilder) {
	b.under("NodeJobResult")
	addNumber(b, domain.EditableNumberOfStepsForJobRestart, s.numberOfAdditionalStepsForJobRestart, additionalStepsForJobRestartBounds, 0)
}

type itemAdder func(s *Store, b *editableBuilder)

var groupItems = map[domain.Group][]itemAdder{
	domain.GroupSlicer:                    {(*Store).addSlicerItems},
	domain.GroupCompartmentGraphics:       {(*Store).addCompartmentItems},
	domain.GroupJmolViewer:                {(*Store).addJmolViewerItems},
	domain.GroupProteinViewer:             {(*Store).addProteinViewerItems},
	domain.GroupJobResultArchive:          {(*Store).addJobResultArchiveItems},
	domain.GroupJobResultSettings:         {(*Store).addJobResultSettingsItems},
	domain.GroupDirectories:               {(*Store).addDirectoryItems},
	domain.GroupParticleSet:               {(*Store).addParticleSetItems},
	domain.GroupAnimation:                 {(*Store).addAnimationItems},
	domain.GroupSimulationMovie:           {(*Store).addSimulationMovieItems},
	domain.GroupChartMovie:                {(*Store).addChartMovieItems},
	domain.GroupJobInputFilter:            {(*Store).addJobInputFilterItems},
	domain.GroupJobResultFilter:           {(*Store).addJobResultFilterItems},
	domain.GroupRotationAndShift:          {(*Store).addRotationAndShiftItems},
	domain.GroupCustomDialogSize:          {(*Store).addCustomDialogSizeItems},
	domain.GroupSlicerTimeSteps:           {(*Store).addSlicerTimeStepsItems},
	domain.GroupSlicerSpinSteps:           {(*Store).addSlicerSpinStepsItems},
	domain.GroupVolumeSettings:            {(*Store).addVolumeSettingsItems},
	domain.GroupAdditionalStepsForRestart: {(*Store).addAdditionalStepsForRestartItems},
}

// allItems is the order of the complete editable view
var allItems = []itemAdder{
	(*Store).addSlicerItems,
	(*Store).addSlicerSpinStepsItems,
	(*Store).addSlicerTimeStepsItems,
	(*Store).addRotationAndShiftItems,
	(*Store).addCompartmentItems,
	(*Store).addJmolViewerItems,
	(*Store).addProteinViewerItems,
	(*Store).addJobResultSettingsItems,
	(*Store).addAdditionalStepsForRestartItems,
	(*Store).addJobResultArchiveItems,
	(*Store).addVolumeSettingsItems,
	(*Store).addJobInputFilterItems,
	(*Store).addJobResultFilterItems,
	(*Store).addParticleSetItems,
	(*Store).addDirectoryItems,
	(*Store).addAnimationItems,
	(*Store).addSimulationMovieItems,
	(*Store).addChartMovieItems,
	(*Store).addCustomDialogSizeItems,
	(*Store).addParallelizationItems,
	(*Store).addTimingItems,
}

func (s *Store) buildEditable(adders []itemAdder) *valueitem.Container {
	b := newEditableBuilder()
	for _, add := range adders {
		add(s, b)
	}
	if b.container.Has(string(domain.EditableNumberOfSlices)) && b.container.Has(string(domain.EditableFirstSliceIndex)) {
		b.container.SetUpdateNotifier(firstSliceIndexFollower{})
	}
	return b.container
}

// EditablePreferences returns a fresh container with the items of group
func (s *Store) EditablePreferences(group domain.Group) (*valueitem.Container, error) {
	if group == domain.GroupAll {
		return s.AllEditablePreferences(), nil
	}
	adders, ok := groupItems[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}
	return s.buildEditable(adders), nil
}

// AllEditablePreferences returns every editable preference
func (s *Store) AllEditablePreferences() *valueitem.Container {
	return s.buildEditable(allItems)
}

func (s *Store) SlicerEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupSlicer])
}

func (s *Store) CompartmentGraphicsEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupCompartmentGraphics])
}

func (s *Store) JmolViewerEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupJmolViewer])
}

func (s *Store) ProteinViewerEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupProteinViewer])
}

func (s *Store) JobResultArchiveEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupJobResultArchive])
}

func (s *Store) JobResultSettingsEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupJobResultSettings])
}

func (s *Store) DirectoriesEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupDirectories])
}

func (s *Store) ParticleSetEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupParticleSet])
}

func (s *Store) AnimationEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupAnimation])
}

func (s *Store) SimulationMovieEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupSimulationMovie])
}

func (s *Store) ChartMovieEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupChartMovie])
}

func (s *Store) JobInputFilterEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupJobInputFilter])
}

func (s *Store) JobResultFilterEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupJobResultFilter])
}

func (s *Store) RotationAndShiftEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupRotationAndShift])
}

func (s *Store) CustomDialogSizeEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupCustomDialogSize])
}

// SlicerTimeStepsEditablePreferences is empty until a step range is selected
func (s *Store) SlicerTimeStepsEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupSlicerTimeSteps])
}

func (s *Store) SlicerSpinStepsEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupSlicerSpinSteps])
}

func (s *Store) VolumeSettingsEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupVolumeSettings])
}

func (s *Store) NumberOfAdditionalStepsForJobRestartEditablePreferences() *valueitem.Container {
	return s.buildEditable(groupItems[domain.GroupAdditionalStepsForRestart])
}

// firstSliceIndexFollower keeps the first slice index item consistent with
// the number of slices while a container is edited.
type firstSliceIndexFollower struct{}

func (firstSliceIndexFollower) ItemChanged(container *valueitem.Container, item *valueitem.ValueItem) {
	if item.Name != string(domain.EditableNumberOfSlices) {
		return
	}
	slices, err := item.ValueAsInt()
	if err != nil {
		return
	}
	first, ok := container.Get(string(domain.EditableFirstSliceIndex))
	if !ok {
		return
	}

	first.Format.Max = float64(slices - 1)
	first.Description = rangeDescription(clampBounds(0, slices-1))
	if index, err := first.ValueAsInt(); err != nil || index >= slices {
		first.SetInt(DefaultFirstSliceIndex)
	}
}
