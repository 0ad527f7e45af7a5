package preferences

import (
	"encoding/xml"
	"fmt"
	"strconv"

	domain "mfsim/internal/domain/preferences"
	"mfsim/internal/valueitem"
)

// persistedField binds an XML element to a store field. Reads assign the
// parsed value directly, without the corrections applied by setters.
type persistedField struct {
	tag   string
	write func(s *Store) (xmlNode, error)
	read  func(s *Store, node *xmlNode) error
}

func intField(tag string, field func(s *Store) *int) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, strconv.Itoa(*field(s))), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, err := strconv.Atoi(node.Content)
			if err != nil {
				return err
			}
			*field(s) = v
			return nil
		},
	}
}

func int64Field(tag string, field func(s *Store) *int64) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, strconv.FormatInt(*field(s), 10)), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, err := strconv.ParseInt(node.Content, 10, 64)
			if err != nil {
				return err
			}
			*field(s) = v
			return nil
		},
	}
}

func float32Field(tag string, field func(s *Store) *float32) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, formatNumber(*field(s))), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, err := strconv.ParseFloat(node.Content, 32)
			if err != nil {
				return err
			}
			*field(s) = float32(v)
			return nil
		},
	}
}

func float64Field(tag string, field func(s *Store) *float64) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, formatNumber(*field(s))), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, err := strconv.ParseFloat(node.Content, 64)
			if err != nil {
				return err
			}
			*field(s) = v
			return nil
		},
	}
}

func boolField(tag string, field func(s *Store) *bool) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, strconv.FormatBool(*field(s))), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, err := strconv.ParseBool(node.Content)
			if err != nil {
				return err
			}
			*field(s) = v
			return nil
		},
	}
}

func stringField(tag string, field func(s *Store) *string) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, *field(s)), nil
		},
		read: func(s *Store, node *xmlNode) error {
			*field(s) = node.Content
			return nil
		},
	}
}

// choiceField persists an enumerated value by name
func choiceField[T ~string](tag string, field func(s *Store) *T, byName func(string) (T, bool)) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, string(*field(s))), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, ok := byName(node.Content)
			if !ok {
				return fmt.Errorf("unknown value %q", node.Content)
			}
			*field(s) = v
			return nil
		},
	}
}

func listField(tag, itemTag string, field func(s *Store) *[]string) persistedField {
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			node := xmlNode{XMLName: xml.Name{Local: tag}}
			for _, entry := range *field(s) {
				node.Children = append(node.Children, leaf(itemTag, entry))
			}
			return node, nil
		},
		read: func(s *Store, node *xmlNode) error {
			var entries []string
			for _, child := range node.Children {
				if child.XMLName.Local == itemTag && child.Content != "" {
					entries = append(entries, child.Content)
				}
			}
			if len(entries) > MaximumNumberOfPreviousEntries {
				entries = entries[:MaximumNumberOfPreviousEntries]
			}
			*field(s) = entries
			return nil
		},
	}
}

// dialogField persists one side of a dialog size
func dialogField(dialog Dialog, side string, get func(DialogSize) int, set func(*DialogSize, int)) persistedField {
	tag := "Dialog" + string(dialog) + side
	return persistedField{
		tag: tag,
		write: func(s *Store) (xmlNode, error) {
			return leaf(tag, strconv.Itoa(get(s.dialogSizes[dialog]))), nil
		},
		read: func(s *Store, node *xmlNode) error {
			v, err := strconv.Atoi(node.Content)
			if err != nil {
				return err
			}
			size := s.dialogSizes[dialog]
			set(&size, v)
			s.dialogSizes[dialog] = size
			return nil
		},
	}
}

func dialogFields(dialog Dialog) []persistedField {
	return []persistedField{
		dialogField(dialog, "Height", func(d DialogSize) int { return d.Height }, func(d *DialogSize, v int) { d.Height = v }),
		dialogField(dialog, "Width", func(d DialogSize) int { return d.Width }, func(d *DialogSize, v int) { d.Width = v }),
	}
}

var schemaValueItemField = persistedField{
	tag: "SchemaValueItemContainer",
	write: func(s *Store) (xmlNode, error) {
		if s.schemaValueItems.Len() == 0 {
			return leaf("SchemaValueItemContainer", ""), nil
		}
		encoded, err := valueitem.EncodeCompressed(s.NameSortedSchemaValueItems())
		if err != nil {
			return xmlNode{}, err
		}
		return leaf("SchemaValueItemContainer", encoded), nil
	},
	read: func(s *Store, node *xmlNode) error {
		s.RemoveAllSchemaValueItems()
		if node.Content == "" {
			return nil
		}
		items, err := valueitem.DecodeCompressed(node.Content)
		if err != nil {
			return err
		}
		for _, item := range items {
			s.schemaValueItems.Add(item)
		}
		return nil
	},
}

// persistedFields is the field table in document order
var persistedFields = buildPersistedFields()

func buildPersistedFields() []persistedField {
	fields := []persistedField{
		intField("FirstSliceIndex", func(s *Store) *int { return &s.firstSliceIndex }),
		intField("NumberOfBoxWaitSteps", func(s *Store) *int { return &s.numberOfBoxWaitSteps }),
		intField("NumberOfFramePointsSlicer", func(s *Store) *int { return &s.numberOfFramePointsSlicer }),
		intField("TimeStepDisplaySlicer", func(s *Store) *int { return &s.timeStepDisplaySlicer }),
		boolField("IsParticleUpdateForJobInput", func(s *Store) *bool { return &s.isParticleUpdateForJobInput }),
		boolField("IsJobResultArchiveStepFileInclusion", func(s *Store) *bool { return &s.isJobResultArchiveStepFileInclusion }),
		// MFsim only; older files omit it and keep the default
		boolField("IsVolumeScalingForConcentrationCalculation", func(s *Store) *bool { return &s.isVolumeScalingForConcentrationCalculation }),
		boolField("IsJobInputInclusion", func(s *Store) *bool { return &s.isJobInputInclusion }),
		boolField("IsParticleDistributionInclusion", func(s *Store) *bool { return &s.isParticleDistributionInclusion }),
		boolField("IsSimulationStepInclusion", func(s *Store) *bool { return &s.isSimulationStepInclusion }),
		boolField("IsNearestNeighborEvaluationInclusion", func(s *Store) *bool { return &s.isNearestNeighborEvaluationInclusion }),
		boolField("IsJobResultArchiveProcessParallelInBackground", func(s *Store) *bool { return &s.isJobResultArchiveProcessParallelInBackground }),
		boolField("IsJobResultArchiveFileUncompressed", func(s *Store) *bool { return &s.isJobResultArchiveFileUncompressed }),
		boolField("IsDeterministicRandom", func(s *Store) *bool { return &s.isDeterministicRandom }),
		// MFsim only
		boolField("IsJdpdKernelDoublePrecision", func(s *Store) *bool { return &s.isJdpdKernelDoublePrecision }),
		boolField("IsJdpdLogLevelExceptions", func(s *Store) *bool { return &s.isJdpdLogLevelException }),
		boolField("IsConstantCompartmentBodyVolume", func(s *Store) *bool { return &s.isConstantCompartmentBodyVolume }),
		boolField("IsSimulationBoxSlicer", func(s *Store) *bool { return &s.isSimulationBoxSlicer }),
		// MFsim only
		boolField("IsMoleculeDisplayWithStandardParticleSize", func(s *Store) *bool { return &s.isStandardParticleSizeDisplay }),
		boolField("IsSingleSliceDisplay", func(s *Store) *bool { return &s.isSingleSliceDisplay }),
		choiceField("SlicerGraphicsMode", func(s *Store) *domain.GraphicsMode { return &s.slicerGraphicsMode }, domain.GraphicsModeByName),
		choiceField("SimulationBoxBackgroundColorSlicer", func(s *Store) *domain.StandardColor { return &s.simulationBoxBackgroundColor }, domain.StandardColorByName),
		choiceField("MeasurementColorSlicer", func(s *Store) *domain.StandardColor { return &s.measurementColorSlicer }, domain.StandardColorByName),
		choiceField("MoleculeSelectionColorSlicer", func(s *Store) *domain.StandardColor { return &s.moleculeSelectionColorSlicer }, domain.StandardColorByName),
		choiceField("FrameColorSlicer", func(s *Store) *domain.StandardColor { return &s.frameColorSlicer }, domain.StandardColorByName),
		choiceField("JmolSimulationBoxBackgroundColor", func(s *Store) *domain.StandardColor { return &s.jmolBackgroundColor }, domain.StandardColorByName),
		choiceField("ProteinViewerBackgroundColor", func(s *Store) *domain.StandardColor { return &s.proteinViewerBackgroundColor }, domain.StandardColorByName),
		choiceField("ImageStorageMode", func(s *Store) *domain.ImageStorage { return &s.imageStorageMode }, domain.ImageStorageByName),
		choiceField("ParticleColorDisplayMode", func(s *Store) *domain.ParticleColorDisplay { return &s.particleColorDisplayMode }, domain.ParticleColorDisplayByName),
		choiceField("BoxViewDisplay", func(s *Store) *domain.SimulationBoxView { return &s.boxViewDisplay }, domain.SimulationBoxViewByName),
		boolField("IsFrameDisplaySlicer", func(s *Store) *bool { return &s.isFrameDisplaySlicer }),
		float64Field("SpecularWhiteAttenuationSlicer", func(s *Store) *float64 { return &s.specularWhiteAttenuationSlicer }),
		float64Field("DepthAttenuationCompartment", func(s *Store) *float64 { return &s.depthAttenuationCompartment }),
		float64Field("CompartmentBodyChangeResponseFactor", func(s *Store) *float64 { return &s.compartmentBodyChangeResponseFactor }),
		intField("MaxSelectedMoleculeNumberSlicer", func(s *Store) *int { return &s.maxSelectedMoleculeNumberSlicer }),
		float64Field("DepthAttenuationSlicer", func(s *Store) *float64 { return &s.depthAttenuationSlicer }),
		intField("XShiftInPixelSlicer", func(s *Store) *int { return &s.xShiftInPixelSlicer }),
		intField("YShiftInPixelSlicer", func(s *Store) *int { return &s.yShiftInPixelSlicer }),
		intField("RotationAroundXaxisAngle", func(s *Store) *int { return &s.rotationX }),
		intField("RotationAroundYaxisAngle", func(s *Store) *int { return &s.rotationY }),
		intField("RotationAroundZaxisAngle", func(s *Store) *int { return &s.rotationZ }),
		intField("ParticleShiftX", func(s *Store) *int { return &s.particleShiftX }),
		intField("ParticleShiftY", func(s *Store) *int { return &s.particleShiftY }),
		intField("ParticleShiftZ", func(s *Store) *int { return &s.particleShiftZ }),
		float32Field("RadialGradientPaintRadiusMagnification", func(s *Store) *float32 { return &s.radialGradientMagnification }),
		float32Field("SpecularWhiteSizeSlicer", func(s *Store) *float32 { return &s.specularWhiteSizeSlicer }),
		float32Field("RadialGradientPaintFocusFactorX", func(s *Store) *float32 { return &s.radialGradientFocusFactorX }),
		float32Field("RadialGradientPaintFocusFactorY", func(s *Store) *float32 { return &s.radialGradientFocusFactorY }),
		float32Field("JpegImageQuality", func(s *Store) *float32 { return &s.jpegImageQuality }),
		float64Field("ColorGradientAttenuationCompartment", func(s *Store) *float64 { return &s.colorGradientAttenuationCompartment }),
		float64Field("ColorGradientAttenuationSlicer", func(s *Store) *float64 { return &s.colorGradientAttenuationSlicer }),
		float32Field("ColorTransparencyCompartment", func(s *Store) *float32 { return &s.colorTransparencyCompartment }),
	}

	fields = append(fields, dialogFields(DialogSlicerShow)...)
	fields = append(fields,
		intField("CustomDialogHeight", func(s *Store) *int { return &s.customDialogSize.Height }),
		intField("CustomDialogWidth", func(s *Store) *int { return &s.customDialogSize.Width }),
	)
	for _, dialog := range Dialogs[1:] {
		fields = append(fields, dialogFields(dialog)...)
	}

	fields = append(fields,
		int64Field("DelayForFilesInMilliseconds", func(s *Store) *int64 { return &s.delayForFilesInMilliseconds }),
		int64Field("DelayForJobStartInMilliseconds", func(s *Store) *int64 { return &s.delayForJobStartInMilliseconds }),
		intField("TimerIntervalInMilliseconds", func(s *Store) *int { return &s.timerIntervalInMilliseconds }),
		float64Field("MinimumBondLengthDpd", func(s *Store) *float64 { return &s.minimumBondLengthDpd }),
		intField("MaximumNumberOfParticlesForGraphicalDisplay", func(s *Store) *int { return &s.maximumNumberOfParticlesForGraphicalDisplay }),
		intField("NumberOfStepsForRdfCalculation", func(s *Store) *int { return &s.numberOfStepsForRdfCalculation }),
		intField("NumberOfVolumeBins", func(s *Store) *int { return &s.numberOfVolumeBins }),
		intField("NumberOfTrialsForCompartment", func(s *Store) *int { return &s.numberOfTrialsForCompartment }),
		intField("AnimationSpeed", func(s *Store) *int { return &s.animationSpeed }),
		intField("NumberOfSimulationBoxCellsforParallelization", func(s *Store) *int { return &s.numberOfSimulationBoxCellsForParallelization }),
		intField("NumberOfBondsforParallelization", func(s *Store) *int { return &s.numberOfBondsForParallelization }),
		intField("NumberOfAdditionalStepsForJobRestart", func(s *Store) *int { return &s.numberOfAdditionalStepsForJobRestart }),
		intField("SimulationBoxMagnificationPercentage", func(s *Store) *int { return &s.simulationBoxMagnification }),
		intField("NumberOfSpinSteps", func(s *Store) *int { return &s.numberOfSpinSteps }),
		stringField("InternalMFsimJobPath", func(s *Store) *string { return &s.internalMFsimJobPath }),
		stringField("InternalTempPath", func(s *Store) *string { return &s.internalTempPath }),
		stringField("CurrentParticleSetFilename", func(s *Store) *string { return &s.currentParticleSetFilename }),
		stringField("SimulationMovieImagePath", func(s *Store) *string { return &s.simulationMovieImagePath }),
		stringField("ChartMovieImagePath", func(s *Store) *string { return &s.chartMovieImagePath }),
		intField("ImageVersion", func(s *Store) *int { return &s.imageVersion }),
		stringField("JobInputFilterAfterDate", func(s *Store) *string { return &s.jobInputFilter.AfterTimestamp }),
		stringField("JobInputFilterBeforeDate", func(s *Store) *string { return &s.jobInputFilter.BeforeTimestamp }),
		stringField("JobInputFilterContainsPhrase", func(s *Store) *string { return &s.jobInputFilter.ContainsPhrase }),
		stringField("JobResultFilterAfterDate", func(s *Store) *string { return &s.jobResultFilter.AfterTimestamp }),
		stringField("JobResultFilterBeforeDate", func(s *Store) *string { return &s.jobResultFilter.BeforeTimestamp }),
		stringField("JobResultFilterContainsPhrase", func(s *Store) *string { return &s.jobResultFilter.ContainsPhrase }),
		stringField("LastSelectedPath", func(s *Store) *string { return &s.lastSelectedPath }),
		intField("MainFrameHeight", func(s *Store) *int { return &s.mainFrameSize.Height }),
		intField("MainFrameWidth", func(s *Store) *int { return &s.mainFrameSize.Width }),
		intField("NumberOfSlices", func(s *Store) *int { return &s.numberOfSlicesPerView }),
		intField("JmolShadePower", func(s *Store) *int { return &s.jmolShadePower }),
		intField("JmolAmbientLightPercentage", func(s *Store) *int { return &s.jmolAmbientLightPercentage }),
		intField("JmolDiffuseLightPercentage", func(s *Store) *int { return &s.jmolDiffuseLightPercentage }),
		intField("JmolSpecularReflectionExponent", func(s *Store) *int { return &s.jmolSpecularReflectionExponent }),
		intField("JmolSpecularReflectionPercentage", func(s *Store) *int { return &s.jmolSpecularReflectionPercentage }),
		intField("JmolSpecularReflectionPower", func(s *Store) *int { return &s.jmolSpecularReflectionPower }),
		intField("NumberOfParallelSimulations", func(s *Store) *int { return &s.numberOfParallelSimulations }),
		intField("NumberOfParallelSlicers", func(s *Store) *int { return &s.numberOfParallelSlicers }),
		intField("NumberOfParallelCalculators", func(s *Store) *int { return &s.numberOfParallelCalculators }),
		intField("NumberOfParallelParticlePositionWriters", func(s *Store) *int { return &s.numberOfParallelParticlePositionWriters }),
		intField("NumberOfAfterDecimalDigitsForParticlePositions", func(s *Store) *int { return &s.numberOfAfterDecimalDigitsForParticlePositions }),
		intField("MaximumNumberOfPositionCorrectionTrials", func(s *Store) *int { return &s.maximumNumberOfPositionCorrectionTrials }),
		intField("MovieQuality", func(s *Store) *int { return &s.movieQuality }),
		listField("PreviousMonomers", "PreviousSingleMonomer", func(s *Store) *[]string { return &s.previousMonomers }),
		listField("PreviousStructures", "PreviousSingleStructure", func(s *Store) *[]string { return &s.previousStructures }),
		listField("PreviousPeptides", "PreviousSinglePeptide", func(s *Store) *[]string { return &s.previousPeptides }),
		schemaValueItemField,
	)
	return fields
}
