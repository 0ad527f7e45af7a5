package preferences

import (
	"sort"

	domain "mfsim/internal/domain/preferences"
	"mfsim/internal/valueitem"
)

// editableSetter applies one value item to the store and reports whether
// anything changed. Items whose values do not parse return an error.
type editableSetter func(s *Store, item *valueitem.ValueItem) (bool, error)

var editableSetters = map[domain.EditableKey]editableSetter{
	domain.EditableJpegImageQuality:                                        float32Setter((*Store).SetJpegImageQuality),
	domain.EditableColorTransparencyCompartment:                            float32Setter((*Store).SetColorTransparencyCompartment),
	domain.EditableColorGradientAttenuationCompartment:                     float64Setter((*Store).SetColorGradientAttenuationCompartment),
	domain.EditableColorGradientAttenuationSlicer:                          float64Setter((*Store).SetColorGradientAttenuationSlicer),
	domain.EditableSpecularWhiteAttenuationSlicer:                          float64Setter((*Store).SetSpecularWhiteAttenuationSlicer),
	domain.EditableColorShapeAttenuationCompartment:                        float64Setter((*Store).SetDepthAttenuationCompartment),
	domain.EditableCompartmentBodyChangeResponseFactor:                     float64Setter((*Store).SetCompartmentBodyChangeResponseFactor),
	domain.EditableMaxSelectedMoleculeNumberSlicer:                         intSetter((*Store).SetMaxSelectedMoleculeNumberSlicer),
	domain.EditableDepthAttenuationSlicer:                                  float64Setter((*Store).SetDepthAttenuationSlicer),
	domain.EditableShiftsSlicer:                                            intTupleSetter((*Store).SetXShiftInPixelSlicer, (*Store).SetYShiftInPixelSlicer),
	domain.EditableCustomDialogSize:                                        intTupleSetter((*Store).SetCustomDialogHeight, (*Store).SetCustomDialogWidth),
	domain.EditableRotationAngles:                                          intTupleSetter((*Store).SetRotationAroundXaxisAngle, (*Store).SetRotationAroundYaxisAngle, (*Store).SetRotationAroundZaxisAngle),
	domain.EditableParticleShifts:                                          intTupleSetter((*Store).SetParticleShiftX, (*Store).SetParticleShiftY, (*Store).SetParticleShiftZ),
	domain.EditableStepInfoArraySlicer:                                     setStepRangeSlicer,
	domain.EditableRadialGradientPaintRadiusMagnification:                  float32Setter((*Store).SetRadialGradientPaintRadiusMagnification),
	domain.EditableSpecularWhiteSizeSlicer:                                 float32Setter((*Store).SetSpecularWhiteSizeSlicer),
	domain.EditableRadialGradientPaintFocusFactors:                         float32TupleSetter((*Store).SetRadialGradientPaintFocusFactorX, (*Store).SetRadialGradientPaintFocusFactorY),
	domain.EditableDelayForFilesInMilliseconds:                             int64Setter((*Store).SetDelayForFilesInMilliseconds),
	domain.EditableDelayForJobStartInMilliseconds:                          int64Setter((*Store).SetDelayForJobStartInMilliseconds),
	domain.EditableInternalMFsimJobPath:                                    stringSetter((*Store).SetInternalMFsimJobPath),
	domain.EditableInternalTempPath:                                        stringSetter((*Store).SetInternalTempPath),
	domain.EditableCurrentParticleSetFilename:                              stringSetter((*Store).SetCurrentParticleSetFilename),
	domain.EditableFirstSliceIndex:                                         intSetter((*Store).SetFirstSliceIndex),
	domain.EditableNumberOfZoomVolumeBins:                                  intSetter((*Store).SetNumberOfVolumeBins),
	domain.EditableNumberOfFramePointsSlicer:                               intSetter((*Store).SetNumberOfFramePointsSlicer),
	domain.EditableTimeStepDisplaySlicer:                                   intSetter((*Store).SetTimeStepDisplaySlicer),
	domain.EditableIsJobResultArchiveStepFileInclusion:                     boolSetter((*Store).SetJobResultArchiveStepFileInclusion),
	domain.EditableIsVolumeScalingForConcentrationCalculation:              boolSetter((*Store).SetVolumeScalingForConcentrationCalculation),
	domain.EditableIsJobInputInclusion:                                     boolSetter((*Store).SetJobInputInclusion),
	domain.EditableIsParticleDistributionInclusion:                         boolSetter((*Store).SetParticleDistributionInclusion),
	domain.EditableIsSimulationStepInclusion:                               boolSetter((*Store).SetSimulationStepInclusion),
	domain.EditableIsNearestNeighborEvaluationInclusion:                    boolSetter((*Store).SetNearestNeighborEvaluationInclusion),
	domain.EditableIsJobResultArchiveProcessParallelInBackground:           boolSetter((*Store).SetJobResultArchiveProcessParallelInBackground),
	domain.EditableIsJobResultArchiveFileUncompressed:                      boolSetter((*Store).SetJobResultArchiveFileUncompressed),
	domain.EditableIsJdpdKernelDoublePrecision:                             boolSetter((*Store).SetJdpdKernelDoublePrecision),
	domain.EditableIsJdpdLogLevelException:                                 boolSetter((*Store).SetJdpdLogLevelException),
	domain.EditableIsConstantCompartmentBodyVolume:                         boolSetter((*Store).SetConstantCompartmentBodyVolume),
	domain.EditableIsSimulationBoxSlicer:                                   boolSetter((*Store).SetSimulationBoxSlicer),
	domain.EditableIsMoleculeDisplayWithStandardParticleSize:               boolSetter((*Store).SetMoleculeDisplayWithStandardParticleSize),
	domain.EditableIsSingleSliceDisplay:                                    boolSetter((*Store).SetSingleSliceDisplay),
	domain.EditableSlicerGraphicsMode:                                      choiceSetter(domain.ParseGraphicsMode, (*Store).SetSlicerGraphicsMode),
	domain.EditableSimulationBoxBackgroundColorSlicer:                      choiceSetter(domain.ParseStandardColor, (*Store).SetSimulationBoxBackgroundColorSlicer),
	domain.EditableMeasurementColorSlicer:                                  choiceSetter(domain.ParseStandardColor, (*Store).SetMeasurementColorSlicer),
	domain.EditableMoleculeSelectionColorSlicer:                            choiceSetter(domain.ParseStandardColor, (*Store).SetMoleculeSelectionColorSlicer),
	domain.EditableFrameColorSlicer:                                        choiceSetter(domain.ParseStandardColor, (*Store).SetFrameColorSlicer),
	domain.EditableJmolSimulationBoxBackgroundColor:                        choiceSetter(domain.ParseStandardColor, (*Store).SetJmolSimulationBoxBackgroundColor),
	domain.EditableProteinViewerBackgroundColor:                            choiceSetter(domain.ParseStandardColor, (*Store).SetProteinViewerBackgroundColor),
	domain.EditableImageStorageMode:                                        choiceSetter(domain.ParseImageStorage, (*Store).SetImageStorageMode),
	domain.EditableParticleColorDisplayMode:                                choiceSetter(domain.ParseParticleColorDisplay, (*Store).SetParticleColorDisplayMode),
	domain.EditableBoxViewDisplay:                                          choiceSetter(domain.ParseSimulationBoxView, (*Store).SetBoxViewDisplay),
	domain.EditableIsFrameDisplaySlicer:                                    boolSetter((*Store).SetFrameDisplaySlicer),
	domain.EditableJobInputFilterAfterTimestamp:                            stringSetter((*Store).SetJobInputFilterAfterTimestamp),
	domain.EditableJobInputFilterBeforeTimestamp:                           stringSetter((*Store).SetJobInputFilterBeforeTimestamp),
	domain.EditableJobInputFilterContainsPhrase:                            stringSetter((*Store).SetJobInputFilterContainsPhrase),
	domain.EditableJobResultFilterAfterTimestamp:                           stringSetter((*Store).SetJobResultFilterAfterTimestamp),
	domain.EditableJobResultFilterBeforeTimestamp:                          stringSetter((*Store).SetJobResultFilterBeforeTimestamp),
	domain.EditableJobResultFilterContainsPhrase:                           stringSetter((*Store).SetJobResultFilterContainsPhrase),
	domain.EditableNumberOfSlices:                                          intSetter((*Store).SetNumberOfSlicesPerView),
	domain.EditableJmolShadePower:                                          intSetter((*Store).SetJmolShadePower),
	domain.EditableJmolAmbientLightPercentage:                              intSetter((*Store).SetJmolAmbientLightPercentage),
	domain.EditableJmolDiffuseLightPercentage:                              intSetter((*Store).SetJmolDiffuseLightPercentage),
	domain.EditableJmolSpecularReflectionExponent:                          intSetter((*Store).SetJmolSpecularReflectionExponent),
	domain.EditableJmolSpecularReflectionPercentage:                        intSetter((*Store).SetJmolSpecularReflectionPercentage),
	domain.EditableJmolSpecularReflectionPower:                             intSetter((*Store).SetJmolSpecularReflectionPower),
	domain.EditableNumberOfParallelSimulations:                             intSetter((*Store).SetNumberOfParallelSimulations),
	domain.EditableNumberOfParallelSlicers:                                 intSetter((*Store).SetNumberOfParallelSlicers),
	domain.EditableNumberOfParallelCalculators:                             intSetter((*Store).SetNumberOfParallelCalculators),
	domain.EditableNumberOfParallelParticlePositionWriters:                 intSetter((*Store).SetNumberOfParallelParticlePositionWriters),
	domain.EditableNumberOfAfterDecimalSeparatorDigitsForParticlePositions: intSetter((*Store).SetNumberOfAfterDecimalDigitsForParticlePositions),
	domain.EditableMaximumNumberOfPositionCorrectionTrials:                 intSetter((*Store).SetMaximumNumberOfPositionCorrectionTrials),
	domain.EditableMovieQuality:                                            intSetter((*Store).SetMovieQuality),
	domain.EditableTimerIntervalInMilliseconds:                             intSetter((*Store).SetTimerIntervalInMilliseconds),
	domain.EditableMinimumBondLengthDpd:                                    float64Setter((*Store).SetMinimumBondLengthDpd),
	domain.EditableMaximumNumberOfParticlesForGraphicalDisplay:             intSetter((*Store).SetMaximumNumberOfParticlesForGraphicalDisplay),
	domain.EditableNumberOfStepsForRdfCalculation:                          intSetter((*Store).SetNumberOfStepsForRdfCalculation),
	domain.EditableNumberOfTrialsForCompartment:                            intSetter((*Store).SetNumberOfTrialsForCompartment),
	domain.EditableAnimationSpeed:                                          intSetter((*Store).SetAnimationSpeed),
	domain.EditableNumberOfSimulationBoxCellsForParallelization:            intSetter((*Store).SetNumberOfSimulationBoxCellsForParallelization),
	domain.EditableNumberOfBondsForParallelization:                         intSetter((*Store).SetNumberOfBondsForParallelization),
	domain.EditableNumberOfStepsForJobRestart:                              intSetter((*Store).SetNumberOfAdditionalStepsForJobRestart),
	domain.EditableSimulationBoxMagnificationPercentage:                    intSetter((*Store).SetSimulationBoxMagnificationPercentage),
	domain.EditableNumberOfSpinSteps:                                       intSetter((*Store).SetNumberOfSpinSteps),
	domain.EditableSimulationMovieImagePath:                                stringSetter((*Store).SetSimulationMovieImagePath),
	domain.EditableChartMovieImagePath:                                     stringSetter((*Store).SetChartMovieImagePath),
}

func intSetter(set func(*Store, int) Result[int]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		v, err := item.ValueAsInt()
		if err != nil {
			return false, err
		}
		return set(s, v).Changed, nil
	}
}

func int64Setter(set func(*Store, int64) Result[int64]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		v, err := item.ValueAsInt64()
		if err != nil {
			return false, err
		}
		return set(s, v).Changed, nil
	}
}

func float32Setter(set func(*Store, float32) Result[float32]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		v, err := item.ValueAsFloat32()
		if err != nil {
			return false, err
		}
		return set(s, v).Changed, nil
	}
}

func float64Setter(set func(*Store, float64) Result[float64]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		v, err := item.ValueAsFloat64()
		if err != nil {
			return false, err
		}
		return set(s, v).Changed, nil
	}
}

func boolSetter(set func(*Store, bool) Result[bool]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		v, err := item.ValueAsBool()
		if err != nil {
			return false, err
		}
		return set(s, v).Changed, nil
	}
}

func stringSetter(set func(*Store, string) Result[string]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		return set(s, item.Value()).Changed, nil
	}
}

// choiceSetter maps a display representation to its value. Unknown
// representations are ignored.
func choiceSetter[T ~string](parse func(string) (T, bool), set func(*Store, T) Result[T]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		v, ok := parse(item.Value())
		if !ok {
			return false, nil
		}
		return set(s, v).Changed, nil
	}
}

func intTupleSetter(setters ...func(*Store, int) Result[int]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		values, err := item.ValuesAsInts(len(setters))
		if err != nil {
			return false, err
		}
		changed := false
		for i, set := range setters {
			changed = set(s, values[i]).Changed || changed
		}
		return changed, nil
	}
}

func float32TupleSetter(setters ...func(*Store, float32) Result[float32]) editableSetter {
	return func(s *Store, item *valueitem.ValueItem) (bool, error) {
		values, err := item.ValuesAsFloat64s(len(setters))
		if err != nil {
			return false, err
		}
		changed := false
		for i, set := range setters {
			changed = set(s, float32(values[i])).Changed || changed
		}
		return changed, nil
	}
}

func setStepRangeSlicer(s *Store, item *valueitem.ValueItem) (bool, error) {
	values, err := item.ValuesAsInts(2)
	if err != nil {
		return false, err
	}
	return s.SetStepRangeSlicer(values[0], values[1]).Changed, nil
}

// SetEditablePreferences applies all items of container whose names are
// editable keys and returns the keys that changed a value. The number of
// slices is applied first so the first slice index is checked against
// the new count.
func (s *Store) SetEditablePreferences(container *valueitem.Container) []domain.EditableKey {
	if container == nil {
		return nil
	}

	items := container.Items()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name == string(domain.EditableNumberOfSlices) && items[j].Name != string(domain.EditableNumberOfSlices)
	})

	var changed []domain.EditableKey
	for _, item := range items {
		key, ok := domain.ParseEditableKey(item.Name)
		if !ok {
			continue
		}
		set, ok := editableSetters[key]
		if !ok {
			continue
		}
		itemChanged, err := set(s, item)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", item.Name).Msg("Skipping unparsable preference value")
			continue
		}
		if itemChanged {
			changed = append(changed, key)
		}
	}

	if len(changed) > 0 {
		s.logger.Debug().Int("count", len(changed)).Msg("Editable preferences changed")
	}
	return changed
}
