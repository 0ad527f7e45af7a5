package preferences

// EditableKey names an editable preference entry. Value items passed to a
// batch update carry the key as their name.
type EditableKey string

const (
	EditableJpegImageQuality                                        EditableKey = "JPEG_IMAGE_QUALITY"
	EditableColorTransparencyCompartment                            EditableKey = "COLOR_TRANSPARENCY_COMPARTMENT"
	EditableColorGradientAttenuationCompartment                     EditableKey = "COLOR_GRADIENT_ATTENUATION_COMPARTMENT"
	EditableColorGradientAttenuationSlicer                          EditableKey = "COLOR_GRADIENT_ATTENUATION_SLICER"
	EditableSpecularWhiteAttenuationSlicer                          EditableKey = "SPECULAR_WHITE_ATTENUATION_SLICER"
	EditableColorShapeAttenuationCompartment                        EditableKey = "COLOR_SHAPE_ATTENUATION_COMPARTMENT"
	EditableCompartmentBodyChangeResponseFactor                     EditableKey = "COMPARTMENT_BODY_CHANGE_RESPONSE_FACTOR"
	EditableMaxSelectedMoleculeNumberSlicer                         EditableKey = "MAX_SELECTED_MOLECULE_NUMBER_SLICER"
	EditableDepthAttenuationSlicer                                  EditableKey = "DEPTH_ATTENUATION_SLICER"
	EditableShiftsSlicer                                            EditableKey = "SHIFTS_SLICER"
	EditableCustomDialogSize                                        EditableKey = "CUSTOM_DIALOG_SIZE"
	EditableRotationAngles                                          EditableKey = "ROTATION_ANGLES"
	EditableParticleShifts                                          EditableKey = "PARTICLE_SHIFTS"
	EditableStepInfoArraySlicer                                     EditableKey = "STEP_INFO_ARRAY_SLICER"
	EditableRadialGradientPaintRadiusMagnification                  EditableKey = "RADIAL_GRADIENT_PAINT_RADIUS_MAGNIFICATION"
	EditableSpecularWhiteSizeSlicer                                 EditableKey = "SPECULAR_WHITE_SIZE_SLICER"
	EditableRadialGradientPaintFocusFactors                         EditableKey = "RADIAL_GRADIENT_PAINT_FOCUS_FACTORS"
	EditableDelayForFilesInMilliseconds                             EditableKey = "DELAY_FOR_FILES_IN_MILLISECONDS"
	EditableDelayForJobStartInMilliseconds                          EditableKey = "DELAY_FOR_JOB_START_IN_MILLISECONDS"
	EditableInternalMFsimJobPath                                    EditableKey = "INTERNAL_MFSIM_JOB_PATH"
	EditableInternalTempPath                                        EditableKey = "INTERNAL_TEMP_PATH"
	EditableCurrentParticleSetFilename                              EditableKey = "CURRENT_PARTICLE_SET_FILENAME"
	EditableFirstSliceIndex                                         EditableKey = "FIRST_SLICE_INDEX"
	EditableNumberOfZoomVolumeBins                                  EditableKey = "NUMBER_OF_ZOOM_VOLUME_BINS"
	EditableNumberOfFramePointsSlicer                               EditableKey = "NUMBER_OF_FRAME_POINTS_SLICER"
	EditableTimeStepDisplaySlicer                                   EditableKey = "TIME_STEP_DISPLAY_SLICER"
	EditableIsJobResultArchiveStepFileInclusion                     EditableKey = "IS_JOB_RESULT_ARCHIVE_STEP_FILE_INCLUSION"
	EditableIsVolumeScalingForConcentrationCalculation              EditableKey = "IS_VOLUME_SCALING_FOR_CONCENTRATION_CALCULATION"
	EditableIsJobInputInclusion                                     EditableKey = "IS_JOB_INPUT_INCLUSION"
	EditableIsParticleDistributionInclusion                         EditableKey = "IS_PARTICLE_DISTRICUTION_INCLUSION"
	EditableIsSimulationStepInclusion                               EditableKey = "IS_SIMULATION_STEP_INCLUSION"
	EditableIsNearestNeighborEvaluationInclusion                    EditableKey = "IS_NEAREST_NEIGHBOR_EVALUATION_INCLUSION"
	EditableIsJobResultArchiveProcessParallelInBackground           EditableKey = "IS_JOB_RESULT_ARCHIVE_PROCESS_PARALLEL_IN_BACKGROUND"
	EditableIsJobResultArchiveFileUncompressed                      EditableKey = "IS_JOB_RESULT_ARCHIVE_FILE_UNCOMPRESSED"
	EditableIsJdpdKernelDoublePrecision                             EditableKey = "IS_JDPD_KERNEL_DOUBLE_PRECISION"
	EditableIsJdpdLogLevelException                                 EditableKey = "IS_JDPD_LOG_LEVEL_EXCEPTION"
	EditableIsConstantCompartmentBodyVolume                         EditableKey = "IS_CONSTANT_COMPARTMENT_BODY_VOLUME"
	EditableIsSimulationBoxSlicer                                   EditableKey = "IS_SIMULATION_BOX_SLICER"
	EditableIsMoleculeDisplayWithStandardParticleSize               EditableKey = "IS_MOLECULE_DISPLAY_WITH_STANDARD_PARTICLE_SIZE"
	EditableIsSingleSliceDisplay                                    EditableKey = "IS_SINGLE_SLICE_DISPLAY"
	EditableSlicerGraphicsMode                                      EditableKey = "SLICER_GRAPHICS_MODE"
	EditableSimulationBoxBackgroundColorSlicer                      EditableKey = "SIMULATION_BOX_BACKGROUND_COLOR_SLICER"
	EditableMeasurementColorSlicer                                  EditableKey = "MEASUREMENT_COLOR_SLICER"
	EditableMoleculeSelectionColorSlicer                            EditableKey = "MOLECULE_SELECTION_COLOR_SLICER"
	EditableFrameColorSlicer                                        EditableKey = "FRAME_COLOR_SLICER"
	EditableJmolSimulationBoxBackgroundColor                        EditableKey = "JMOL_SIMULATION_BOX_BACKGROUND_COLOR"
	EditableProteinViewerBackgroundColor                            EditableKey = "PROTEIN_VIEWER_BACKGROUND_COLOR"
	EditableImageStorageMode                                        EditableKey = "IMAGE_STORAGE_MODE"
	EditableParticleColorDisplayMode                                EditableKey = "MOLECULE_DISPLAY_SETTINGS_PARTICLE_COLOR_DISPLAY_MODE"
	EditableBoxViewDisplay                                          EditableKey = "BOX_VIEW_DISPLAY"
	EditableIsFrameDisplaySlicer                                    EditableKey = "IS_FRAME_DISPLAY_SLICER"
	EditableJobInputFilterAfterTimestamp                            EditableKey = "JOB_INPUT_FILTER_AFTER_TIMESTAMP"
	EditableJobInputFilterBeforeTimestamp                           EditableKey = "JOB_INPUT_FILTER_BEFORE_TIMESTAMP"
	EditableJobInputFilterContainsPhrase                            EditableKey = "JOB_INPUT_FILTER_CONTAINS_PHRASE"
	EditableJobResultFilterAfterTimestamp                           EditableKey = "JOB_RESULT_FILTER_AFTER_TIMESTAMP"
	EditableJobResultFilterBeforeTimestamp                          EditableKey = "JOB_RESULT_FILTER_BEFORE_TIMESTAMP"
	EditableJobResultFilterContainsPhrase                           EditableKey = "JOB_RESULT_FILTER_CONTAINS_PHRASE"
	EditableNumberOfSlices                                          EditableKey = "NUMBER_OF_SLICES"
	EditableJmolShadePower                                          EditableKey = "JMOL_SHADE_POWER"
	EditableJmolAmbientLightPercentage                              EditableKey = "JMOL_AMBIENT_LIGHT_PERCENTAGE"
	EditableJmolDiffuseLightPercentage                              EditableKey = "JMOL_DIFFUSE_LIGHT_PERCENTAGE"
	EditableJmolSpecularReflectionExponent                          EditableKey = "JMOL_SPECULAR_REFLECTION_EXPONENT"
	EditableJmolSpecularReflectionPercentage                        EditableKey = "JMOL_SPECULAR_REFLECTION_PERCENTAGE"
	EditableJmolSpecularReflectionPower                             EditableKey = "JMOL_SPECULAR_REFLECTION_POWER"
	EditableNumberOfParallelSimulations                             EditableKey = "NUMBER_OF_PARALLEL_SIMULATIONS"
	EditableNumberOfParallelSlicers                                 EditableKey = "NUMBER_OF_PARALLEL_SLICERS"
	EditableNumberOfParallelCalculators                             EditableKey = "NUMBER_OF_PARALLEL_CALCULATORS"
	EditableNumberOfParallelParticlePositionWriters                 EditableKey = "NUMBER_OF_PARALLEL_PARTICLE_POSITION_WRITERS"
	EditableNumberOfAfterDecimalSeparatorDigitsForParticlePositions EditableKey = "NUMBER_OF_AFTER_DECIMAL_SEPARATOR_DIGITS_FOR_PARTICLE_POSITIONS"
	EditableMaximumNumberOfPositionCorrectionTrials                 EditableKey = "MAXIMUM_NUMBER_OF_POSITION_CORRECTION_TRIALS"
	EditableMovieQuality                                            EditableKey = "MOVIE_QUALITY"
	EditableTimerIntervalInMilliseconds                             EditableKey = "TIMER_INTERVALL_IN_MILLISECONDS"
	EditableMinimumBondLengthDpd                                    EditableKey = "MINIMUM_BOND_LENGTH_DPD"
	EditableMaximumNumberOfParticlesForGraphicalDisplay             EditableKey = "MAXIMUM_NUMBER_OF_PARTICLES_FOR_GRAPHICAL_DISPLAY"
	EditableNumberOfStepsForRdfCalculation                          EditableKey = "NUMBER_OF_STEPS_FOR_RDF_CALCULATION"
	EditableNumberOfTrialsForCompartment                            EditableKey = "NUMBER_OF_TRIALS_FOR_COMPARTMENT"
	EditableAnimationSpeed                                          EditableKey = "ANIMATION_SPEED"
	EditableNumberOfSimulationBoxCellsForParallelization            EditableKey = "NUMBER_OF_SIMULATION_BOX_CELLS_FOR_PARALLELIZATION"
	EditableNumberOfBondsForParallelization                         EditableKey = "NUMBER_OF_BONDS_FOR_PARALLELIZATION"
	EditableNumberOfStepsForJobRestart                              EditableKey = "NUMBER_OF_STEPS_FOR_JOB_RESTART"
	EditableSimulationBoxMagnificationPercentage                    EditableKey = "SIMULATION_BOX_MAGNIFICATION_PERCENTAGE"
	EditableNumberOfSpinSteps                                       EditableKey = "NUMBER_OF_SPIN_STEPS"
	EditableSimulationMovieImagePath                                EditableKey = "SIMULATION_MOVIE_IMAGE_PATH"
	EditableChartMovieImagePath                                     EditableKey = "CHART_MOVIE_IMAGE_PATH"
)

var editableKeys = []EditableKey{
	EditableJpegImageQuality,
	EditableColorTransparencyCompartment,
	EditableColorGradientAttenuationCompartment,
	EditableColorGradientAttenuationSlicer,
	EditableSpecularWhiteAttenuationSlicer,
	EditableColorShapeAttenuationCompartment,
	EditableCompartmentBodyChangeResponseFactor,
	EditableMaxSelectedMoleculeNumberSlicer,
	EditableDepthAttenuationSlicer,
	EditableShiftsSlicer,
	EditableCustomDialogSize,
	EditableRotationAngles,
	EditableParticleShifts,
	EditableStepInfoArraySlicer,
	EditableRadialGradientPaintRadiusMagnification,
	EditableSpecularWhiteSizeSlicer,
	EditableRadialGradientPaintFocusFactors,
	EditableDelayForFilesInMilliseconds,
	EditableDelayForJobStartInMilliseconds,
	EditableInternalMFsimJobPath,
	EditableInternalTempPath,
	EditableCurrentParticleSetFilename,
	EditableFirstSliceIndex,
	EditableNumberOfZoomVolumeBins,
	EditableNumberOfFramePointsSlicer,
	EditableTimeStepDisplaySlicer,
	EditableIsJobResultArchiveStepFileInclusion,
	EditableIsVolumeScalingForConcentrationCalculation,
	EditableIsJobInputInclusion,
	EditableIsParticleDistributionInclusion,
	EditableIsSimulationStepInclusion,
	EditableIsNearestNeighborEvaluationInclusion,
	EditableIsJobResultArchiveProcessParallelInBackground,
	EditableIsJobResultArchiveFileUncompressed,
	EditableIsJdpdKernelDoublePrecision,
	EditableIsJdpdLogLevelException,
	EditableIsConstantCompartmentBodyVolume,
	EditableIsSimulationBoxSlicer,
	EditableIsMoleculeDisplayWithStandardParticleSize,
	EditableIsSingleSliceDisplay,
	EditableSlicerGraphicsMode,
	EditableSimulationBoxBackgroundColorSlicer,
	EditableMeasurementColorSlicer,
	EditableMoleculeSelectionColorSlicer,
	EditableFrameColorSlicer,
	EditableJmolSimulationBoxBackgroundColor,
	EditableProteinViewerBackgroundColor,
	EditableImageStorageMode,
	EditableParticleColorDisplayMode,
	EditableBoxViewDisplay,
	EditableIsFrameDisplaySlicer,
	EditableJobInputFilterAfterTimestamp,
	EditableJobInputFilterBeforeTimestamp,
	EditableJobInputFilterContainsPhrase,
	EditableJobResultFilterAfterTimestamp,
	EditableJobResultFilterBeforeTimestamp,
	EditableJobResultFilterContainsPhrase,
	EditableNumberOfSlices,
	EditableJmolShadePower,
	EditableJmolAmbientLightPercentage,
	EditableJmolDiffuseLightPercentage,
	EditableJmolSpecularReflectionExponent,
	EditableJmolSpecularReflectionPercentage,
	EditableJmolSpecularReflectionPower,
	EditableNumberOfParallelSimulations,
	EditableNumberOfParallelSlicers,
	EditableNumberOfParallelCalculators,
	EditableNumberOfParallelParticlePositionWriters,
	EditableNumberOfAfterDecimalSeparatorDigitsForParticlePositions,
	EditableMaximumNumberOfPositionCorrectionTrials,
	EditableMovieQuality,
	EditableTimerIntervalInMilliseconds,
	EditableMinimumBondLengthDpd,
	EditableMaximumNumberOfParticlesForGraphicalDisplay,
	EditableNumberOfStepsForRdfCalculation,
	EditableNumberOfTrialsForCompartment,
	EditableAnimationSpeed,
	EditableNumberOfSimulationBoxCellsForParallelization,
	EditableNumberOfBondsForParallelization,
	EditableNumberOfStepsForJobRestart,
	EditableSimulationBoxMagnificationPercentage,
	EditableNumberOfSpinSteps,
	EditableSimulationMovieImagePath,
	EditableChartMovieImagePath,
}

// EditableKeys returns all known editable keys
func EditableKeys() []EditableKey {
	result := make([]EditableKey, len(editableKeys))
	copy(result, editableKeys)
	return result
}

// ParseEditableKey returns the key for name and whether it is known
func ParseEditableKey(name string) (EditableKey, bool) {
	for _, key := range editableKeys {
		if string(key) == name {
			return key, true
		}
	}
	return "", false
}

func (k EditableKey) String() string { return string(k) }
