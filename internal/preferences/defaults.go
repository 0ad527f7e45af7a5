package preferences

import (
	"math"

	domain "mfsim/internal/domain/preferences"
)

const unbounded = math.MaxInt32

// Default values of the persisted fields
const (
	DefaultFirstSliceIndex                                = 0
	DefaultNumberOfSlicesPerView                          = 100
	DefaultNumberOfBoxWaitSteps                           = 0
	DefaultNumberOfFramePointsSlicer                      = 1000
	DefaultTimeStepDisplaySlicer                          = 1
	DefaultMaxSelectedMoleculeNumberSlicer                = 1000
	DefaultShiftInPixelSlicer                             = 0
	DefaultNumberOfSpinSteps                              = 180
	DefaultSpecularWhiteAttenuationSlicer                 = 0.5
	DefaultDepthAttenuationSlicer                         = 2.0
	DefaultColorGradientAttenuationSlicer                 = 0.7
	DefaultSpecularWhiteSizeSlicer                        = 0.1
	DefaultRadialGradientPaintRadiusMagnification         = 2.0
	DefaultRadialGradientPaintFocusFactor                 = 0.7
	DefaultJpegImageQuality                               = 1.0
	DefaultSimulationBoxMagnificationPercentage           = -3
	DefaultImageVersion                                   = 1
	DefaultRotationAngle                                  = 0
	DefaultParticleShift                                  = 0
	DefaultDepthAttenuationCompartment                    = 1.0
	DefaultCompartmentBodyChangeResponseFactor            = 0.001
	DefaultColorGradientAttenuationCompartment            = 0.7
	DefaultColorTransparencyCompartment                   = 0.0
	DefaultNumberOfTrialsForCompartment                   = 100
	DefaultJmolShadePower                                 = 2
	DefaultJmolAmbientLightPercentage                     = 50
	DefaultJmolDiffuseLightPercentage                     = 80
	DefaultJmolSpecularReflectionExponent                 = 10
	DefaultJmolSpecularReflectionPercentage               = 100
	DefaultJmolSpecularReflectionPower                    = 50
	DefaultDelayForFilesInMilliseconds                    = 1
	DefaultDelayForJobStartInMilliseconds                 = 1000
	DefaultTimerIntervalInMilliseconds                    = 1000
	DefaultMinimumBondLengthDpd                           = 1.0
	DefaultMaximumNumberOfParticlesForGraphicalDisplay    = 100
	DefaultNumberOfStepsForRdfCalculation                 = 1
	DefaultNumberOfVolumeBins                             = 20
	DefaultAnimationSpeed                                 = 20
	DefaultNumberOfSimulationBoxCellsForParallelization   = 100
	DefaultNumberOfBondsForParallelization                = 100
	DefaultNumberOfAdditionalStepsForJobRestart           = 1000
	DefaultNumberOfParallelTasks                          = 1
	DefaultNumberOfAfterDecimalDigitsForParticlePositions = 3
	DefaultMaximumNumberOfPositionCorrectionTrials        = 1000
	DefaultMovieQuality                                   = 18

	DefaultDialogHeight    = 890
	DefaultDialogWidth     = 1050
	DefaultMainFrameHeight = 730
	DefaultMainFrameWidth  = 820

	// MinimumAbsoluteSpinSteps is the smallest spin step magnitude
	MinimumAbsoluteSpinSteps = 20
	// MaximumNumberOfPreviousEntries caps the previous monomer, structure and peptide lists
	MaximumNumberOfPreviousEntries = 100
)

const (
	DefaultSlicerGraphicsMode                 = domain.GraphicsModeBufferedImageFinal
	DefaultImageStorageMode                   = domain.ImageStorageMemoryUncompressed
	DefaultBoxViewDisplay                     = domain.BoxViewXZFront
	DefaultParticleColorDisplayMode           = domain.ParticleColorMoleculeColorMode
	DefaultSimulationBoxBackgroundColorSlicer = domain.ColorBlack
	DefaultMeasurementColorSlicer             = domain.ColorWhite
	DefaultMoleculeSelectionColorSlicer       = domain.ColorYellow
	DefaultFrameColorSlicer                   = domain.ColorBeige
	DefaultJmolSimulationBoxBackgroundColor   = domain.ColorBlack
	DefaultProteinViewerBackgroundColor       = domain.ColorBlack
)

var (
	numberOfSlicesBounds                 = clampBounds(10, 1000)
	numberOfBoxWaitStepsBounds           = clampBounds(0, unbounded)
	numberOfFramePointsSlicerBounds      = clampBounds(2, unbounded)
	timeStepDisplaySlicerBounds          = clampBounds(1, 100)
	maxSelectedMoleculeNumberBounds      = clampBounds(1, unbounded)
	shiftInPixelBounds                   = clampBounds(-unbounded, unbounded)
	numberOfSpinStepsBounds              = clampBounds(-36000, 36000)
	specularWhiteAttenuationSlicerBounds = clampBounds(0.0, 1.0)
	depthAttenuationSlicerBounds         = clampBounds(0.0, 100.0)
	colorGradientAttenuationBounds       = clampBounds(0.0, 1.0)
	specularWhiteSizeSlicerBounds        = clampBounds[float32](0.01, 0.9)
	radialGradientMagnificationBounds    = clampBounds[float32](0.1, 100)
	radialGradientFocusFactorBounds      = clampBounds[float32](0.1, 1.9)
	jpegImageQualityBounds               = rejectBounds[float32](0, 1)
	simulationBoxMagnificationBounds     = clampBounds(-500, 95)
	rotationBounds                       = Bounds[int]{Min: 0, Max: 360, Policy: Wrap}
	particleShiftBounds                  = clampBounds(-100, 100)
	depthAttenuationCompartmentBounds    = clampBounds(0.0, 5.0)
	compartmentBodyChangeResponseBounds  = clampBounds(0.000001, 1.0)
	colorTransparencyCompartmentBounds   = rejectBounds[float32](0, 1)
	numberOfTrialsForCompartmentBounds   = clampBounds(1, unbounded)
	jmolShadePowerBounds                 = clampBounds(1, 3)
	jmolPercentageBounds                 = clampBounds(0, 100)
	jmolSpecularReflectionExponentBounds = clampBounds(1, 10)
	delayForFilesBounds                  = clampBounds[int64](0, 100)
	delayForJobStartBounds               = clampBounds[int64](0, 60000)
	timerIntervalBounds                  = clampBounds(100, 10000)
	minimumBondLengthDpdBounds           = clampBounds(0.0, 1.0)
	maximumParticlesForDisplayBounds     = clampBounds(10, unbounded)
	numberOfStepsForRdfBounds            = clampBounds(1, unbounded)
	numberOfVolumeBinsBounds             = clampBounds(2, unbounded)
	animationSpeedBounds                 = clampBounds(1, 200)
	parallelizationThresholdBounds       = clampBounds(10, unbounded)
	additionalStepsForJobRestartBounds   = clampBounds(10, 100000000)
	numberOfParallelTasksBounds          = clampBounds(1, unbounded)
	afterDecimalDigitsBounds             = clampBounds(3, 16)
	positionCorrectionTrialsBounds       = clampBounds(1, unbounded)
	movieQualityBounds                   = clampBounds(1, 36)
	customDialogHeightBounds             = clampBounds(DefaultDialogHeight, unbounded)
	customDialogWidthBounds              = clampBounds(DefaultDialogWidth, unbounded)
)
