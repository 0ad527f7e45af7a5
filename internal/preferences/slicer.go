package preferences

import (
	domain "mfsim/internal/domain/preferences"
)

func (s *Store) setSlicerDefaults() {
	s.firstSliceIndex = DefaultFirstSliceIndex
	s.numberOfSlicesPerView = DefaultNumberOfSlicesPerView
	s.numberOfBoxWaitSteps = DefaultNumberOfBoxWaitSteps
	s.numberOfFramePointsSlicer = DefaultNumberOfFramePointsSlicer
	s.timeStepDisplaySlicer = DefaultTimeStepDisplaySlicer
	s.maxSelectedMoleculeNumberSlicer = DefaultMaxSelectedMoleculeNumberSlicer
	s.xShiftInPixelSlicer = DefaultShiftInPixelSlicer
	s.yShiftInPixelSlicer = DefaultShiftInPixelSlicer
	s.numberOfSpinSteps = DefaultNumberOfSpinSteps
	s.slicerGraphicsMode = DefaultSlicerGraphicsMode
	s.imageStorageMode = DefaultImageStorageMode
	s.boxViewDisplay = DefaultBoxViewDisplay
	s.isSimulationBoxSlicer = true
	s.isSingleSliceDisplay = false
	s.isFrameDisplaySlicer = true
	s.simulationBoxBackgroundColor = DefaultSimulationBoxBackgroundColorSlicer
	s.measurementColorSlicer = DefaultMeasurementColorSlicer
	s.moleculeSelectionColorSlicer = DefaultMoleculeSelectionColorSlicer
	s.frameColorSlicer = DefaultFrameColorSlicer
	s.specularWhiteAttenuationSlicer = DefaultSpecularWhiteAttenuationSlicer
	s.depthAttenuationSlicer = DefaultDepthAttenuationSlicer
	s.colorGradientAttenuationSlicer = DefaultColorGradientAttenuationSlicer
	s.specularWhiteSizeSlicer = DefaultSpecularWhiteSizeSlicer
	s.radialGradientMagnification = DefaultRadialGradientPaintRadiusMagnification
	s.radialGradientFocusFactorX = DefaultRadialGradientPaintFocusFactor
	s.radialGradientFocusFactorY = DefaultRadialGradientPaintFocusFactor
	s.jpegImageQuality = DefaultJpegImageQuality
	s.simulationBoxMagnification = DefaultSimulationBoxMagnificationPercentage
	s.imageVersion = DefaultImageVersion

	s.rotationX = DefaultRotationAngle
	s.rotationY = DefaultRotationAngle
	s.rotationZ = DefaultRotationAngle
	s.particleShiftX = DefaultParticleShift
	s.particleShiftY = DefaultParticleShift
	s.particleShiftZ = DefaultParticleShift
}

// Slices

func (s *Store) FirstSliceIndex() int { return s.firstSliceIndex }

func (s *Store) DefaultFirstSliceIndex() int { return DefaultFirstSliceIndex }

func (s *Store) firstSliceIndexBounds() Bounds[int] {
	return clampBounds(0, s.numberOfSlicesPerView-1)
}

// SetFirstSliceIndex clamps the index into [0, NumberOfSlicesPerView-1]
func (s *Store) SetFirstSliceIndex(index int) Result[int] {
	return assignBounded(&s.firstSliceIndex, index, s.firstSliceIndexBounds())
}

func (s *Store) NumberOfSlicesPerView() int { return s.numberOfSlicesPerView }

func (s *Store) DefaultNumberOfSlicesPerView() int { return DefaultNumberOfSlicesPerView }

// SetNumberOfSlicesPerView also resets the first slice index when it no
// longer addresses a slice.
func (s *Store) SetNumberOfSlicesPerView(n int) Result[int] {
	result := assignBounded(&s.numberOfSlicesPerView, n, numberOfSlicesBounds)
	if s.firstSliceIndex >= s.numberOfSlicesPerView {
		s.firstSliceIndex = DefaultFirstSliceIndex
	}
	return result
}

func (s *Store) NumberOfBoxWaitSteps() int { return s.numberOfBoxWaitSteps }

func (s *Store) DefaultNumberOfBoxWaitSteps() int { return DefaultNumberOfBoxWaitSteps }

func (s *Store) SetNumberOfBoxWaitSteps(n int) Result[int] {
	return assignBounded(&s.numberOfBoxWaitSteps, n, numberOfBoxWaitStepsBounds)
}

func (s *Store) NumberOfFramePointsSlicer() int { return s.numberOfFramePointsSlicer }

func (s *Store) DefaultNumberOfFramePointsSlicer() int { return DefaultNumberOfFramePointsSlicer }

func (s *Store) SetNumberOfFramePointsSlicer(n int) Result[int] {
	return assignBounded(&s.numberOfFramePointsSlicer, n, numberOfFramePointsSlicerBounds)
}

func (s *Store) TimeStepDisplaySlicer() int { return s.timeStepDisplaySlicer }

func (s *Store) DefaultTimeStepDisplaySlicer() int { return DefaultTimeStepDisplaySlicer }

func (s *Store) SetTimeStepDisplaySlicer(n int) Result[int] {
	return assignBounded(&s.timeStepDisplaySlicer, n, timeStepDisplaySlicerBounds)
}

func (s *Store) MaxSelectedMoleculeNumberSlicer() int { return s.maxSelectedMoleculeNumberSlicer }

func (s *Store) DefaultMaxSelectedMoleculeNumberSlicer() int {
	return DefaultMaxSelectedMoleculeNumberSlicer
}

func (s *Store) SetMaxSelectedMoleculeNumberSlicer(n int) Result[int] {
	return assignBounded(&s.maxSelectedMoleculeNumberSlicer, n, maxSelectedMoleculeNumberBounds)
}

func (s *Store) XShiftInPixelSlicer() int { return s.xShiftInPixelSlicer }

func (s *Store) YShiftInPixelSlicer() int { return s.yShiftInPixelSlicer }

func (s *Store) DefaultShiftInPixelSlicer() int { return DefaultShiftInPixelSlicer }

func (s *Store) SetXShiftInPixelSlicer(shift int) Result[int] {
	return assignBounded(&s.xShiftInPixelSlicer, shift, shiftInPixelBounds)
}

func (s *Store) SetYShiftInPixelSlicer(shift int) Result[int] {
	return assignBounded(&s.yShiftInPixelSlicer, shift, shiftInPixelBounds)
}

func (s *Store) NumberOfSpinSteps() int { return s.numberOfSpinSteps }

func (s *Store) DefaultNumberOfSpinSteps() int { return DefaultNumberOfSpinSteps }

// SetNumberOfSpinSteps clamps to [-36000, 36000] and keeps the magnitude at
// least MinimumAbsoluteSpinSteps. The sign gives the spin direction, 0 spins forward.
func (s *Store) SetNumberOfSpinSteps(n int) Result[int] {
	corrected, _ := numberOfSpinStepsBounds.Correct(n)
	switch {
	case corrected < 0 && corrected > -MinimumAbsoluteSpinSteps:
		corrected = -MinimumAbsoluteSpinSteps
	case corrected >= 0 && corrected < MinimumAbsoluteSpinSteps:
		corrected = MinimumAbsoluteSpinSteps
	}
	return assign(&s.numberOfSpinSteps, corrected)
}

// Display modes

func (s *Store) SlicerGraphicsMode() domain.GraphicsMode { return s.slicerGraphicsMode }

func (s *Store) DefaultSlicerGraphicsMode() domain.GraphicsMode { return DefaultSlicerGraphicsMode }

func (s *Store) SetSlicerGraphicsMode(mode domain.GraphicsMode) Result[domain.GraphicsMode] {
	return assignChoice(&s.slicerGraphicsMode, mode, domain.GraphicsModeByName)
}

func (s *Store) ImageStorageMode() domain.ImageStorage { return s.imageStorageMode }

func (s *Store) DefaultImageStorageMode() domain.ImageStorage { return DefaultImageStorageMode }

func (s *Store) SetImageStorageMode(mode domain.ImageStorage) Result[domain.ImageStorage] {
	return assignChoice(&s.imageStorageMode, mode, domain.ImageStorageByName)
}

func (s *Store) BoxViewDisplay() domain.SimulationBoxView { return s.boxViewDisplay }

func (s *Store) DefaultBoxViewDisplay() domain.SimulationBoxView { return DefaultBoxViewDisplay }

func (s *Store) SetBoxViewDisplay(view domain.SimulationBoxView) Result[domain.SimulationBoxView] {
	return assignChoice(&s.boxViewDisplay, view, domain.SimulationBoxViewByName)
}

func (s *Store) IsSimulationBoxSlicer() bool { return s.isSimulationBoxSlicer }

func (s *Store) SetSimulationBoxSlicer(value bool) Result[bool] {
	return assign(&s.isSimulationBoxSlicer, value)
}

func (s *Store) IsSingleSliceDisplay() bool { return s.isSingleSliceDisplay }

func (s *Store) SetSingleSliceDisplay(value bool) Result[bool] {
	return assign(&s.isSingleSliceDisplay, value)
}

func (s *Store) IsFrameDisplaySlicer() bool { return s.isFrameDisplaySlicer }

func (s *Store) SetFrameDisplaySlicer(value bool) Result[bool] {
	return assign(&s.isFrameDisplaySlicer, value)
}

// Colors

func (s *Store) SimulationBoxBackgroundColorSlicer() domain.StandardColor {
	return s.simulationBoxBackgroundColor
}

func (s *Store) DefaultSimulationBoxBackgroundColorSlicer() domain.StandardColor {
	return DefaultSimulationBoxBackgroundColorSlicer
}

func (s *Store) SetSimulationBoxBackgroundColorSlicer(color domain.StandardColor) Result[domain.StandardColor] {
	return assignChoice(&s.simulationBoxBackgroundColor, color, domain.StandardColorByName)
}

func (s *Store) MeasurementColorSlicer() domain.StandardColor { return s.measurementColorSlicer }

func (s *Store) DefaultMeasurementColorSlicer() domain.StandardColor {
	return DefaultMeasurementColorSlicer
}

func (s *Store) SetMeasurementColorSlicer(color domain.StandardColor) Result[domain.StandardColor] {
	return assignChoice(&s.measurementColorSlicer, color, domain.StandardColorByName)
}

func (s *Store) MoleculeSelectionColorSlicer() domain.StandardColor {
	return s.moleculeSelectionColorSlicer
}

func (s *Store) DefaultMoleculeSelectionColorSlicer() domain.StandardColor {
	return DefaultMoleculeSelectionColorSlicer
}

func (s *Store) SetMoleculeSelectionColorSlicer(color domain.StandardColor) Result[domain.StandardColor] {
	return assignChoice(&s.moleculeSelectionColorSlicer, color, domain.StandardColorByName)
}

func (s *Store) FrameColorSlicer() domain.StandardColor { return s.frameColorSlicer }

func (s *Store) DefaultFrameColorSlicer() domain.StandardColor { return DefaultFrameColorSlicer }

func (s *Store) SetFrameColorSlicer(color domain.StandardColor) Result[domain.StandardColor] {
	return assignChoice(&s.frameColorSlicer, color, domain.StandardColorByName)
}

// Rendering

func (s *Store) SpecularWhiteAttenuationSlicer() float64 { return s.specularWhiteAttenuationSlicer }

func (s *Store) DefaultSpecularWhiteAttenuationSlicer() float64 {
	return DefaultSpecularWhiteAttenuationSlicer
}

func (s *Store) SetSpecularWhiteAttenuationSlicer(value float64) Result[float64] {
	return assignBounded(&s.specularWhiteAttenuationSlicer, value, specularWhiteAttenuationSlicerBounds)
}

func (s *Store) DepthAttenuationSlicer() float64 { return s.depthAttenuationSlicer }

func (s *Store) DefaultDepthAttenuationSlicer() float64 { return DefaultDepthAttenuationSlicer }

func (s *Store) SetDepthAttenuationSlicer(value float64) Result[float64] {
	return assignBounded(&s.depthAttenuationSlicer, value, depthAttenuationSlicerBounds)
}

func (s *Store) ColorGradientAttenuationSlicer() float64 { return s.colorGradientAttenuationSlicer }

func (s *Store) DefaultColorGradientAttenuationSlicer() float64 {
	return DefaultColorGradientAttenuationSlicer
}

func (s *Store) SetColorGradientAttenuationSlicer(value float64) Result[float64] {
	return assignBounded(&s.colorGradientAttenuationSlicer, value, colorGradientAttenuationBounds)
}

func (s *Store) SpecularWhiteSizeSlicer() float32 { return s.specularWhiteSizeSlicer }

func (s *Store) DefaultSpecularWhiteSizeSlicer() float32 { return DefaultSpecularWhiteSizeSlicer }

func (s *Store) SetSpecularWhiteSizeSlicer(value float32) Result[float32] {
	return assignBounded(&s.specularWhiteSizeSlicer, value, specularWhiteSizeSlicerBounds)
}

func (s *Store) RadialGradientPaintRadiusMagnification() float32 {
	return s.radialGradientMagnification
}

func (s *Store) DefaultRadialGradientPaintRadiusMagnification() float32 {
	return DefaultRadialGradientPaintRadiusMagnification
}

func (s *Store) SetRadialGradientPaintRadiusMagnification(value float32) Result[float32] {
	return assignBounded(&s.radialGradientMagnification, value, radialGradientMagnificationBounds)
}

func (s *Store) RadialGradientPaintFocusFactorX() float32 { return s.radialGradientFocusFactorX }

func (s *Store) RadialGradientPaintFocusFactorY() float32 { return s.radialGradientFocusFactorY }

func (s *Store) DefaultRadialGradientPaintFocusFactor() float32 {
	return DefaultRadialGradientPaintFocusFactor
}

func (s *Store) SetRadialGradientPaintFocusFactorX(value float32) Result[float32] {
	return assignBounded(&s.radialGradientFocusFactorX, value, radialGradientFocusFactorBounds)
}

func (s *Store) SetRadialGradientPaintFocusFactorY(value float32) Result[float32] {
	return assignBounded(&s.radialGradientFocusFactorY, value, radialGradientFocusFactorBounds)
}

func (s *Store) JpegImageQuality() float32 { return s.jpegImageQuality }

func (s *Store) DefaultJpegImageQuality() float32 { return DefaultJpegImageQuality }

// SetJpegImageQuality rejects values outside [0, 1]
func (s *Store) SetJpegImageQuality(quality float32) Result[float32] {
	return assignBounded(&s.jpegImageQuality, quality, jpegImageQualityBounds)
}

func (s *Store) SimulationBoxMagnificationPercentage() int { return s.simulationBoxMagnification }

func (s *Store) DefaultSimulationBoxMagnificationPercentage() int {
	return DefaultSimulationBoxMagnificationPercentage
}

func (s *Store) SetSimulationBoxMagnificationPercentage(percentage int) Result[int] {
	return assignBounded(&s.simulationBoxMagnification, percentage, simulationBoxMagnificationBounds)
}

// ImageVersion is a counter used to name exported images
func (s *Store) ImageVersion() int { return s.imageVersion }

func (s *Store) SetImageVersion(version int) Result[int] {
	return assign(&s.imageVersion, version)
}

// Rotation and particle shift

func (s *Store) RotationAroundXaxisAngle() int { return s.rotationX }

func (s *Store) RotationAroundYaxisAngle() int { return s.rotationY }

func (s *Store) RotationAroundZaxisAngle() int { return s.rotationZ }

func (s *Store) DefaultRotationAngle() int { return DefaultRotationAngle }

// SetRotationAroundXaxisAngle wraps the angle into [0, 360)
func (s *Store) SetRotationAroundXaxisAngle(angle int) Result[int] {
	return assignBounded(&s.rotationX, angle, rotationBounds)
}

func (s *Store) SetRotationAroundYaxisAngle(angle int) Result[int] {
	return assignBounded(&s.rotationY, angle, rotationBounds)
}

func (s *Store) SetRotationAroundZaxisAngle(angle int) Result[int] {
	return assignBounded(&s.rotationZ, angle, rotationBounds)
}

func (s *Store) ParticleShiftX() int { return s.particleShiftX }

func (s *Store) ParticleShiftY() int { return s.particleShiftY }

func (s *Store) ParticleShiftZ() int { return s.particleShiftZ }

func (s *Store) DefaultParticleShift() int { return DefaultParticleShift }

func (s *Store) SetParticleShiftX(shift int) Result[int] {
	return assignBounded(&s.particleShiftX, shift, particleShiftBounds)
}

func (s *Store) SetParticleShiftY(shift int) Result[int] {
	return assignBounded(&s.particleShiftY, shift, particleShiftBounds)
}

func (s *Store) SetParticleShiftZ(shift int) Result[int] {
	return assignBounded(&s.particleShiftZ, shift, particleShiftBounds)
}

// IsParticleShift reports whether any particle shift is set
func (s *Store) IsParticleShift() bool {
	return s.particleShiftX != 0 || s.particleShiftY != 0 || s.particleShiftZ != 0
}
