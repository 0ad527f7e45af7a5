package preferences

import (
	domain "mfsim/internal/domain/preferences"
)

// SlicerConfiguration captures the slicer view used to render a simulation movie
type SlicerConfiguration struct {
	GraphicsMode    domain.GraphicsMode
	BoxView         domain.SimulationBoxView
	FirstSliceIndex int
	NumberOfSlices  int
	RotationX       int
	RotationY       int
	RotationZ       int
}

// StepRange is the first and last simulation step shown by the slicer
type StepRange struct {
	First int
	Last  int
}

type savedRotation struct {
	x, y, z int
}

// runtimeState holds values that live only for the current session
type runtimeState struct {
	slicerConfiguration   *SlicerConfiguration
	logEvent              bool
	workingJobResultTasks int
	stepRange             *StepRange
	boxVolumeShapeForZoom bool
	timeStepBoxChangeInfo string
	savedRotation         *savedRotation
	mainFrameMaximumSize  DialogSize
}

func (s *Store) SlicerConfiguration() *SlicerConfiguration {
	return s.runtime.slicerConfiguration
}

// CaptureSlicerConfiguration stores the current slicer view for movie creation
func (s *Store) CaptureSlicerConfiguration() *SlicerConfiguration {
	s.runtime.slicerConfiguration = &SlicerConfiguration{
		GraphicsMode:    s.slicerGraphicsMode,
		BoxView:         s.boxViewDisplay,
		FirstSliceIndex: s.firstSliceIndex,
		NumberOfSlices:  s.numberOfSlicesPerView,
		RotationX:       s.rotationX,
		RotationY:       s.rotationY,
		RotationZ:       s.rotationZ,
	}
	return s.runtime.slicerConfiguration
}

func (s *Store) ClearSlicerConfiguration() {
	s.runtime.slicerConfiguration = nil
}

func (s *Store) IsLogEvent() bool {
	return s.runtime.logEvent
}

func (s *Store) SetLogEvent(value bool) Result[bool] {
	return assign(&s.runtime.logEvent, value)
}

// IsJobWorking reports whether any job result execution task is running.
// The counter only gates the internal path setters.
func (s *Store) IsJobWorking() bool {
	return s.runtime.workingJobResultTasks > 0
}

func (s *Store) NumberOfWorkingJobResultExecutionTasks() int {
	return s.runtime.workingJobResultTasks
}

func (s *Store) IncrementNumberOfWorkingJobResultExecutionTasks() int {
	s.runtime.workingJobResultTasks++
	return s.runtime.workingJobResultTasks
}

func (s *Store) DecrementNumberOfWorkingJobResultExecutionTasks() int {
	if s.runtime.workingJobResultTasks > 0 {
		s.runtime.workingJobResultTasks--
	}
	return s.runtime.workingJobResultTasks
}

// StepRangeSlicer returns the selected slicer steps or nil when none are selected
func (s *Store) StepRangeSlicer() *StepRange {
	return s.runtime.stepRange
}

// SetStepRangeSlicer selects the slicer steps. Negative or reversed ranges are rejected.
func (s *Store) SetStepRangeSlicer(first, last int) Result[StepRange] {
	current := StepRange{}
	if s.runtime.stepRange != nil {
		current = *s.runtime.stepRange
	}
	if first < 0 || last < first {
		return unchanged(current)
	}

	next := StepRange{First: first, Last: last}
	changed := s.runtime.stepRange == nil || current != next
	s.runtime.stepRange = &next
	return Result[StepRange]{Changed: changed, Value: next}
}

func (s *Store) ClearStepRangeSlicer() {
	s.runtime.stepRange = nil
}

func (s *Store) IsBoxVolumeShapeForZoom() bool {
	return s.runtime.boxVolumeShapeForZoom
}

func (s *Store) SetBoxVolumeShapeForZoom(value bool) Result[bool] {
	return assign(&s.runtime.boxVolumeShapeForZoom, value)
}

func (s *Store) TimeStepSimulationBoxChangeInfo() string {
	return s.runtime.timeStepBoxChangeInfo
}

func (s *Store) SetTimeStepSimulationBoxChangeInfo(info string) Result[string] {
	return assign(&s.runtime.timeStepBoxChangeInfo, info)
}

// SaveAndRemoveRotation remembers the current rotation angles and resets them to zero
func (s *Store) SaveAndRemoveRotation() {
	s.runtime.savedRotation = &savedRotation{x: s.rotationX, y: s.rotationY, z: s.rotationZ}
	s.rotationX, s.rotationY, s.rotationZ = 0, 0, 0
}

// RestoreRotation reinstates angles saved by SaveAndRemoveRotation. It
// reports false when nothing was saved.
func (s *Store) RestoreRotation() bool {
	saved := s.runtime.savedRotation
	if saved == nil {
		return false
	}
	s.rotationX, s.rotationY, s.rotationZ = saved.x, saved.y, saved.z
	s.runtime.savedRotation = nil
	return true
}

func (s *Store) MainFrameMaximumSize() DialogSize {
	return s.runtime.mainFrameMaximumSize
}

// SetMainFrameMaximumSize records the usable screen size. A zero size means unknown.
func (s *Store) SetMainFrameMaximumSize(size DialogSize) Result[DialogSize] {
	return assign(&s.runtime.mainFrameMaximumSize, size)
}
