package preferences

func (s *Store) setJobDefaults() {
	s.isParticleUpdateForJobInput = false
	s.isJobResultArchiveStepFileInclusion = true
	s.isVolumeScalingForConcentrationCalculation = true
	s.isJobInputInclusion = true
	s.isParticleDistributionInclusion = true
	s.isSimulationStepInclusion = true
	s.isNearestNeighborEvaluationInclusion = true
	s.isJobResultArchiveProcessParallelInBackground = false
	s.isJobResultArchiveFileUncompressed = true
	s.isDeterministicRandom = true
	s.isJdpdKernelDoublePrecision = true
	s.isJdpdLogLevelException = true
	s.delayForFilesInMilliseconds = DefaultDelayForFilesInMilliseconds
	s.delayForJobStartInMilliseconds = DefaultDelayForJobStartInMilliseconds
	s.timerIntervalInMilliseconds = DefaultTimerIntervalInMilliseconds
	s.minimumBondLengthDpd = DefaultMinimumBondLengthDpd
	s.maximumNumberOfParticlesForGraphicalDisplay = DefaultMaximumNumberOfParticlesForGraphicalDisplay
	s.numberOfStepsForRdfCalculation = DefaultNumberOfStepsForRdfCalculation
	s.numberOfVolumeBins = DefaultNumberOfVolumeBins
	s.animationSpeed = DefaultAnimationSpeed
	s.numberOfSimulationBoxCellsForParallelization = DefaultNumberOfSimulationBoxCellsForParallelization
	s.numberOfBondsForParallelization = DefaultNumberOfBondsForParallelization
	s.numberOfAdditionalStepsForJobRestart = DefaultNumberOfAdditionalStepsForJobRestart
	s.numberOfParallelSimulations = DefaultNumberOfParallelTasks
	s.numberOfParallelSlicers = DefaultNumberOfParallelTasks
	s.numberOfParallelCalculators = DefaultNumberOfParallelTasks
	s.numberOfParallelParticlePositionWriters = DefaultNumberOfParallelTasks
	s.numberOfAfterDecimalDigitsForParticlePositions = DefaultNumberOfAfterDecimalDigitsForParticlePositions
	s.maximumNumberOfPositionCorrectionTrials = DefaultMaximumNumberOfPositionCorrectionTrials
	s.movieQuality = DefaultMovieQuality
}

// Job input and job result archive flags

func (s *Store) IsParticleUpdateForJobInput() bool { return s.isParticleUpdateForJobInput }

func (s *Store) SetParticleUpdateForJobInput(value bool) Result[bool] {
	return assign(&s.isParticleUpdateForJobInput, value)
}

func (s *Store) IsJobResultArchiveStepFileInclusion() bool {
	return s.isJobResultArchiveStepFileInclusion
}

func (s *Store) SetJobResultArchiveStepFileInclusion(value bool) Result[bool] {
	return assign(&s.isJobResultArchiveStepFileInclusion, value)
}

func (s *Store) IsVolumeScalingForConcentrationCalculation() bool {
	return s.isVolumeScalingForConcentrationCalculation
}

func (s *Store) SetVolumeScalingForConcentrationCalculation(value bool) Result[bool] {
	return assign(&s.isVolumeScalingForConcentrationCalculation, value)
}

func (s *Store) IsJobInputInclusion() bool { return s.isJobInputInclusion }

func (s *Store) SetJobInputInclusion(value bool) Result[bool] {
	return assign(&s.isJobInputInclusion, value)
}

func (s *Store) IsParticleDistributionInclusion() bool { return s.isParticleDistributionInclusion }

func (s *Store) SetParticleDistributionInclusion(value bool) Result[bool] {
	return assign(&s.isParticleDistributionInclusion, value)
}

func (s *Store) IsSimulationStepInclusion() bool { return s.isSimulationStepInclusion }

func (s *Store) SetSimulationStepInclusion(value bool) Result[bool] {
	return assign(&s.isSimulationStepInclusion, value)
}

func (s *Store) IsNearestNeighborEvaluationInclusion() bool {
	return s.isNearestNeighborEvaluationInclusion
}

func (s *Store) SetNearestNeighborEvaluationInclusion(value bool) Result[bool] {
	return assign(&s.isNearestNeighborEvaluationInclusion, value)
}

func (s *Store) IsJobResultArchiveProcessParallelInBackground() bool {
	return s.isJobResultArchiveProcessParallelInBackground
}

func (s *Store) SetJobResultArchiveProcessParallelInBackground(value bool) Result[bool] {
	return assign(&s.isJobResultArchiveProcessParallelInBackground, value)
}

func (s *Store) IsJobResultArchiveFileUncompressed() bool {
	return s.isJobResultArchiveFileUncompressed
}

func (s *Store) SetJobResultArchiveFileUncompressed(value bool) Result[bool] {
	return assign(&s.isJobResultArchiveFileUncompressed, value)
}

// Simulation kernel

func (s *Store) IsDeterministicRandom() bool { return s.isDeterministicRandom }

func (s *Store) SetDeterministicRandom(value bool) Result[bool] {
	return assign(&s.isDeterministicRandom, value)
}

func (s *Store) IsJdpdKernelDoublePrecision() bool { return s.isJdpdKernelDoublePrecision }

func (s *Store) SetJdpdKernelDoublePrecision(value bool) Result[bool] {
	return assign(&s.isJdpdKernelDoublePrecision, value)
}

// IsJdpdLogLevelException reports whether the simulation kernel logs exceptions only
func (s *Store) IsJdpdLogLevelException() bool { return s.isJdpdLogLevelException }

func (s *Store) SetJdpdLogLevelException(value bool) Result[bool] {
	return assign(&s.isJdpdLogLevelException, value)
}

func (s *Store) MinimumBondLengthDpd() float64 { return s.minimumBondLengthDpd }

func (s *Store) DefaultMinimumBondLengthDpd() float64 { return DefaultMinimumBondLengthDpd }

func (s *Store) SetMinimumBondLengthDpd(length float64) Result[float64] {
	return assignBounded(&s.minimumBondLengthDpd, length, minimumBondLengthDpdBounds)
}

func (s *Store) NumberOfAfterDecimalDigitsForParticlePositions() int {
	return s.numberOfAfterDecimalDigitsForParticlePositions
}

func (s *Store) DefaultNumberOfAfterDecimalDigitsForParticlePositions() int {
	return DefaultNumberOfAfterDecimalDigitsForParticlePositions
}

func (s *Store) SetNumberOfAfterDecimalDigitsForParticlePositions(digits int) Result[int] {
	return assignBounded(&s.numberOfAfterDecimalDigitsForParticlePositions, digits, afterDecimalDigitsBounds)
}

func (s *Store) MaximumNumberOfPositionCorrectionTrials() int {
	return s.maximumNumberOfPositionCorrectionTrials
}

func (s *Store) DefaultMaximumNumberOfPositionCorrectionTrials() int {
	return DefaultMaximumNumberOfPositionCorrectionTrials
}

func (s *Store) SetMaximumNumberOfPositionCorrectionTrials(trials int) Result[int] {
	return assignBounded(&s.maximumNumberOfPositionCorrectionTrials, trials, positionCorrectionTrialsBounds)
}

func (s *Store) NumberOfAdditionalStepsForJobRestart() int {
	return s.numberOfAdditionalStepsForJobRestart
}

func (s *Store) DefaultNumberOfAdditionalStepsForJobRestart() int {
	return DefaultNumberOfAdditionalStepsForJobRestart
}

func (s *Store) SetNumberOfAdditionalStepsForJobRestart(steps int) Result[int] {
	return assignBounded(&s.numberOfAdditionalStepsForJobRestart, steps, additionalStepsForJobRestartBounds)
}

// Timing

func (s *Store) DelayForFilesInMilliseconds() int64 { return s.delayForFilesInMilliseconds }

func (s *Store) DefaultDelayForFilesInMilliseconds() int64 {
	return DefaultDelayForFilesInMilliseconds
}

func (s *Store) SetDelayForFilesInMilliseconds(delay int64) Result[int64] {
	return assignBounded(&s.delayForFilesInMilliseconds, delay, delayForFilesBounds)
}

func (s *Store) DelayForJobStartInMilliseconds() int64 { return s.delayForJobStartInMilliseconds }

func (s *Store) DefaultDelayForJobStartInMilliseconds() int64 {
	return DefaultDelayForJobStartInMilliseconds
}

func (s *Store) SetDelayForJobStartInMilliseconds(delay int64) Result[int64] {
	return assignBounded(&s.delayForJobStartInMilliseconds, delay, delayForJobStartBounds)
}

func (s *Store) TimerIntervalInMilliseconds() int { return s.timerIntervalInMilliseconds }

func (s *Store) DefaultTimerIntervalInMilliseconds() int { return DefaultTimerIntervalInMilliseconds }

func (s *Store) SetTimerIntervalInMilliseconds(interval int) Result[int] {
	return assignBounded(&s.timerIntervalInMilliseconds, interval, timerIntervalBounds)
}

func (s *Store) AnimationSpeed() int { return s.animationSpeed }

func (s *Store) DefaultAnimationSpeed() int { return DefaultAnimationSpeed }

func (s *Store) SetAnimationSpeed(speed int) Result[int] {
	return assignBounded(&s.animationSpeed, speed, animationSpeedBounds)
}

func (s *Store) MovieQuality() int { return s.movieQuality }

func (s *Store) DefaultMovieQuality() int { return DefaultMovieQuality }

// SetMovieQuality takes a constant rate factor style quality in [1, 36]
func (s *Store) SetMovieQuality(quality int) Result[int] {
	return assignBounded(&s.movieQuality, quality, movieQualityBounds)
}

// Job result evaluation

func (s *Store) MaximumNumberOfParticlesForGraphicalDisplay() int {
	return s.maximumNumberOfParticlesForGraphicalDisplay
}

func (s *Store) DefaultMaximumNumberOfParticlesForGraphicalDisplay() int {
	return DefaultMaximumNumberOfParticlesForGraphicalDisplay
}

func (s *Store) SetMaximumNumberOfParticlesForGraphicalDisplay(n int) Result[int] {
	return assignBounded(&s.maximumNumberOfParticlesForGraphicalDisplay, n, maximumParticlesForDisplayBounds)
}

func (s *Store) NumberOfStepsForRdfCalculation() int { return s.numberOfStepsForRdfCalculation }

func (s *Store) DefaultNumberOfStepsForRdfCalculation() int {
	return DefaultNumberOfStepsForRdfCalculation
}

func (s *Store) SetNumberOfStepsForRdfCalculation(steps int) Result[int] {
	return assignBounded(&s.numberOfStepsForRdfCalculation, steps, numberOfStepsForRdfBounds)
}

// NumberOfVolumeBins is the number of bins per axis used for zoomed volume views
func (s *Store) NumberOfVolumeBins() int { return s.numberOfVolumeBins }

func (s *Store) DefaultNumberOfVolumeBins() int { return DefaultNumberOfVolumeBins }

func (s *Store) SetNumberOfVolumeBins(bins int) Result[int] {
	return assignBounded(&s.numberOfVolumeBins, bins, numberOfVolumeBinsBounds)
}

// Parallelization

func (s *Store) NumberOfSimulationBoxCellsForParallelization() int {
	return s.numberOfSimulationBoxCellsForParallelization
}

func (s *Store) DefaultNumberOfSimulationBoxCellsForParallelization() int {
	return DefaultNumberOfSimulationBoxCellsForParallelization
}

func (s *Store) SetNumberOfSimulationBoxCellsForParallelization(n int) Result[int] {
	return assignBounded(&s.numberOfSimulationBoxCellsForParallelization, n, parallelizationThresholdBounds)
}

func (s *Store) NumberOfBondsForParallelization() int { return s.numberOfBondsForParallelization }

func (s *Store) DefaultNumberOfBondsForParallelization() int {
	return DefaultNumberOfBondsForParallelization
}

func (s *Store) SetNumberOfBondsForParallelization(n int) Result[int] {
	return assignBounded(&s.numberOfBondsForParallelization, n, parallelizationThresholdBounds)
}

func (s *Store) NumberOfParallelSimulations() int { return s.numberOfParallelSimulations }

func (s *Store) SetNumberOfParallelSimulations(n int) Result[int] {
	return assignBounded(&s.numberOfParallelSimulations, n, numberOfParallelTasksBounds)
}

func (s *Store) NumberOfParallelSlicers() int { return s.numberOfParallelSlicers }

func (s *Store) SetNumberOfParallelSlicers(n int) Result[int] {
	return assignBounded(&s.numberOfParallelSlicers, n, numberOfParallelTasksBounds)
}

func (s *Store) NumberOfParallelCalculators() int { return s.numberOfParallelCalculators }

func (s *Store) SetNumberOfParallelCalculators(n int) Result[int] {
	return assignBounded(&s.numberOfParallelCalculators, n, numberOfParallelTasksBounds)
}

func (s *Store) NumberOfParallelParticlePositionWriters() int {
	return s.numberOfParallelParticlePositionWriters
}

func (s *Store) SetNumberOfParallelParticlePositionWriters(n int) Result[int] {
	return assignBounded(&s.numberOfParallelParticlePositionWriters, n, numberOfParallelTasksBounds)
}

// DefaultNumberOfParallelTasks is the default of every NumberOfParallel* field
func (s *Store) DefaultNumberOfParallelTasks() int { return DefaultNumberOfParallelTasks }
