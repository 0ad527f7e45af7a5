package preferences

import (
	domain "mfsim/internal/domain/preferences"
)

func (s *Store) setCompartmentDefaults() {
	s.depthAttenuationCompartment = DefaultDepthAttenuationCompartment
	s.compartmentBodyChangeResponseFactor = DefaultCompartmentBodyChangeResponseFactor
	s.colorGradientAttenuationCompartment = DefaultColorGradientAttenuationCompartment
	s.colorTransparencyCompartment = DefaultColorTransparencyCompartment
	s.isConstantCompartmentBodyVolume = true
	s.numberOfTrialsForCompartment = DefaultNumberOfTrialsForCompartment
}

func (s *Store) setViewerDefaults() {
	s.jmolBackgroundColor = DefaultJmolSimulationBoxBackgroundColor
	s.proteinViewerBackgroundColor = DefaultProteinViewerBackgroundColor
	s.jmolShadePower = DefaultJmolShadePower
	s.jmolAmbientLightPercentage = DefaultJmolAmbientLightPercentage
	s.jmolDiffuseLightPercentage = DefaultJmolDiffuseLightPercentage
	s.jmolSpecularReflectionExponent = DefaultJmolSpecularReflectionExponent
	s.jmolSpecularReflectionPercentage = DefaultJmolSpecularReflectionPercentage
	s.jmolSpecularReflectionPower = DefaultJmolSpecularReflectionPower
	s.particleColorDisplayMode = DefaultParticleColorDisplayMode
	s.isStandardParticleSizeDisplay = false
}

// Compartment graphics

func (s *Store) DepthAttenuationCompartment() float64 { return s.depthAttenuationCompartment }

func (s *Store) DefaultDepthAttenuationCompartment() float64 {
	return DefaultDepthAttenuationCompartment
}

func (s *Store) SetDepthAttenuationCompartment(value float64) Result[float64] {
	return assignBounded(&s.depthAttenuationCompartment, value, depthAttenuationCompartmentBounds)
}

func (s *Store) CompartmentBodyChangeResponseFactor() float64 {
	return s.compartmentBodyChangeResponseFactor
}

func (s *Store) DefaultCompartmentBodyChangeResponseFactor() float64 {
	return DefaultCompartmentBodyChangeResponseFactor
}

func (s *Store) SetCompartmentBodyChangeResponseFactor(value float64) Result[float64] {
	return assignBounded(&s.compartmentBodyChangeResponseFactor, value, compartmentBodyChangeResponseBounds)
}

func (s *Store) ColorGradientAttenuationCompartment() float64 {
	return s.colorGradientAttenuationCompartment
}

func (s *Store) DefaultColorGradientAttenuationCompartment() float64 {
	return DefaultColorGradientAttenuationCompartment
}

func (s *Store) SetColorGradientAttenuationCompartment(value float64) Result[float64] {
	return assignBounded(&s.colorGradientAttenuationCompartment, value, colorGradientAttenuationBounds)
}

func (s *Store) ColorTransparencyCompartment() float32 { return s.colorTransparencyCompartment }

func (s *Store) DefaultColorTransparencyCompartment() float32 {
	return DefaultColorTransparencyCompartment
}

// SetColorTransparencyCompartment rejects values outside [0, 1]
func (s *Store) SetColorTransparencyCompartment(value float32) Result[float32] {
	return assignBounded(&s.colorTransparencyCompartment, value, colorTransparencyCompartmentBounds)
}

func (s *Store) IsConstantCompartmentBodyVolume() bool { return s.isConstantCompartmentBodyVolume }

func (s *Store) SetConstantCompartmentBodyVolume(value bool) Result[bool] {
	return assign(&s.isConstantCompartmentBodyVolume, value)
}

func (s *Store) NumberOfTrialsForCompartment() int { return s.numberOfTrialsForCompartment }

func (s *Store) DefaultNumberOfTrialsForCompartment() int {
	return DefaultNumberOfTrialsForCompartment
}

func (s *Store) SetNumberOfTrialsForCompartment(n int) Result[int] {
	return assignBounded(&s.numberOfTrialsForCompartment, n, numberOfTrialsForCompartmentBounds)
}

// Jmol and protein viewer

func (s *Store) JmolSimulationBoxBackgroundColor() domain.StandardColor {
	return s.jmolBackgroundColor
}

func (s *Store) DefaultJmolSimulationBoxBackgroundColor() domain.StandardColor {
	return DefaultJmolSimulationBoxBackgroundColor
}

func (s *Store) SetJmolSimulationBoxBackgroundColor(color domain.StandardColor) Result[domain.StandardColor] {
	return assignChoice(&s.jmolBackgroundColor, color, domain.StandardColorByName)
}

func (s *Store) ProteinViewerBackgroundColor() domain.StandardColor {
	return s.proteinViewerBackgroundColor
}

func (s *Store) DefaultProteinViewerBackgroundColor() domain.StandardColor {
	return DefaultProteinViewerBackgroundColor
}

func (s *Store) SetProteinViewerBackgroundColor(color domain.StandardColor) Result[domain.StandardColor] {
	return assignChoice(&s.proteinViewerBackgroundColor, color, domain.StandardColorByName)
}

func (s *Store) JmolShadePower() int { return s.jmolShadePower }

func (s *Store) DefaultJmolShadePower() int { return DefaultJmolShadePower }

func (s *Store) SetJmolShadePower(power int) Result[int] {
	return assignBounded(&s.jmolShadePower, power, jmolShadePowerBounds)
}

func (s *Store) JmolAmbientLightPercentage() int { return s.jmolAmbientLightPercentage }

func (s *Store) DefaultJmolAmbientLightPercentage() int { return DefaultJmolAmbientLightPercentage }

func (s *Store) SetJmolAmbientLightPercentage(percentage int) Result[int] {
	return assignBounded(&s.jmolAmbientLightPercentage, percentage, jmolPercentageBounds)
}

func (s *Store) JmolDiffuseLightPercentage() int { return s.jmolDiffuseLightPercentage }

func (s *Store) DefaultJmolDiffuseLightPercentage() int { return DefaultJmolDiffuseLightPercentage }

func (s *Store) SetJmolDiffuseLightPercentage(percentage int) Result[int] {
	return assignBounded(&s.jmolDiffuseLightPercentage, percentage, jmolPercentageBounds)
}

func (s *Store) JmolSpecularReflectionExponent() int { return s.jmolSpecularReflectionExponent }

func (s *Store) DefaultJmolSpecularReflectionExponent() int {
	return DefaultJmolSpecularReflectionExponent
}

func (s *Store) SetJmolSpecularReflectionExponent(exponent int) Result[int] {
	return assignBounded(&s.jmolSpecularReflectionExponent, exponent, jmolSpecularReflectionExponentBounds)
}

func (s *Store) JmolSpecularReflectionPercentage() int { return s.jmolSpecularReflectionPercentage }

func (s *Store) DefaultJmolSpecularReflectionPercentage() int {
	return DefaultJmolSpecularReflectionPercentage
}

func (s *Store) SetJmolSpecularReflectionPercentage(percentage int) Result[int] {
	return assignBounded(&s.jmolSpecularReflectionPercentage, percentage, jmolPercentageBounds)
}

func (s *Store) JmolSpecularReflectionPower() int { return s.jmolSpecularReflectionPower }

func (s *Store) DefaultJmolSpecularReflectionPower() int { return DefaultJmolSpecularReflectionPower }

func (s *Store) SetJmolSpecularReflectionPower(power int) Result[int] {
	return assignBounded(&s.jmolSpecularReflectionPower, power, jmolPercentageBounds)
}

// Molecule display

func (s *Store) ParticleColorDisplayMode() domain.ParticleColorDisplay {
	return s.particleColorDisplayMode
}

func (s *Store) DefaultParticleColorDisplayMode() domain.ParticleColorDisplay {
	return DefaultParticleColorDisplayMode
}

func (s *Store) SetParticleColorDisplayMode(mode domain.ParticleColorDisplay) Result[domain.ParticleColorDisplay] {
	return assignChoice(&s.particleColorDisplayMode, mode, domain.ParticleColorDisplayByName)
}

func (s *Store) IsMoleculeDisplayWithStandardParticleSize() bool {
	return s.isStandardParticleSizeDisplay
}

func (s *Store) SetMoleculeDisplayWithStandardParticleSize(value bool) Result[bool] {
	return assign(&s.isStandardParticleSizeDisplay, value)
}
