package preferences

import (
	"sort"

	"mfsim/internal/messages"
)

type enumeration[T ~string] struct {
	values    []T
	labelKeys map[T]string
}

func (e enumeration[T]) representation(value T) string {
	if key, ok := e.labelKeys[value]; ok {
		return messages.Get(key)
	}
	return string(value)
}

func (e enumeration[T]) fromRepresentation(representation string) (T, bool) {
	for _, value := range e.values {
		if e.representation(value) == representation {
			return value, true
		}
	}
	var zero T
	return zero, false
}

func (e enumeration[T]) fromName(name string) (T, bool) {
	for _, value := range e.values {
		if string(value) == name {
			return value, true
		}
	}
	var zero T
	return zero, false
}

func (e enumeration[T]) representations() []string {
	result := make([]string, len(e.values))
	for i, value := range e.values {
		result[i] = e.representation(value)
	}
	return result
}

// GraphicsMode selects how the slicer renders images
type GraphicsMode string

const (
	GraphicsModePixelAll           GraphicsMode = "PIXEL_ALL"
	GraphicsModePixelFinal         GraphicsMode = "PIXEL_FINAL"
	GraphicsModeBufferedImageAll   GraphicsMode = "BUFFERED_IMAGE_ALL"
	GraphicsModeBufferedImageFinal GraphicsMode = "BUFFERED_IMAGE_FINAL"
	GraphicsModeVolatileImageAll   GraphicsMode = "VOLATILE_IMAGE_ALL"
	GraphicsModeVolatileImageFinal GraphicsMode = "VOLATILE_IMAGE_FINAL"
)

var graphicsModes = enumeration[GraphicsMode]{
	values: []GraphicsMode{
		GraphicsModePixelAll, GraphicsModePixelFinal,
		GraphicsModeBufferedImageAll, GraphicsModeBufferedImageFinal,
		GraphicsModeVolatileImageAll, GraphicsModeVolatileImageFinal,
	},
	labelKeys: map[GraphicsMode]string{
		GraphicsModePixelAll:           "GraphicsModePixelAll",
		GraphicsModePixelFinal:         "GraphicsModePixelFinal",
		GraphicsModeBufferedImageAll:   "GraphicsModeBufferedImageAll",
		GraphicsModeBufferedImageFinal: "GraphicsModeBufferedImageFinal",
		GraphicsModeVolatileImageAll:   "GraphicsModeVolatileImageAll",
		GraphicsModeVolatileImageFinal: "GraphicsModeVolatileImageFinal",
	},
}

func (m GraphicsMode) Representation() string { return graphicsModes.representation(m) }

// ParseGraphicsMode maps a display label back to its graphics mode
func ParseGraphicsMode(representation string) (GraphicsMode, bool) {
	return graphicsModes.fromRepresentation(representation)
}

func GraphicsModeByName(name string) (GraphicsMode, bool) { return graphicsModes.fromName(name) }

func GraphicsModeRepresentations() []string { return graphicsModes.representations() }

// StandardColor is one of the fixed colors offered for graphics settings
type StandardColor string

const (
	ColorBlack   StandardColor = "BLACK"
	ColorWhite   StandardColor = "WHITE"
	ColorRed     StandardColor = "RED"
	ColorGreen   StandardColor = "GREEN"
	ColorBlue    StandardColor = "BLUE"
	ColorYellow  StandardColor = "YELLOW"
	ColorMagenta StandardColor = "MAGENTA"
	ColorCyan    StandardColor = "CYAN"
	ColorViolet  StandardColor = "VIOLET"
	ColorPurple  StandardColor = "PURPLE"
	ColorGrey    StandardColor = "GREY"
	ColorBeige   StandardColor = "BEIGE"
	ColorOrange  StandardColor = "ORANGE"
	ColorPink    StandardColor = "PINK"
	ColorMint    StandardColor = "MINT"
	ColorIndigo  StandardColor = "INDIGO"
	ColorGold    StandardColor = "GOLD"
	ColorOlive   StandardColor = "OLIVE"
	ColorCobalt  StandardColor = "COBALT"
	ColorBrown   StandardColor = "BROWN"
	ColorPlum    StandardColor = "PLUM"
	ColorBanana  StandardColor = "BANANA"
	ColorCarrot  StandardColor = "CARROT"
	ColorGUI     StandardColor = "GUI"
)

// Colors are represented by their names
var standardColors = enumeration[StandardColor]{
	values: []StandardColor{
		ColorBlack, ColorWhite, ColorRed, ColorGreen, ColorBlue, ColorYellow,
		ColorMagenta, ColorCyan, ColorViolet, ColorPurple, ColorGrey, ColorBeige,
		ColorOrange, ColorPink, ColorMint, ColorIndigo, ColorGold, ColorOlive,
		ColorCobalt, ColorBrown, ColorPlum, ColorBanana, ColorCarrot, ColorGUI,
	},
}

func (c StandardColor) Representation() string { return standardColors.representation(c) }

// ParseStandardColor maps a color name to its color
func ParseStandardColor(representation string) (StandardColor, bool) {
	return standardColors.fromRepresentation(representation)
}

func StandardColorByName(name string) (StandardColor, bool) { return standardColors.fromName(name) }

// StandardColorRepresentations returns all color names in alphabetical order
func StandardColorRepresentations() []string {
	result := standardColors.representations()
	sort.Strings(result)
	return result
}

// ImageStorage selects where slicer images are kept
type ImageStorage string

const (
	ImageStorageMemoryUncompressed ImageStorage = "MEMORY_UNCOMPRESSED"
	ImageStorageHarddiskCompressed ImageStorage = "HARDDISK_COMPRESSED"
)

var imageStorages = enumeration[ImageStorage]{
	values: []ImageStorage{ImageStorageMemoryUncompressed, ImageStorageHarddiskCompressed},
	labelKeys: map[ImageStorage]string{
		ImageStorageMemoryUncompressed: "ImageStorageMemoryUncompressed",
		ImageStorageHarddiskCompressed: "ImageStorageHarddiskCompressed",
	},
}

func (s ImageStorage) Representation() string { return imageStorages.representation(s) }

func ParseImageStorage(representation string) (ImageStorage, bool) {
	return imageStorages.fromRepresentation(representation)
}

func ImageStorageByName(name string) (ImageStorage, bool) { return imageStorages.fromName(name) }

func ImageStorageRepresentations() []string { return imageStorages.representations() }

// ParticleColorDisplay selects whether particles are colored by molecule or by particle
type ParticleColorDisplay string

const (
	ParticleColorMoleculeColorMode ParticleColorDisplay = "MOLECULE_COLOR_MODE"
	ParticleColorParticleColorMode ParticleColorDisplay = "PARTICLE_COLOR_MODE"
)

var particleColorDisplays = enumeration[ParticleColorDisplay]{
	values: []ParticleColorDisplay{ParticleColorMoleculeColorMode, ParticleColorParticleColorMode},
	labelKeys: map[ParticleColorDisplay]string{
		ParticleColorMoleculeColorMode: "ParticleColorMoleculeColorMode",
		ParticleColorParticleColorMode: "ParticleColorParticleColorMode",
	},
}

func (d ParticleColorDisplay) Representation() string { return particleColorDisplays.representation(d) }

func ParseParticleColorDisplay(representation string) (ParticleColorDisplay, bool) {
	return particleColorDisplays.fromRepresentation(representation)
}

func ParticleColorDisplayByName(name string) (ParticleColorDisplay, bool) {
	return particleColorDisplays.fromName(name)
}

func ParticleColorDisplayRepresentations() []string { return particleColorDisplays.representations() }

// SimulationBoxView is the viewing direction onto the simulation box
type SimulationBoxView string

const (
	BoxViewXZFront  SimulationBoxView = "XZ_FRONT"
	BoxViewXZBack   SimulationBoxView = "XZ_BACK"
	BoxViewYZLeft   SimulationBoxView = "YZ_LEFT"
	BoxViewYZRight  SimulationBoxView = "YZ_RIGHT"
	BoxViewXYTop    SimulationBoxView = "XY_TOP"
	BoxViewXYBottom SimulationBoxView = "XY_BOTTOM"
)

var simulationBoxViews = enumeration[SimulationBoxView]{
	values: []SimulationBoxView{BoxViewXZFront, BoxViewXZBack, BoxViewYZLeft, BoxViewYZRight, BoxViewXYTop, BoxViewXYBottom},
	labelKeys: map[SimulationBoxView]string{
		BoxViewXZFront:  "BoxViewXZFront",
		BoxViewXZBack:   "BoxViewXZBack",
		BoxViewYZLeft:   "BoxViewYZLeft",
		BoxViewYZRight:  "BoxViewYZRight",
		BoxViewXYTop:    "BoxViewXYTop",
		BoxViewXYBottom: "BoxViewXYBottom",
	},
}

func (v SimulationBoxView) Representation() string { return simulationBoxViews.representation(v) }

func ParseSimulationBoxView(representation string) (SimulationBoxView, bool) {
	return simulationBoxViews.fromRepresentation(representation)
}

func SimulationBoxViewByName(name string) (SimulationBoxView, bool) {
	return simulationBoxViews.fromName(name)
}

func SimulationBoxViewRepresentations() []string { return simulationBoxViews.representations() }
