// Package messages holds the display labels shown for preference values and
// editable preference entries.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	for key, text := range english {
		if err := message.SetString(language.English, key, text); err != nil {
			panic(fmt.Sprintf("messages: invalid catalog entry %q: %v", key, err))
		}
	}
	printer = message.NewPrinter(language.English)
}

// Get returns the label registered for key, or key itself when unknown
func Get(key string) string {
	return printer.Sprintf(key)
}

// Format renders the label registered for key with args
func Format(key string, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Has reports whether key has a registered label
func Has(key string) bool {
	_, ok := english[key]
	return ok
}

// Number renders n with grouping separators, e.g. 36000 as "36,000"
func Number(n any) string {
	return printer.Sprint(n)
}

var english = map[string]string{
	// Graphics modes
	"GraphicsModePixelAll":           "Pixel (all)",
	"GraphicsModePixelFinal":         "Pixel (final)",
	"GraphicsModeBufferedImageAll":   "Buffered image (all)",
	"GraphicsModeBufferedImageFinal": "Buffered image (final)",
	"GraphicsModeVolatileImageAll":   "Volatile image (all)",
	"GraphicsModeVolatileImageFinal": "Volatile image (final)",
	"ImageStorageMemoryUncompressed": "Memory (uncompressed)",
	"ImageStorageHarddiskCompressed": "Hard disk (compressed)",
	"ParticleColorMoleculeColorMode": "Molecule color",
	"ParticleColorParticleColorMode": "Particle color",
	"BoxViewXZFront":                 "XZ front",
	"BoxViewXZBack":                  "XZ back",
	"BoxViewYZLeft":                  "YZ left",
	"BoxViewYZRight":                 "YZ right",
	"BoxViewXYTop":                   "XY top",
	"BoxViewXYBottom":                "XY bottom",
	"BoxViewUnknown":                 "Unknown view",
	"BooleanTrue":                    "true",
	"BooleanFalse":                   "false",
	"RangeDescription":               "Allowed values: %s to %s",
	"RangeDescriptionOpen":           "Allowed values: %s or more",
	"DirectoryDefaultDescription":    "Empty value uses the default directory %s",

	// Node names
	"NodeGeneral":          "General",
	"NodeSlicer":           "Slicer",
	"NodeCompartment":      "Compartment graphics",
	"NodeJmol":             "Jmol viewer",
	"NodeProteinViewer":    "Protein viewer",
	"NodeJobResult":        "Job results",
	"NodeJobResultArchive": "Job result archive",
	"NodeJobInputFilter":   "Job input filter",
	"NodeJobResultFilter":  "Job result filter",
	"NodeDirectories":      "Directories",
	"NodeParticleSet":      "Particle set",
	"NodeParallelization":  "Parallelization",
	"NodeTiming":           "Timing",
	"NodeMovies":           "Movies",
	"NodeSimulationMovie":  "Simulation movie",
	"NodeChartMovie":       "Chart movie",
	"NodeMoleculeDisplay":  "Molecule display",
	"NodeVolume":           "Volume",
	"NodeDialogs":          "Dialogs",
	"NodeRotationShift":    "Rotation and shift",

	// Editable preference display names
	"JPEG_IMAGE_QUALITY":                                              "JPEG image quality",
	"COLOR_TRANSPARENCY_COMPARTMENT":                                  "Compartment color transparency",
	"COLOR_GRADIENT_ATTENUATION_COMPARTMENT":                          "Compartment color gradient attenuation",
	"COLOR_GRADIENT_ATTENUATION_SLICER":                               "Slicer color gradient attenuation",
	"SPECULAR_WHITE_ATTENUATION_SLICER":                               "Slicer specular white attenuation",
	"COLOR_SHAPE_ATTENUATION_COMPARTMENT":                             "Compartment depth attenuation",
	"COMPARTMENT_BODY_CHANGE_RESPONSE_FACTOR":                         "Compartment body change response factor",
	"MAX_SELECTED_MOLECULE_NUMBER_SLICER":                             "Maximum number of selected molecules",
	"DEPTH_ATTENUATION_SLICER":                                        "Slicer depth attenuation",
	"SHIFTS_SLICER":                                                   "Slicer shift in pixel (x, y)",
	"CUSTOM_DIALOG_SIZE":                                              "Custom dialog size (height, width)",
	"ROTATION_ANGLES":                                                 "Rotation angles (x, y, z)",
	"PARTICLE_SHIFTS":                                                 "Particle shifts (x, y, z)",
	"STEP_INFO_ARRAY_SLICER":                                          "Slicer steps (first, last)",
	"RADIAL_GRADIENT_PAINT_RADIUS_MAGNIFICATION":                      "Radial gradient radius magnification",
	"SPECULAR_WHITE_SIZE_SLICER":                                      "Slicer specular white size",
	"RADIAL_GRADIENT_PAINT_FOCUS_FACTORS":                             "Radial gradient focus factors (x, y)",
	"DELAY_FOR_FILES_IN_MILLISECONDS":                                 "Delay for files [ms]",
	"DELAY_FOR_JOB_START_IN_MILLISECONDS":                             "Delay for job start [ms]",
	"INTERNAL_MFSIM_JOB_PATH":                                         "Internal job directory",
	"INTERNAL_TEMP_PATH":                                              "Internal temp directory",
	"CURRENT_PARTICLE_SET_FILENAME":                                   "Current particle set",
	"FIRST_SLICE_INDEX":                                               "First slice index",
	"NUMBER_OF_ZOOM_VOLUME_BINS":                                      "Number of zoom volume bins",
	"NUMBER_OF_FRAME_POINTS_SLICER":                                   "Number of frame points",
	"TIME_STEP_DISPLAY_SLICER":                                        "Time step display",
	"IS_JOB_RESULT_ARCHIVE_STEP_FILE_INCLUSION":                       "Include step files in archive",
	"IS_VOLUME_SCALING_FOR_CONCENTRATION_CALCULATION":                 "Volume scaling for concentration calculation",
	"IS_JOB_INPUT_INCLUSION":                                          "Include job input in archive",
	"IS_PARTICLE_DISTRICUTION_INCLUSION":                              "Include particle distribution in archive",
	"IS_SIMULATION_STEP_INCLUSION":                                    "Include simulation steps in archive",
	"IS_NEAREST_NEIGHBOR_EVALUATION_INCLUSION":                        "Include nearest neighbor evaluation in archive",
	"IS_JOB_RESULT_ARCHIVE_PROCESS_PARALLEL_IN_BACKGROUND":            "Archive processing in background",
	"IS_JOB_RESULT_ARCHIVE_FILE_UNCOMPRESSED":                         "Uncompressed archive files",
	"IS_JDPD_KERNEL_DOUBLE_PRECISION":                                 "Double precision simulation kernel",
	"IS_JDPD_LOG_LEVEL_EXCEPTION":                                     "Log exceptions only",
	"IS_CONSTANT_COMPARTMENT_BODY_VOLUME":                             "Constant compartment body volume",
	"IS_SIMULATION_BOX_SLICER":                                        "Simulation box slicer",
	"IS_MOLECULE_DISPLAY_WITH_STANDARD_PARTICLE_SIZE":                 "Molecule display with standard particle size",
	"IS_SINGLE_SLICE_DISPLAY":                                         "Single slice display",
	"SLICER_GRAPHICS_MODE":                                            "Slicer graphics mode",
	"SIMULATION_BOX_BACKGROUND_COLOR_SLICER":                          "Slicer background color",
	"MEASUREMENT_COLOR_SLICER":                                        "Measurement color",
	"MOLECULE_SELECTION_COLOR_SLICER":                                 "Molecule selection color",
	"FRAME_COLOR_SLICER":                                              "Frame color",
	"JMOL_SIMULATION_BOX_BACKGROUND_COLOR":                            "Jmol background color",
	"PROTEIN_VIEWER_BACKGROUND_COLOR":                                 "Protein viewer background color",
	"IMAGE_STORAGE_MODE":                                              "Image storage mode",
	"MOLECULE_DISPLAY_SETTINGS_PARTICLE_COLOR_DISPLAY_MODE":           "Particle color display mode",
	"BOX_VIEW_DISPLAY":                                                "Box view",
	"IS_FRAME_DISPLAY_SLICER":                                         "Frame display",
	"JOB_INPUT_FILTER_AFTER_TIMESTAMP":                                "Job inputs after",
	"JOB_INPUT_FILTER_BEFORE_TIMESTAMP":                               "Job inputs before",
	"JOB_INPUT_FILTER_CONTAINS_PHRASE":                                "Job input description contains",
	"JOB_RESULT_FILTER_AFTER_TIMESTAMP":                               "Job results after",
	"JOB_RESULT_FILTER_BEFORE_TIMESTAMP":                              "Job results before",
	"JOB_RESULT_FILTER_CONTAINS_PHRASE":                               "Job result description contains",
	"NUMBER_OF_SLICES":                                                "Number of slices",
	"JMOL_SHADE_POWER":                                                "Jmol shade power",
	"JMOL_AMBIENT_LIGHT_PERCENTAGE":                                   "Jmol ambient light [%%]",
	"JMOL_DIFFUSE_LIGHT_PERCENTAGE":                                   "Jmol diffuse light [%%]",
	"JMOL_SPECULAR_REFLECTION_EXPONENT":                               "Jmol specular reflection exponent",
	"JMOL_SPECULAR_REFLECTION_PERCENTAGE":                             "Jmol specular reflection [%%]",
	"JMOL_SPECULAR_REFLECTION_POWER":                                  "Jmol specular reflection power",
	"NUMBER_OF_PARALLEL_SIMULATIONS":                                  "Number of parallel simulations",
	"NUMBER_OF_PARALLEL_SLICERS":                                      "Number of parallel slicers",
	"NUMBER_OF_PARALLEL_CALCULATORS":                                  "Number of parallel calculators",
	"NUMBER_OF_PARALLEL_PARTICLE_POSITION_WRITERS":                    "Number of parallel particle position writers",
	"NUMBER_OF_AFTER_DECIMAL_SEPARATOR_DIGITS_FOR_PARTICLE_POSITIONS": "Decimal digits for particle positions",
	"MAXIMUM_NUMBER_OF_POSITION_CORRECTION_TRIALS":                    "Maximum position correction trials",
	"MOVIE_QUALITY":                                                   "Movie quality",
	"TIMER_INTERVALL_IN_MILLISECONDS":                                 "Timer interval [ms]",
	"MINIMUM_BOND_LENGTH_DPD":                                         "Minimum bond length (DPD)",
	"MAXIMUM_NUMBER_OF_PARTICLES_FOR_GRAPHICAL_DISPLAY":               "Maximum particles for graphical display",
	"NUMBER_OF_STEPS_FOR_RDF_CALCULATION":                             "Steps for RDF calculation",
	"NUMBER_OF_TRIALS_FOR_COMPARTMENT":                                "Trials for compartment",
	"ANIMATION_SPEED":                                                 "Animation speed",
	"NUMBER_OF_SIMULATION_BOX_CELLS_FOR_PARALLELIZATION":              "Simulation box cells for parallelization",
	"NUMBER_OF_BONDS_FOR_PARALLELIZATION":                             "Bonds for parallelization",
	"NUMBER_OF_STEPS_FOR_JOB_RESTART":                                 "Additional steps for job restart",
	"SIMULATION_BOX_MAGNIFICATION_PERCENTAGE":                         "Simulation box magnification [%%]",
	"NUMBER_OF_SPIN_STEPS":                                            "Number of spin steps",
	"SIMULATION_MOVIE_IMAGE_PATH":                                     "Simulation movie directory",
	"CHART_MOVIE_IMAGE_PATH":                                          "Chart movie directory",

	// Application dialogs
	"TitlePreferences":       "Preferences",
	"TitleStartupFailure":    "MFsim cannot start",
	"StartupFailureMessage":  "The MFsim data directory could not be created: %s",
	"DialogSelectDirectory":  "Select directory",
	"DialogSelectFile":       "Select file",
	"DialogSaveFile":         "Save file",
	"FilterParticleSetFiles": "Particle set files (*.txt)",
	"FilterSchemaFiles":      "Schema files (*.xml)",
}
