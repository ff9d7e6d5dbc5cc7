/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package integrate

const (
	PluginIntegrate       = "id31.integrate"
	PluginIntegrateSimple = "id31.integrate_simple"
)

// job input and output fields
const (
	fieldOutputDir     = "output_dir"
	fieldPoniFile      = "poni_file"
	fieldInputFiles    = "input_files"
	fieldMonitorValues = "monitor_values"
	fieldNpt           = "npt"
	fieldUnit          = "unit"
	fieldOutputFiles   = "output_files"

	// single-shot integration fields
	fieldImageFile = "image_file"
	fieldCurveFile = "curve_file"
	fieldNbins     = "nbins"
)

// metrics
const (
	integratorsBuiltTotal  = "dahu_integrate_integrators_built_total"
	integratorsClonedTotal = "dahu_integrate_integrators_cloned_total"
	framesProcessedTotal   = "dahu_integrate_frames_processed_total"
	framesSkippedTotal     = "dahu_integrate_frames_skipped_total"
)
