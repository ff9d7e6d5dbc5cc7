/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 */

package iplugin

// Engine-owned fields of the job input and output.
const (
	FieldPluginName = "plugin_name"
	FieldJobID      = "job_id"
	FieldResult     = "result"
	FieldLogging    = "logging"
	FieldError      = "error"
)
