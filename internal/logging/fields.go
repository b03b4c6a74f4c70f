package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldSource     = "source"

	// Configuration fields.
	FieldFormat = "format"
	FieldBase   = "base"
	FieldJobs   = "jobs"
	FieldLayers = "layers"

	// Statistics fields.
	FieldSources    = "sources"
	FieldErrored    = "errored"
	FieldCharacters = "characters"
	FieldCells      = "cells"
	FieldDuration   = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
