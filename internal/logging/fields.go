package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldFlavor = "flavor"
	FieldFormat = "format"
	FieldJobs   = "jobs"
	FieldDetect = "detect_languages"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesErrored    = "files_errored"
	FieldLines           = "lines"
	FieldFences          = "fences"
	FieldUnclosedFences  = "unclosed_fences"
	FieldDisagreements   = "disagreements"

	// Per-file fields.
	FieldLine     = "line"
	FieldKind     = "kind"
	FieldLanguage = "language"
	FieldDuration = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
