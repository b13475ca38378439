package logger

// Standard field names for consistent structured logging across lascore.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Files
	FieldFile = "file"
	FieldPath = "path"
	FieldSize = "size"

	// Errors
	FieldError     = "error"
	FieldErrorType = "error_type"

	// Parsing
	FieldSection  = "section"
	FieldLine     = "line"
	FieldRows     = "rows"
	FieldWarnings = "warnings"

	// Curves
	FieldCurve      = "curve"
	FieldCurveCount = "curve_count"
	FieldSamples    = "samples"
	FieldDepthUnit  = "depth_unit"

	// Timing
	FieldDurationMS = "duration_ms"
)
