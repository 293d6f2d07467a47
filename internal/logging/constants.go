package logging

// Field names used in structured log entries.
const (
	FieldFile      = "file_path"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldPosition  = "position"
	FieldRows      = "rows"
	FieldCategory  = "category"
	FieldDate      = "date"
	FieldFormat    = "format"
	FieldCommand   = "command"
	FieldError     = "error"
)
