package shared

import "fmt"

var (
	// Record errors
	ErrValidation    = fmt.Errorf("validation failed")
	ErrNotFound      = fmt.Errorf("record not found")
	ErrAlreadyExists = fmt.Errorf("record already exists")
	ErrUnknownField  = fmt.Errorf("unknown field")

	// Persistence errors
	ErrMalformedDocument = fmt.Errorf("malformed data document")
	ErrSnapshotNotFound  = fmt.Errorf("snapshot not found")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
