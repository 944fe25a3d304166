package shared

import "fmt"

var (
	// Playlist parsing errors
	ErrEntryNotFound     = fmt.Errorf("entry not found")
	ErrUnsupportedFormat = fmt.Errorf("unsupported playlist format")

	// Configuration errors
	ErrMissingConfig   = fmt.Errorf("configuration not found")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrUnknownEncoding = fmt.Errorf("unknown encoding name")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
