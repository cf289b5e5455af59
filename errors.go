package fontload

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilStore       = errors.New("asset store cannot be nil")
	ErrAlreadyStarted = errors.New("font loading already started")
	ErrNotStarted     = errors.New("font loading not started")

	// Configuration errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid font config")

	// Asset store errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrFontNotLoaded    = errors.New("font not loaded")
)
