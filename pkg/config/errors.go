package config

import "errors"

// Configuration errors.
var (
	ErrConfigNotInitialized = errors.New("configuration is not initialized")
	ErrConfigFileParse      = errors.New("failed to parse config file")
	ErrTrackerEmpty         = errors.New("tracker cannot be empty")
	ErrUnknownTracker       = errors.New("unknown tracker")
	ErrBaseURLEmpty         = errors.New("base URL cannot be empty for the jira tracker")
)
