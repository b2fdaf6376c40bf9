package tracker

import "errors"

// Tracker-specific errors. Every error returned by a gateway wraps one of
// these so callers can distinguish "nothing to do" from "something is
// broken" with errors.Is.
var (
	ErrUnsupportedTracker = errors.New("unsupported tracker")
	ErrNotFound           = errors.New("not found")
	ErrTrackerUnavailable = errors.New("tracker unavailable")
	ErrPermissionDenied   = errors.New("permission denied by tracker")
	ErrInvalidVersion     = errors.New("version does not exist in the issue's project")
	ErrInvalidIssueKey    = errors.New("invalid issue key format")
)
