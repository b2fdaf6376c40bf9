package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lerenn/release-manager/pkg/model"
)

const (
	// defaultRetryInitialInterval is the first retry delay.
	defaultRetryInitialInterval = 500 * time.Millisecond
	// defaultRetryMaxElapsed bounds the total time spent retrying one call.
	defaultRetryMaxElapsed = 15 * time.Second
)

// RetryOpts contains optional parameters for NewRetrying.
type RetryOpts struct {
	InitialInterval time.Duration
	MaxElapsedTime  time.Duration
}

// retrying decorates a Gateway with exponential backoff on transient
// failures. Only ErrTrackerUnavailable is retried; NotFound, permission and
// invalid-version errors are permanent. Reconciliation and rendering stay
// free of transport concerns because retries live here, not in the engine
// or renderer.
type retrying struct {
	next            Gateway
	initialInterval time.Duration
	maxElapsedTime  time.Duration
}

// NewRetrying wraps a Gateway with retry behavior.
func NewRetrying(next Gateway, opts ...RetryOpts) Gateway {
	r := &retrying{
		next:            next,
		initialInterval: defaultRetryInitialInterval,
		maxElapsedTime:  defaultRetryMaxElapsed,
	}
	if len(opts) > 0 {
		if opts[0].InitialInterval > 0 {
			r.initialInterval = opts[0].InitialInterval
		}
		if opts[0].MaxElapsedTime > 0 {
			r.maxElapsedTime = opts[0].MaxElapsedTime
		}
	}
	return r
}

// retry runs op with exponential backoff until it succeeds, fails
// permanently, or the backoff budget is exhausted.
func (r *retrying) retry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxElapsedTime = r.maxElapsedTime

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrTrackerUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(b, ctx))
}

// Name returns the name of the wrapped tracker backend.
func (r *retrying) Name() string {
	return r.next.Name()
}

// GetEpic fetches an epic with retries on transient failures.
func (r *retrying) GetEpic(ctx context.Context, key string) (*model.Epic, error) {
	var epic *model.Epic
	err := r.retry(ctx, func() error {
		var err error
		epic, err = r.next.GetEpic(ctx, key)
		return err
	})
	return epic, err
}

// GetFixVersion fetches an issue's fix version with retries on transient
// failures.
func (r *retrying) GetFixVersion(ctx context.Context, issueKey string) (*model.FixVersion, error) {
	var version *model.FixVersion
	err := r.retry(ctx, func() error {
		var err error
		version, err = r.next.GetFixVersion(ctx, issueKey)
		return err
	})
	return version, err
}

// AssignFixVersion sets an issue's fix version with retries on transient
// failures.
func (r *retrying) AssignFixVersion(ctx context.Context, issueKey, versionID string) error {
	return r.retry(ctx, func() error {
		return r.next.AssignFixVersion(ctx, issueKey, versionID)
	})
}

// ListUnreleasedVersions lists unreleased versions with retries on
// transient failures.
func (r *retrying) ListUnreleasedVersions(ctx context.Context, projectKey string) ([]model.FixVersion, error) {
	var versions []model.FixVersion
	err := r.retry(ctx, func() error {
		var err error
		versions, err = r.next.ListUnreleasedVersions(ctx, projectKey)
		return err
	})
	return versions, err
}

// ListEpicsForVersion lists a version's epics with retries on transient
// failures.
func (r *retrying) ListEpicsForVersion(ctx context.Context, projectKey, versionID string) ([]model.Epic, error) {
	var epics []model.Epic
	err := r.retry(ctx, func() error {
		var err error
		epics, err = r.next.ListEpicsForVersion(ctx, projectKey, versionID)
		return err
	})
	return epics, err
}

// ListEpicsByLabel lists a project's labeled epics with retries on
// transient failures.
func (r *retrying) ListEpicsByLabel(ctx context.Context, projectKey, label string) ([]model.Epic, error) {
	var epics []model.Epic
	err := r.retry(ctx, func() error {
		var err error
		epics, err = r.next.ListEpicsByLabel(ctx, projectKey, label)
		return err
	})
	return epics, err
}

// AddComment posts a comment with retries on transient failures.
func (r *retrying) AddComment(ctx context.Context, issueKey, body string) error {
	return r.retry(ctx, func() error {
		return r.next.AddComment(ctx, issueKey, body)
	})
}

// IssueURL returns the browse URL for an issue key.
func (r *retrying) IssueURL(issueKey string) string {
	return r.next.IssueURL(issueKey)
}
