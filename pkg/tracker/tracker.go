// Package tracker provides the gateway boundary through which the core
// reads and writes issue-tracker state.
package tracker

import (
	"context"
	"fmt"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/model"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=tracker.go -destination=mockgateway.gen.go -package=tracker

// Gateway interface defines the capabilities the core requires from a
// tracker backend. Implementations map the tracker's wire shapes to the
// model types at this boundary, so the core never depends on a tracker's
// API representation.
type Gateway interface {
	// Name returns the name of the tracker backend.
	Name() string

	// GetEpic fetches an epic with all child stories populated, in
	// tracker-reported order. Fails with ErrNotFound if the key does not
	// resolve to an epic.
	GetEpic(ctx context.Context, key string) (*model.Epic, error)

	// GetFixVersion fetches the fix version currently assigned to an issue,
	// or nil if the issue has none.
	GetFixVersion(ctx context.Context, issueKey string) (*model.FixVersion, error)

	// AssignFixVersion sets the fix version of an issue. Fails with
	// ErrInvalidVersion if the version does not exist in the issue's project.
	AssignFixVersion(ctx context.Context, issueKey, versionID string) error

	// ListUnreleasedVersions lists all unreleased fix versions of a project.
	ListUnreleasedVersions(ctx context.Context, projectKey string) ([]model.FixVersion, error)

	// ListEpicsForVersion lists the epics assigned to a fix version, each
	// with child stories populated.
	ListEpicsForVersion(ctx context.Context, projectKey, versionID string) ([]model.Epic, error)

	// ListEpicsByLabel lists the epics of a project carrying a label.
	ListEpicsByLabel(ctx context.Context, projectKey, label string) ([]model.Epic, error)

	// AddComment posts a comment on an issue.
	AddComment(ctx context.Context, issueKey, body string) error

	// IssueURL returns the browse URL for an issue key.
	IssueURL(issueKey string) string
}

// ManagerInterface defines the interface for tracker backend management.
type ManagerInterface interface {
	// GetGateway returns the gateway implementation for the given name.
	GetGateway(name string) (Gateway, error)
}

// Manager manages tracker backends and provides a unified interface.
type Manager struct {
	gateways map[string]Gateway
	logger   logger.Logger
}

// NewManager creates a new tracker manager with registered backends.
// Credentials are resolved from the configuration once, here; the core
// never reads ambient state.
func NewManager(cfg *config.Config, log logger.Logger) (*Manager, error) {
	m := &Manager{
		gateways: make(map[string]Gateway),
		logger:   log,
	}

	if err := m.registerGateways(cfg); err != nil {
		return nil, err
	}

	return m, nil
}

// registerGateways registers all available tracker backends. The Jira
// backend needs a base URL, so it is only registered when one is configured.
func (m *Manager) registerGateways(cfg *config.Config) error {
	if cfg.BaseURL != "" {
		jira, err := NewJira(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize jira backend: %w", err)
		}
		m.gateways[jira.Name()] = jira
	}

	github := NewGitHub(cfg)
	m.gateways[github.Name()] = github

	return nil
}

// GetGateway returns the gateway implementation for the given name.
func (m *Manager) GetGateway(name string) (Gateway, error) {
	gateway, exists := m.gateways[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTracker, name)
	}
	return gateway, nil
}
