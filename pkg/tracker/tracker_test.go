//go:build unit

package tracker

import (
	"testing"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersConfiguredBackends(t *testing.T) {
	cfg := &config.Config{
		Tracker: config.TrackerJira,
		BaseURL: "https://example.atlassian.net",
	}

	manager, err := NewManager(cfg, logger.NewNoopLogger())
	require.NoError(t, err)

	jira, err := manager.GetGateway("jira")
	require.NoError(t, err)
	assert.Equal(t, "jira", jira.Name())

	github, err := manager.GetGateway("github")
	require.NoError(t, err)
	assert.Equal(t, "github", github.Name())
}

func TestNewManager_SkipsJiraWithoutBaseURL(t *testing.T) {
	cfg := &config.Config{Tracker: config.TrackerGitHub}

	manager, err := NewManager(cfg, logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = manager.GetGateway("jira")
	assert.ErrorIs(t, err, ErrUnsupportedTracker)

	github, err := manager.GetGateway("github")
	require.NoError(t, err)
	assert.Equal(t, "github", github.Name())
}

func TestManager_GetGateway_Unsupported(t *testing.T) {
	cfg := &config.Config{Tracker: config.TrackerGitHub}

	manager, err := NewManager(cfg, logger.NewNoopLogger())
	require.NoError(t, err)

	_, err = manager.GetGateway("bugzilla")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedTracker)
	assert.Contains(t, err.Error(), "bugzilla")
}
