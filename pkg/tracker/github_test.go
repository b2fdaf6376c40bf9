//go:build unit

package tracker

import (
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHub_Name(t *testing.T) {
	g := NewGitHub(&config.Config{Tracker: config.TrackerGitHub})
	assert.Equal(t, "github", g.Name())
}

func TestParseGitHubIssueKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		owner   string
		repo    string
		number  int
		wantErr bool
	}{
		{name: "valid", key: "acme/widgets#42", owner: "acme", repo: "widgets", number: 42},
		{name: "missing number", key: "acme/widgets", wantErr: true},
		{name: "missing repo", key: "acme#42", wantErr: true},
		{name: "jira style key", key: "PROJ-42", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, number, err := parseGitHubIssueKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidIssueKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
			assert.Equal(t, tt.number, number)
		})
	}
}

func TestParseGitHubProjectKey(t *testing.T) {
	owner, repo, err := parseGitHubProjectKey("acme/widgets")
	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", repo)

	_, _, err = parseGitHubProjectKey("acme")
	assert.ErrorIs(t, err, ErrInvalidIssueKey)
}

func TestFormatGitHubIssueKey(t *testing.T) {
	assert.Equal(t, "acme/widgets#7", formatGitHubIssueKey("acme", "widgets", 7))
}

func TestGitHub_IssueURL(t *testing.T) {
	g := NewGitHub(&config.Config{Tracker: config.TrackerGitHub})

	assert.Equal(t, "https://github.com/acme/widgets/issues/42", g.IssueURL("acme/widgets#42"))
	assert.Equal(t, "", g.IssueURL("not-a-key"))
}

func TestMapGitHubMilestone(t *testing.T) {
	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	v := mapGitHubMilestone(&github.Milestone{
		Number: github.Int(3),
		Title:  github.String("v2.0"),
		State:  github.String("open"),
		DueOn:  &github.Timestamp{Time: due},
	})

	require.NotNil(t, v)
	assert.Equal(t, "3", v.ID)
	assert.Equal(t, "v2.0", v.Name)
	assert.False(t, v.Released)
	require.NotNil(t, v.ReleaseDate)
	assert.Equal(t, "2024-06-01", v.ReleaseDate.Format("2006-01-02"))
}

func TestMapGitHubMilestone_ClosedIsReleased(t *testing.T) {
	v := mapGitHubMilestone(&github.Milestone{
		Number: github.Int(1),
		Title:  github.String("v1.0"),
		State:  github.String("closed"),
	})

	require.NotNil(t, v)
	assert.True(t, v.Released)
	assert.Nil(t, v.ReleaseDate)
}

func TestMapGitHubMilestone_Nil(t *testing.T) {
	assert.Nil(t, mapGitHubMilestone(nil))
}

func TestHasLabel(t *testing.T) {
	issue := &github.Issue{
		Labels: []*github.Label{
			{Name: github.String("epic")},
			{Name: github.String("backend")},
		},
	}

	assert.True(t, hasLabel(issue, "epic"))
	assert.False(t, hasLabel(issue, "frontend"))
}
