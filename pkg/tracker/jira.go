package tracker

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/model"
)

const (
	// JiraName is the name identifier for the Jira backend.
	JiraName = "jira"
	// jiraDateLayout is the layout of Jira version release dates.
	jiraDateLayout = "2006-01-02"
)

// Jira represents the Jira tracker backend.
type Jira struct {
	client  *jira.Client
	baseURL string
}

// NewJira creates a new Jira backend instance. Credentials come from the
// configuration; the token is resolved from its environment variable once.
func NewJira(cfg *config.Config) (*Jira, error) {
	transport := jira.BasicAuthTransport{
		Username: cfg.Username,
		Password: cfg.APIToken(),
	}

	client, err := jira.NewClient(transport.Client(), cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	return &Jira{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Name returns the name of the tracker backend.
func (j *Jira) Name() string {
	return JiraName
}

// GetEpic fetches an epic and its child stories from Jira.
func (j *Jira) GetEpic(ctx context.Context, key string) (*model.Epic, error) {
	issue, resp, err := j.client.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		return nil, j.handleJiraError(err, resp, key)
	}

	if issue.Fields == nil || issue.Fields.Type.Name != "Epic" {
		return nil, fmt.Errorf("%w: %s is not an epic", ErrNotFound, key)
	}

	stories, err := j.fetchStories(ctx, key)
	if err != nil {
		return nil, err
	}

	return &model.Epic{
		Issue:   j.mapIssue(*issue),
		Stories: stories,
	}, nil
}

// fetchStories fetches the child stories of an epic, in the order the
// tracker reports them.
func (j *Jira) fetchStories(ctx context.Context, epicKey string) ([]model.Story, error) {
	jql := fmt.Sprintf("parent = %s AND issuetype = Story", epicKey)
	issues, resp, err := j.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		Fields: []string{"summary", "status", "labels", "fixVersions", "project"},
	})
	if err != nil {
		return nil, j.handleJiraError(err, resp, epicKey)
	}

	stories := make([]model.Story, 0, len(issues))
	for _, issue := range issues {
		stories = append(stories, model.Story{
			Issue:   j.mapIssue(issue),
			EpicKey: epicKey,
		})
	}
	return stories, nil
}

// GetFixVersion fetches the fix version currently assigned to an issue.
func (j *Jira) GetFixVersion(ctx context.Context, issueKey string) (*model.FixVersion, error) {
	issue, resp, err := j.client.Issue.GetWithContext(ctx, issueKey, nil)
	if err != nil {
		return nil, j.handleJiraError(err, resp, issueKey)
	}
	if issue.Fields == nil || len(issue.Fields.FixVersions) == 0 {
		return nil, nil
	}
	return mapJiraFixVersion(issue.Fields.FixVersions[0]), nil
}

// AssignFixVersion sets the fix version of an issue.
func (j *Jira) AssignFixVersion(ctx context.Context, issueKey, versionID string) error {
	payload := map[string]interface{}{
		"fields": map[string]interface{}{
			"fixVersions": []map[string]interface{}{
				{"id": versionID},
			},
		},
	}

	resp, err := j.client.Issue.UpdateIssueWithContext(ctx, issueKey, payload)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusBadRequest {
			return fmt.Errorf("%w: version %s for issue %s", ErrInvalidVersion, versionID, issueKey)
		}
		return j.handleJiraError(err, resp, issueKey)
	}
	return nil
}

// ListUnreleasedVersions lists all unreleased, unarchived versions of a
// project.
func (j *Jira) ListUnreleasedVersions(ctx context.Context, projectKey string) ([]model.FixVersion, error) {
	project, resp, err := j.client.Project.GetWithContext(ctx, projectKey)
	if err != nil {
		return nil, j.handleJiraError(err, resp, projectKey)
	}

	versions := make([]model.FixVersion, 0, len(project.Versions))
	for _, v := range project.Versions {
		if (v.Released != nil && *v.Released) || (v.Archived != nil && *v.Archived) {
			continue
		}
		versions = append(versions, model.FixVersion{
			ID:          v.ID,
			Name:        v.Name,
			Released:    false,
			ReleaseDate: parseJiraDate(v.ReleaseDate),
		})
	}
	return versions, nil
}

// ListEpicsForVersion lists epics assigned to a fix version, each with
// child stories populated.
func (j *Jira) ListEpicsForVersion(ctx context.Context, projectKey, versionID string) ([]model.Epic, error) {
	jql := fmt.Sprintf("project = %s AND issuetype = Epic AND fixVersion = %s ORDER BY key ASC",
		projectKey, versionID)
	issues, resp, err := j.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		Fields: []string{"summary", "status", "labels", "fixVersions", "project"},
	})
	if err != nil {
		return nil, j.handleJiraError(err, resp, projectKey)
	}

	epics := make([]model.Epic, 0, len(issues))
	for _, issue := range issues {
		stories, err := j.fetchStories(ctx, issue.Key)
		if err != nil {
			return nil, err
		}
		epics = append(epics, model.Epic{
			Issue:   j.mapIssue(issue),
			Stories: stories,
		})
	}
	return epics, nil
}

// ListEpicsByLabel lists the epics of a project carrying a label, without
// child stories.
func (j *Jira) ListEpicsByLabel(ctx context.Context, projectKey, label string) ([]model.Epic, error) {
	jql := fmt.Sprintf("project = %s AND issuetype = Epic AND labels = %s ORDER BY key ASC",
		projectKey, label)
	issues, resp, err := j.client.Issue.SearchWithContext(ctx, jql, &jira.SearchOptions{
		Fields: []string{"summary", "status", "labels", "fixVersions", "project"},
	})
	if err != nil {
		return nil, j.handleJiraError(err, resp, projectKey)
	}

	epics := make([]model.Epic, 0, len(issues))
	for _, issue := range issues {
		epics = append(epics, model.Epic{Issue: j.mapIssue(issue)})
	}
	return epics, nil
}

// AddComment posts a comment on an issue.
func (j *Jira) AddComment(ctx context.Context, issueKey, body string) error {
	_, resp, err := j.client.Issue.AddCommentWithContext(ctx, issueKey, &jira.Comment{Body: body})
	if err != nil {
		return j.handleJiraError(err, resp, issueKey)
	}
	return nil
}

// IssueURL returns the browse URL for an issue key.
func (j *Jira) IssueURL(issueKey string) string {
	return fmt.Sprintf("%s/browse/%s", j.baseURL, issueKey)
}

// handleJiraError translates Jira API errors into the tracker error taxonomy.
func (j *Jira) handleJiraError(err error, resp *jira.Response, key string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", ErrPermissionDenied, key)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrTrackerUnavailable, key, err)
}

// mapIssue maps a Jira issue to the model type. Only the first fix version
// is carried; the reconciler operates on a single target version per issue.
func (j *Jira) mapIssue(issue jira.Issue) model.Issue {
	mapped := model.Issue{
		ProjectKey: projectKeyFromIssueKey(issue.Key),
		Key:        issue.Key,
		URL:        j.IssueURL(issue.Key),
	}
	if issue.Fields == nil {
		return mapped
	}

	mapped.Summary = issue.Fields.Summary
	mapped.Type = model.IssueType(issue.Fields.Type.Name)
	mapped.Labels = issue.Fields.Labels
	if issue.Fields.Status != nil {
		mapped.Status = issue.Fields.Status.Name
	}
	if len(issue.Fields.FixVersions) > 0 {
		mapped.FixVersion = mapJiraFixVersion(issue.Fields.FixVersions[0])
	}
	return mapped
}

// mapJiraFixVersion maps a Jira fix version to the model type.
func mapJiraFixVersion(v *jira.FixVersion) *model.FixVersion {
	if v == nil {
		return nil
	}
	return &model.FixVersion{
		ID:          v.ID,
		Name:        v.Name,
		Released:    v.Released != nil && *v.Released,
		ReleaseDate: parseJiraDate(v.ReleaseDate),
	}
}

// parseJiraDate parses a Jira release date, returning nil when absent or
// malformed.
func parseJiraDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(jiraDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// projectKeyFromIssueKey extracts the project key from an issue key like
// PROJ-123.
func projectKeyFromIssueKey(issueKey string) string {
	if idx := strings.Index(issueKey, "-"); idx > 0 {
		return issueKey[:idx]
	}
	return issueKey
}
