package tracker

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/model"
)

const (
	// GitHubName is the name identifier for the GitHub backend.
	GitHubName = "github"
	// epicLabel marks an issue as an epic.
	epicLabel = "epic"
	// childLabelFormat is the label linking a story to its epic number.
	childLabelFormat = "epic:%d"
)

// issueKeyRegexp matches issue keys in owner/repo#number format.
var issueKeyRegexp = regexp.MustCompile(`^([^/#\s]+)/([^/#\s]+)#(\d+)$`)

// GitHub represents the GitHub tracker backend. Milestones stand in for fix
// versions: a closed milestone is a released version and its due date is the
// release date. Epics are issues labeled "epic"; their stories carry an
// "epic:<number>" label.
type GitHub struct {
	client *github.Client
}

// NewGitHub creates a new GitHub backend instance.
func NewGitHub(cfg *config.Config) *GitHub {
	token := cfg.APIToken()
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	var client *github.Client
	if token != "" {
		client = github.NewTokenClient(context.Background(), token)
	} else {
		client = github.NewClient(nil)
	}

	return &GitHub{client: client}
}

// Name returns the name of the tracker backend.
func (g *GitHub) Name() string {
	return GitHubName
}

// GetEpic fetches an epic and its child stories from GitHub.
func (g *GitHub) GetEpic(ctx context.Context, key string) (*model.Epic, error) {
	owner, repo, number, err := parseGitHubIssueKey(key)
	if err != nil {
		return nil, err
	}

	issue, resp, err := g.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, key)
	}
	if !hasLabel(issue, epicLabel) {
		return nil, fmt.Errorf("%w: %s is not an epic", ErrNotFound, key)
	}

	stories, err := g.fetchStories(ctx, owner, repo, number)
	if err != nil {
		return nil, err
	}

	return &model.Epic{
		Issue:   g.mapIssue(owner, repo, issue, model.IssueTypeEpic),
		Stories: stories,
	}, nil
}

// fetchStories fetches the child stories of an epic issue, in creation
// order as reported by GitHub.
func (g *GitHub) fetchStories(ctx context.Context, owner, repo string, epicNumber int) ([]model.Story, error) {
	epicKey := formatGitHubIssueKey(owner, repo, epicNumber)
	issues, resp, err := g.client.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		Labels:    []string{fmt.Sprintf(childLabelFormat, epicNumber)},
		State:     "all",
		Sort:      "created",
		Direction: "asc",
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, epicKey)
	}

	stories := make([]model.Story, 0, len(issues))
	for _, issue := range issues {
		stories = append(stories, model.Story{
			Issue:   g.mapIssue(owner, repo, issue, model.IssueTypeStory),
			EpicKey: epicKey,
		})
	}
	return stories, nil
}

// GetFixVersion fetches the milestone currently assigned to an issue.
func (g *GitHub) GetFixVersion(ctx context.Context, issueKey string) (*model.FixVersion, error) {
	owner, repo, number, err := parseGitHubIssueKey(issueKey)
	if err != nil {
		return nil, err
	}

	issue, resp, err := g.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, g.handleGitHubError(err, resp, issueKey)
	}
	return mapGitHubMilestone(issue.Milestone), nil
}

// AssignFixVersion sets the milestone of an issue.
func (g *GitHub) AssignFixVersion(ctx context.Context, issueKey, versionID string) error {
	owner, repo, number, err := parseGitHubIssueKey(issueKey)
	if err != nil {
		return err
	}

	milestoneNumber, err := strconv.Atoi(versionID)
	if err != nil {
		return fmt.Errorf("%w: %s is not a milestone number", ErrInvalidVersion, versionID)
	}

	_, resp, err := g.client.Issues.Edit(ctx, owner, repo, number, &github.IssueRequest{
		Milestone: &milestoneNumber,
	})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnprocessableEntity {
			return fmt.Errorf("%w: milestone %s for issue %s", ErrInvalidVersion, versionID, issueKey)
		}
		return g.handleGitHubError(err, resp, issueKey)
	}
	return nil
}

// ListUnreleasedVersions lists the open milestones of a repository.
func (g *GitHub) ListUnreleasedVersions(ctx context.Context, projectKey string) ([]model.FixVersion, error) {
	owner, repo, err := parseGitHubProjectKey(projectKey)
	if err != nil {
		return nil, err
	}

	milestones, resp, err := g.client.Issues.ListMilestones(ctx, owner, repo, &github.MilestoneListOptions{
		State:     "open",
		Sort:      "due_on",
		Direction: "asc",
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, projectKey)
	}

	versions := make([]model.FixVersion, 0, len(milestones))
	for _, m := range milestones {
		if v := mapGitHubMilestone(m); v != nil {
			versions = append(versions, *v)
		}
	}
	return versions, nil
}

// ListEpicsForVersion lists the epics assigned to a milestone, each with
// child stories populated.
func (g *GitHub) ListEpicsForVersion(ctx context.Context, projectKey, versionID string) ([]model.Epic, error) {
	owner, repo, err := parseGitHubProjectKey(projectKey)
	if err != nil {
		return nil, err
	}

	issues, resp, err := g.client.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		Milestone: versionID,
		Labels:    []string{epicLabel},
		State:     "all",
		Sort:      "created",
		Direction: "asc",
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, projectKey)
	}

	epics := make([]model.Epic, 0, len(issues))
	for _, issue := range issues {
		stories, err := g.fetchStories(ctx, owner, repo, issue.GetNumber())
		if err != nil {
			return nil, err
		}
		epics = append(epics, model.Epic{
			Issue:   g.mapIssue(owner, repo, issue, model.IssueTypeEpic),
			Stories: stories,
		})
	}
	return epics, nil
}

// ListEpicsByLabel lists the epics of a repository carrying a label,
// without child stories.
func (g *GitHub) ListEpicsByLabel(ctx context.Context, projectKey, label string) ([]model.Epic, error) {
	owner, repo, err := parseGitHubProjectKey(projectKey)
	if err != nil {
		return nil, err
	}

	issues, resp, err := g.client.Issues.ListByRepo(ctx, owner, repo, &github.IssueListByRepoOptions{
		Labels:    []string{epicLabel, label},
		State:     "all",
		Sort:      "created",
		Direction: "asc",
	})
	if err != nil {
		return nil, g.handleGitHubError(err, resp, projectKey)
	}

	epics := make([]model.Epic, 0, len(issues))
	for _, issue := range issues {
		epics = append(epics, model.Epic{Issue: g.mapIssue(owner, repo, issue, model.IssueTypeEpic)})
	}
	return epics, nil
}

// AddComment posts a comment on an issue.
func (g *GitHub) AddComment(ctx context.Context, issueKey, body string) error {
	owner, repo, number, err := parseGitHubIssueKey(issueKey)
	if err != nil {
		return err
	}

	_, resp, err := g.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{
		Body: github.String(body),
	})
	if err != nil {
		return g.handleGitHubError(err, resp, issueKey)
	}
	return nil
}

// IssueURL returns the browse URL for an issue key. Returns an empty string
// when the key is malformed.
func (g *GitHub) IssueURL(issueKey string) string {
	owner, repo, number, err := parseGitHubIssueKey(issueKey)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s/issues/%d", owner, repo, number)
}

// handleGitHubError translates GitHub API errors into the tracker error
// taxonomy.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, key string) error {
	if resp != nil {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s: check GITHUB_TOKEN", ErrPermissionDenied, key)
		case http.StatusForbidden:
			if resp.Header.Get("X-RateLimit-Remaining") == "0" {
				return fmt.Errorf("%w: %s: GitHub API rate limit exceeded", ErrTrackerUnavailable, key)
			}
			return fmt.Errorf("%w: %s: access forbidden", ErrPermissionDenied, key)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrTrackerUnavailable, key, err)
}

// mapIssue maps a GitHub issue to the model type.
func (g *GitHub) mapIssue(owner, repo string, issue *github.Issue, issueType model.IssueType) model.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	return model.Issue{
		ProjectKey: fmt.Sprintf("%s/%s", owner, repo),
		Key:        formatGitHubIssueKey(owner, repo, issue.GetNumber()),
		Summary:    issue.GetTitle(),
		Type:       issueType,
		Status:     issue.GetState(),
		Labels:     labels,
		FixVersion: mapGitHubMilestone(issue.Milestone),
		URL:        issue.GetHTMLURL(),
	}
}

// mapGitHubMilestone maps a GitHub milestone to a fix version.
func mapGitHubMilestone(m *github.Milestone) *model.FixVersion {
	if m == nil {
		return nil
	}

	version := &model.FixVersion{
		ID:       strconv.Itoa(m.GetNumber()),
		Name:     m.GetTitle(),
		Released: m.GetState() == "closed",
	}
	if m.DueOn != nil {
		due := m.DueOn.Time
		version.ReleaseDate = &due
	}
	return version
}

// hasLabel reports whether an issue carries a label.
func hasLabel(issue *github.Issue, name string) bool {
	for _, l := range issue.Labels {
		if l.GetName() == name {
			return true
		}
	}
	return false
}

// parseGitHubIssueKey parses an issue key in owner/repo#number format.
func parseGitHubIssueKey(key string) (owner, repo string, number int, err error) {
	matches := issueKeyRegexp.FindStringSubmatch(key)
	if matches == nil {
		return "", "", 0, fmt.Errorf("%w: %s (expected owner/repo#number)", ErrInvalidIssueKey, key)
	}

	number, err = strconv.Atoi(matches[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %s", ErrInvalidIssueKey, key)
	}
	return matches[1], matches[2], number, nil
}

// parseGitHubProjectKey parses a project key in owner/repo format.
func parseGitHubProjectKey(projectKey string) (owner, repo string, err error) {
	matches := regexp.MustCompile(`^([^/#\s]+)/([^/#\s]+)$`).FindStringSubmatch(projectKey)
	if matches == nil {
		return "", "", fmt.Errorf("%w: %s (expected owner/repo)", ErrInvalidIssueKey, projectKey)
	}
	return matches[1], matches[2], nil
}

// formatGitHubIssueKey builds an issue key in owner/repo#number format.
func formatGitHubIssueKey(owner, repo string, number int) string {
	return fmt.Sprintf("%s/%s#%d", owner, repo, number)
}
