// Package model provides data structures for tracker entities and
// reconciliation actions.
package model

import "time"

// IssueType identifies the kind of work item.
type IssueType string

const (
	// IssueTypeEpic is a parent work item grouping related stories.
	IssueTypeEpic IssueType = "Epic"
	// IssueTypeStory is a child work item belonging to exactly one epic.
	IssueTypeStory IssueType = "Story"
)

// FixVersion represents a release an issue is targeted to ship in.
type FixVersion struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Released    bool       `yaml:"released,omitempty" json:"released,omitempty"`
	ReleaseDate *time.Time `yaml:"release_date,omitempty" json:"release_date,omitempty"`
}

// Issue represents a tracker work item.
type Issue struct {
	ProjectKey string      `yaml:"project_key" json:"project_key"`
	Key        string      `yaml:"key" json:"key"`
	Summary    string      `yaml:"summary" json:"summary"`
	Type       IssueType   `yaml:"type" json:"type"`
	Status     string      `yaml:"status,omitempty" json:"status,omitempty"`
	Labels     []string    `yaml:"labels,omitempty" json:"labels,omitempty"`
	FixVersion *FixVersion `yaml:"fix_version,omitempty" json:"fix_version,omitempty"`
	URL        string      `yaml:"url,omitempty" json:"url,omitempty"`
}

// Story represents a child work item under an epic.
type Story struct {
	Issue   `yaml:",inline"`
	EpicKey string `yaml:"epic_key" json:"epic_key"`
}

// Epic represents a parent work item with its child stories.
// Stories preserve the order reported by the tracker.
type Epic struct {
	Issue   `yaml:",inline"`
	Stories []Story `yaml:"stories,omitempty" json:"stories,omitempty"`
}

// ManifestEntry groups the epics assigned to one fix version of one project.
// Entries are built fresh on each render and never persisted.
type ManifestEntry struct {
	ProjectKey string     `yaml:"project_key" json:"project_key"`
	Version    FixVersion `yaml:"version" json:"version"`
	Epics      []Epic     `yaml:"epics" json:"epics"`
}
