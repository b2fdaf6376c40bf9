package model

// ActionKind identifies the kind of corrective action.
type ActionKind string

const (
	// ActionAssign assigns a fix version to a story that has none.
	ActionAssign ActionKind = "assign"
	// ActionReassign moves a story from one unreleased fix version to another.
	ActionReassign ActionKind = "reassign"
	// ActionFlagConflict marks a story stuck on a released fix version.
	// Never applied automatically.
	ActionFlagConflict ActionKind = "flag-conflict"
	// ActionFlagBlocked marks an epic that cannot be reconciled.
	// Never applied automatically.
	ActionFlagBlocked ActionKind = "flag-blocked"
)

// Action is an immutable proposed mutation of one issue's fix version.
// Applying an action is a side effect performed against the tracker, not a
// mutation of the action itself.
type Action struct {
	Kind     ActionKind  `yaml:"kind" json:"kind"`
	IssueKey string      `yaml:"issue_key" json:"issue_key"`
	From     *FixVersion `yaml:"from,omitempty" json:"from,omitempty"`
	To       *FixVersion `yaml:"to,omitempty" json:"to,omitempty"`
	Reason   string      `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Informational reports whether the action is advisory only and must never
// be applied to the tracker.
func (a Action) Informational() bool {
	return a.Kind == ActionFlagConflict || a.Kind == ActionFlagBlocked
}

// ActionResult records the outcome of applying one action.
type ActionResult struct {
	Action Action `yaml:"action" json:"action"`
	Err    error  `yaml:"-" json:"-"`
}

// Success reports whether the action was applied without error.
func (r ActionResult) Success() bool {
	return r.Err == nil
}
