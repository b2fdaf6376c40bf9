package reconcile

import (
	"context"
	"fmt"

	"github.com/lerenn/release-manager/pkg/model"
)

// ComputeActions fetches an epic with its children and computes corrective
// actions. NotFound and unavailability errors surface immediately: the
// reconciler needs a complete epic snapshot, partial results would be
// misleading.
func (e *realEngine) ComputeActions(ctx context.Context, epicKey string) ([]model.Action, error) {
	e.VerbosePrint("Computing actions for epic %s", epicKey)

	epic, err := e.gateway.GetEpic(ctx, epicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch epic %s: %w", epicKey, err)
	}

	return e.ComputeActionsForEpic(epic), nil
}

// ComputeActionsForEpic computes the minimal action set to make every child
// story consistent with the epic's declared fix version. Re-running after a
// successful apply over the same snapshot yields no assign or reassign
// actions; conflict flags persist until the released-version conflict is
// resolved manually.
func (e *realEngine) ComputeActionsForEpic(epic *model.Epic) []model.Action {
	canonical := epic.FixVersion

	// An epic without a version blocks reconciliation of all its stories.
	if canonical == nil {
		return []model.Action{{
			Kind:     model.ActionFlagBlocked,
			IssueKey: epic.Key,
			Reason:   "epic has no fix version",
		}}
	}

	// A released canonical version cannot accept new work; reconciling
	// stories into it would violate the released-version invariant.
	if canonical.Released {
		return []model.Action{{
			Kind:     model.ActionFlagBlocked,
			IssueKey: epic.Key,
			From:     canonical,
			Reason:   fmt.Sprintf("epic fix version %s is already released", canonical.Name),
		}}
	}

	var actions []model.Action
	for _, story := range epic.Stories {
		current := story.FixVersion

		switch {
		case current == nil:
			actions = append(actions, model.Action{
				Kind:     model.ActionAssign,
				IssueKey: story.Key,
				To:       canonical,
				Reason:   fmt.Sprintf("story has no fix version, epic targets %s", canonical.Name),
			})
		case current.ID == canonical.ID:
			// Already consistent, no action emitted.
		case current.Released:
			actions = append(actions, model.Action{
				Kind:     model.ActionFlagConflict,
				IssueKey: story.Key,
				From:     current,
				To:       canonical,
				Reason:   "cannot move released work",
			})
		default:
			actions = append(actions, model.Action{
				Kind:     model.ActionReassign,
				IssueKey: story.Key,
				From:     current,
				To:       canonical,
				Reason:   fmt.Sprintf("story targets %s, epic targets %s", current.Name, canonical.Name),
			})
		}
	}

	e.VerbosePrint("Computed %d action(s) for epic %s", len(actions), epic.Key)
	return actions
}
