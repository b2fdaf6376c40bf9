package reconcile

import (
	"context"
	"fmt"

	"github.com/lerenn/release-manager/pkg/model"
)

// ApplyActions applies assign and reassign actions against the tracker.
// Informational actions (conflict and blocked flags) are a programming
// error here: they are reported as failed results, never silently skipped
// and never sent to the tracker. Each action is applied independently, so
// one failure does not abort the batch; the caller can retry just the
// failed subset from the returned results.
func (e *realEngine) ApplyActions(ctx context.Context, actions []model.Action) ([]model.ActionResult, error) {
	results := make([]model.ActionResult, 0, len(actions))
	failed := 0

	for _, action := range actions {
		result := model.ActionResult{Action: action}

		switch {
		case action.Informational():
			result.Err = fmt.Errorf("%w: %s action for %s is informational and cannot be applied",
				ErrPreconditionFailed, action.Kind, action.IssueKey)
		case action.To == nil:
			result.Err = fmt.Errorf("%w: %s action for %s has no target version",
				ErrPreconditionFailed, action.Kind, action.IssueKey)
		default:
			e.VerbosePrint("Assigning %s to version %s", action.IssueKey, action.To.Name)
			if err := e.gateway.AssignFixVersion(ctx, action.IssueKey, action.To.ID); err != nil {
				result.Err = err
			}
		}

		if result.Err != nil {
			failed++
		}
		results = append(results, result)
	}

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d action(s) failed", ErrPartialApply, failed, len(actions))
	}
	return results, nil
}
