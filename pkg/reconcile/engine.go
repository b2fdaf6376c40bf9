// Package reconcile computes and applies fix-version corrections for an
// epic's child stories.
package reconcile

import (
	"context"
	"fmt"

	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/model"
	"github.com/lerenn/release-manager/pkg/tracker"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=engine.go -destination=mockengine.gen.go -package=reconcile

// Engine interface provides fix-version reconciliation for epics.
type Engine interface {
	// ComputeActions fetches an epic and computes the corrective actions
	// needed to make every child story consistent with the epic's own fix
	// version. The epic's version is trusted as ground truth and never
	// validated; this is a known limitation.
	ComputeActions(ctx context.Context, epicKey string) ([]model.Action, error)

	// ComputeActionsForEpic computes actions for an already-loaded epic.
	ComputeActionsForEpic(epic *model.Epic) []model.Action

	// ApplyActions applies assign and reassign actions against the tracker.
	// One failure does not block the others; there is no rollback, so
	// actions applied before a cancellation stay applied. Results match the
	// input order. Returns ErrPartialApply when at least one action failed.
	ApplyActions(ctx context.Context, actions []model.Action) ([]model.ActionResult, error)

	// SetLogger sets the logger for this engine instance.
	SetLogger(logger.Logger)
}

// NewEngineParams contains parameters for creating a new Engine instance.
type NewEngineParams struct {
	Gateway tracker.Gateway
	Logger  logger.Logger
}

type realEngine struct {
	gateway tracker.Gateway
	logger  logger.Logger
}

// NewEngine creates a new Engine instance.
func NewEngine(params NewEngineParams) Engine {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realEngine{
		gateway: params.Gateway,
		logger:  log,
	}
}

// SetLogger sets the logger for this engine instance.
func (e *realEngine) SetLogger(log logger.Logger) {
	e.logger = log
}

// VerbosePrint logs a formatted message using the current logger.
func (e *realEngine) VerbosePrint(msg string, args ...interface{}) {
	e.logger.Logf(fmt.Sprintf(msg, args...))
}
