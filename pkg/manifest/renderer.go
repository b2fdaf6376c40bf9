// Package manifest renders release manifests grouping epics and stories by
// unreleased fix version.
package manifest

import (
	"context"
	"fmt"
	"sort"

	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/model"
	"github.com/lerenn/release-manager/pkg/tracker"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=renderer.go -destination=mockrenderer.gen.go -package=manifest

// Renderer interface provides release manifest rendering.
type Renderer interface {
	// Render produces a deterministic grouping of issues by unreleased fix
	// version across the given projects. Fails fast on the first
	// unreachable project: a truncated release view presented as complete
	// is worse than no view.
	Render(ctx context.Context, projects []string) ([]model.ManifestEntry, error)

	// SetLogger sets the logger for this renderer instance.
	SetLogger(logger.Logger)
}

// NewRendererParams contains parameters for creating a new Renderer instance.
type NewRendererParams struct {
	Gateway tracker.Gateway
	Logger  logger.Logger
}

type realRenderer struct {
	gateway tracker.Gateway
	logger  logger.Logger
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(params NewRendererParams) Renderer {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realRenderer{
		gateway: params.Gateway,
		logger:  log,
	}
}

// SetLogger sets the logger for this renderer instance.
func (r *realRenderer) SetLogger(log logger.Logger) {
	r.logger = log
}

// Render produces manifest entries ordered by release date ascending with
// undated versions last, ties broken by version identifier. Epics are
// sorted by key; stories keep tracker-reported order. Versions without
// epics still appear: an upcoming-but-empty release is useful signal.
func (r *realRenderer) Render(ctx context.Context, projects []string) ([]model.ManifestEntry, error) {
	var entries []model.ManifestEntry

	for _, project := range projects {
		r.logger.Logf("Rendering manifest for project %s", project)

		versions, err := r.gateway.ListUnreleasedVersions(ctx, project)
		if err != nil {
			return nil, fmt.Errorf("failed to list unreleased versions for project %s: %w", project, err)
		}

		for _, version := range versions {
			epics, err := r.gateway.ListEpicsForVersion(ctx, project, version.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to list epics for version %s in project %s: %w",
					version.Name, project, err)
			}

			sort.Slice(epics, func(i, j int) bool {
				return epics[i].Key < epics[j].Key
			})

			entries = append(entries, model.ManifestEntry{
				ProjectKey: project,
				Version:    version,
				Epics:      epics,
			})
		}
	}

	sortEntries(entries)
	return entries, nil
}

// sortEntries orders manifest entries by release date ascending, undated
// versions last, with the version identifier as tiebreaker.
func sortEntries(entries []model.ManifestEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Version.ReleaseDate, entries[j].Version.ReleaseDate
		switch {
		case a == nil && b == nil:
			return entries[i].Version.ID < entries[j].Version.ID
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return entries[i].Version.ID < entries[j].Version.ID
		default:
			return a.Before(*b)
		}
	})
}
