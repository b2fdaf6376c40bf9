//go:build unit

package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/lerenn/release-manager/pkg/model"
	"github.com/lerenn/release-manager/pkg/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

var (
	v1Released = model.FixVersion{ID: "100", Name: "v1.0", Released: true, ReleaseDate: date("2024-01-15")}
	v2         = model.FixVersion{ID: "200", Name: "v2.0", ReleaseDate: date("2024-06-01")}
	v3         = model.FixVersion{ID: "300", Name: "v3.0"}
)

func story(key string, version *model.FixVersion) model.Story {
	return model.Story{
		Issue: model.Issue{
			ProjectKey: "PROJ",
			Key:        key,
			Type:       model.IssueTypeStory,
			FixVersion: version,
		},
		EpicKey: "PROJ-1",
	}
}

func epic(version *model.FixVersion, stories ...model.Story) *model.Epic {
	return &model.Epic{
		Issue: model.Issue{
			ProjectKey: "PROJ",
			Key:        "PROJ-1",
			Type:       model.IssueTypeEpic,
			FixVersion: version,
		},
		Stories: stories,
	}
}

func newTestEngine(t *testing.T) (*gomock.Controller, *tracker.MockGateway, Engine) {
	ctrl := gomock.NewController(t)
	mockGateway := tracker.NewMockGateway(ctrl)
	engine := NewEngine(NewEngineParams{Gateway: mockGateway})
	return ctrl, mockGateway, engine
}

func TestEngine_ComputeActionsForEpic_AllConsistent(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(&v2,
		story("PROJ-2", &v2),
		story("PROJ-3", &v2),
	))

	assert.Empty(t, actions)
}

func TestEngine_ComputeActionsForEpic_EpicWithoutVersion(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(nil,
		story("PROJ-2", nil),
		story("PROJ-3", &v2),
	))

	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionFlagBlocked, actions[0].Kind)
	assert.Equal(t, "PROJ-1", actions[0].IssueKey)
	assert.Equal(t, "epic has no fix version", actions[0].Reason)
}

func TestEngine_ComputeActionsForEpic_EpicWithoutVersionAndNoChildren(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(nil))

	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionFlagBlocked, actions[0].Kind)
}

func TestEngine_ComputeActionsForEpic_EpicOnReleasedVersion(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(&v1Released,
		story("PROJ-2", nil),
	))

	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionFlagBlocked, actions[0].Kind)
	assert.Equal(t, "PROJ-1", actions[0].IssueKey)
	assert.Contains(t, actions[0].Reason, "released")
}

func TestEngine_ComputeActionsForEpic_StoryWithoutVersion(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(&v2,
		story("PROJ-2", nil),
	))

	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionAssign, actions[0].Kind)
	assert.Equal(t, "PROJ-2", actions[0].IssueKey)
	require.NotNil(t, actions[0].To)
	assert.Equal(t, v2.ID, actions[0].To.ID)
}

func TestEngine_ComputeActionsForEpic_StoryOnOtherUnreleasedVersion(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(&v2,
		story("PROJ-2", &v3),
	))

	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionReassign, actions[0].Kind)
	require.NotNil(t, actions[0].From)
	assert.Equal(t, v3.ID, actions[0].From.ID)
	require.NotNil(t, actions[0].To)
	assert.Equal(t, v2.ID, actions[0].To.ID)
}

func TestEngine_ComputeActionsForEpic_StoryOnReleasedVersion(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(&v2,
		story("PROJ-2", &v1Released),
	))

	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionFlagConflict, actions[0].Kind)
	assert.Equal(t, "cannot move released work", actions[0].Reason)
	require.NotNil(t, actions[0].From)
	assert.Equal(t, v1Released.ID, actions[0].From.ID)
}

func TestEngine_ComputeActionsForEpic_MixedStories(t *testing.T) {
	_, _, engine := newTestEngine(t)

	// Epic PROJ-1 at v2.0 with stories PROJ-2 (no version), PROJ-3 (v2.0),
	// PROJ-4 (v1.0, released).
	actions := engine.ComputeActionsForEpic(epic(&v2,
		story("PROJ-2", nil),
		story("PROJ-3", &v2),
		story("PROJ-4", &v1Released),
	))

	require.Len(t, actions, 2)
	assert.Equal(t, model.ActionAssign, actions[0].Kind)
	assert.Equal(t, "PROJ-2", actions[0].IssueKey)
	assert.Equal(t, model.ActionFlagConflict, actions[1].Kind)
	assert.Equal(t, "PROJ-4", actions[1].IssueKey)
}

func TestEngine_ComputeActionsForEpic_PreservesStoryOrder(t *testing.T) {
	_, _, engine := newTestEngine(t)

	actions := engine.ComputeActionsForEpic(epic(&v2,
		story("PROJ-9", nil),
		story("PROJ-4", &v3),
		story("PROJ-7", nil),
	))

	require.Len(t, actions, 3)
	assert.Equal(t, "PROJ-9", actions[0].IssueKey)
	assert.Equal(t, "PROJ-4", actions[1].IssueKey)
	assert.Equal(t, "PROJ-7", actions[2].IssueKey)
}

func TestEngine_ComputeActions_FetchesEpicFromGateway(t *testing.T) {
	_, mockGateway, engine := newTestEngine(t)

	mockGateway.EXPECT().
		GetEpic(gomock.Any(), "PROJ-1").
		Return(epic(&v2, story("PROJ-2", nil)), nil)

	actions, err := engine.ComputeActions(context.Background(), "PROJ-1")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, model.ActionAssign, actions[0].Kind)
}

func TestEngine_ComputeActions_EpicNotFound(t *testing.T) {
	_, mockGateway, engine := newTestEngine(t)

	mockGateway.EXPECT().
		GetEpic(gomock.Any(), "PROJ-404").
		Return(nil, tracker.ErrNotFound)

	actions, err := engine.ComputeActions(context.Background(), "PROJ-404")
	assert.Nil(t, actions)
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrNotFound)
	assert.Contains(t, err.Error(), "PROJ-404")
}

func TestEngine_ComputeActions_TrackerUnavailable(t *testing.T) {
	_, mockGateway, engine := newTestEngine(t)

	mockGateway.EXPECT().
		GetEpic(gomock.Any(), "PROJ-1").
		Return(nil, tracker.ErrTrackerUnavailable)

	_, err := engine.ComputeActions(context.Background(), "PROJ-1")
	assert.ErrorIs(t, err, tracker.ErrTrackerUnavailable)
}
