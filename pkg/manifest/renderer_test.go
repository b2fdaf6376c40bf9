//go:build unit

package manifest

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

func newTestRenderer(t *testing.T) (*tracker.MockGateway, Renderer) {
	ctrl := gomock.NewController(t)
	mockGateway := tracker.NewMockGateway(ctrl)
	renderer := NewRenderer(NewRendererParams{Gateway: mockGateway})
	return mockGateway, renderer
}

func namedEpic(key, summary string) model.Epic {
	return model.Epic{
		Issue: model.Issue{
			ProjectKey: "PROJ",
			Key:        key,
			Summary:    summary,
			Type:       model.IssueTypeEpic,
		},
	}
}

func TestRenderer_Render_OrdersByReleaseDate(t *testing.T) {
	mockGateway, renderer := newTestRenderer(t)

	versions := []model.FixVersion{
		{ID: "1", Name: "March", ReleaseDate: date("2024-03-01")},
		{ID: "2", Name: "Unscheduled"},
		{ID: "3", Name: "January", ReleaseDate: date("2024-01-01")},
	}

	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "PROJ").Return(versions, nil)
	for _, v := range versions {
		mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "PROJ", v.ID).Return(nil, nil)
	}

	entries, err := renderer.Render(context.Background(), []string{"PROJ"})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Dated versions ascending, undated last.
	assert.Equal(t, "January", entries[0].Version.Name)
	assert.Equal(t, "March", entries[1].Version.Name)
	assert.Equal(t, "Unscheduled", entries[2].Version.Name)
}

func TestRenderer_Render_TieBrokenByVersionID(t *testing.T) {
	mockGateway, renderer := newTestRenderer(t)

	versions := []model.FixVersion{
		{ID: "20", Name: "B", ReleaseDate: date("2024-05-01")},
		{ID: "10", Name: "A", ReleaseDate: date("2024-05-01")},
	}

	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "PROJ").Return(versions, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "PROJ", "20").Return(nil, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "PROJ", "10").Return(nil, nil)

	entries, err := renderer.Render(context.Background(), []string{"PROJ"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "10", entries[0].Version.ID)
	assert.Equal(t, "20", entries[1].Version.ID)
}

func TestRenderer_Render_EmptyVersionStillAppears(t *testing.T) {
	mockGateway, renderer := newTestRenderer(t)

	versions := []model.FixVersion{
		{ID: "1", Name: "Empty release", ReleaseDate: date("2024-04-01")},
	}

	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "PROJ").Return(versions, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "PROJ", "1").Return([]model.Epic{}, nil)

	entries, err := renderer.Render(context.Background(), []string{"PROJ"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Epics)
}

func TestRenderer_Render_SortsEpicsByKey(t *testing.T) {
	mockGateway, renderer := newTestRenderer(t)

	versions := []model.FixVersion{{ID: "1", Name: "v1"}}
	epics := []model.Epic{
		namedEpic("PROJ-9", "last"),
		namedEpic("PROJ-1", "first"),
		namedEpic("PROJ-5", "middle"),
	}

	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "PROJ").Return(versions, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "PROJ", "1").Return(epics, nil)

	entries, err := renderer.Render(context.Background(), []string{"PROJ"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Epics, 3)
	assert.Equal(t, "PROJ-1", entries[0].Epics[0].Key)
	assert.Equal(t, "PROJ-5", entries[0].Epics[1].Key)
	assert.Equal(t, "PROJ-9", entries[0].Epics[2].Key)
}

func TestRenderer_Render_KeepsVersionsSeparatePerProject(t *testing.T) {
	mockGateway, renderer := newTestRenderer(t)

	// Same version name in two projects stays two entries.
	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "ALPHA").
		Return([]model.FixVersion{{ID: "1", Name: "v1.0", ReleaseDate: date("2024-02-01")}}, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "ALPHA", "1").Return(nil, nil)
	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "BETA").
		Return([]model.FixVersion{{ID: "7", Name: "v1.0", ReleaseDate: date("2024-01-01")}}, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "BETA", "7").Return(nil, nil)

	entries, err := renderer.Render(context.Background(), []string{"ALPHA", "BETA"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BETA", entries[0].ProjectKey)
	assert.Equal(t, "ALPHA", entries[1].ProjectKey)
}

func TestRenderer_Render_FailsFastOnUnreachableProject(t *testing.T) {
	mockGateway, renderer := newTestRenderer(t)

	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "GOOD").
		Return([]model.FixVersion{{ID: "1", Name: "v1"}}, nil)
	mockGateway.EXPECT().ListEpicsForVersion(gomock.Any(), "GOOD", "1").Return(nil, nil)
	mockGateway.EXPECT().ListUnreleasedVersions(gomock.Any(), "BAD").
		Return(nil, tracker.ErrTrackerUnavailable)

	entries, err := renderer.Render(context.Background(), []string{"GOOD", "BAD"})

	// No partial manifest is presented as complete.
	assert.Nil(t, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrTrackerUnavailable)
	assert.Contains(t, err.Error(), "BAD")
}
