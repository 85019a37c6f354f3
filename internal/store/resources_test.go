package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirenest/admin-console/internal/types"
)

type fakeJobPosts struct {
	posts     []types.JobPost
	activeErr error
}

func (f *fakeJobPosts) List(ctx context.Context, params types.ListParams) (types.Page[types.JobPost], error) {
	return types.Page[types.JobPost]{Items: append([]types.JobPost(nil), f.posts...), Pagination: types.NewPagination(1, 10, len(f.posts))}, nil
}

func (f *fakeJobPosts) Get(ctx context.Context, id string) (types.JobPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return types.JobPost{}, errors.New("Job post not found")
}

func (f *fakeJobPosts) Update(ctx context.Context, id string, req types.UpdateJobPostRequest) (types.JobPost, error) {
	for i := range f.posts {
		if f.posts[i].ID != id {
			continue
		}
		if req.Title != nil {
			f.posts[i].Title = *req.Title
		}
		if req.JobStatus != nil {
			f.posts[i].Status = types.JobClosed
			if *req.JobStatus == types.WireJobOpen {
				f.posts[i].Status = types.JobActive
			}
		}
		return f.posts[i], nil
	}
	return types.JobPost{}, errors.New("Job post not found")
}

func (f *fakeJobPosts) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeJobPosts) Active(ctx context.Context) (types.Page[types.JobPost], error) {
	if f.activeErr != nil {
		return types.Page[types.JobPost]{}, f.activeErr
	}
	var out []types.JobPost
	for _, p := range f.posts {
		if p.Status == types.JobActive {
			out = append(out, p)
		}
	}
	return types.Page[types.JobPost]{Items: out}, nil
}

func (f *fakeJobPosts) Close(ctx context.Context, id string) (types.JobPost, error) {
	closed := types.WireJobClosed
	return f.Update(ctx, id, types.UpdateJobPostRequest{JobStatus: &closed})
}

func TestJobPosts_CloseRefetches(t *testing.T) {
	fake := &fakeJobPosts{posts: []types.JobPost{
		{ID: "p1", Status: types.JobActive},
		{ID: "p2", Status: types.JobActive},
	}}
	j := NewJobPosts(fake, nil)
	require.NoError(t, j.FetchAll(context.Background(), types.ListParams{Page: 1}))

	post, err := j.Close(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, types.JobClosed, post.Status)
	assert.Equal(t, types.JobClosed, j.Snapshot().Items[0].Status)

	active, err := j.FetchActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "p2", active[0].ID)
	assert.Len(t, j.ActiveItems(), 1)
}

func TestJobPosts_ToggleUnsupported(t *testing.T) {
	j := NewJobPosts(&fakeJobPosts{}, nil)

	_, err := j.ToggleStatus(context.Background(), "p1", false)
	assert.ErrorIs(t, err, ErrToggleUnsupported)
}

func TestJobPosts_FetchActiveError(t *testing.T) {
	j := NewJobPosts(&fakeJobPosts{activeErr: errors.New("boom")}, nil)

	_, err := j.FetchActive(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", j.ActiveError())
}

type statsFunc func(ctx context.Context) (types.DashboardStats, error)

func (f statsFunc) Stats(ctx context.Context) (types.DashboardStats, error) { return f(ctx) }

func TestDashboard_RefreshKeepsStatsOnFailure(t *testing.T) {
	fail := false
	d := NewDashboard(statsFunc(func(ctx context.Context) (types.DashboardStats, error) {
		if fail {
			return types.DashboardStats{}, errors.New("Unauthorized")
		}
		return types.DashboardStats{TotalJobs: 4}, nil
	}))

	require.NoError(t, d.Refresh(context.Background()))
	st := d.Snapshot()
	require.NotNil(t, st.Stats)
	assert.Equal(t, 4, st.Stats.TotalJobs)
	assert.False(t, st.UpdatedAt.IsZero())

	fail = true
	require.Error(t, d.Refresh(context.Background()))
	st = d.Snapshot()
	require.NotNil(t, st.Stats)
	assert.Equal(t, "Unauthorized", st.Error)

	d.ClearError()
	assert.Empty(t, d.Snapshot().Error)
}
