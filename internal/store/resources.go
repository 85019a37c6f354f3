package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hirenest/admin-console/internal/types"
)

// CompanyResource is the company API used by Companies.
type CompanyResource interface {
	Resource[types.Company, types.UpdateCompanyRequest]
	StatusToggler[types.Company]
	SetVerification(ctx context.Context, id string, status types.VerificationStatus) (types.Company, error)
}

// Companies is the company container.
type Companies struct {
	*ListContainer[types.Company, types.UpdateCompanyRequest]
	api CompanyResource
}

// NewCompanies creates the company container.
func NewCompanies(api CompanyResource, logger *zap.Logger) *Companies {
	return &Companies{
		ListContainer: NewListContainer[types.Company, types.UpdateCompanyRequest]("companies", api, logger),
		api:           api,
	}
}

// SetVerification approves or rejects a company, then re-fetches the current page.
func (c *Companies) SetVerification(ctx context.Context, id string, status types.VerificationStatus) (types.Company, error) {
	return c.Apply(ctx, id, func(ctx context.Context) (types.Company, error) {
		return c.api.SetVerification(ctx, id, status)
	})
}

// JobSeekerResource is the job seeker API used by JobSeekers.
type JobSeekerResource interface {
	Resource[types.JobSeeker, types.UpdateJobSeekerRequest]
	StatusToggler[types.JobSeeker]
}

// JobSeekers is the job seeker container.
type JobSeekers struct {
	*ListContainer[types.JobSeeker, types.UpdateJobSeekerRequest]
}

// NewJobSeekers creates the job seeker container.
func NewJobSeekers(api JobSeekerResource, logger *zap.Logger) *JobSeekers {
	return &JobSeekers{
		ListContainer: NewListContainer[types.JobSeeker, types.UpdateJobSeekerRequest]("job-seekers", api, logger),
	}
}

// JobPostResource is the job post API used by JobPosts.
type JobPostResource interface {
	Resource[types.JobPost, types.UpdateJobPostRequest]
	Active(ctx context.Context) (types.Page[types.JobPost], error)
	Close(ctx context.Context, id string) (types.JobPost, error)
}

// JobPosts is the job post container. Besides the paginated list it keeps the
// active posts shown on the dashboard.
type JobPosts struct {
	*ListContainer[types.JobPost, types.UpdateJobPostRequest]
	api JobPostResource

	activeMu      sync.Mutex
	active        []types.JobPost
	activeLoading bool
	activeErr     string
}

// NewJobPosts creates the job post container.
func NewJobPosts(api JobPostResource, logger *zap.Logger) *JobPosts {
	return &JobPosts{
		ListContainer: NewListContainer[types.JobPost, types.UpdateJobPostRequest]("job-posts", api, logger),
		api:           api,
	}
}

// FetchActive loads the open job posts.
func (j *JobPosts) FetchActive(ctx context.Context) ([]types.JobPost, error) {
	j.activeMu.Lock()
	j.activeLoading = true
	j.activeErr = ""
	j.activeMu.Unlock()

	page, err := j.api.Active(ctx)

	j.activeMu.Lock()
	defer j.activeMu.Unlock()
	j.activeLoading = false
	if err != nil {
		j.activeErr = err.Error()
		return nil, err
	}
	j.active = page.Items
	return append([]types.JobPost(nil), j.active...), nil
}

// ActiveItems returns the last loaded active posts.
func (j *JobPosts) ActiveItems() []types.JobPost {
	j.activeMu.Lock()
	defer j.activeMu.Unlock()
	return append([]types.JobPost(nil), j.active...)
}

// ActiveError returns the last FetchActive error message.
func (j *JobPosts) ActiveError() string {
	j.activeMu.Lock()
	defer j.activeMu.Unlock()
	return j.activeErr
}

// Close marks a post closed, then re-fetches the current page.
func (j *JobPosts) Close(ctx context.Context, id string) (types.JobPost, error) {
	return j.Apply(ctx, id, func(ctx context.Context) (types.JobPost, error) {
		return j.api.Close(ctx, id)
	})
}

// StatsSource supplies dashboard counters.
type StatsSource interface {
	Stats(ctx context.Context) (types.DashboardStats, error)
}

// DashboardState is a snapshot of the dashboard container.
type DashboardState struct {
	Stats     *types.DashboardStats
	IsLoading bool
	Error     string
	UpdatedAt time.Time
}

// Dashboard holds the headline counters.
type Dashboard struct {
	src StatsSource
	now func() time.Time

	mu        sync.Mutex
	stats     *types.DashboardStats
	loading   bool
	err       string
	updatedAt time.Time
}

// NewDashboard creates the dashboard container.
func NewDashboard(src StatsSource) *Dashboard {
	return &Dashboard{src: src, now: time.Now}
}

// Refresh reloads the counters. Previous counters survive a failure.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.err = ""
	d.mu.Unlock()

	stats, err := d.src.Stats(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		d.err = err.Error()
		return err
	}
	d.stats = &stats
	d.updatedAt = d.now()
	return nil
}

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := DashboardState{IsLoading: d.loading, Error: d.err, UpdatedAt: d.updatedAt}
	if d.stats != nil {
		s := *d.stats
		st.Stats = &s
	}
	return st
}

// ClearError dismisses the last error.
func (d *Dashboard) ClearError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = ""
}
