package api

import (
	"context"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/transform"
	"github.com/hirenest/admin-console/internal/types"
)

const jobSeekersPath = "/admin/job-seekers"

// JobSeekers calls the job seeker endpoints.
type JobSeekers struct {
	client *apiclient.Client
}

// List fetches one page of job seekers.
func (j *JobSeekers) List(ctx context.Context, params types.ListParams) (types.Page[types.JobSeeker], error) {
	var env types.Envelope[types.JobSeekerPage]
	if err := j.client.Get(ctx, jobSeekersPath, params.Query(), &env); err != nil {
		return types.Page[types.JobSeeker]{}, err
	}
	return types.Page[types.JobSeeker]{
		Items:      transform.JobSeekers(env.Data.JobSeekers),
		Pagination: env.Data.Pagination,
	}, nil
}

// Get fetches a job seeker profile.
func (j *JobSeekers) Get(ctx context.Context, id string) (types.JobSeeker, error) {
	var env types.Envelope[types.JobSeekerWire]
	if err := j.client.Get(ctx, entityPath(jobSeekersPath, id), nil, &env); err != nil {
		return types.JobSeeker{}, err
	}
	return transform.JobSeeker(env.Data), nil
}

// ToggleStatus activates or deactivates a job seeker.
func (j *JobSeekers) ToggleStatus(ctx context.Context, id string, isActive bool) (types.JobSeeker, error) {
	var env types.Envelope[types.JobSeekerWire]
	body := types.ToggleStatusRequest{IsActive: isActive}
	if err := j.client.Patch(ctx, entityPath(jobSeekersPath, id, "toggle-status"), body, &env); err != nil {
		return types.JobSeeker{}, err
	}
	return transform.JobSeeker(env.Data), nil
}

// Update applies a partial profile update.
func (j *JobSeekers) Update(ctx context.Context, id string, req types.UpdateJobSeekerRequest) (types.JobSeeker, error) {
	if err := validateUpdate(req); err != nil {
		return types.JobSeeker{}, err
	}
	var env types.Envelope[types.JobSeekerWire]
	if err := j.client.Patch(ctx, entityPath(jobSeekersPath, id, "update-profile"), req, &env); err != nil {
		return types.JobSeeker{}, err
	}
	return transform.JobSeeker(env.Data), nil
}

// Delete removes a job seeker.
func (j *JobSeekers) Delete(ctx context.Context, id string) error {
	var out types.DeleteResponse
	return j.client.Delete(ctx, entityPath(jobSeekersPath, id), &out)
}
