package api

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/transform"
	"github.com/hirenest/admin-console/internal/types"
)

const jobPostsPath = "/admin/job-posts"

// JobPosts calls the job post endpoints.
type JobPosts struct {
	client *apiclient.Client
	logger *zap.Logger
}

func (j *JobPosts) page(ctx context.Context, endpoint string, params *types.ListParams) (types.Page[types.JobPost], error) {
	var env types.Envelope[types.JobPostPage]
	var query url.Values
	if params != nil {
		query = params.Query()
	}
	if err := j.client.Get(ctx, endpoint, query, &env); err != nil {
		return types.Page[types.JobPost]{}, err
	}
	posts, dropped := transform.JobPosts(env.Data.JobPosts)
	if dropped > 0 {
		j.logger.Warn("dropped invalid job posts", zap.String("endpoint", endpoint), zap.Int("count", dropped))
	}
	pagination := env.Data.Pagination
	if pagination.ItemsPerPage == 0 {
		pagination = types.NewPagination(1, len(posts), len(posts))
	}
	return types.Page[types.JobPost]{Items: posts, Pagination: pagination}, nil
}

// List fetches one page of job posts.
func (j *JobPosts) List(ctx context.Context, params types.ListParams) (types.Page[types.JobPost], error) {
	return j.page(ctx, jobPostsPath, &params)
}

// Active fetches the open job posts.
func (j *JobPosts) Active(ctx context.Context) (types.Page[types.JobPost], error) {
	return j.page(ctx, jobPostsPath+"/active", nil)
}

// Get fetches a job post.
func (j *JobPosts) Get(ctx context.Context, id string) (types.JobPost, error) {
	var env types.Envelope[*types.JobPostWire]
	if err := j.client.Get(ctx, entityPath(jobPostsPath, id), nil, &env); err != nil {
		return types.JobPost{}, err
	}
	return transform.JobPost(env.Data)
}

// Update applies a partial update.
func (j *JobPosts) Update(ctx context.Context, id string, req types.UpdateJobPostRequest) (types.JobPost, error) {
	if err := validateUpdate(req); err != nil {
		return types.JobPost{}, err
	}
	var env types.Envelope[*types.JobPostWire]
	if err := j.client.Patch(ctx, entityPath(jobPostsPath, id), req, &env); err != nil {
		return types.JobPost{}, err
	}
	return transform.JobPost(env.Data)
}

// Close marks a job post closed.
func (j *JobPosts) Close(ctx context.Context, id string) (types.JobPost, error) {
	closed := types.WireJobClosed
	return j.Update(ctx, id, types.UpdateJobPostRequest{JobStatus: &closed})
}

// Delete removes a job post.
func (j *JobPosts) Delete(ctx context.Context, id string) error {
	var out types.DeleteResponse
	return j.client.Delete(ctx, entityPath(jobPostsPath, id), &out)
}
