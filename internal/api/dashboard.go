package api

import (
	"context"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/types"
)

// The backend serves the dashboard counters from the job seekers resource.
const dashboardPath = "/admin/job-seekers/count"

// Dashboard fetches the headline counters.
type Dashboard struct {
	client *apiclient.Client
}

// Stats returns the current counters.
func (d *Dashboard) Stats(ctx context.Context) (types.DashboardStats, error) {
	var env types.Envelope[types.DashboardStats]
	if err := d.client.Get(ctx, dashboardPath, nil, &env); err != nil {
		return types.DashboardStats{}, err
	}
	return env.Data, nil
}
