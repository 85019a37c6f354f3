package api

import (
	"context"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/transform"
	"github.com/hirenest/admin-console/internal/types"
)

const companiesPath = "/admin/job-providers"

// Companies calls the job provider endpoints.
type Companies struct {
	client *apiclient.Client
}

// List fetches one page of companies. Search and status are filtered server-side.
func (c *Companies) List(ctx context.Context, params types.ListParams) (types.Page[types.Company], error) {
	var env types.Envelope[types.CompanyPage]
	if err := c.client.Get(ctx, companiesPath, params.Query(), &env); err != nil {
		return types.Page[types.Company]{}, err
	}
	return types.Page[types.Company]{
		Items:      transform.Companies(env.Data.JobProviders),
		Pagination: env.Data.Pagination,
	}, nil
}

// Get fetches a company profile.
func (c *Companies) Get(ctx context.Context, id string) (types.Company, error) {
	var env types.Envelope[types.CompanyWire]
	if err := c.client.Get(ctx, entityPath(companiesPath, id), nil, &env); err != nil {
		return types.Company{}, err
	}
	return transform.Company(env.Data), nil
}

// ToggleStatus activates or deactivates a company.
func (c *Companies) ToggleStatus(ctx context.Context, id string, isActive bool) (types.Company, error) {
	var env types.Envelope[types.CompanyWire]
	body := types.ToggleStatusRequest{IsActive: isActive}
	if err := c.client.Patch(ctx, entityPath(companiesPath, id, "toggle-status"), body, &env); err != nil {
		return types.Company{}, err
	}
	return transform.Company(env.Data), nil
}

// Update applies a partial profile update.
func (c *Companies) Update(ctx context.Context, id string, req types.UpdateCompanyRequest) (types.Company, error) {
	if err := validateUpdate(req); err != nil {
		return types.Company{}, err
	}
	var env types.Envelope[types.CompanyWire]
	if err := c.client.Patch(ctx, entityPath(companiesPath, id, "update-profile"), req, &env); err != nil {
		return types.Company{}, err
	}
	return transform.Company(env.Data), nil
}

// SetVerification approves or rejects a company's documents.
func (c *Companies) SetVerification(ctx context.Context, id string, status types.VerificationStatus) (types.Company, error) {
	req := types.VerificationRequest{VerificationStatus: status}
	if err := types.Validate(req); err != nil {
		return types.Company{}, err
	}
	var env types.Envelope[types.CompanyWire]
	if err := c.client.Patch(ctx, entityPath(companiesPath, id, "verification"), req, &env); err != nil {
		return types.Company{}, err
	}
	return transform.Company(env.Data), nil
}

// Delete removes a company.
func (c *Companies) Delete(ctx context.Context, id string) error {
	var out types.DeleteResponse
	return c.client.Delete(ctx, entityPath(companiesPath, id), &out)
}
