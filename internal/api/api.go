// Package api provides typed access to the HireNest admin endpoints. Responses are
// converted to view models before they are returned.
package api

import (
	"net/url"

	"go.uber.org/zap"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/types"
)

// API groups the resource clients.
type API struct {
	Auth       *Auth
	Companies  *Companies
	JobSeekers *JobSeekers
	JobPosts   *JobPosts
	Dashboard  *Dashboard
	Catalog    *Catalog
	Settings   *Settings
}

// New wires every resource client to the shared HTTP client.
func New(c *apiclient.Client, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		Auth:       &Auth{client: c},
		Companies:  &Companies{client: c},
		JobSeekers: &JobSeekers{client: c},
		JobPosts:   &JobPosts{client: c, logger: logger},
		Dashboard:  &Dashboard{client: c},
		Catalog:    &Catalog{client: c},
		Settings:   &Settings{client: c},
	}
}

func entityPath(base, id string, suffix ...string) string {
	p := base + "/" + url.PathEscape(id)
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func validateUpdate(req interface{ Empty() bool }) error {
	if req.Empty() {
		return &types.ValidationError{Message: "nothing to update"}
	}
	return types.Validate(req)
}
