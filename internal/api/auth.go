package api

import (
	"context"
	"net/http"

	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/types"
)

const loginPath = "/admin/auth/login"

// Auth calls the admin login endpoint.
type Auth struct {
	client *apiclient.Client
}

// Login exchanges credentials for a bearer token. The request is sent without
// an Authorization header.
func (a *Auth) Login(ctx context.Context, req types.LoginRequest) (types.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return types.LoginResponse{}, err
	}
	resp, err := a.client.Request(ctx, loginPath, apiclient.RequestOptions{
		Method:   http.MethodPost,
		Body:     req,
		SkipAuth: true,
	})
	if err != nil {
		return types.LoginResponse{}, err
	}
	var out types.LoginResponse
	if err := resp.Decode(&out); err != nil {
		return types.LoginResponse{}, err
	}
	return out, nil
}
