//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validation(t *testing.T) {
	tests := []struct {
		name      string
		request   LoginRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request",
			request: LoginRequest{Email: "admin@hirenest.com", Password: "secret"},
		},
		{
			name:      "missing email",
			request:   LoginRequest{Password: "secret"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "invalid email",
			request:   LoginRequest{Email: "not-an-email", Password: "secret"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "missing password",
			request:   LoginRequest{Email: "admin@hirenest.com"},
			wantErr:   true,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestLoginResponse_JSONShape(t *testing.T) {
	body := `{"message":"Login successful","token":"abc","user":{"id":"1","email":"a@b.co","firstName":"Ada"}}`

	var resp LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, AdminUser{ID: "1", Email: "a@b.co", FirstName: "Ada"}, resp.User)
}

func TestUpdateRequests_Validation(t *testing.T) {
	badEmail := "nope"
	empty := ""
	closed := "closed"
	unknown := "archived"

	assert.NoError(t, Validate(UpdateCompanyRequest{}))
	assert.Error(t, Validate(UpdateCompanyRequest{Email: &badEmail}))
	assert.Error(t, Validate(UpdateCompanyRequest{Name: &empty}))
	assert.Error(t, Validate(UpdateJobSeekerRequest{Email: &badEmail}))
	assert.NoError(t, Validate(UpdateJobPostRequest{JobStatus: &closed}))
	assert.Error(t, Validate(UpdateJobPostRequest{JobStatus: &unknown}))

	assert.True(t, UpdateCompanyRequest{}.Empty())
	assert.False(t, UpdateJobPostRequest{JobStatus: &closed}.Empty())
}

func TestVerificationRequest_Validation(t *testing.T) {
	assert.NoError(t, Validate(VerificationRequest{VerificationStatus: VerificationApproved}))
	assert.NoError(t, Validate(VerificationRequest{VerificationStatus: VerificationRejected}))
	assert.Error(t, Validate(VerificationRequest{VerificationStatus: VerificationPending}))
	assert.Error(t, Validate(VerificationRequest{}))
}

func TestCatalogRequests_Validation(t *testing.T) {
	valid := PackageRequest{
		Name:            "Professional",
		Price:           49,
		BillingCycle:    BillingMonthly,
		MaxJobPostings:  Unlimited,
		MaxApplications: 500,
		Priority:        2,
	}
	assert.NoError(t, Validate(valid))

	bad := valid
	bad.BillingCycle = "weekly"
	assert.Error(t, Validate(bad))

	bad = valid
	bad.MaxJobPostings = -2
	assert.Error(t, Validate(bad))

	assert.NoError(t, Validate(FeatureRequest{Name: "API Access", Category: CategoryEnterprise}))
	assert.Error(t, Validate(FeatureRequest{Name: "API Access", Category: "gold"}))

	settings := PlatformSettings{
		PlatformName:         "HireNest",
		PlatformEmail:        "admin@hirenest.com",
		DefaultJobExpiryDays: 30,
	}
	assert.NoError(t, Validate(settings))
	settings.DefaultJobExpiryDays = 0
	assert.Error(t, Validate(settings))
}
