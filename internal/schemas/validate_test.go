package schemas

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_ListsEmbeddedSchemas(t *testing.T) {
	names := Names()
	for _, want := range []string{CompanyList, JobSeekerList, JobPostList, Entity, Login, DashboardStats} {
		assert.Contains(t, names, want)
	}
}

func TestValidate_CompanyListValid(t *testing.T) {
	doc := `{"status":"success","data":{"jobProviders":[{"_id":"c1","name":"Acme","email":"a@acme.io","isActive":true}],"pagination":{"currentPage":1,"totalPages":1,"totalItems":1,"itemsPerPage":10}}}`

	v := NewValidator()
	assert.NoError(t, v.Validate(CompanyList, []byte(doc)))
}

func TestValidate_CompanyListMissingPagination(t *testing.T) {
	doc := `{"status":"success","data":{"jobProviders":[]}}`

	err := NewValidator().Validate(CompanyList, []byte(doc))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, CompanyList, validationErr.Schema)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidate_JobPostListAllowsNullEntries(t *testing.T) {
	doc := `{"status":"success","data":{"jobPosts":[null,{},{"_id":"p1","company":"c1"}]}}`

	assert.NoError(t, NewValidator().Validate(JobPostList, []byte(doc)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := NewValidator().Validate("nope", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString_WrongType(t *testing.T) {
	schema := `{"type":"object","required":["token"],"properties":{"token":{"type":"string"}}}`

	assert.NoError(t, ValidateJSONString(schema, `{"token":"abc"}`))
	assert.Error(t, ValidateJSONString(schema, `{"token":42}`))
}

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		method   string
		endpoint string
		want     string
	}{
		{http.MethodGet, "/admin/job-providers?page=2&limit=10", CompanyList},
		{http.MethodGet, "/admin/job-providers/", CompanyList},
		{http.MethodGet, "/admin/job-seekers", JobSeekerList},
		{http.MethodGet, "/admin/job-seekers/count", DashboardStats},
		{http.MethodGet, "/admin/job-posts/active", JobPostList},
		{http.MethodGet, "/admin/job-posts/p1", Entity},
		{http.MethodPatch, "/admin/job-providers/c1/toggle-status", Entity},
		{http.MethodPost, "/admin/auth/login", Login},
		{http.MethodDelete, "/admin/job-posts/p1", ""},
		{http.MethodGet, "/admin/packages", ""},
		{http.MethodGet, "/health", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.endpoint, func(t *testing.T) {
			assert.Equal(t, tt.want, SchemaFor(tt.method, tt.endpoint))
		})
	}
}

func TestValidateResponse_PassesUnmappedEndpoints(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.ValidateResponse(http.MethodGet, "/admin/settings", []byte(`not json`)))
	assert.Error(t, v.ValidateResponse(http.MethodPost, "/admin/auth/login", []byte(`{"user":{}}`)))
}
