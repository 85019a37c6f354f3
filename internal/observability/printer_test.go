package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/hirenest/admin-console/internal/listview"
	"github.com/hirenest/admin-console/internal/team"
	"github.com/hirenest/admin-console/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintCompanies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanies(types.Page[types.Company]{
		Items: []types.Company{{
			ID:                 "c1",
			Name:               "Tech Solutions Inc",
			Email:              "hr@techsolutions.com",
			Industry:           "Technology",
			Phone:              types.KnownPhone("1", "5551234567"),
			RegistrationDate:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			IsActive:           true,
			IsVerified:         true,
			VerificationStatus: types.VerificationApproved,
		}},
		Pagination: types.NewPagination(1, 10, 1),
	})
	output := buf.String()

	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "Tech Solutions Inc")
	assert.Contains(t, output, "+15551234567")
	assert.Contains(t, output, "Jan 15, 2024")
	assert.Contains(t, output, "verified")
	assert.Contains(t, output, "Showing 1 to 1 of 1 companies")
	assert.NotContains(t, output, "Pages:")
}

func TestPrintJobSeekers_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobSeekers(types.Page[types.JobSeeker]{})

	assert.Contains(t, buf.String(), "No job seekers found.")
	assert.Contains(t, buf.String(), "Showing 0 to 0 of 0 job seekers")
}

func TestPrintPagination_MarksCurrentPage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPagination(types.NewPagination(5, 10, 100), "job posts")
	output := buf.String()

	assert.Contains(t, output, "Showing 41 to 50 of 100 job posts")
	assert.Contains(t, output, "Pages: 1 ... 4 [5] 6 ... 10")
}

func TestPrintDetail(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDetail("JOB SEEKER", listview.JobSeekerFields(types.JobSeeker{
		ID:    "s1",
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Phone: types.UnknownPhone(),
	}))
	output := buf.String()

	assert.Contains(t, output, "JOB SEEKER")
	assert.Contains(t, output, "Jane Smith")
	assert.Contains(t, output, "Phone:")
	assert.Contains(t, output, "N/A")
	assert.Contains(t, output, "Inactive")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintDashboard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := &types.DashboardStats{TotalUsers: 1247, TotalJobSeekers: 856, TotalJobProviders: 391, TotalJobs: 234, TotalApplications: 3421}
	active := make([]types.JobPost, 7)
	for i := range active {
		active[i] = types.JobPost{Title: "Engineer", CompanyName: "Acme", Location: "Austin, TX"}
	}

	p.PrintDashboard(stats, active)
	output := buf.String()

	assert.Contains(t, output, "1247")
	assert.Contains(t, output, "3421")
	assert.Contains(t, output, "ACTIVE JOB POSTS")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintDashboard_NoStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDashboard(nil, nil)

	assert.Contains(t, buf.String(), "Statistics unavailable")
	assert.Contains(t, buf.String(), "No active job posts.")
}

func TestPrintPackages_Unlimited(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPackages([]types.PackageWithFeatures{{
		Package: types.Package{
			ID: "p1", Name: "Enterprise", Price: 199, BillingCycle: types.BillingMonthly,
			IsActive: true, MaxJobPostings: types.Unlimited, MaxApplications: types.Unlimited,
		},
		FeatureDetails: []types.Feature{{Name: "API Access"}},
	}})
	output := buf.String()

	assert.Contains(t, output, "$199.00/monthly")
	assert.Contains(t, output, "unlimited")
	assert.Contains(t, output, "API Access")
}

func TestPrintSettings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSettings(types.PlatformSettings{
		PlatformName: "JobHub", PlatformEmail: "admin@jobhub.com",
		DefaultJobExpiryDays: 30, RequireEmailVerification: true,
	})

	assert.Contains(t, buf.String(), "JobHub")
	assert.Contains(t, buf.String(), "30")
	assert.Contains(t, buf.String(), "Yes")
}

func TestPrintRoster(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := team.NewRoster("admin@hirenest.com")
	p.PrintRoster(r.Members, []team.Invitation{{Email: "new@hirenest.com", Role: team.RoleViewer}})
	output := buf.String()

	assert.Contains(t, output, "Admin (You) *")
	assert.Contains(t, output, "PENDING INVITATIONS")
	assert.Contains(t, output, "new@hirenest.com (Viewer)")
}
