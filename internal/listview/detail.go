package listview

import (
	"strings"
	"time"

	"github.com/hirenest/admin-console/internal/types"
)

// Field is one labelled row of a detail panel.
type Field struct {
	Label string
	Value string
}

const dateLayout = "Jan 2, 2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(dateLayout)
}

func activeLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// CompanyFields lays out a company for the detail panel.
func CompanyFields(c types.Company) []Field {
	return []Field{
		{"ID", c.ID},
		{"Name", c.Name},
		{"Email", c.Email},
		{"Industry", c.Industry},
		{"Phone", c.Phone.String()},
		{"Registered", formatDate(c.RegistrationDate)},
		{"Status", activeLabel(c.IsActive)},
		{"Verified", yesNo(c.IsVerified)},
		{"Verification", string(c.VerificationStatus)},
		{"Documents verified", yesNo(c.IsDocumentVerified)},
	}
}

// JobSeekerFields lays out a job seeker for the detail panel.
func JobSeekerFields(s types.JobSeeker) []Field {
	return []Field{
		{"ID", s.ID},
		{"Name", s.Name},
		{"Email", s.Email},
		{"Phone", s.Phone.String()},
		{"Registered", formatDate(s.RegistrationDate)},
		{"Status", activeLabel(s.IsActive)},
	}
}

// JobPostFields lays out a job post for the detail panel.
func JobPostFields(p types.JobPost) []Field {
	requirements := "N/A"
	if len(p.Requirements) > 0 {
		requirements = strings.Join(p.Requirements, ", ")
	}
	salary := p.Salary
	if salary == "" {
		salary = "N/A"
	}
	return []Field{
		{"ID", p.ID},
		{"Title", p.Title},
		{"Company", p.CompanyName},
		{"Location", p.Location},
		{"Type", string(p.Type)},
		{"Status", string(p.Status)},
		{"Posted", formatDate(p.PostedDate)},
		{"Salary", salary},
		{"Requirements", requirements},
		{"Description", p.Description},
	}
}

// CompanyForm holds the editable fields of a company.
type CompanyForm struct {
	Name     *string
	Email    *string
	Industry *string
}

// DiffCompany keeps only the fields that differ from the original record.
func DiffCompany(orig types.Company, form CompanyForm) types.UpdateCompanyRequest {
	return types.UpdateCompanyRequest{
		Name:     changed(orig.Name, form.Name),
		Email:    changed(orig.Email, form.Email),
		Industry: changed(orig.Industry, form.Industry),
	}
}

// JobSeekerForm holds the editable fields of a job seeker.
type JobSeekerForm struct {
	Name  *string
	Email *string
	Phone *string
}

// DiffJobSeeker keeps only the fields that differ from the original record.
func DiffJobSeeker(orig types.JobSeeker, form JobSeekerForm) types.UpdateJobSeekerRequest {
	return types.UpdateJobSeekerRequest{
		Name:  changed(orig.Name, form.Name),
		Email: changed(orig.Email, form.Email),
		Phone: changed(orig.Phone.String(), form.Phone),
	}
}

// JobPostForm holds the editable fields of a job post.
type JobPostForm struct {
	Title       *string
	Description *string
	Status      *types.JobStatus
}

// DiffJobPost keeps only the fields that differ from the original record. The status
// is translated to its wire value.
func DiffJobPost(orig types.JobPost, form JobPostForm) types.UpdateJobPostRequest {
	req := types.UpdateJobPostRequest{
		Title:       changed(orig.Title, form.Title),
		Description: changed(orig.Description, form.Description),
	}
	if form.Status != nil && *form.Status != orig.Status {
		wire := types.WireJobClosed
		if *form.Status == types.JobActive {
			wire = types.WireJobOpen
		}
		req.JobStatus = &wire
	}
	return req
}

func changed(orig string, edited *string) *string {
	if edited == nil {
		return nil
	}
	v := strings.TrimSpace(*edited)
	if v == orig {
		return nil
	}
	return &v
}
