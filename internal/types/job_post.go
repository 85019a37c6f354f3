package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// JobStatus is the view-model status of a job post.
type JobStatus string

// Job post statuses. The backend calls an active post "open".
const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
)

// Wire values of jobStatus.
const (
	WireJobOpen   = "open"
	WireJobClosed = "closed"
)

// JobType is the employment type shown for a post.
type JobType string

// Employment types.
const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
)

// ParseJobType maps unknown values to full-time.
func ParseJobType(s string) JobType {
	switch JobType(s) {
	case JobPartTime, JobContract, JobInternship:
		return JobType(s)
	default:
		return JobFullTime
	}
}

// JobPost is the view model of a listing created by a company.
type JobPost struct {
	ID           string
	Title        string
	CompanyID    string
	CompanyName  string
	Description  string
	PostedDate   time.Time
	Status       JobStatus
	Location     string
	Type         JobType
	Salary       string
	Requirements []string
}

// EntityID returns the job post id.
func (j JobPost) EntityID() string { return j.ID }

// CompanyRef is the job post's company field: either a bare id or an embedded object.
type CompanyRef struct {
	ID       string
	Name     string
	Email    string
	Embedded bool
}

// UnmarshalJSON accepts a string id, an object or null.
func (c *CompanyRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*c = CompanyRef{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}
	var obj struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("company reference: %w", err)
	}
	*c = CompanyRef{ID: obj.ID, Name: obj.Name, Email: obj.Email, Embedded: true}
	return nil
}

// MarshalJSON writes an object when embedded, else the bare id.
func (c CompanyRef) MarshalJSON() ([]byte, error) {
	if !c.Embedded {
		return json.Marshal(c.ID)
	}
	return json.Marshal(struct {
		ID    string `json:"_id"`
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
	}{c.ID, c.Name, c.Email})
}

// AddressWire is the nested address of a job post.
type AddressWire struct {
	AddressLine1 string `json:"addressLine1,omitempty"`
	Country      string `json:"country,omitempty"`
	State        string `json:"state,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
}

// PreferencesWire carries skills and employment preferences.
type PreferencesWire struct {
	Skills         []string `json:"skills,omitempty"`
	WorkMode       []string `json:"workMode,omitempty"`
	EmploymentType []string `json:"employmentType,omitempty"`
}

// JobPostWire is the backend representation of a job post.
type JobPostWire struct {
	ID              string           `json:"_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ContactEmail    string           `json:"contactEmail,omitempty"`
	ContactPhone    *MobileWire      `json:"contactPhone,omitempty"`
	Address         *AddressWire     `json:"address,omitempty"`
	Company         CompanyRef       `json:"company"`
	Preferences     *PreferencesWire `json:"preferences,omitempty"`
	JobPostDeadLine string           `json:"jobPostDeadLine,omitempty"`
	JobViews        int              `json:"jobViews"`
	JobApplied      int              `json:"jobApplied"`
	JobStatus       string           `json:"jobStatus"`
	ExternalLink    string           `json:"externalLink,omitempty"`
	CreatedAt       string           `json:"createdAt,omitempty"`
	UpdatedAt       string           `json:"updatedAt,omitempty"`
}

// JobPostPage is the data section of the job posts list response.
// Entries may be null or empty objects; the transformer drops them.
type JobPostPage struct {
	JobPosts   []*JobPostWire `json:"jobPosts"`
	Pagination Pagination     `json:"pagination"`
}

// UpdateJobPostRequest is a partial update; nil fields are left unchanged.
type UpdateJobPostRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	JobStatus   *string `json:"jobStatus,omitempty" validate:"omitempty,oneof=open closed"`
}

// Empty reports whether the update changes nothing.
func (r UpdateJobPostRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.JobStatus == nil
}
