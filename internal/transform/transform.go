// Package transform maps backend wire entities to the flat view models used by the console.
package transform

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hirenest/admin-console/internal/types"
)

// now is replaced in tests.
var now = time.Now

// ErrInvalidJobPost is returned for null, empty or id-less job post entries.
var ErrInvalidJobPost = errors.New("invalid job post data")

const (
	notAvailable   = "N/A"
	unknownCompany = "Unknown Company"
)

// Company converts a job provider record. Industry defaults to "N/A", verification to
// pending, and IsVerified is only kept when the status is approved.
func Company(w types.CompanyWire) types.Company {
	status := types.ParseVerificationStatus(w.VerificationStatus)
	verified := w.IsVerified != nil && *w.IsVerified && status == types.VerificationApproved
	industry := strings.TrimSpace(w.Industry)
	if industry == "" {
		industry = notAvailable
	}
	return types.Company{
		ID:                 w.ID,
		Name:               w.Name,
		Email:              w.Email,
		Industry:           industry,
		Phone:              w.Mobile.Phone(),
		RegistrationDate:   parseTime(w.CreatedAt),
		IsActive:           w.IsActive,
		IsVerified:         verified,
		VerificationStatus: status,
		IsDocumentVerified: w.IsDocumentVerified != nil && *w.IsDocumentVerified,
	}
}

// Companies converts a page of job providers.
func Companies(ws []types.CompanyWire) []types.Company {
	out := make([]types.Company, 0, len(ws))
	for _, w := range ws {
		out = append(out, Company(w))
	}
	return out
}

// JobSeeker converts a job seeker record.
func JobSeeker(w types.JobSeekerWire) types.JobSeeker {
	return types.JobSeeker{
		ID:               w.ID,
		Name:             w.Name,
		Email:            w.Email,
		Phone:            w.Mobile.Phone(),
		RegistrationDate: parseTime(w.CreatedAt),
		IsActive:         w.IsActive,
	}
}

// JobSeekers converts a page of job seekers.
func JobSeekers(ws []types.JobSeekerWire) []types.JobSeeker {
	out := make([]types.JobSeeker, 0, len(ws))
	for _, w := range ws {
		out = append(out, JobSeeker(w))
	}
	return out
}

// JobPost converts a job post record. It fails for entries the backend sometimes
// sends as null or {}.
func JobPost(w *types.JobPostWire) (types.JobPost, error) {
	if w == nil {
		return types.JobPost{}, fmt.Errorf("%w: null", ErrInvalidJobPost)
	}
	if w.ID == "" {
		return types.JobPost{}, fmt.Errorf("%w: missing _id", ErrInvalidJobPost)
	}

	posted := parseTime(w.CreatedAt)
	if posted.IsZero() {
		posted = now()
	}

	status := types.JobClosed
	if w.JobStatus == types.WireJobOpen {
		status = types.JobActive
	}

	companyName := unknownCompany
	if w.Company.Embedded && w.Company.Name != "" {
		companyName = w.Company.Name
	}

	jobType := types.JobFullTime
	var requirements []string
	if w.Preferences != nil {
		if len(w.Preferences.EmploymentType) > 0 {
			jobType = types.ParseJobType(w.Preferences.EmploymentType[0])
		}
		requirements = append(requirements, w.Preferences.Skills...)
	}
	if requirements == nil {
		requirements = []string{}
	}

	return types.JobPost{
		ID:           w.ID,
		Title:        w.Title,
		CompanyID:    w.Company.ID,
		CompanyName:  companyName,
		Description:  w.Description,
		PostedDate:   posted,
		Status:       status,
		Location:     location(w.Address),
		Type:         jobType,
		Requirements: requirements,
	}, nil
}

// JobPosts converts a page of job posts, dropping invalid entries. The number of
// dropped entries is returned so callers can log it.
func JobPosts(ws []*types.JobPostWire) ([]types.JobPost, int) {
	out := make([]types.JobPost, 0, len(ws))
	dropped := 0
	for _, w := range ws {
		post, err := JobPost(w)
		if err != nil {
			dropped++
			continue
		}
		out = append(out, post)
	}
	return out, dropped
}

func location(a *types.AddressWire) string {
	if a == nil {
		return notAvailable
	}
	return orNA(a.City) + ", " + orNA(a.State)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

// parseTime accepts RFC 3339 timestamps and plain dates; anything else is the zero time.
func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
