package types

import "time"

// JobSeeker is the view model of a candidate account.
type JobSeeker struct {
	ID               string
	Name             string
	Email            string
	Phone            PhoneNumber
	RegistrationDate time.Time
	IsActive         bool
}

// EntityID returns the job seeker id.
func (j JobSeeker) EntityID() string { return j.ID }

// JobSeekerWire is the backend representation of a job seeker.
type JobSeekerWire struct {
	ID        string      `json:"_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Mobile    *MobileWire `json:"mobile,omitempty"`
	IsActive  bool        `json:"isActive"`
	CreatedAt string      `json:"createdAt"`
}

// JobSeekerPage is the data section of the job seekers list response.
type JobSeekerPage struct {
	JobSeekers []JobSeekerWire `json:"jobSeekers"`
	Pagination Pagination      `json:"pagination"`
}

// UpdateJobSeekerRequest is a partial update; nil fields are left unchanged.
type UpdateJobSeekerRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=4"`
}

// Empty reports whether the update changes nothing.
func (r UpdateJobSeekerRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Phone == nil
}
