package server

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirenest/admin-console/internal/types"
)

// Entity kinds used in error messages.
const (
	kindCompany   = "Job provider"
	kindJobSeeker = "Job seeker"
	kindJobPost   = "Job post"
	kindPackage   = "Package"
	kindFeature   = "Feature"
)

// MaxPageSize caps the limit query parameter.
const MaxPageSize = 100

// ListQuery is a parsed list request.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// MemoryStore holds the backend records. Methods are safe for concurrent use and
// return deep copies, so callers never share memory with stored records.
type MemoryStore struct {
	now func() time.Time

	mu        sync.RWMutex
	companies []types.CompanyWire
	seekers   []types.JobSeekerWire
	posts     []types.JobPostWire
	packages  []types.Package
	features  []types.Feature
	settings  types.PlatformSettings
	stats     types.DashboardStats
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now}
}

func (s *MemoryStore) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func objectID(kind, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return &ErrInvalidID{Kind: strings.ToLower(kind), ID: id}
	}
	return nil
}

func uuidID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &ErrInvalidID{Kind: strings.ToLower(kind), ID: id}
	}
	return nil
}

func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, q ListQuery) ([]T, types.Pagination) {
	p := types.NewPagination(q.Page, q.Limit, len(items))
	start := (q.Page - 1) * q.Limit
	if start >= len(items) {
		return []T{}, p
	}
	end := min(start+q.Limit, len(items))
	return slices.Clone(items[start:end]), p
}

func activeFilter(status string, isActive bool) bool {
	switch status {
	case types.StatusFilterActive:
		return isActive
	case types.StatusFilterInactive:
		return !isActive
	default:
		return true
	}
}

func boolPtr(b bool) *bool { return &b }

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	return boolPtr(*b)
}

func cloneMobile(m *types.MobileWire) *types.MobileWire {
	if m == nil {
		return nil
	}
	return &types.MobileWire{CountryCode: slices.Clone(m.CountryCode), MobileNumber: slices.Clone(m.MobileNumber)}
}

func cloneCompany(c types.CompanyWire) types.CompanyWire {
	c.Mobile = cloneMobile(c.Mobile)
	c.IsVerified = cloneBool(c.IsVerified)
	c.IsDocumentVerified = cloneBool(c.IsDocumentVerified)
	return c
}

func cloneSeeker(js types.JobSeekerWire) types.JobSeekerWire {
	js.Mobile = cloneMobile(js.Mobile)
	return js
}

func clonePost(p types.JobPostWire) types.JobPostWire {
	p.ContactPhone = cloneMobile(p.ContactPhone)
	if p.Address != nil {
		addr := *p.Address
		p.Address = &addr
	}
	if p.Preferences != nil {
		p.Preferences = &types.PreferencesWire{
			Skills:         slices.Clone(p.Preferences.Skills),
			WorkMode:       slices.Clone(p.Preferences.WorkMode),
			EmploymentType: slices.Clone(p.Preferences.EmploymentType),
		}
	}
	return p
}

// ListCompanies filters by name, email or industry and by active status.
func (s *MemoryStore) ListCompanies(q ListQuery) ([]types.CompanyWire, types.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.CompanyWire
	for _, c := range s.companies {
		if matches(q.Search, c.Name, c.Email, c.Industry) && activeFilter(q.Status, c.IsActive) {
			out = append(out, cloneCompany(c))
		}
	}
	return paginate(out, q)
}

func (s *MemoryStore) companyIndex(id string) (int, error) {
	if err := objectID(kindCompany, id); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(s.companies, func(c types.CompanyWire) bool { return c.ID == id })
	if i < 0 {
		return -1, &ErrNotFound{Kind: kindCompany, ID: id}
	}
	return i, nil
}

// Company returns one job provider.
func (s *MemoryStore) Company(id string) (types.CompanyWire, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, err := s.companyIndex(id)
	if err != nil {
		return types.CompanyWire{}, err
	}
	return cloneCompany(s.companies[i]), nil
}

func (s *MemoryStore) mutateCompany(id string, fn func(*types.CompanyWire) error) (types.CompanyWire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.companyIndex(id)
	if err != nil {
		return types.CompanyWire{}, err
	}
	c := cloneCompany(s.companies[i])
	if err := fn(&c); err != nil {
		return types.CompanyWire{}, err
	}
	s.companies[i] = c
	return cloneCompany(c), nil
}

// SetCompanyActive activates or deactivates a job provider.
func (s *MemoryStore) SetCompanyActive(id string, active bool) (types.CompanyWire, error) {
	return s.mutateCompany(id, func(c *types.CompanyWire) error {
		c.IsActive = active
		return nil
	})
}

// UpdateCompany applies a partial profile update. Emails stay unique across job providers.
func (s *MemoryStore) UpdateCompany(id string, req types.UpdateCompanyRequest) (types.CompanyWire, error) {
	return s.mutateCompany(id, func(c *types.CompanyWire) error {
		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			for _, other := range s.companies {
				if other.ID != id && strings.EqualFold(other.Email, email) {
					return &ErrConflict{Message: "Email is already in use"}
				}
			}
			c.Email = email
		}
		if req.Name != nil {
			c.Name = strings.TrimSpace(*req.Name)
		}
		if req.Industry != nil {
			c.Industry = strings.TrimSpace(*req.Industry)
		}
		return nil
	})
}

// SetCompanyVerification records the outcome of the document review.
func (s *MemoryStore) SetCompanyVerification(id string, status types.VerificationStatus) (types.CompanyWire, error) {
	return s.mutateCompany(id, func(c *types.CompanyWire) error {
		approved := status == types.VerificationApproved
		c.VerificationStatus = string(status)
		c.IsVerified = boolPtr(approved)
		c.IsDocumentVerified = boolPtr(approved)
		return nil
	})
}

// DeleteCompany removes a job provider. Its job posts keep the bare company id.
func (s *MemoryStore) DeleteCompany(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.companyIndex(id)
	if err != nil {
		return err
	}
	s.companies = slices.Delete(s.companies, i, i+1)
	return nil
}

// ListJobSeekers filters by name or email and by active status.
func (s *MemoryStore) ListJobSeekers(q ListQuery) ([]types.JobSeekerWire, types.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []types.JobSeekerWire
	for _, js := range s.seekers {
		if matches(q.Search, js.Name, js.Email) && activeFilter(q.Status, js.IsActive) {
			out = append(out, cloneSeeker(js))
		}
	}
	return paginate(out, q)
}

func (s *MemoryStore) seekerIndex(id string) (int, error) {
	if err := objectID(kindJobSeeker, id); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(s.seekers, func(js types.JobSeekerWire) bool { return js.ID == id })
	if i < 0 {
		return -1, &ErrNotFound{Kind: kindJobSeeker, ID: id}
	}
	return i, nil
}

// JobSeeker returns one job seeker.
func (s *MemoryStore) JobSeeker(id string) (types.JobSeekerWire, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, err := s.seekerIndex(id)
	if err != nil {
		return types.JobSeekerWire{}, err
	}
	return cloneSeeker(s.seekers[i]), nil
}

func (s *MemoryStore) mutateSeeker(id string, fn func(*types.JobSeekerWire) error) (types.JobSeekerWire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.seekerIndex(id)
	if err != nil {
		return types.JobSeekerWire{}, err
	}
	js := cloneSeeker(s.seekers[i])
	if err := fn(&js); err != nil {
		return types.JobSeekerWire{}, err
	}
	s.seekers[i] = js
	return cloneSeeker(js), nil
}

// SetJobSeekerActive activates or deactivates a job seeker.
func (s *MemoryStore) SetJobSeekerActive(id string, active bool) (types.JobSeekerWire, error) {
	return s.mutateSeeker(id, func(js *types.JobSeekerWire) error {
		js.IsActive = active
		return nil
	})
}

// UpdateJobSeeker applies a partial profile update.
func (s *MemoryStore) UpdateJobSeeker(id string, req types.UpdateJobSeekerRequest) (types.JobSeekerWire, error) {
	return s.mutateSeeker(id, func(js *types.JobSeekerWire) error {
		if req.Phone != nil {
			mobile, err := parsePhone(*req.Phone)
			if err != nil {
				return err
			}
			js.Mobile = mobile
		}
		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			for _, other := range s.seekers {
				if other.ID != id && strings.EqualFold(other.Email, email) {
					return &ErrConflict{Message: "Email is already in use"}
				}
			}
			js.Email = email
		}
		if req.Name != nil {
			js.Name = strings.TrimSpace(*req.Name)
		}
		return nil
	})
}

// parsePhone splits "+<country code><10 digit number>". Spaces, dashes and
// parentheses are ignored. Both parts are stored as strings so leading zeros survive.
func parsePhone(raw string) (*types.MobileWire, error) {
	var digits strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return nil, &ErrValidation{Field: "phone", Message: "must contain only digits"}
		}
	}
	d := digits.String()
	if len(d) < 11 || len(d) > 13 {
		return nil, &ErrValidation{Field: "phone", Message: "must be a country code followed by a 10 digit number"}
	}
	cc, number := d[:len(d)-10], d[len(d)-10:]
	return &types.MobileWire{
		CountryCode:  json.RawMessage(strconv.Quote(cc)),
		MobileNumber: json.RawMessage(strconv.Quote(number)),
	}, nil
}

// DeleteJobSeeker removes a job seeker.
func (s *MemoryStore) DeleteJobSeeker(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.seekerIndex(id)
	if err != nil {
		return err
	}
	s.seekers = slices.Delete(s.seekers, i, i+1)
	return nil
}

// populate embeds the company name and email, like a database join. Posts of
// deleted companies keep the bare id.
func (s *MemoryStore) populate(p types.JobPostWire) types.JobPostWire {
	p = clonePost(p)
	for _, c := range s.companies {
		if c.ID == p.Company.ID {
			p.Company = types.CompanyRef{ID: c.ID, Name: c.Name, Email: c.Email, Embedded: true}
			return p
		}
	}
	p.Company = types.CompanyRef{ID: p.Company.ID}
	return p
}

func postCity(p types.JobPostWire) string {
	if p.Address == nil {
		return ""
	}
	return p.Address.City + " " + p.Address.State
}

// ListJobPosts filters by title, company or location. The status filter takes the
// console values active and closed.
func (s *MemoryStore) ListJobPosts(q ListQuery) ([]*types.JobPostWire, types.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*types.JobPostWire
	for _, p := range s.posts {
		p = s.populate(p)
		switch q.Status {
		case types.StatusFilterActive:
			if p.JobStatus != types.WireJobOpen {
				continue
			}
		case types.StatusFilterClosed:
			if p.JobStatus != types.WireJobClosed {
				continue
			}
		}
		if !matches(q.Search, p.Title, p.Company.Name, postCity(p)) {
			continue
		}
		out = append(out, &p)
	}
	return paginate(out, q)
}

// ActiveJobPosts returns every open post in a single page.
func (s *MemoryStore) ActiveJobPosts() ([]*types.JobPostWire, types.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*types.JobPostWire{}
	for _, p := range s.posts {
		if p.JobStatus == types.WireJobOpen {
			p = s.populate(p)
			out = append(out, &p)
		}
	}
	return out, types.NewPagination(1, max(len(out), 1), len(out))
}

func (s *MemoryStore) postIndex(id string) (int, error) {
	if err := objectID(kindJobPost, id); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(s.posts, func(p types.JobPostWire) bool { return p.ID == id })
	if i < 0 {
		return -1, &ErrNotFound{Kind: kindJobPost, ID: id}
	}
	return i, nil
}

// JobPost returns one job post with its company embedded.
func (s *MemoryStore) JobPost(id string) (types.JobPostWire, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, err := s.postIndex(id)
	if err != nil {
		return types.JobPostWire{}, err
	}
	return s.populate(s.posts[i]), nil
}

// UpdateJobPost applies a partial update.
func (s *MemoryStore) UpdateJobPost(id string, req types.UpdateJobPostRequest) (types.JobPostWire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.postIndex(id)
	if err != nil {
		return types.JobPostWire{}, err
	}
	p := s.posts[i]
	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.JobStatus != nil {
		p.JobStatus = *req.JobStatus
	}
	p.UpdatedAt = s.timestamp()
	s.posts[i] = p
	return s.populate(p), nil
}

// DeleteJobPost removes a job post.
func (s *MemoryStore) DeleteJobPost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.postIndex(id)
	if err != nil {
		return err
	}
	s.posts = slices.Delete(s.posts, i, i+1)
	return nil
}

func (s *MemoryStore) withFeatures(p types.Package) types.PackageWithFeatures {
	out := types.PackageWithFeatures{Package: p, FeatureDetails: []types.Feature{}}
	out.Features = slices.Clone(p.Features)
	for _, id := range p.Features {
		if i := slices.IndexFunc(s.features, func(f types.Feature) bool { return f.ID == id }); i >= 0 {
			out.FeatureDetails = append(out.FeatureDetails, s.features[i])
		}
	}
	return out
}

// Packages returns every package joined with its features, by priority.
func (s *MemoryStore) Packages() []types.PackageWithFeatures {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.PackageWithFeatures, 0, len(s.packages))
	for _, p := range s.packages {
		out = append(out, s.withFeatures(p))
	}
	slices.SortStableFunc(out, func(a, b types.PackageWithFeatures) int { return a.Priority - b.Priority })
	return out
}

func (s *MemoryStore) packageIndex(id string) (int, error) {
	if err := uuidID(kindPackage, id); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(s.packages, func(p types.Package) bool { return p.ID == id })
	if i < 0 {
		return -1, &ErrNotFound{Kind: kindPackage, ID: id}
	}
	return i, nil
}

// Package returns one package joined with its features.
func (s *MemoryStore) Package(id string) (types.PackageWithFeatures, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, err := s.packageIndex(id)
	if err != nil {
		return types.PackageWithFeatures{}, err
	}
	return s.withFeatures(s.packages[i]), nil
}

func (s *MemoryStore) checkFeatureIDs(ids []string) error {
	for _, id := range ids {
		if !slices.ContainsFunc(s.features, func(f types.Feature) bool { return f.ID == id }) {
			return &ErrValidation{Field: "features", Message: "unknown feature " + id}
		}
	}
	return nil
}

func applyPackage(p *types.Package, req types.PackageRequest) {
	p.Name = strings.TrimSpace(req.Name)
	p.Description = req.Description
	p.Price = req.Price
	p.BillingCycle = req.BillingCycle
	p.IsActive = req.IsActive
	p.Features = slices.Clone(req.Features)
	if p.Features == nil {
		p.Features = []string{}
	}
	p.MaxJobPostings = req.MaxJobPostings
	p.MaxApplications = req.MaxApplications
	p.Priority = req.Priority
}

// CreatePackage adds a package.
func (s *MemoryStore) CreatePackage(req types.PackageRequest) (types.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFeatureIDs(req.Features); err != nil {
		return types.Package{}, err
	}
	now := s.now().UTC()
	p := types.Package{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	applyPackage(&p, req)
	s.packages = append(s.packages, p)
	return p, nil
}

// UpdatePackage replaces a package's fields.
func (s *MemoryStore) UpdatePackage(id string, req types.PackageRequest) (types.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.packageIndex(id)
	if err != nil {
		return types.Package{}, err
	}
	if err := s.checkFeatureIDs(req.Features); err != nil {
		return types.Package{}, err
	}
	p := s.packages[i]
	applyPackage(&p, req)
	p.UpdatedAt = s.now().UTC()
	s.packages[i] = p
	return p, nil
}

// DeletePackage removes a package.
func (s *MemoryStore) DeletePackage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.packageIndex(id)
	if err != nil {
		return err
	}
	s.packages = slices.Delete(s.packages, i, i+1)
	return nil
}

// Features returns the feature catalog.
func (s *MemoryStore) Features() []types.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.features)
}

func (s *MemoryStore) featureIndex(id string) (int, error) {
	if err := uuidID(kindFeature, id); err != nil {
		return -1, err
	}
	i := slices.IndexFunc(s.features, func(f types.Feature) bool { return f.ID == id })
	if i < 0 {
		return -1, &ErrNotFound{Kind: kindFeature, ID: id}
	}
	return i, nil
}

// CreateFeature adds a feature.
func (s *MemoryStore) CreateFeature(req types.FeatureRequest) types.Feature {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := types.Feature{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		CreatedAt:   s.now().UTC(),
	}
	s.features = append(s.features, f)
	return f
}

// UpdateFeature replaces a feature's fields.
func (s *MemoryStore) UpdateFeature(id string, req types.FeatureRequest) (types.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.featureIndex(id)
	if err != nil {
		return types.Feature{}, err
	}
	f := s.features[i]
	f.Name = strings.TrimSpace(req.Name)
	f.Description = req.Description
	f.Category = req.Category
	s.features[i] = f
	return f, nil
}

// DeleteFeature removes a feature and detaches it from every package.
func (s *MemoryStore) DeleteFeature(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, err := s.featureIndex(id)
	if err != nil {
		return err
	}
	s.features = slices.Delete(s.features, i, i+1)
	for j := range s.packages {
		s.packages[j].Features = slices.DeleteFunc(slices.Clone(s.packages[j].Features), func(f string) bool { return f == id })
	}
	return nil
}

// Settings returns the platform settings.
func (s *MemoryStore) Settings() types.PlatformSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the platform settings.
func (s *MemoryStore) UpdateSettings(settings types.PlatformSettings) types.PlatformSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return s.settings
}

// Stats returns the dashboard counters.
func (s *MemoryStore) Stats() types.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
