package server

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hirenest/admin-console/internal/types"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func newObjectID() string {
	return bson.NewObjectID().Hex()
}

// Seed loads the demo data set. Existing records are replaced.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	techID, marketingID, financeID := newObjectID(), newObjectID(), newObjectID()

	// Lists are kept newest first.
	s.companies = []types.CompanyWire{
		{
			ID:                 financeID,
			Name:               "Finance Experts Ltd",
			Email:              "hello@financeexperts.com",
			Industry:           "Finance",
			Mobile:             types.NewMobileWire(1, 3125550142),
			IsActive:           false,
			IsVerified:         boolPtr(false),
			VerificationStatus: string(types.VerificationRejected),
			IsDocumentVerified: boolPtr(false),
			CreatedAt:          "2024-03-05T14:00:00Z",
		},
		{
			ID:       marketingID,
			Name:     "Global Marketing Co",
			Email:    "info@globalmarketing.com",
			Industry: "Marketing",
			// Older records store the phone as strings with a null country code.
			Mobile: &types.MobileWire{
				CountryCode:  json.RawMessage("null"),
				MobileNumber: json.RawMessage(`"2125550199"`),
			},
			IsActive:           true,
			IsVerified:         boolPtr(false),
			VerificationStatus: string(types.VerificationPending),
			CreatedAt:          "2024-02-15T10:30:00Z",
		},
		{
			ID:                 techID,
			Name:               "Tech Solutions Inc",
			Email:              "contact@techsolutions.com",
			Industry:           "Technology",
			Mobile:             types.NewMobileWire(1, 4155550101),
			IsActive:           true,
			IsVerified:         boolPtr(true),
			VerificationStatus: string(types.VerificationApproved),
			IsDocumentVerified: boolPtr(true),
			CreatedAt:          "2024-01-10T08:00:00Z",
		},
	}

	s.seekers = []types.JobSeekerWire{
		{ID: newObjectID(), Name: "Mike Johnson", Email: "mike.j@example.com", Mobile: types.NewMobileWire(1, 2345678902), IsActive: false, CreatedAt: "2024-03-10T09:15:00Z"},
		{ID: newObjectID(), Name: "Jane Smith", Email: "jane.smith@example.com", Mobile: types.NewMobileWire(1, 2345678901), IsActive: true, CreatedAt: "2024-02-20T14:30:00Z"},
		{ID: newObjectID(), Name: "John Doe", Email: "john.doe@example.com", Mobile: types.NewMobileWire(1, 2345678900), IsActive: true, CreatedAt: "2024-01-15T10:00:00Z"},
	}

	s.posts = []types.JobPostWire{
		{
			ID:          newObjectID(),
			Title:       "UX/UI Designer",
			Description: "Join our design team to create beautiful and intuitive user experiences for our web and mobile applications.",
			Company:     types.CompanyRef{ID: techID},
			Preferences: &types.PreferencesWire{Skills: []string{"Figma", "User Research"}, WorkMode: []string{"remote"}, EmploymentType: []string{"contract"}},
			JobStatus:   types.WireJobOpen,
			CreatedAt:   "2024-03-05T11:00:00Z",
		},
		{
			ID:          newObjectID(),
			Title:       "Senior Frontend Developer",
			Description: "We are looking for an experienced Frontend Developer to join our team. You will be responsible for building responsive web applications using React and TypeScript.",
			Company:     types.CompanyRef{ID: techID},
			Address:     &types.AddressWire{City: "San Francisco", State: "CA", Country: "USA"},
			Preferences: &types.PreferencesWire{Skills: []string{"React", "TypeScript", "CSS"}, EmploymentType: []string{"full-time"}},
			JobViews:    342,
			JobApplied:  27,
			JobStatus:   types.WireJobOpen,
			CreatedAt:   "2024-03-01T09:00:00Z",
		},
		{
			ID:          newObjectID(),
			Title:       "Marketing Manager",
			Description: "Seeking a creative Marketing Manager to lead our digital marketing campaigns and drive brand awareness across multiple channels.",
			Company:     types.CompanyRef{ID: marketingID},
			Address:     &types.AddressWire{City: "New York", State: "NY", Country: "USA"},
			Preferences: &types.PreferencesWire{Skills: []string{"SEO", "Campaign Strategy"}, EmploymentType: []string{"full-time"}},
			JobStatus:   types.WireJobOpen,
			CreatedAt:   "2024-02-28T10:00:00Z",
		},
		{
			ID:          newObjectID(),
			Title:       "Financial Analyst Intern",
			Description: "Great opportunity for students to gain hands-on experience in financial analysis and reporting. Will work closely with senior analysts.",
			Company:     types.CompanyRef{ID: financeID},
			Address:     &types.AddressWire{City: "Chicago", State: "IL", Country: "USA"},
			Preferences: &types.PreferencesWire{EmploymentType: []string{"internship"}},
			JobStatus:   types.WireJobClosed,
			CreatedAt:   "2024-02-15T14:00:00Z",
		},
	}

	created := s.now().UTC()
	feature := func(name, description string, category types.FeatureCategory) types.Feature {
		return types.Feature{ID: uuid.NewString(), Name: name, Description: description, Category: category, CreatedAt: created}
	}
	s.features = []types.Feature{
		feature("Basic Job Posting", "Post job listings on the platform", types.CategoryCore),
		feature("Application Management", "Manage and track job applications", types.CategoryCore),
		feature("Advanced Analytics", "Detailed insights and analytics dashboard", types.CategoryAdvanced),
		feature("Priority Support", "24/7 priority customer support", types.CategoryPremium),
		feature("Custom Branding", "Customize job postings with your brand", types.CategoryPremium),
		feature("API Access", "Full API access for integrations", types.CategoryEnterprise),
	}
	ids := func(idx ...int) []string {
		out := make([]string, 0, len(idx))
		for _, i := range idx {
			out = append(out, s.features[i].ID)
		}
		return out
	}
	pkg := func(name, description string, price float64, features []string, jobs, applications, priority int) types.Package {
		return types.Package{
			ID: uuid.NewString(), Name: name, Description: description, Price: price,
			BillingCycle: types.BillingMonthly, IsActive: true, Features: features,
			MaxJobPostings: jobs, MaxApplications: applications, Priority: priority,
			CreatedAt: created, UpdatedAt: created,
		}
	}
	s.packages = []types.Package{
		pkg("Free", "Perfect for getting started", 0, ids(0, 1), 5, 50, 1),
		pkg("Professional", "For growing businesses", 49, ids(0, 1, 2, 4), 50, 500, 2),
		pkg("Enterprise", "For large organizations", 199, ids(0, 1, 2, 3, 4, 5), types.Unlimited, types.Unlimited, 3),
	}

	s.settings = types.PlatformSettings{
		PlatformName:             "JobHub",
		PlatformEmail:            "admin@jobhub.com",
		DefaultJobExpiryDays:     30,
		RequireEmailVerification: true,
	}

	s.stats = types.DashboardStats{
		TotalUsers:        1247,
		TotalJobSeekers:   856,
		TotalJobProviders: 391,
		TotalJobs:         234,
		TotalApplications: 3421,
	}
}
