package types

import "time"

// FeatureCategory groups features by pricing tier.
type FeatureCategory string

// Feature categories.
const (
	CategoryCore       FeatureCategory = "core"
	CategoryAdvanced   FeatureCategory = "advanced"
	CategoryPremium    FeatureCategory = "premium"
	CategoryEnterprise FeatureCategory = "enterprise"
)

// BillingCycle is how often a package is billed.
type BillingCycle string

// Billing cycles.
const (
	BillingMonthly  BillingCycle = "monthly"
	BillingYearly   BillingCycle = "yearly"
	BillingLifetime BillingCycle = "lifetime"
)

// Unlimited marks a package quota without a cap.
const Unlimited = -1

// Feature is an entitlement that packages can include.
type Feature struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    FeatureCategory `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// FeatureRequest creates or replaces a feature.
type FeatureRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Category    FeatureCategory `json:"category" validate:"required,oneof=core advanced premium enterprise"`
}

// Package is a pricing tier.
type Package struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	BillingCycle    BillingCycle `json:"billingCycle"`
	IsActive        bool         `json:"isActive"`
	Features        []string     `json:"features"`
	MaxJobPostings  int          `json:"maxJobPostings"`
	MaxApplications int          `json:"maxApplications"`
	Priority        int          `json:"priority"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// PackageWithFeatures is a package joined with its feature records.
type PackageWithFeatures struct {
	Package
	FeatureDetails []Feature `json:"featureDetails"`
}

// PackageRequest creates or replaces a package.
type PackageRequest struct {
	Name            string       `json:"name" validate:"required"`
	Description     string       `json:"description"`
	Price           float64      `json:"price" validate:"gte=0"`
	BillingCycle    BillingCycle `json:"billingCycle" validate:"required,oneof=monthly yearly lifetime"`
	IsActive        bool         `json:"isActive"`
	Features        []string     `json:"features"`
	MaxJobPostings  int          `json:"maxJobPostings" validate:"gte=-1"`
	MaxApplications int          `json:"maxApplications" validate:"gte=-1"`
	Priority        int          `json:"priority" validate:"gte=0"`
}

// PlatformSettings are global console settings.
type PlatformSettings struct {
	PlatformName             string `json:"platformName" validate:"required"`
	PlatformEmail            string `json:"platformEmail" validate:"required,email"`
	DefaultJobExpiryDays     int    `json:"defaultJobExpiryDays" validate:"min=1,max=365"`
	RequireEmailVerification bool   `json:"requireEmailVerification"`
}

// DashboardStats are the headline counters shown on the dashboard.
type DashboardStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalJobSeekers   int `json:"totalJobSeekers"`
	TotalJobProviders int `json:"totalJobProviders"`
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
}
