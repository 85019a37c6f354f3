package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/types"
)

// packageFlags are the editable package fields. Only flags the user set are
// applied, so update keeps the rest of the stored package.
type packageFlags struct {
	name            string
	description     string
	price           float64
	billingCycle    string
	active          bool
	features        []string
	maxJobPostings  int
	maxApplications int
	priority        int
}

func (f *packageFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Package name")
	fs.StringVar(&f.description, "description", "", "Package description")
	fs.Float64Var(&f.price, "price", 0, "Price per billing cycle")
	fs.StringVar(&f.billingCycle, "billing-cycle", string(types.BillingMonthly), "Billing cycle (monthly|yearly|lifetime)")
	fs.BoolVar(&f.active, "active", true, "Offer the package to companies")
	fs.StringSliceVar(&f.features, "features", nil, "Comma-separated feature ids")
	fs.IntVar(&f.maxJobPostings, "max-job-postings", 0, "Job posting quota (-1 for unlimited)")
	fs.IntVar(&f.maxApplications, "max-applications", 0, "Application quota (-1 for unlimited)")
	fs.IntVar(&f.priority, "priority", 0, "Display order")
}

func (f *packageFlags) apply(cmd *cobra.Command, req *types.PackageRequest) {
	fs := cmd.Flags()
	if fs.Changed("name") {
		req.Name = f.name
	}
	if fs.Changed("description") {
		req.Description = f.description
	}
	if fs.Changed("price") {
		req.Price = f.price
	}
	if fs.Changed("billing-cycle") {
		req.BillingCycle = types.BillingCycle(f.billingCycle)
	}
	if fs.Changed("active") {
		req.IsActive = f.active
	}
	if fs.Changed("features") {
		req.Features = f.features
	}
	if fs.Changed("max-job-postings") {
		req.MaxJobPostings = f.maxJobPostings
	}
	if fs.Changed("max-applications") {
		req.MaxApplications = f.maxApplications
	}
	if fs.Changed("priority") {
		req.Priority = f.priority
	}
}

func packageRequest(p types.Package) types.PackageRequest {
	return types.PackageRequest{
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		BillingCycle:    p.BillingCycle,
		IsActive:        p.IsActive,
		Features:        p.Features,
		MaxJobPostings:  p.MaxJobPostings,
		MaxApplications: p.MaxApplications,
		Priority:        p.Priority,
	}
}

func newPackagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "packages",
		Aliases: []string{"package"},
		Short:   "Manage pricing packages",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List packages with their features",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			pkgs, err := a.api.Catalog.Packages(cmd.Context())
			if err != nil {
				return err
			}
			a.printer.PrintPackages(pkgs)
			return nil
		}),
	}

	var createFlags packageFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a package",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			req := types.PackageRequest{BillingCycle: types.BillingMonthly, IsActive: true, Features: []string{}}
			createFlags.apply(cmd, &req)
			pkg, err := a.api.Catalog.CreatePackage(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.printer.PrintNotice(fmt.Sprintf("Created package %s (%s).", pkg.Name, pkg.ID))
			return nil
		}),
	}
	createFlags.register(create)

	var updateFlags packageFlags
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a package",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			current, err := a.api.Catalog.Package(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			req := packageRequest(current.Package)
			updateFlags.apply(cmd, &req)
			pkg, err := a.api.Catalog.UpdatePackage(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			a.printer.PrintNotice(fmt.Sprintf("Updated package %s.", pkg.Name))
			return nil
		}),
	}
	updateFlags.register(update)

	cmd.AddCommand(list, create, update, newCatalogDeleteCmd(a, "package", a.deletePackage))
	return cmd
}

func (a *app) deletePackage(cmd *cobra.Command, id string) error {
	return a.api.Catalog.DeletePackage(cmd.Context(), id)
}

func (a *app) deleteFeature(cmd *cobra.Command, id string) error {
	return a.api.Catalog.DeleteFeature(cmd.Context(), id)
}

func newCatalogDeleteCmd(a *app, noun string, del func(*cobra.Command, string) error) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Delete a %s", noun),
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			ok, err := a.confirm(fmt.Sprintf("Delete %s %s?", noun, args[0]), yes)
			if err != nil {
				return err
			}
			if !ok {
				a.printer.PrintNotice("Cancelled.")
				return nil
			}
			if err := del(cmd, args[0]); err != nil {
				return err
			}
			a.printer.PrintNotice(fmt.Sprintf("Deleted %s %s.", noun, args[0]))
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

type featureFlags struct {
	name        string
	description string
	category    string
}

func (f *featureFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Feature name")
	cmd.Flags().StringVar(&f.description, "description", "", "Feature description")
	cmd.Flags().StringVar(&f.category, "category", string(types.CategoryCore), "Category (core|advanced|premium|enterprise)")
}

func (f *featureFlags) apply(cmd *cobra.Command, req *types.FeatureRequest) {
	if cmd.Flags().Changed("name") {
		req.Name = f.name
	}
	if cmd.Flags().Changed("description") {
		req.Description = f.description
	}
	if cmd.Flags().Changed("category") {
		req.Category = types.FeatureCategory(f.category)
	}
}

func newFeaturesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "features",
		Aliases: []string{"feature"},
		Short:   "Manage the features packages can bundle",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List features",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			features, err := a.api.Catalog.Features(cmd.Context())
			if err != nil {
				return err
			}
			a.printer.PrintFeatures(features)
			return nil
		}),
	}

	var createFlags featureFlags
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a feature",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			req := types.FeatureRequest{Category: types.CategoryCore}
			createFlags.apply(cmd, &req)
			f, err := a.api.Catalog.CreateFeature(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.printer.PrintNotice(fmt.Sprintf("Created feature %s (%s).", f.Name, f.ID))
			return nil
		}),
	}
	createFlags.register(create)

	var updateFlags featureFlags
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Edit a feature",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			features, err := a.api.Catalog.Features(cmd.Context())
			if err != nil {
				return err
			}
			var req *types.FeatureRequest
			for _, f := range features {
				if f.ID == args[0] {
					req = &types.FeatureRequest{Name: f.Name, Description: f.Description, Category: f.Category}
					break
				}
			}
			if req == nil {
				return fmt.Errorf("feature %s not found", args[0])
			}
			updateFlags.apply(cmd, req)
			f, err := a.api.Catalog.UpdateFeature(cmd.Context(), args[0], *req)
			if err != nil {
				return err
			}
			a.printer.PrintNotice(fmt.Sprintf("Updated feature %s.", f.Name))
			return nil
		}),
	}
	updateFlags.register(update)

	cmd.AddCommand(list, create, update, newCatalogDeleteCmd(a, "feature", a.deleteFeature))
	return cmd
}

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and edit platform settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show platform settings",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			s, err := a.api.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			a.printer.PrintSettings(s)
			return nil
		}),
	}

	var (
		name         string
		email        string
		expiryDays   int
		verification bool
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Edit platform settings",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			s, err := a.api.Settings.Get(cmd.Context())
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("name") {
				s.PlatformName = name
			}
			if fs.Changed("email") {
				s.PlatformEmail = email
			}
			if fs.Changed("job-expiry-days") {
				s.DefaultJobExpiryDays = expiryDays
			}
			if fs.Changed("require-email-verification") {
				s.RequireEmailVerification = verification
			}
			updated, err := a.api.Settings.Update(cmd.Context(), s)
			if err != nil {
				return err
			}
			a.printer.PrintNotice("Settings saved.")
			a.printer.PrintSettings(updated)
			return nil
		}),
	}
	update.Flags().StringVar(&name, "name", "", "Platform name")
	update.Flags().StringVar(&email, "email", "", "Platform contact email")
	update.Flags().IntVar(&expiryDays, "job-expiry-days", 30, "Days before a job post expires (1-365)")
	update.Flags().BoolVar(&verification, "require-email-verification", true, "Require new users to verify their email")

	cmd.AddCommand(show, update)
	return cmd
}
