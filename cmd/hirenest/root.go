package main

import (
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	apiURL     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "hirenest",
		Short: "HireNest admin console",
		Long: `Administer the HireNest job marketplace: companies, job seekers, job posts,
pricing packages, platform settings and team invitations.

Configuration is read from HIRENEST_* environment variables, an optional .env file and
an optional JSON file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, opts)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config.json file (environment variables take precedence)")
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Admin API base URL (overrides HIRENEST_API_URL)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newCompaniesCmd(a),
		newJobSeekersCmd(a),
		newJobPostsCmd(a),
		newDashboardCmd(a),
		newPackagesCmd(a),
		newFeaturesCmd(a),
		newSettingsCmd(a),
		newTeamCmd(a),
		newServeCmd(a),
	)
	return cmd
}
