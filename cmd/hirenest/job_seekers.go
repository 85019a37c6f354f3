package main

import (
	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/listview"
	"github.com/hirenest/admin-console/internal/store"
	"github.com/hirenest/admin-console/internal/types"
)

func newJobSeekersCmd(a *app) *cobra.Command {
	r := resourceCmds[types.JobSeeker, types.UpdateJobSeekerRequest]{
		a:        a,
		singular: "job seeker",
		title:    "Job Seeker",
		statuses: []string{types.StatusFilterActive, types.StatusFilterInactive},
		container: func() *store.ListContainer[types.JobSeeker, types.UpdateJobSeekerRequest] {
			return a.jobSeekers.ListContainer
		},
		fields: listview.JobSeekerFields,
		print:  func(p types.Page[types.JobSeeker]) { a.printer.PrintJobSeekers(p) },
	}

	cmd := &cobra.Command{
		Use:     "job-seekers",
		Aliases: []string{"seekers", "candidates"},
		Short:   "Manage candidate accounts",
	}
	cmd.AddCommand(
		r.list(),
		r.show(),
		r.toggle("activate", true),
		r.toggle("deactivate", false),
		r.update("Edit a job seeker's name, email or phone",
			func(c *cobra.Command) {
				c.Flags().String("name", "", "New full name")
				c.Flags().String("email", "", "New email")
				c.Flags().String("phone", "", "New phone, country code included (e.g. +12345678900)")
			},
			func(c *cobra.Command, orig types.JobSeeker) types.UpdateJobSeekerRequest {
				return listview.DiffJobSeeker(orig, listview.JobSeekerForm{
					Name:  optionalString(c, "name"),
					Email: optionalString(c, "email"),
					Phone: optionalString(c, "phone"),
				})
			},
			types.UpdateJobSeekerRequest.Empty),
		r.remove(),
	)
	return cmd
}
