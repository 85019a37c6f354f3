package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/listview"
	"github.com/hirenest/admin-console/internal/store"
	"github.com/hirenest/admin-console/internal/types"
)

func newJobPostsCmd(a *app) *cobra.Command {
	r := resourceCmds[types.JobPost, types.UpdateJobPostRequest]{
		a:        a,
		singular: "job post",
		title:    "Job Post",
		statuses: []string{types.StatusFilterActive, types.StatusFilterClosed},
		container: func() *store.ListContainer[types.JobPost, types.UpdateJobPostRequest] {
			return a.jobPosts.ListContainer
		},
		fields: listview.JobPostFields,
		print:  func(p types.Page[types.JobPost]) { a.printer.PrintJobPosts(p) },
	}

	cmd := &cobra.Command{
		Use:     "job-posts",
		Aliases: []string{"posts", "jobs"},
		Short:   "Manage job postings",
	}
	cmd.AddCommand(
		r.list(),
		newActivePostsCmd(a),
		r.show(),
		r.update("Edit a job post's title, description or status",
			func(c *cobra.Command) {
				c.Flags().String("title", "", "New title")
				c.Flags().String("description", "", "New description")
				c.Flags().String("status", "", "New status (active|closed)")
				c.PreRunE = func(c *cobra.Command, _ []string) error {
					if raw := optionalString(c, "status"); raw != nil {
						_, err := parseJobStatus(*raw)
						return err
					}
					return nil
				}
			},
			diffJobPost,
			types.UpdateJobPostRequest.Empty),
		newClosePostCmd(a, r),
		r.remove(),
	)
	return cmd
}

// diffJobPost reads the edit flags. --status was already checked in PreRunE.
func diffJobPost(c *cobra.Command, orig types.JobPost) types.UpdateJobPostRequest {
	form := listview.JobPostForm{
		Title:       optionalString(c, "title"),
		Description: optionalString(c, "description"),
	}
	if raw := optionalString(c, "status"); raw != nil {
		if status, err := parseJobStatus(*raw); err == nil {
			form.Status = &status
		}
	}
	return listview.DiffJobPost(orig, form)
}

func parseJobStatus(s string) (types.JobStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(types.JobActive), types.WireJobOpen:
		return types.JobActive, nil
	case string(types.JobClosed):
		return types.JobClosed, nil
	}
	return "", fmt.Errorf("invalid --status %q: must be active or closed", s)
}

func newActivePostsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List open job posts",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			posts, err := a.jobPosts.FetchActive(cmd.Context())
			if err != nil {
				return err
			}
			a.printer.PrintJobPosts(types.Page[types.JobPost]{
				Items:      posts,
				Pagination: types.NewPagination(1, max(len(posts), 1), len(posts)),
			})
			return nil
		}),
	}
}

func newClosePostCmd(a *app, r resourceCmds[types.JobPost, types.UpdateJobPostRequest]) *cobra.Command {
	return &cobra.Command{
		Use:   "close ID",
		Short: "Close a job post",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			post, err := a.jobPosts.Close(cmd.Context(), args[0])
			if err != nil {
				a.jobPosts.ClearError()
				return err
			}
			r.done(post, "closed")
			return nil
		}),
	}
}
