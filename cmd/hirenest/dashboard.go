package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform statistics and open job posts",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// A failed panel must not cancel the other one.
			var g errgroup.Group
			var statsErr, activeErr error
			g.Go(func() error {
				statsErr = a.dashboard.Refresh(ctx)
				return statsErr
			})
			g.Go(func() error {
				_, activeErr = a.jobPosts.FetchActive(ctx)
				return activeErr
			})
			if err := g.Wait(); err != nil {
				a.logger.Debug("dashboard partially loaded", zap.Error(err))
			}

			if statsErr != nil && activeErr != nil {
				return errors.Join(statsErr, activeErr)
			}
			st := a.dashboard.Snapshot()
			a.printer.PrintDashboard(st.Stats, a.jobPosts.ActiveItems())
			a.notice(st.Error, a.dashboard)
			if msg := a.jobPosts.ActiveError(); msg != "" {
				a.printer.PrintNotice("Warning: " + msg)
			}
			return nil
		}),
	}
}
