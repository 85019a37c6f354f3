package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/listview"
	"github.com/hirenest/admin-console/internal/store"
	"github.com/hirenest/admin-console/internal/types"
)

// authed runs fn only for a signed-in admin and turns a rejected token into a
// sign-in hint.
func (a *app) authed(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := a.requireAuth(); err != nil {
			return err
		}
		return a.check(fn(cmd, args))
	}
}

// confirm asks a yes/no question unless skip is set.
func (a *app) confirm(question string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}
	answer, err := a.prompt(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// listFlags are the flags of every paginated list command.
type listFlags struct {
	page   int
	search string
	status string
}

func (f *listFlags) register(cmd *cobra.Command, statuses []string) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "Filter by text")
	cmd.Flags().StringVar(&f.status, "status", types.StatusFilterAll,
		fmt.Sprintf("Status filter (%s)", strings.Join(append([]string{types.StatusFilterAll}, statuses...), "|")))
}

func (f *listFlags) statusFilter(statuses []string) (string, error) {
	status := strings.ToLower(strings.TrimSpace(f.status))
	if status == "" || status == types.StatusFilterAll || slices.Contains(statuses, status) {
		return status, nil
	}
	return "", fmt.Errorf("invalid --status %q: must be one of %s, %s", f.status, types.StatusFilterAll, strings.Join(statuses, ", "))
}

func pageOf[T store.Entity](st store.State[T]) types.Page[T] {
	page := types.Page[T]{Items: st.Items}
	if st.Pagination != nil {
		page.Pagination = *st.Pagination
	}
	return page
}

// resourceCmds builds the commands shared by the companies, job seekers and job
// posts groups. The container is looked up when the command runs.
type resourceCmds[T store.Entity, P any] struct {
	a         *app
	singular  string
	title     string
	statuses  []string
	container func() *store.ListContainer[T, P]
	fields    func(T) []listview.Field
	print     func(types.Page[T])
}

func (r resourceCmds[T, P]) list() *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss page by page", r.singular),
		Args:  cobra.NoArgs,
		RunE: r.a.authed(func(cmd *cobra.Command, _ []string) error {
			status, err := flags.statusFilter(r.statuses)
			if err != nil {
				return err
			}
			c := r.container()
			ctrl := listview.NewController(c, listview.WithPageSize(r.a.cfg.PageSize))
			ctrl.Preset(flags.page, flags.search, status)
			if err := ctrl.Load(cmd.Context()); err != nil {
				c.ClearError()
				return err
			}
			r.print(pageOf(c.Snapshot()))
			return nil
		}),
	}
	flags.register(cmd, r.statuses)
	return cmd
}

func (r resourceCmds[T, P]) show() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: fmt.Sprintf("Show a %s", r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: r.a.authed(func(cmd *cobra.Command, args []string) error {
			c := r.container()
			item, err := c.FetchOne(cmd.Context(), args[0])
			if err != nil {
				c.ClearError()
				return err
			}
			r.a.printer.PrintDetail(r.title, r.fields(item))
			return nil
		}),
	}
}

func (r resourceCmds[T, P]) toggle(use string, active bool) *cobra.Command {
	verb := "Deactivate"
	if active {
		verb = "Activate"
	}
	return &cobra.Command{
		Use:   use + " ID",
		Short: fmt.Sprintf("%s a %s", verb, r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: r.a.authed(func(cmd *cobra.Command, args []string) error {
			c := r.container()
			item, err := c.ToggleStatus(cmd.Context(), args[0], active)
			if err != nil {
				c.ClearError()
				return err
			}
			r.done(item, strings.ToLower(verb)+"d")
			return nil
		}),
	}
}

func (r resourceCmds[T, P]) remove() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Delete a %s", r.singular),
		Args:  cobra.ExactArgs(1),
		RunE: r.a.authed(func(cmd *cobra.Command, args []string) error {
			ok, err := r.a.confirm(fmt.Sprintf("Delete %s %s?", r.singular, args[0]), yes)
			if err != nil {
				return err
			}
			if !ok {
				r.a.printer.PrintNotice("Cancelled.")
				return nil
			}
			c := r.container()
			if err := c.Delete(cmd.Context(), args[0]); err != nil {
				c.ClearError()
				return err
			}
			r.a.notice(c.Snapshot().Error, c)
			r.a.printer.PrintNotice(fmt.Sprintf("Deleted %s %s.", r.singular, args[0]))
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// update fetches the record, keeps only the edited fields that changed and sends
// them as a partial update.
func (r resourceCmds[T, P]) update(short string, register func(*cobra.Command), diff func(*cobra.Command, T) P, empty func(P) bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: r.a.authed(func(cmd *cobra.Command, args []string) error {
			c := r.container()
			orig, err := c.FetchOne(cmd.Context(), args[0])
			if err != nil {
				c.ClearError()
				return err
			}
			patch := diff(cmd, orig)
			if empty(patch) {
				r.a.printer.PrintNotice("Nothing to update.")
				return nil
			}
			item, err := c.Update(cmd.Context(), args[0], patch)
			if err != nil {
				c.ClearError()
				return err
			}
			r.done(item, "updated")
			return nil
		}),
	}
	register(cmd)
	return cmd
}

// done reports a successful mutation and any failure of the follow-up refetch.
func (r resourceCmds[T, P]) done(item T, verb string) {
	c := r.container()
	r.a.notice(c.Snapshot().Error, c)
	r.a.printer.PrintNotice(fmt.Sprintf("%s %s.", capitalize(r.singular), verb))
	r.a.printer.PrintDetail(r.title, r.fields(item))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
