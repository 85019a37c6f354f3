package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/team"
)

// withRoster loads the local roster for the signed-in admin, runs fn and saves
// the roster when fn reports a change. The roster never leaves this machine.
func (a *app) withRoster(fn func(r *team.Roster) (changed bool, err error)) error {
	user, err := a.requireAuth()
	if err != nil {
		return err
	}
	roster, err := team.Load(a.cfg.RosterFile, user.Email)
	if err != nil {
		return err
	}
	changed, err := fn(roster)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return roster.Save(a.cfg.RosterFile)
}

func newTeamCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage console members and invitations",
	}

	var search string
	list := &cobra.Command{
		Use:   "list",
		Short: "List members and pending invitations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withRoster(func(r *team.Roster) (bool, error) {
				a.printer.PrintRoster(r.Filter(search), r.Pending)
				return false, nil
			})
		},
	}
	list.Flags().StringVarP(&search, "search", "s", "", "Filter members by name or email")

	var roleName string
	invite := &cobra.Command{
		Use:   "invite EMAIL",
		Short: "Invite someone to the console",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := team.ParseRole(roleName)
			if err != nil {
				return err
			}
			return a.withRoster(func(r *team.Roster) (bool, error) {
				inv, err := r.Invite(args[0], role, a.now())
				if err != nil {
					return false, err
				}
				a.printer.PrintNotice(fmt.Sprintf("Invitation sent to %s as %s.", inv.Email, inv.Role))
				return true, nil
			})
		},
	}
	invite.Flags().StringVar(&roleName, "role", "full", "Role: full, hiring or viewer")

	cancel := &cobra.Command{
		Use:   "cancel EMAIL",
		Short: "Withdraw a pending invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRoster(func(r *team.Roster) (bool, error) {
				if !r.CancelInvite(args[0]) {
					return false, fmt.Errorf("no pending invitation for %s", args[0])
				}
				a.printer.PrintNotice(fmt.Sprintf("Invitation for %s cancelled.", args[0]))
				return true, nil
			})
		},
	}

	setRole := &cobra.Command{
		Use:   "role ID ROLE",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := team.ParseRole(args[1])
			if err != nil {
				return err
			}
			return a.withRoster(func(r *team.Roster) (bool, error) {
				if err := r.SetRole(args[0], role); err != nil {
					return false, err
				}
				a.printer.PrintNotice(fmt.Sprintf("Member %s is now %s.", args[0], role))
				return true, nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withRoster(func(r *team.Roster) (bool, error) {
				if err := r.RemoveMember(args[0]); err != nil {
					return false, err
				}
				a.printer.PrintNotice(fmt.Sprintf("Member %s removed.", args[0]))
				return true, nil
			})
		},
	}

	cmd.AddCommand(list, invite, cancel, setRole, remove)
	return cmd
}
