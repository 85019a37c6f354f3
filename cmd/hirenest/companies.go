package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirenest/admin-console/internal/listview"
	"github.com/hirenest/admin-console/internal/store"
	"github.com/hirenest/admin-console/internal/types"
)

func newCompaniesCmd(a *app) *cobra.Command {
	r := resourceCmds[types.Company, types.UpdateCompanyRequest]{
		a:        a,
		singular: "company",
		title:    "Company",
		statuses: []string{types.StatusFilterActive, types.StatusFilterInactive},
		container: func() *store.ListContainer[types.Company, types.UpdateCompanyRequest] {
			return a.companies.ListContainer
		},
		fields: listview.CompanyFields,
		print:  func(p types.Page[types.Company]) { a.printer.PrintCompanies(p) },
	}

	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company", "providers"},
		Short:   "Manage employer accounts",
	}
	cmd.AddCommand(
		r.list(),
		r.show(),
		r.toggle("activate", true),
		r.toggle("deactivate", false),
		r.update("Edit a company's name, email or industry",
			func(c *cobra.Command) {
				c.Flags().String("name", "", "New company name")
				c.Flags().String("email", "", "New contact email")
				c.Flags().String("industry", "", "New industry")
			},
			func(c *cobra.Command, orig types.Company) types.UpdateCompanyRequest {
				return listview.DiffCompany(orig, listview.CompanyForm{
					Name:     optionalString(c, "name"),
					Email:    optionalString(c, "email"),
					Industry: optionalString(c, "industry"),
				})
			},
			types.UpdateCompanyRequest.Empty),
		r.remove(),
		newVerifyCmd(a),
	)
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "verify ID approved|rejected",
		Short:     "Approve or reject a company's documents",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(types.VerificationApproved), string(types.VerificationRejected)},
		RunE: a.authed(func(cmd *cobra.Command, args []string) error {
			status := types.VerificationStatus(args[1])
			if status != types.VerificationApproved && status != types.VerificationRejected {
				return fmt.Errorf("invalid verification status %q: must be approved or rejected", args[1])
			}
			company, err := a.companies.SetVerification(cmd.Context(), args[0], status)
			if err != nil {
				a.companies.ClearError()
				return err
			}
			a.notice(a.companies.Snapshot().Error, a.companies)
			a.printer.PrintNotice(fmt.Sprintf("Company %s.", status))
			a.printer.PrintDetail("Company", listview.CompanyFields(company))
			return nil
		}),
	}
}
