// Package observability provides the terminal output and logging of the admin console.
package observability

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/hirenest/admin-console/internal/listview"
	"github.com/hirenest/admin-console/internal/team"
	"github.com/hirenest/admin-console/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5

	dateLayout = "Jan 2, 2006"
)

// Printer renders console screens as plain text.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		pad := boxWidth - 4 - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func (p *Printer) table(header string, rows [][]string) {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header) //nolint:errcheck // flushed below
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t")) //nolint:errcheck // flushed below
	}
	_ = tw.Flush()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(dateLayout)
}

func activeLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// PrintCompanies renders one page of the companies table.
func (p *Printer) PrintCompanies(page types.Page[types.Company]) {
	if len(page.Items) == 0 {
		p.PrintNotice("No companies found.")
	} else {
		rows := make([][]string, 0, len(page.Items))
		for _, c := range page.Items {
			verified := string(c.VerificationStatus)
			if c.IsVerified {
				verified = "verified"
			}
			rows = append(rows, []string{
				c.ID, truncate(c.Name, 30), c.Email, c.Industry, c.Phone.String(),
				formatDate(c.RegistrationDate), activeLabel(c.IsActive), verified,
			})
		}
		p.table("ID\tNAME\tEMAIL\tINDUSTRY\tPHONE\tREGISTERED\tSTATUS\tVERIFICATION", rows)
	}
	p.PrintPagination(page.Pagination, "companies")
}

// PrintJobSeekers renders one page of the job seekers table.
func (p *Printer) PrintJobSeekers(page types.Page[types.JobSeeker]) {
	if len(page.Items) == 0 {
		p.PrintNotice("No job seekers found.")
	} else {
		rows := make([][]string, 0, len(page.Items))
		for _, s := range page.Items {
			rows = append(rows, []string{
				s.ID, truncate(s.Name, 30), s.Email, s.Phone.String(),
				formatDate(s.RegistrationDate), activeLabel(s.IsActive),
			})
		}
		p.table("ID\tNAME\tEMAIL\tPHONE\tREGISTERED\tSTATUS", rows)
	}
	p.PrintPagination(page.Pagination, "job seekers")
}

// PrintJobPosts renders one page of the job posts table.
func (p *Printer) PrintJobPosts(page types.Page[types.JobPost]) {
	if len(page.Items) == 0 {
		p.PrintNotice("No job posts found.")
	} else {
		p.table("ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tPOSTED\tSTATUS", jobPostRows(page.Items))
	}
	p.PrintPagination(page.Pagination, "job posts")
}

func jobPostRows(posts []types.JobPost) [][]string {
	rows := make([][]string, 0, len(posts))
	for _, j := range posts {
		rows = append(rows, []string{
			j.ID, truncate(j.Title, 30), truncate(j.CompanyName, 24), j.Location,
			string(j.Type), formatDate(j.PostedDate), string(j.Status),
		})
	}
	return rows
}

// PrintPagination prints the "Showing A to B of N" line and the page strip with the
// current page bracketed. Nothing is printed when there is a single page or none.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPagination(pg types.Pagination, noun string) {
	fmt.Fprintln(p.out, listview.Summary(pg, noun))
	if pg.TotalPages <= 1 {
		return
	}
	strip := listview.PageStrip(pg.CurrentPage, pg.TotalPages)
	parts := make([]string, 0, len(strip))
	for _, item := range strip {
		if !item.Ellipsis && item.Page == pg.CurrentPage {
			parts = append(parts, "["+item.String()+"]")
			continue
		}
		parts = append(parts, item.String())
	}
	fmt.Fprintf(p.out, "Pages: %s\n", strings.Join(parts, " "))
}

// PrintDetail renders a labelled detail panel.
func (p *Printer) PrintDetail(title string, fields []listview.Field) {
	width := 0
	for _, f := range fields {
		width = max(width, utf8.RuneCountInString(f.Label))
	}
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%-*s  %s", width+1, f.Label+":", f.Value)
	}
	p.printBox(title, sb.String())
}

// PrintDashboard renders the headline counters and the most recent active posts.
func (p *Printer) PrintDashboard(stats *types.DashboardStats, active []types.JobPost) {
	var sb strings.Builder
	if stats == nil {
		sb.WriteString("Statistics unavailable")
	} else {
		fmt.Fprintf(&sb, "Total users:          %d\n", stats.TotalUsers)
		fmt.Fprintf(&sb, "Job seekers:          %d\n", stats.TotalJobSeekers)
		fmt.Fprintf(&sb, "Companies:            %d\n", stats.TotalJobProviders)
		fmt.Fprintf(&sb, "Jobs:                 %d\n", stats.TotalJobs)
		fmt.Fprintf(&sb, "Applications:         %d", stats.TotalApplications)
	}
	p.printBox("DASHBOARD", sb.String())

	if len(active) == 0 {
		p.PrintNotice("No active job posts.")
		return
	}
	sb.Reset()
	count := min(len(active), maxItemsToShow)
	for i := 0; i < count; i++ {
		j := active[i]
		fmt.Fprintf(&sb, "• %s\n  %s · %s", j.Title, j.CompanyName, j.Location)
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(active) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more", len(active)-maxItemsToShow)
	}
	p.printBox("ACTIVE JOB POSTS", sb.String())
}

func quota(n int) string {
	if n == types.Unlimited {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

// PrintPackages renders the pricing packages.
func (p *Printer) PrintPackages(pkgs []types.PackageWithFeatures) {
	if len(pkgs) == 0 {
		p.PrintNotice("No packages found.")
		return
	}
	rows := make([][]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		names := make([]string, 0, len(pkg.FeatureDetails))
		for _, f := range pkg.FeatureDetails {
			names = append(names, f.Name)
		}
		rows = append(rows, []string{
			pkg.ID, pkg.Name, fmt.Sprintf("$%.2f/%s", pkg.Price, pkg.BillingCycle),
			activeLabel(pkg.IsActive), quota(pkg.MaxJobPostings), quota(pkg.MaxApplications),
			truncate(strings.Join(names, ", "), 40),
		})
	}
	p.table("ID\tNAME\tPRICE\tSTATUS\tJOB POSTS\tAPPLICATIONS\tFEATURES", rows)
}

// PrintFeatures renders the feature catalog.
func (p *Printer) PrintFeatures(features []types.Feature) {
	if len(features) == 0 {
		p.PrintNotice("No features found.")
		return
	}
	rows := make([][]string, 0, len(features))
	for _, f := range features {
		rows = append(rows, []string{f.ID, f.Name, string(f.Category), truncate(f.Description, 40)})
	}
	p.table("ID\tNAME\tCATEGORY\tDESCRIPTION", rows)
}

// PrintSettings renders the platform settings.
func (p *Printer) PrintSettings(s types.PlatformSettings) {
	verification := "No"
	if s.RequireEmailVerification {
		verification = "Yes"
	}
	p.PrintDetail("PLATFORM SETTINGS", []listview.Field{
		{Label: "Platform name", Value: s.PlatformName},
		{Label: "Platform email", Value: s.PlatformEmail},
		{Label: "Job expiry (days)", Value: fmt.Sprint(s.DefaultJobExpiryDays)},
		{Label: "Email verification", Value: verification},
	})
}

// PrintRoster renders team members followed by pending invitations.
func (p *Printer) PrintRoster(members []team.Member, pending []team.Invitation) {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		name := m.Name
		if m.IsYou {
			name += " *"
		}
		rows = append(rows, []string{m.ID, name, m.Email, string(m.Role)})
	}
	p.table("ID\tNAME\tEMAIL\tROLE", rows)
	if len(pending) == 0 {
		return
	}
	var sb strings.Builder
	for i, inv := range pending {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s (%s) invited %s", inv.Email, inv.Role, formatDate(inv.InvitedAt))
	}
	p.printBox("PENDING INVITATIONS", sb.String())
}

// PrintNotice prints a single line message.
func (p *Printer) PrintNotice(msg string) {
	fmt.Fprintln(p.out, msg) //nolint:errcheck // writing to stdout; errors are not recoverable
}
