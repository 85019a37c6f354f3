package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hirenest/admin-console/internal/api"
	"github.com/hirenest/admin-console/internal/apiclient"
	"github.com/hirenest/admin-console/internal/config"
	"github.com/hirenest/admin-console/internal/observability"
	"github.com/hirenest/admin-console/internal/schemas"
	"github.com/hirenest/admin-console/internal/session"
	"github.com/hirenest/admin-console/internal/store"
	"github.com/hirenest/admin-console/internal/types"
)

// errSessionExpired is returned when the backend rejected the saved token.
var errSessionExpired = fmt.Errorf("session expired: %w", session.ErrNotAuthenticated)

// app holds the wiring shared by every command. It is built once per invocation
// before the command runs.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	out    io.Writer
	in     *bufio.Reader
	now    func() time.Time

	printer  *observability.Printer
	sessions *session.Manager
	guard    *session.Guard
	api      *api.API

	companies  *store.Companies
	jobSeekers *store.JobSeekers
	jobPosts   *store.JobPosts
	dashboard  *store.Dashboard
}

func (a *app) init(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.apiURL != "" {
		cfg.APIURL = opts.apiURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	a.logger = observability.NewLoggerTo(cmd.ErrOrStderr(), level, cfg.LogDev)
	a.out = cmd.OutOrStdout()
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.now = time.Now
	a.printer = observability.NewPrinter(a.out)

	a.sessions = session.NewManager(session.NewFileStore(cfg.SessionFile), session.WithLogger(a.logger))
	if err := a.sessions.Restore(); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	a.guard = session.NewGuard(a.sessions)

	clientOpts := []apiclient.Option{
		apiclient.WithTokenSource(a.sessions),
		apiclient.WithUnauthorizedHandler(a.sessions.Invalidate),
		apiclient.WithTimeout(cfg.TimeoutDuration()),
		apiclient.WithLogger(a.logger),
	}
	if cfg.StrictSchemas {
		clientOpts = append(clientOpts, apiclient.WithResponseValidator(schemas.NewValidator()))
	}
	client, err := apiclient.New(cfg.APIURL, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}
	a.api = api.New(client, a.logger)

	a.companies = store.NewCompanies(a.api.Companies, a.logger)
	a.jobSeekers = store.NewJobSeekers(a.api.JobSeekers, a.logger)
	a.jobPosts = store.NewJobPosts(a.api.JobPosts, a.logger)
	a.dashboard = store.NewDashboard(a.api.Dashboard)

	a.logger.Debug("console ready",
		zap.String("api_url", cfg.APIURL),
		zap.String("session_file", cfg.SessionFile),
		zap.Bool("strict_schemas", cfg.StrictSchemas))
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// requireAuth stops commands that need a signed-in admin.
func (a *app) requireAuth() (types.AdminUser, error) {
	return a.guard.Require()
}

// check maps a rejected token to a hint to sign in again.
func (a *app) check(err error) error {
	if apiclient.IsUnauthorized(err) {
		return errSessionExpired
	}
	return err
}

// errorState is implemented by containers that record their last error.
type errorState interface {
	ClearError()
}

// notice prints a container error that did not fail the command, then clears it.
func (a *app) notice(msg string, c errorState) {
	if msg == "" {
		return
	}
	a.printer.PrintNotice("Warning: " + msg)
	c.ClearError()
}

// prompt reads one line after printing label.
func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label) //nolint:errcheck // writing to stdout
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo when stdin is a terminal.
func (a *app) promptPassword(cmd *cobra.Command) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(a.out, "Password: ") //nolint:errcheck // writing to stdout
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out) //nolint:errcheck // writing to stdout
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(secret), nil
	}
	return a.prompt("Password: ")
}

// optionalString returns a pointer to the flag value when the flag was set.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
