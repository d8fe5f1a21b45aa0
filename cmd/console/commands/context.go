package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/pkg/auth"
)

// AppContext holds shared dependencies for all commands
type AppContext struct {
	Ctx      context.Context
	Services *services.Services
	Logger   zerolog.Logger

	// JWT signs admin tokens; nil or disabled when no secret is configured
	JWT *auth.JWTService

	// Close releases persistence connections; may be nil
	Close func()
}

// Setup fills in an AppContext before a command runs
type Setup func(app *AppContext, configPath string) error

// NewRootCmd assembles the console. setup runs once, before the first subcommand,
// unless app already carries its services.
func NewRootCmd(app *AppContext, setup Setup) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "console",
		Short:         "Alumni network admin console",
		Long:          `Manage events, chapters, sponsors, opportunities, mentorships, Q&A, spotlights and profiles through the same data sources as the web console.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Ctx == nil {
				app.Ctx = cmd.Context()
			}
			if app.Ctx == nil {
				app.Ctx = context.Background()
			}
			if app.Services != nil || setup == nil {
				return nil
			}
			return setup(app, configPath)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Close != nil {
				app.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file (default $ALUMNI_CONFIG or configs/config.yaml)")

	svc := func() *services.Services { return app.Services }
	rootCmd.AddCommand(
		DomainCmd(app, eventsDomain(svc)),
		DomainCmd(app, chaptersDomain(svc)),
		DomainCmd(app, sponsorsDomain(svc)),
		DomainCmd(app, opportunitiesDomain(svc)),
		DomainCmd(app, mentorshipsDomain(svc)),
		DomainCmd(app, qaDomain(svc)),
		DomainCmd(app, spotlightsDomain(svc)),
		DomainCmd(app, profilesDomain(svc)),
		AdminCmd(app),
	)

	return rootCmd
}
