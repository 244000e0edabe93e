package cli

import (
	"context"

	"github.com/dmitrijs2005/gophpass/internal/config"
	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/dmitrijs2005/gophpass/internal/profiles"
	"github.com/spf13/cobra"
)

// App wires configuration and logging into the command tree.
type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(c *config.Config) *App {
	return &App{config: c}
}

// Run executes the command line args.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// RootCommand builds the command tree. Persistent flags are bound directly
// to the App's config, so they override defaults and the JSON file.
func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gophpass",
		Short:         "Stateless deterministic password generator",
		Long:          "gophpass derives site passwords from a master password, a site, a login and a counter.\nNothing is stored: the same inputs always give the same password.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.config.Validate(); err != nil {
				return err
			}
			l, err := logging.New(a.config.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
	}

	// -c/--config is consumed by config.LoadConfig before cobra runs; it is
	// declared here so the parser accepts it.
	var configFile string
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to JSON config file")
	root.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVar(&a.config.ProfilesPath, "profiles", a.config.ProfilesPath, "path to the profiles file")

	root.AddCommand(a.genCommand(), a.profileCommand(), a.versionCommand())
	return root
}

func (a *App) openStore(ctx context.Context) (*profiles.Store, error) {
	a.logger.Debug(ctx, "opening profile store", "path", a.config.ProfilesPath)
	return profiles.Open(a.config.ProfilesPath)
}
