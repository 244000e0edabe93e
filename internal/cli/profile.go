package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/gophpass/internal/profiles"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (a *App) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored derivation profiles",
		Long: `Profiles remember site, login, length, counter and disabled classes so that
"gen --profile NAME" only needs the master password. Secrets and generated
passwords are never stored.`,
	}
	cmd.AddCommand(a.profileListCommand(), a.profileShowCommand(), a.profileSaveCommand(), a.profileDeleteCommand())
	return cmd
}

func (a *App) profileListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSITE\tLOGIN\tLENGTH\tCOUNTER")
			for _, e := range store.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", e.Name, e.Site, e.Login, e.Length, e.Counter)
			}
			return tw.Flush()
		},
	}
}

func (a *App) profileShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			e, err := store.Get(args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(e)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func (a *App) profileSaveCommand() *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Store the given flags as a profile",
		Example: `  gophpass profile save work -s example.org -l contact@example.org --no-symbols
  gophpass profile save work -C 2        # bump the counter of an existing profile
  gophpass profile save work --symbols   # allow symbols again`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}

			// an existing profile is updated in place
			base := ""
			if _, err := store.Get(name); err == nil {
				base = name
			}
			p, err := a.resolve(ctx, cmd, &flags, base)
			if err != nil {
				return err
			}

			if err := store.Put(name, profiles.FromProfile(p)); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}

			a.logger.Info(ctx, "profile saved", "profile", name, "path", store.Path())
			return nil
		},
	}

	flags.bind(cmd, a.config.DefaultLength, a.config.DefaultCounter)
	return cmd
}

func (a *App) profileDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			return store.Save()
		},
	}
}
