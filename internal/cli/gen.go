package cli

import (
	"fmt"

	"github.com/dmitrijs2005/gophpass/internal/common"
	"github.com/dmitrijs2005/gophpass/internal/generator"
	"github.com/spf13/cobra"
)

func (a *App) genCommand() *cobra.Command {
	var (
		flags    profileFlags
		password string
		profile  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Derive a password",
		Example: `  gophpass gen -s example.org -l contact@example.org
  gophpass gen -s example.org -l contact@example.org -L 14 -C 2 --no-symbols
  gophpass gen --profile work`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			p, err := a.resolve(ctx, cmd, &flags, profile)
			if err != nil {
				return err
			}
			// reject before prompting or running the KDF
			if err := p.Validate(); err != nil {
				return err
			}

			var secret []byte
			if cmd.Flags().Changed("password") {
				secret = []byte(password)
			} else {
				secret, err = GetPassword(ctx, cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}
			defer common.WipeByteArray(secret)

			// an interrupt while the secret was typed aborts without output
			if err := ctx.Err(); err != nil {
				return err
			}

			a.logger.Debug(ctx, "deriving password",
				"site", p.Site,
				"login", p.Login,
				"length", p.Length,
				"counter", p.Counter,
				"policy", fmt.Sprintf("%04b", uint8(p.Policy)),
			)

			pass, err := generator.Generate(p, secret)
			if err != nil {
				a.logger.Error(ctx, "derivation failed", "error", err)
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), pass)
			return err
		},
	}

	flags.bind(cmd, a.config.DefaultLength, a.config.DefaultCounter)
	cmd.Flags().StringVarP(&password, "password", "p", "", "master password used in password generation, or else prompt from tty")
	cmd.Flags().StringVarP(&profile, "profile", "P", "", "stored profile to start from; other flags override it")

	return cmd
}
