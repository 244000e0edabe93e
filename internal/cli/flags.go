package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophpass/internal/generator"
	"github.com/spf13/cobra"
)

// profileFlags are the flags that identify a password. They map 1:1 onto
// generator.Profile plus per-class switches: --no-<class> disables a class,
// --<class> enables it again on top of a stored profile.
type profileFlags struct {
	site    string
	login   string
	length  uint8
	counter uint64
	disable [len(classDescriptions)]bool
	enable  [len(classDescriptions)]bool
}

var classDescriptions = [...]string{
	generator.Lowercase: "lowercase letters",
	generator.Uppercase: "uppercase letters",
	generator.Digits:    "digits",
	generator.Symbols:   "symbols",
}

func (f *profileFlags) bind(cmd *cobra.Command, length uint8, counter uint64) {
	fl := cmd.Flags()
	fl.StringVarP(&f.site, "site", "s", "", "site used in the password generation")
	fl.StringVarP(&f.login, "login", "l", "", "login used in the password generation")
	fl.Uint8VarP(&f.length, "length", "L", length, "password length")
	fl.Uint64VarP(&f.counter, "counter", "C", counter, "password counter")

	for i, desc := range classDescriptions {
		name := generator.Class(i).String()
		fl.BoolVar(&f.disable[i], "no-"+name, false, "do not use "+desc)
		fl.BoolVar(&f.enable[i], name, false, "use "+desc+" even if a stored profile disables them")
		cmd.MarkFlagsMutuallyExclusive("no-"+name, name)
	}
}

// apply overlays the flags the user actually set on base.
func (f *profileFlags) apply(cmd *cobra.Command, base generator.Profile) generator.Profile {
	fl := cmd.Flags()
	if fl.Changed("site") {
		base.Site = f.site
	}
	if fl.Changed("login") {
		base.Login = f.login
	}
	if fl.Changed("length") {
		base.Length = f.length
	}
	if fl.Changed("counter") {
		base.Counter = f.counter
	}

	for i := range classDescriptions {
		c := generator.Class(i)
		switch {
		case f.disable[i]:
			base.Policy = base.Policy.Disable(c)
		case f.enable[i]:
			base.Policy = base.Policy.Enable(c)
		}
	}
	return base
}

// resolve builds the derivation request from an optional stored profile and
// the command flags. Without a stored profile --site and --login are required.
func (a *App) resolve(ctx context.Context, cmd *cobra.Command, f *profileFlags, name string) (generator.Profile, error) {
	base := generator.Profile{
		Length:  a.config.DefaultLength,
		Counter: a.config.DefaultCounter,
		Policy:  generator.DefaultPolicy,
	}

	if name != "" {
		store, err := a.openStore(ctx)
		if err != nil {
			return generator.Profile{}, err
		}
		e, err := store.Get(name)
		if err != nil {
			return generator.Profile{}, err
		}
		base = e.Profile()
		a.logger.Debug(ctx, "loaded profile", "profile", name)
	} else {
		for _, required := range []string{"site", "login"} {
			if !cmd.Flags().Changed(required) {
				return generator.Profile{}, fmt.Errorf("--%s is required unless a stored profile is used", required)
			}
		}
	}

	return f.apply(cmd, base), nil
}
