package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/gophpass/internal/cli"
	"github.com/dmitrijs2005/gophpass/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	// config.LoadConfig panics on an unreadable or malformed JSON file
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", r)
			code = 1
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig(args)
	app := cli.NewApp(cfg)

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
