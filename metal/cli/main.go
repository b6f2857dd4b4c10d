package main

import (
	"os"

	"github.com/StevenGabule/portfolio/metal/cli/posts"
	"github.com/StevenGabule/portfolio/pkg/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// The .env file is optional here; flags and the process environment win.
	_ = godotenv.Load("./.env")

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Operator tools for the portfolio site content",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(posts.NewCommand())

	if err := root.Execute(); err != nil {
		cli.NewPainter(os.Stderr).Errorln(err.Error())
		os.Exit(1)
	}
}
