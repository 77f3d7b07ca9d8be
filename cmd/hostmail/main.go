package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostmail-io/hostmail/internal/interfaces/cli/migrate"
	"github.com/hostmail-io/hostmail/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hostmail",
		Short: "HostMail - contact form and portfolio backend",
		Long:  `HostMail collects contact-form submissions and serves portfolio content for customer websites, metered against subscription plans.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
