package main

import (
	"os"

	"gateway_bridge/internal/adapter/cli/gateway"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gatewayctl",
		Short: "Gateway Bridge command line",
		Long:  `gatewayctl runs single transactions against the configured payment gateways, mainly for sandbox checks.`,
	}

	rootCmd.AddCommand(
		gateway.NewCommand(nil),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
