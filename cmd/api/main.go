package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "medlink-api",
		Short: "Medlink telehealth portal API",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var configDir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and the order progress simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			if configDir != "" {
				paths = append(paths, configDir)
			}
			return runServer(cmd.Context(), paths)
		},
	}
	cmd.Flags().StringVarP(&configDir, "config", "c", "", "directory containing config.yml")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
