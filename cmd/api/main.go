package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/bookline/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bookline",
		Short: "Bookline API Server",
		Long:  `Bookline is an appointment-booking backend for single-location service businesses, persisting customers, services and appointments as flat JSON collections.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewDataCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
