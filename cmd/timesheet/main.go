package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "timesheet",
		Short:         "Aggregate time entries into a per-task, per-day timesheet",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to config file (default .timesheet.yaml)")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(mappingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		os.Exit(1)
	}
}
