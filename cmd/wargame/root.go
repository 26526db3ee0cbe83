package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wargame",
	Short: "Wargame is an interactive turn-based simulation session",
	Long: `Wargame starts an interactive prompt for a turn-based simulation.
Type commands to inspect or change settings (get, set), list what is
available (help), or end the session (quit).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
