package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/wargame/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive session",
	Long:  `Starts the session loop reading commands from standard input until quit or end-of-input.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")

		if cmd.Flags().Changed("edge") {
			v, _ := cmd.Flags().GetInt("edge")
			opts.Edge = &v
		}
		if cmd.Flags().Changed("soldiers") {
			v, _ := cmd.Flags().GetInt("soldiers")
			opts.Soldiers = &v
		}
		if cmd.Flags().Changed("prompt") {
			v, _ := cmd.Flags().GetString("prompt")
			opts.Prompt = &v
		}

		if err := cli.RunSession(opts); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("config", "", "Path to a YAML configuration file")
	runCmd.Flags().Int("edge", 0, "Board edge length")
	runCmd.Flags().Int("soldiers", 0, "Soldier count")
	runCmd.Flags().String("prompt", "", "Prompt template (%t time, %r round)")
	runCmd.Flags().Bool("debug", false, "Emit diagnostic traces to stderr")
	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")

	// Running `wargame` without a subcommand starts a session.
	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
