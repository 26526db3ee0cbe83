package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/wargame"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wargame",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wargame version %s\n", strings.TrimSpace(wargame.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
