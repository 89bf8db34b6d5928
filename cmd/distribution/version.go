package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MarkBJohnsAdmin/distribution"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of distribution",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("distribution version %s\n", strings.TrimSpace(distribution.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
