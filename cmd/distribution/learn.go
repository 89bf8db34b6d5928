package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MarkBJohnsAdmin/distribution/internal/lesson"
)

// learnCmd represents the learn command
var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Read the lesson: what a distribution is and why trials matter",
	Run: func(cmd *cobra.Command, args []string) {
		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			fmt.Print(lesson.Markdown())
			return
		}

		out, err := lesson.Render()
		if err != nil {
			// Styling failed (odd TERM, no tty); the text still reads fine.
			fmt.Print(lesson.Markdown())
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)

	learnCmd.Flags().Bool("raw", false, "Print the raw markdown without styling")
}
