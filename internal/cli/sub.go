package cli

import "github.com/spf13/cobra"

var subCmd = &cobra.Command{
	Use:   "sub",
	Short: "Subtitle file utilities",
}

func init() {
	rootCmd.AddCommand(subCmd)
}
