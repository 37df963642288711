package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "juggle",
	Short: "Tools for poking at recipient coalescing and field resolution",
}

func Execute() error {
	return rootCmd.Execute()
}
