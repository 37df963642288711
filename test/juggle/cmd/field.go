package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-rcpt"
)

var fieldCmd = &cobra.Command{
	Use:   "field label...",
	Short: "Shows how loose field labels resolve to storage keys",
	Args:  cobra.MinimumNArgs(1),
	Run:   RunField,
}

func init() {
	rootCmd.AddCommand(fieldCmd)
}

func RunField(cmd *cobra.Command, args []string) {
	for _, label := range args {
		f := rcpt.ParseField(label)
		if f == rcpt.Invalid {
			fmt.Printf("%q is not a recipient field\n", label)
			continue
		}
		fmt.Printf("%q = %s\n", label, f.Key())
	}
}
