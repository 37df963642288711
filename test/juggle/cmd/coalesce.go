package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-rcpt/envelope"
	"github.com/zostay/go-rcpt/juggle"
)

var (
	defaultDomain string
	displayNames  string
)

var coalesceCmd = &cobra.Command{
	Use:   "coalesce address...",
	Short: "Shows the coalesced address book for the given input",
	Args:  cobra.MinimumNArgs(1),
	Run:   RunCoalesce,
}

func init() {
	coalesceCmd.Flags().StringVar(&defaultDomain, "domain", "",
		"default domain appended to bare usernames")
	coalesceCmd.Flags().StringVar(&displayNames, "names", "",
		"comma-separated display names paired positionally with the addresses")
	rootCmd.AddCommand(coalesceCmd)
}

func RunCoalesce(cmd *cobra.Command, args []string) {
	j := juggle.New(envelope.New(), juggle.WithDefaultDomain(defaultDomain))
	for _, p := range j.Coalesce(strings.Join(args, ","), displayNames) {
		if p.Name != "" {
			fmt.Printf("%s <%s>\n", p.Name, p.Address)
			continue
		}
		fmt.Println(p.Address)
	}
}
