package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-rcpt/test/juggle/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
