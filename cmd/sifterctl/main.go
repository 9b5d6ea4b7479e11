package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "sifterctl",
	Short:        "Inspect the Sifter admin data set from the command line",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newListCmd(), newHashPasswordCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
