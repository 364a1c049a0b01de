package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "overlay",
	Short: "inspect the polygon overlay enrichment core",
	Long: `overlay is the command-line companion to go-overlay:
	- write a scenario file prefilled with a minimal colocation example,
	- run it through the enrichment core (colocate, enrich),
	- print a textual trace of turns, clusters and successor links.`,
}

// Execute adds all child commands to the root command and runs it. Called
// once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
