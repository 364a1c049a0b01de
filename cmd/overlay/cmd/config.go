package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a scenario file",
	Long: `Write a scenario file in YAML format, prefilled with a minimal
two-turn colocation example.

If FILE is not provided, 'scenario.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "scenario.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if err != nil {
			fmt.Println("aborted,", err)
			return
		}
		if !ok {
			fmt.Println("aborted by user")
			return
		}
		check(marshalYAMLFile(path, defaultScenario()))
		fmt.Printf("scenario written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
