package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spigell/asha-actions/internal/actions"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List registered actions",
	Run: func(_ *cobra.Command, _ []string) {
		registry, err := actions.Default(actions.Deps{})
		if err != nil {
			fmt.Println(err)
			return
		}
		for _, name := range registry.Describe() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
