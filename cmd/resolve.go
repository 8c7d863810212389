package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/asha-actions/internal/form"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <field>",
	Short: "Validate or extract a job search form field",
	Args:  func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		return checkField(args[0])
	},
	ValidArgs: form.RequiredFields(),
	Run:       func(cmd *cobra.Command, args []string) {
		value, _ := cmd.Flags().GetString("value")
		text, _ := cmd.Flags().GetString("text")
		resolve(args[0], value, text)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().String("value", "", "value already extracted for the field")
	resolveCmd.Flags().String("text", "", "the user's message to extract a value from")
}

func checkField(field string) error {
	if !form.Known(field) {
		return fmt.Errorf("unknown field %q, expected one of: %s", field, strings.Join(form.RequiredFields(), ", "))
	}
	return nil
}

func resolve(field, value, text string) {
	result, err := form.Resolve(field, value, text)
	if err != nil {
		log.Fatalf("resolving %s: %s", field, err)
	}

	pretty, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(pretty))
}
