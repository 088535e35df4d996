package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setValueCmd = &cobra.Command{
	Use:   "set-value",
	Short: "Set an element's value or accessible name",
	Long: `Write to an element through its accessibility adapter.

The --attribute flag controls what is written:
  value  - Current value: entry text, slider or spin position (default)
  name   - Accessible name override

Sliders and spin buttons reject values outside their range. Read-only entries
reject every value.`,
	RunE: runSetValue,
}

func init() {
	rootCmd.AddCommand(setValueCmd)
	addTargetFlags(setValueCmd)
	setValueCmd.Flags().String("value", "", "Value to set (required)")
	setValueCmd.Flags().String("attribute", "value", "Attribute to set: value (default), name")
}

func runSetValue(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("value") {
		return fmt.Errorf("--value is required")
	}
	value, _ := cmd.Flags().GetString("value")
	attribute, _ := cmd.Flags().GetString("attribute")

	params := targetParams(cmd)
	switch attribute {
	case "value":
		params["value"] = value
		return runStep("set-value", params)
	case "name":
		params["name"] = value
		return runStep("set-name", params)
	default:
		return fmt.Errorf("unsupported attribute: %s (use value or name)", attribute)
	}
}
