package cmd

import (
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Read an element's current, minimum, maximum and increment values",
	RunE:  runValue,
}

func init() {
	rootCmd.AddCommand(valueCmd)
	addTargetFlags(valueCmd)
}

func runValue(cmd *cobra.Command, args []string) error {
	sess, r, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	v, err := sess.Value(r)
	if err != nil {
		return err
	}
	return output.Print(v)
}
