package cmd

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe one element and its place in the tree",
	Long: `Print a single element with its capabilities, parent ID, index in parent
and child count. --children and --parent print the neighbouring elements
instead.`,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	addTargetFlags(describeCmd)
	describeCmd.Flags().Bool("children", false, "Print the element's children")
	describeCmd.Flags().Bool("parent", false, "Print the element's parent")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	children, _ := cmd.Flags().GetBool("children")
	parent, _ := cmd.Flags().GetBool("parent")
	if children && parent {
		return fmt.Errorf("--children and --parent are mutually exclusive")
	}

	sess, r, err := resolveTarget(cmd)
	if err != nil {
		return err
	}
	switch {
	case children:
		return output.Print(sess.Children(r))
	case parent:
		el, err := sess.Parent(r)
		if err != nil {
			return err
		}
		return output.Print(el)
	}
	return output.Print(sess.Describe(r))
}
