package cmd

import (
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "List or invoke an element's actions",
	Long: `List the actions an element offers, or invoke one by name or index.

Actions are the same as shown in the 'a' field of 'read' output:
  click      - Press a button
  toggle     - Toggle a check box
  activate   - Activate an entry
  increment  - Increase a slider or spin button by one step
  decrement  - Decrease a slider or spin button by one step
  maximize   - Maximize a window
  minimize   - Minimize a window

Without --name or --index the first action is invoked.`,
	RunE: runAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	addTargetFlags(actionCmd)
	actionCmd.Flags().Bool("list", false, "List the element's actions instead of invoking one")
	actionCmd.Flags().String("name", "", "Action to invoke by name")
	actionCmd.Flags().Int("index", -1, "Action to invoke by index")
}

func runAction(cmd *cobra.Command, args []string) error {
	list, _ := cmd.Flags().GetBool("list")
	if list {
		sess, r, err := resolveTarget(cmd)
		if err != nil {
			return err
		}
		return output.Print(sess.Actions(r))
	}

	params := targetParams(cmd)
	if name, _ := cmd.Flags().GetString("name"); name != "" {
		params["name"] = name
	}
	if index, _ := cmd.Flags().GetInt("index"); index >= 0 {
		params["index"] = index
	}
	return runStep("invoke", params)
}
