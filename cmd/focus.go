package cmd

import (
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

// focusState is printed when focus is only queried.
type focusState struct {
	Focused *model.Element `yaml:"focused" json:"focused"`
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Show the focused element, or move focus to a target",
	Long: `Without a target, print the element that currently holds focus.

With --id, --ref or --text, ask the target to grab focus and print where focus
landed. Elements that cannot take focus (disabled buttons, plain images) fail.`,
	RunE: runFocus,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	addTargetFlags(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	params := targetParams(cmd)
	if len(params) > 0 {
		return runStep("focus", params)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	el, _ := sess.Focused()
	return output.Print(focusState{Focused: el})
}
