package cmd

import (
	"fmt"
	"io"

	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var doCmd = &cobra.Command{
	Use:   "do",
	Short: "Execute multiple steps in a batch",
	Long: `Execute a sequence of steps from a YAML list on stdin against one bridge.

Each step is a step name with its arguments as a map. Steps execute
sequentially, and by default execution stops on the first error. Element IDs
are re-resolved for every step.

Supported step types: focus, invoke, set-value, set-name, set-description,
assert, read, sleep

Example:
  a11y-bridge do --fixture maps.yaml <<'EOF'
  - set-value: { ref: "search", value: "Berlin" }
  - invoke: { text: "Show traffic", name: "toggle" }
  - assert: { text: "Show traffic", checked: true }
  - focus: { ref: "map-view" }
  EOF`,
	RunE: runDo,
}

func init() {
	rootCmd.AddCommand(doCmd)
	doCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
}

func runDo(cmd *cobra.Command, args []string) error {
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	steps, err := readSteps(cmd.InOrStdin())
	if err != nil {
		return err
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	result := sess.Run(steps, stopOnError)
	if err := output.Print(result); err != nil {
		return err
	}
	if !result.OK {
		return fmt.Errorf("batch failed: %d of %d steps completed", result.Completed, result.Steps)
	}
	return nil
}

// readSteps decodes a YAML list of steps.
func readSteps(r io.Reader) ([]session.Step, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no steps provided on stdin, pipe a YAML list of steps")
	}

	var steps []session.Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse YAML steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("no steps provided, expected a YAML list of steps")
	}
	return steps, nil
}
