package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/spf13/cobra"
)

var assertCmd = &cobra.Command{
	Use:   "assert",
	Short: "Assert a UI condition is met",
	Long: `Check that an element exists with expected properties.

Returns pass/fail with structured output and exit code 0 (pass) or 1 (fail).
Optionally polls with --timeout for conditions that take time to appear.`,
	RunE: runAssert,
}

func init() {
	rootCmd.AddCommand(assertCmd)
	addTargetFlags(assertCmd)

	// Property assertions
	assertCmd.Flags().String("role", "", "Assert element role (code like \"chk\" or name like \"check box\")")
	assertCmd.Flags().String("name", "", "Assert element name equals this string")
	assertCmd.Flags().String("value", "", "Assert element value equals this string")
	assertCmd.Flags().String("value-contains", "", "Assert element value contains this substring")
	assertCmd.Flags().Bool("checked", false, "Assert element is checked")
	assertCmd.Flags().Bool("unchecked", false, "Assert element is NOT checked")
	assertCmd.Flags().Bool("is-focused", false, "Assert element has focus")
	assertCmd.Flags().String("has-action", "", "Assert element offers this action")
	assertCmd.Flags().Bool("gone", false, "Assert element does NOT exist")

	// Timing
	assertCmd.Flags().Int("timeout", 0, "Max seconds to poll (0 = single check, no polling)")
	assertCmd.Flags().Int("interval", 500, "Polling interval in milliseconds")
}

func runAssert(cmd *cobra.Command, args []string) error {
	opts, err := assertOptions(cmd)
	if err != nil {
		return err
	}
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")

	sess, err := openSession()
	if err != nil {
		return err
	}

	deadline := time.Now().Add(time.Duration(timeoutSec) * time.Second)
	for {
		result := sess.CheckAssert(opts)
		if result.Pass {
			return output.Print(result)
		}
		if timeoutSec <= 0 || time.Now().After(deadline) {
			_ = output.Print(result)
			return fmt.Errorf("assert failed: %s", result.Error)
		}
		time.Sleep(time.Duration(intervalMs) * time.Millisecond)
	}
}

// assertOptions builds the check from flags. Only flags that were given are
// checked.
func assertOptions(cmd *cobra.Command) (session.AssertOptions, error) {
	opts := session.AssertOptions{Target: session.TargetParams(targetParams(cmd))}
	if opts.Target.IsZero() {
		return opts, fmt.Errorf("specify --id, --ref, or --text to target an element")
	}

	flags := cmd.Flags()
	opts.Role, _ = flags.GetString("role")
	opts.ValueContains, _ = flags.GetString("value-contains")
	opts.Action, _ = flags.GetString("has-action")
	opts.Gone, _ = flags.GetBool("gone")
	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		opts.Name = &v
	}
	if flags.Changed("value") {
		v, _ := flags.GetString("value")
		opts.Value = &v
	}

	checked, _ := flags.GetBool("checked")
	unchecked, _ := flags.GetBool("unchecked")
	switch {
	case checked && unchecked:
		return opts, fmt.Errorf("--checked and --unchecked are mutually exclusive")
	case checked, unchecked:
		opts.Checked = &checked
	}
	if flags.Changed("is-focused") {
		v, _ := flags.GetBool("is-focused")
		opts.Focused = &v
	}
	return opts, nil
}
