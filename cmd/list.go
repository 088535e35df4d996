package cmd

import (
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the application's top-level windows",
	Long:  "List the children of the application root with their element IDs, titles and window state.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	windows, err := sess.Windows()
	if err != nil {
		return err
	}
	return output.Print(windows)
}
