package cmd

import (
	"time"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the accessible element tree",
	Long: `Walk the accessible tree from the application root and print it.

Element IDs are assigned in depth-first order and stay the same between reads
of an unchanged tree. Refs are stable paths built from element names.`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().Int("depth", 0, "Max depth to traverse (0 = unlimited)")
	readCmd.Flags().String("roles", "", "Comma-separated roles to include (e.g. \"btn,input\" or \"interactive\")")
	readCmd.Flags().String("text", "", "Only include elements matching this text, with their ancestors")
	readCmd.Flags().Bool("focused", false, "Only include the focused element and its ancestors")
	readCmd.Flags().Bool("modal", false, "Only include the topmost modal dialog")
	readCmd.Flags().Bool("prune", false, "Drop anonymous groups that contain nothing")
	readCmd.Flags().Int("scope-id", 0, "Only include the subtree under this element ID")
	readCmd.Flags().Bool("flat", false, "Flatten the tree into a list with role paths")
}

func runRead(cmd *cobra.Command, args []string) error {
	opts := readOptions(cmd)
	flat, _ := cmd.Flags().GetBool("flat")

	sess, err := openSession()
	if err != nil {
		return err
	}
	tree, err := sess.Snapshot(opts.Depth)
	if err != nil {
		return err
	}
	elements, err := session.Filter(tree, opts)
	if err != nil {
		return err
	}

	if flat {
		list := model.FlattenSubset(tree.Elements, elements)
		if opts.Prune {
			list = model.PruneEmptyGroupsFlat(list)
		}
		return output.Print(output.ReadFlatResult{
			App:      sess.App,
			Focus:    sess.FocusID(tree),
			TS:       time.Now().Unix(),
			Elements: list,
		})
	}
	return output.Print(output.ReadResult{
		App:      sess.App,
		Focus:    sess.FocusID(tree),
		TS:       time.Now().Unix(),
		Elements: elements,
	})
}

func readOptions(cmd *cobra.Command) session.ReadOptions {
	var opts session.ReadOptions
	opts.Depth, _ = cmd.Flags().GetInt("depth")
	opts.ScopeID, _ = cmd.Flags().GetInt("scope-id")
	opts.Roles, _ = cmd.Flags().GetString("roles")
	opts.Text, _ = cmd.Flags().GetString("text")
	opts.Focused, _ = cmd.Flags().GetBool("focused")
	opts.Modal, _ = cmd.Flags().GetBool("modal")
	opts.Prune, _ = cmd.Flags().GetBool("prune")
	return opts
}
