package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search for elements by text",
	Long:  "Search every element in the tree by title, value or description. Unlike --text targeting, find returns all matches instead of insisting on one.",
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().String("text", "", "Text to search for (case-insensitive substring match on title/value/description)")
	findCmd.Flags().String("roles", "", "Filter by role (e.g. \"btn\", \"btn,input\")")
	findCmd.Flags().Int("limit", 10, "Max matching elements to return (0 = no limit)")
	findCmd.Flags().Bool("exact", false, "Require exact match instead of substring")
}

// findResult is the output of the find command.
type findResult struct {
	OK      bool                `yaml:"ok"      json:"ok"`
	Action  string              `yaml:"action"  json:"action"`
	Text    string              `yaml:"text"    json:"text"`
	Matches []model.FlatElement `yaml:"matches" json:"matches"`
	Total   int                 `yaml:"total"   json:"total"`
}

func runFind(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	roles, _ := cmd.Flags().GetString("roles")
	limit, _ := cmd.Flags().GetInt("limit")
	exact, _ := cmd.Flags().GetBool("exact")

	if text == "" {
		return fmt.Errorf("--text is required")
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	tree, err := sess.Snapshot(0)
	if err != nil {
		return err
	}

	matches, total := findMatches(model.FlattenElements(tree.Elements), text, session.SplitRoles(roles), exact, limit)
	return output.Print(findResult{OK: true, Action: "find", Text: text, Matches: matches, Total: total})
}

// findMatches returns up to limit matching elements and the total number of
// matches.
func findMatches(flat []model.FlatElement, text string, roles []string, exact bool, limit int) ([]model.FlatElement, int) {
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	needle := strings.ToLower(text)

	matches := []model.FlatElement{}
	total := 0
	for _, el := range flat {
		if len(roleSet) > 0 && !roleSet[el.Role] {
			continue
		}
		if !fieldMatches(needle, exact, el.Title, el.Value, el.Description) {
			continue
		}
		total++
		if limit <= 0 || len(matches) < limit {
			matches = append(matches, el)
		}
	}
	return matches, total
}

func fieldMatches(needle string, exact bool, fields ...string) bool {
	for _, f := range fields {
		f = strings.ToLower(f)
		if f == "" {
			continue
		}
		if (exact && f == needle) || (!exact && strings.Contains(f, needle)) {
			return true
		}
	}
	return false
}
