package cmd

import (
	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/logging"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/session"
	"github.com/spf13/cobra"
)

// openSession loads the fixture named by the persistent flags and attaches a
// bridge to it.
func openSession(observers ...a11y.Observer) (*session.Session, error) {
	flags := rootCmd.PersistentFlags()
	fixture, _ := flags.GetString("fixture")
	strict, _ := flags.GetBool("strict")
	levelName, _ := flags.GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return session.Open(session.Options{
		Source:    fixture,
		Strict:    strict,
		Logger:    logging.New(level),
		Observers: observers,
	})
}

// addTargetFlags registers the element addressing flags.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().Int("id", 0, "Element ID from read output")
	cmd.Flags().String("ref", "", "Stable element ref from read output (e.g. \"overlay/map-view\")")
	cmd.Flags().String("text", "", "Find element by text (case-insensitive match on title/value/description)")
	cmd.Flags().String("roles", "", "Limit --text matches to these roles (e.g. \"btn,input\")")
	cmd.Flags().Bool("exact", false, "Require exact --text match instead of substring")
	cmd.Flags().Int("scope-id", 0, "Limit --text search to descendants of this element ID")
}

// targetParams collects the addressing flags into a step argument map.
func targetParams(cmd *cobra.Command) map[string]interface{} {
	params := make(map[string]interface{})
	for _, name := range []string{"ref", "text", "roles"} {
		if v, _ := cmd.Flags().GetString(name); v != "" {
			params[name] = v
		}
	}
	for _, name := range []string{"id", "scope-id"} {
		if v, _ := cmd.Flags().GetInt(name); v != 0 {
			params[name] = v
		}
	}
	if v, _ := cmd.Flags().GetBool("exact"); v {
		params["exact"] = true
	}
	return params
}

// resolveTarget opens a session and resolves the addressed element.
func resolveTarget(cmd *cobra.Command) (*session.Session, *session.Resolved, error) {
	sess, err := openSession()
	if err != nil {
		return nil, nil, err
	}
	r, err := sess.Resolve(session.TargetParams(targetParams(cmd)))
	if err != nil {
		return nil, nil, err
	}
	return sess, r, nil
}

// runStep executes one step against a fresh session and prints its result.
// A failed step is printed before the error is returned.
func runStep(action string, params map[string]interface{}) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	res, err := sess.Execute(action, params)
	if err != nil {
		res.Error = err.Error()
		_ = output.Print(res)
		return err
	}
	res.OK = true
	return output.Print(res)
}
