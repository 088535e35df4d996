package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// targetOptions are shared by every tool that addresses one element.
func targetOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("id", mcp.Description("Element ID from the latest tree")),
		mcp.WithString("ref", mcp.Description("Stable element ref, e.g. 'overlay/map-view' or a suffix of it")),
		mcp.WithString("text", mcp.Description("Find element by title, value or description text")),
		mcp.WithString("roles", mcp.Description("Filter text matches by role (e.g. 'btn', 'btn,chk', 'interactive')")),
		mcp.WithBoolean("exact", mcp.Description("Require exact text match")),
		mcp.WithNumber("scope-id", mcp.Description("Limit text search to descendants of this element ID")),
	}
}

func targetTool(name, description string, extra ...mcp.ToolOption) mcp.Tool {
	opts := append([]mcp.ToolOption{mcp.WithDescription(description)}, targetOptions()...)
	return mcp.NewTool(name, append(opts, extra...)...)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Read the accessible tree. Returns elements with IDs, roles, names, values, states, actions and stable refs."),
			mcp.WithNumber("depth", mcp.Description("Levels to return, the root included (0 = unlimited)")),
			mcp.WithNumber("scope-id", mcp.Description("Limit to descendants of this element ID")),
			mcp.WithString("roles", mcp.Description("Keep only these roles (e.g. 'btn,input' or 'interactive')")),
			mcp.WithString("text", mcp.Description("Keep elements whose text contains this substring")),
			mcp.WithBoolean("focused", mcp.Description("Keep only the focused element and its ancestors")),
			mcp.WithBoolean("modal", mcp.Description("Scope to the active modal dialog")),
			mcp.WithBoolean("prune", mcp.Description("Drop anonymous panels, promoting their children")),
			mcp.WithBoolean("flat", mcp.Description("Return a flat list with path breadcrumbs")),
			mcp.WithBoolean("diff", mcp.Description("Return only what changed since the previous tree call")),
		),
		s.toolHandler("tree", false, s.handleTree),
	)

	s.mcp.AddTool(
		mcp.NewTool("windows",
			mcp.WithDescription("List the application's top-level windows"),
		),
		s.toolHandler("windows", false, s.handleWindows),
	)

	s.mcp.AddTool(
		targetTool("describe", "Describe one element: role, name, value, states, actions, capabilities and its place in the hierarchy"),
		s.toolHandler("describe", false, s.handleDescribe),
	)
	s.mcp.AddTool(
		targetTool("children", "List the accessible children of an element"),
		s.toolHandler("children", false, s.handleChildren),
	)
	s.mcp.AddTool(
		targetTool("parent", "Return the accessible parent of an element"),
		s.toolHandler("parent", false, s.handleParent),
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Return the element that currently has keyboard focus"),
		),
		s.toolHandler("focus", false, s.handleFocus),
	)
	s.mcp.AddTool(
		targetTool("grab_focus", "Move keyboard focus to an element"),
		s.stepHandler("grab_focus", "focus", true),
	)

	s.mcp.AddTool(
		targetTool("actions", "List the actions an element supports, with their indexes and descriptions"),
		s.toolHandler("actions", false, s.handleActions),
	)
	s.mcp.AddTool(
		targetTool("invoke", "Invoke an element's action by name or index (default: its first action)",
			mcp.WithString("name", mcp.Description("Action name, e.g. 'click', 'toggle', 'increment'")),
			mcp.WithNumber("index", mcp.Description("Action index"))),
		s.stepHandler("invoke", "invoke", true),
	)

	s.mcp.AddTool(
		targetTool("value", "Read an element's current, minimum, maximum and increment values"),
		s.toolHandler("value", false, s.handleValue),
	)
	s.mcp.AddTool(
		targetTool("set_value", "Set an element's current value",
			mcp.WithString("value", mcp.Description("New value"), mcp.Required())),
		s.stepHandler("set_value", "set-value", true),
	)

	s.mcp.AddTool(
		targetTool("image", "Read an image element's size and description"),
		s.toolHandler("image", false, s.handleImage),
	)
	s.mcp.AddTool(
		targetTool("set_image_description", "Override an image element's description",
			mcp.WithString("description", mcp.Description("New description"), mcp.Required())),
		s.stepHandler("set_image_description", "set-description", true),
	)
	s.mcp.AddTool(
		targetTool("set_name", "Override an element's accessible name (empty restores the default)",
			mcp.WithString("name", mcp.Description("New name"))),
		s.stepHandler("set_name", "set-name", true),
	)

	s.mcp.AddTool(
		targetTool("assert", "Assert an element's state",
			mcp.WithString("role", mcp.Description("Expected role name or code")),
			mcp.WithString("name", mcp.Description("Expected name")),
			mcp.WithString("value", mcp.Description("Expected value")),
			mcp.WithString("value-contains", mcp.Description("Expected value substring")),
			mcp.WithBoolean("checked", mcp.Description("Expected checked state")),
			mcp.WithBoolean("focused", mcp.Description("Expected focus state")),
			mcp.WithString("has-action", mcp.Description("Action the element must support")),
			mcp.WithBoolean("gone", mcp.Description("Assert the element does NOT exist"))),
		s.stepHandler("assert", "assert", false),
	)

	s.mcp.AddTool(
		mcp.NewTool("do",
			mcp.WithDescription("Execute several steps in order. Each step is an object with one key naming the step (focus, invoke, set-value, set-name, set-description, assert, read, sleep) mapped to its arguments."),
			mcp.WithArray("steps", mcp.Description("Array of step objects"), mcp.Required()),
			mcp.WithBoolean("stop-on-error", mcp.Description("Stop on first error (default: true)")),
		),
		s.handleDo,
	)
}
