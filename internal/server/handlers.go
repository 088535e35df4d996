package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/session"
)

type handlerFunc func(params map[string]interface{}) (interface{}, error)

// toYAML serializes a tool result for the MCP response.
func toYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// locked runs fn with the loop mutex held. The cache is dropped afterwards
// when invalidate is set, even if fn panics.
func (s *Server) locked(invalidate bool, fn func() (interface{}, error)) (interface{}, error) {
	s.loopMu.Lock()
	defer s.loopMu.Unlock()
	if invalidate {
		defer s.cache.InvalidateAll()
	}
	return fn()
}

func (s *Server) observe(tool string, isError bool, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveTool(tool, isError, time.Since(start))
	}
}

// toolHandler wraps a read-only handler: lock, run, serialize.
func (s *Server) toolHandler(tool string, invalidate bool, fn handlerFunc) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		params := request.GetArguments()
		v, err := s.locked(invalidate, func() (interface{}, error) { return fn(params) })
		s.observe(tool, err != nil, start)
		if err != nil {
			s.logger.Debug("tool failed", "tool", tool, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(toYAML(v)), nil
	}
}

// stepHandler runs one session step and reports its StepResult either way.
func (s *Server) stepHandler(tool, step string, invalidate bool) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		params := request.GetArguments()
		var result session.StepResult
		_, err := s.locked(invalidate, func() (interface{}, error) {
			var err error
			result, err = s.sess.Execute(step, params)
			return nil, err
		})
		s.observe(tool, err != nil, start)
		if err != nil {
			result.OK = false
			result.Error = err.Error()
			s.logger.Debug("tool failed", "tool", tool, "error", err)
			return mcp.NewToolResultError(toYAML(result)), nil
		}
		result.OK = true
		return mcp.NewToolResultText(toYAML(result)), nil
	}
}

func (s *Server) handleTree(params map[string]interface{}) (interface{}, error) {
	opts := session.ReadParams(params)
	tree, err := s.cache.Snapshot(s.sess.Bridge, opts.Depth)
	if err != nil {
		return nil, err
	}
	elements, err := session.Filter(tree, opts)
	if err != nil {
		return nil, err
	}

	flat := model.FlattenSubset(tree.Elements, elements)
	prev := s.lastFlat
	s.lastFlat = flat
	if session.BoolParam(params, "diff", false) {
		return model.DiffElementsByHash(prev, flat), nil
	}

	if session.BoolParam(params, "flat", false) {
		if opts.Prune {
			flat = model.PruneEmptyGroupsFlat(flat)
		}
		return output.ReadFlatResult{App: s.sess.App, Focus: s.sess.FocusID(tree), TS: time.Now().Unix(), Elements: flat}, nil
	}
	return output.ReadResult{App: s.sess.App, Focus: s.sess.FocusID(tree), TS: time.Now().Unix(), Elements: elements}, nil
}

func (s *Server) handleWindows(map[string]interface{}) (interface{}, error) {
	return s.sess.Windows()
}

func (s *Server) handleFocus(map[string]interface{}) (interface{}, error) {
	tree, err := s.sess.Snapshot(0)
	if err != nil {
		return nil, err
	}
	id := s.sess.FocusID(tree)
	if id == 0 {
		return map[string]interface{}{"focused": nil}, nil
	}
	el := *model.FindByID(tree.Elements, id)
	el.Children = nil
	return map[string]interface{}{"focused": el}, nil
}

func (s *Server) resolve(params map[string]interface{}) (*session.Resolved, error) {
	return s.sess.Resolve(session.TargetParams(params))
}

func (s *Server) handleDescribe(params map[string]interface{}) (interface{}, error) {
	r, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	return s.sess.Describe(r), nil
}

func (s *Server) handleChildren(params map[string]interface{}) (interface{}, error) {
	r, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	return s.sess.Children(r), nil
}

func (s *Server) handleParent(params map[string]interface{}) (interface{}, error) {
	r, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	return s.sess.Parent(r)
}

func (s *Server) handleActions(params map[string]interface{}) (interface{}, error) {
	r, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	return s.sess.Actions(r), nil
}

func (s *Server) handleValue(params map[string]interface{}) (interface{}, error) {
	r, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	return s.sess.Value(r)
}

func (s *Server) handleImage(params map[string]interface{}) (interface{}, error) {
	r, err := s.resolve(params)
	if err != nil {
		return nil, err
	}
	return s.sess.Image(r)
}

func (s *Server) handleDo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	params := request.GetArguments()
	raw, ok := params["steps"]
	if !ok {
		return mcp.NewToolResultError("steps parameter is required"), nil
	}
	steps, err := session.StepsFromJSON(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	stopOnError := session.BoolParam(params, "stop-on-error", true)

	v, _ := s.locked(true, func() (interface{}, error) {
		return s.sess.Run(steps, stopOnError), nil
	})
	result := v.(session.DoResult)
	s.observe("do", !result.OK, start)
	if !result.OK {
		return mcp.NewToolResultError(toYAML(result)), nil
	}
	return mcp.NewToolResultText(toYAML(result)), nil
}
