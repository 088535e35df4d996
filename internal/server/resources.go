package server

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/a11y-bridge/internal/output"
)

const treeURI = "a11y://tree"

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(treeURI, "Accessible tree",
		mcp.WithResourceDescription("Full accessible tree of the application"),
		mcp.WithMIMEType("application/yaml"),
	), func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		v, err := s.locked(false, func() (interface{}, error) {
			tree, err := s.cache.Snapshot(s.sess.Bridge, 0)
			if err != nil {
				return nil, err
			}
			return output.ReadResult{App: s.sess.App, Focus: s.sess.FocusID(tree), TS: time.Now().Unix(), Elements: tree.Elements}, nil
		})
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      treeURI,
				MIMEType: "application/yaml",
				Text:     toYAML(v),
			},
		}, nil
	})
}
