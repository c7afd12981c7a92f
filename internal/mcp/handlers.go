package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/errors"
	"github.com/barun-bash/forge/internal/ir"
)

// toYAML serializes a tool result. Marshal failures fall back to a
// one-line message so the client always gets text.
func toYAML(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	root, err := ir.Decode("", []byte(stringParam(params, "tree", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := s.defaults
	cfg.Target = config.NormalizeTarget(stringParam(params, "target", string(cfg.Target)))
	cfg.Styling = config.NormalizeStyling(stringParam(params, "styling", string(cfg.Styling)))
	cfg.Typed = boolParam(params, "typed", cfg.Typed)
	cfg.Accessible = boolParam(params, "accessible", cfg.Accessible)
	cfg.Responsive = boolParam(params, "responsive", cfg.Responsive)
	cfg.Tested = boolParam(params, "tested", cfg.Tested)

	res := s.cache.Export(ctx, ir.Snapshot(root), cfg)
	if !res.Success {
		return mcp.NewToolResultError(toYAML(res)), nil
	}
	return mcp.NewToolResultText(toYAML(res)), nil
}

type validation struct {
	Valid        bool                 `yaml:"valid"`
	Nodes        int                  `yaml:"nodes"`
	UnknownKinds []string             `yaml:"unknown_kinds,omitempty"`
	Diagnostics  []*errors.Diagnostic `yaml:"diagnostics,omitempty"`
}

func (s *Server) handleValidate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := ir.Decode("", []byte(stringParam(request.GetArguments(), "tree", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tree := ir.Snapshot(root)
	out := validation{Valid: true, Nodes: tree.Len()}
	seen := map[ir.Kind]bool{}
	ir.Walk(tree.Root(), func(n *ir.Node, _ int) bool {
		if _, known := ir.LookupTemplate(n.Kind); !known && n.Kind != "" && !seen[n.Kind] {
			seen[n.Kind] = true
			out.UnknownKinds = append(out.UnknownKinds, string(n.Kind))
		}
		return true
	})
	if err := ir.Validate(tree); err != nil {
		out.Valid = false
		if ve, ok := err.(*ir.ValidationError); ok {
			for _, is := range ve.Issues {
				out.Diagnostics = append(out.Diagnostics, errors.InvalidTree(is.NodeID, is.Message))
			}
		}
	}
	return mcp.NewToolResultText(toYAML(out)), nil
}

type targetEntry struct {
	Target      string         `yaml:"target"`
	Description string         `yaml:"description"`
	Stylings    []stylingEntry `yaml:"stylings"`
}

type stylingEntry struct {
	Styling         string            `yaml:"styling"`
	Dependencies    map[string]string `yaml:"dependencies,omitempty"`
	DevDependencies map[string]string `yaml:"dev_dependencies,omitempty"`
}

func (s *Server) handleListTargets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var out []targetEntry
	for _, t := range config.Targets() {
		entry := targetEntry{Target: string(t), Description: t.Description()}
		for _, st := range config.Stylings() {
			if !themes.HasFrameworkSupport(st, t) {
				continue
			}
			deps, dev := themes.Dependencies(st, t)
			entry.Stylings = append(entry.Stylings, stylingEntry{Styling: string(st), Dependencies: deps, DevDependencies: dev})
		}
		out = append(out, entry)
	}
	return mcp.NewToolResultText(toYAML(out)), nil
}

// Parameter extraction helpers for tool arguments.

func stringParam(params map[string]any, key, defaultVal string) string {
	if v, ok := params[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func boolParam(params map[string]any, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
