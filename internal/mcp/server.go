// Package mcp exposes the export pipeline as Model Context Protocol tools
// so agents can render component trees without touching the filesystem.
package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/barun-bash/forge/internal/build"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/version"
)

const serverName = "forge"

// Server wraps the MCP server together with the result cache and the
// export defaults applied to omitted arguments.
type Server struct {
	mcp      *mcpserver.MCPServer
	cache    *build.Cache
	defaults config.Export
	logger   *zap.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the configuration used for arguments a call omits.
func WithDefaults(cfg config.Export) Option {
	return func(s *Server) { s.defaults = cfg }
}

// WithLogger sets the server logger. It is also handed to the pipeline.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a server with every forge tool registered.
func NewServer(opts ...Option) (*Server, error) {
	s := &Server{defaults: config.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := build.NewCache(build.DefaultCacheSize, build.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.cache = cache
	s.mcp = mcpserver.NewMCPServer(serverName, version.Short())
	s.registerTools()
	return s, nil
}

// ServeStdio serves the tools over stdin/stdout until the client
// disconnects.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", zap.String("version", version.Info()))
	if err := mcpserver.ServeStdio(s.mcp); err != nil {
		return fmt.Errorf("mcp: %w", err)
	}
	return nil
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("export_component",
			mcp.WithDescription("Export a component tree (JSON or YAML) to source files for one target framework and styling system. Returns the files and diagnostics as YAML."),
			mcp.WithString("tree", mcp.Required(), mcp.Description("The component tree as JSON or YAML")),
			mcp.WithString("target", mcp.Description("Target framework: react, vue, svelte or angular")),
			mcp.WithString("styling", mcp.Description("Styling system: tailwind, emotion, css-modules or scss")),
			mcp.WithBoolean("typed", mcp.Description("Emit type annotations")),
			mcp.WithBoolean("accessible", mcp.Description("Add ARIA and role attributes")),
			mcp.WithBoolean("responsive", mcp.Description("Emit per-breakpoint rules; when false only desktop styles are used")),
			mcp.WithBoolean("tested", mcp.Description("Also emit a smoke test file")),
		),
		s.handleExport,
	)

	s.mcp.AddTool(
		mcp.NewTool("validate_tree",
			mcp.WithDescription("Check a component tree for duplicate ids, cycles, malformed bindings and unknown breakpoints without generating code."),
			mcp.WithString("tree", mcp.Required(), mcp.Description("The component tree as JSON or YAML")),
		),
		s.handleValidate,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_targets",
			mcp.WithDescription("List the supported target frameworks and styling systems with the npm packages each pair needs."),
		),
		s.handleListTargets,
	)
}
