// Command forge-mcp serves the forge export tools over MCP on stdio.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	// Logs go to stderr; stdout carries protocol messages.
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	defaults, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "forge-mcp: %v\n", err)
		os.Exit(1)
	}
	s, err := mcp.NewServer(mcp.WithDefaults(defaults), mcp.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "forge-mcp: %v\n", err)
		os.Exit(1)
	}
	if err := s.ServeStdio(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
