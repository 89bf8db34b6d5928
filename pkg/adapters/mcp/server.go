// Package mcp exposes the simulation as a Model Context Protocol server,
// so AI agents can run walks and experiments as tools.
package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MarkBJohnsAdmin/distribution"
	"github.com/MarkBJohnsAdmin/distribution/pkg/domain"
)

// WalkResponse is the structured output of the generate_walk tool.
type WalkResponse struct {
	Steps []domain.Step `json:"steps" jsonschema_description:"Ordered step trace: post-update position and outcome per flip"`
	Final int           `json:"final" jsonschema_description:"Final position after the last step"`
}

// Server wraps the simulation pipeline and exposes it as an MCP Server.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer() *Server {
	s := &Server{
		mcpServer: server.NewMCPServer("distribution-mcp", strings.TrimSpace(distribution.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: run_experiment
	experimentTool := mcp.NewTool("run_experiment",
		mcp.WithDescription("Run N random-walk trials and summarize the distribution of final positions."),
		mcp.WithNumber("trials", mcp.Required(), mcp.Description("Number of trials to run (>= 1)")),
		mcp.WithNumber("walk_length", mcp.Required(), mcp.Description("Coin flips per walk (>= 0)")),
		mcp.WithNumber("threshold", mcp.Description("Target position for the success rate (default 10)")),
		mcp.WithNumber("seed", mcp.Description("Seed for reproducible runs (omit for a random seed)")),
		mcp.WithOutputSchema[domain.Summary](),
	)
	s.mcpServer.AddTool(experimentTool, mcp.NewStructuredToolHandler(s.handleRunExperiment))

	// TOOL: generate_walk
	walkTool := mcp.NewTool("generate_walk",
		mcp.WithDescription("Generate a single random walk and return its full step trace."),
		mcp.WithNumber("length", mcp.Required(), mcp.Description("Coin flips to take (>= 0)")),
		mcp.WithNumber("seed", mcp.Description("Seed for a reproducible trace (omit for a random seed)")),
		mcp.WithOutputSchema[WalkResponse](),
	)
	s.mcpServer.AddTool(walkTool, mcp.NewStructuredToolHandler(s.handleGenerateWalk))
}

// Handler methods for structured tools

func (s *Server) handleRunExperiment(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Summary, error) {
	trials := intArg(args, "trials", 0)
	length := intArg(args, "walk_length", 0)
	threshold := intArg(args, "threshold", 10)

	sim := newSimulator(args)
	summary, err := sim.Experiment(trials, length, threshold)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("experiment failed: %w", err)
	}
	return summary, nil
}

func (s *Server) handleGenerateWalk(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (WalkResponse, error) {
	length := intArg(args, "length", 0)

	sim := newSimulator(args)
	result, err := sim.Walk(length)
	if err != nil {
		return WalkResponse{}, fmt.Errorf("walk failed: %w", err)
	}
	return WalkResponse{Steps: result, Final: result.Final()}, nil
}

func newSimulator(args map[string]interface{}) *distribution.Simulator {
	if seed, ok := args["seed"].(float64); ok && seed != 0 {
		return distribution.New(distribution.WithSeed(int64(seed)))
	}
	return distribution.New()
}

// intArg reads a JSON number argument, falling back to def when absent.
func intArg(args map[string]interface{}, key string, def int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return def
}
