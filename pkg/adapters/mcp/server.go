package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/htn"
	"github.com/aretw0/htn/internal/dto"
	"github.com/aretw0/htn/pkg/adapters/memory"
	"github.com/aretw0/htn/pkg/dsl"
	"github.com/aretw0/htn/pkg/ports"
	"github.com/aretw0/htn/pkg/scenario"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ActionsURI is the resource listing the library.
const ActionsURI = "htn://actions"

// RunArgs are the arguments of the run_scenario tool.
type RunArgs struct {
	Scenario string `json:"scenario"`
}

// Server wraps an engine and exposes its library and scenario runs as MCP tools.
type Server struct {
	runner    scenario.Runner
	backend   ports.WorldBackend
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithBackend sets where scenario worlds live. Defaults to an in-memory backend.
func WithBackend(b ports.WorldBackend) Option {
	return func(s *Server) { s.backend = b }
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(runner scenario.Runner, opts ...Option) *Server {
	s := &Server{
		runner:    runner,
		backend:   memory.NewBackend(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcpServer: server.NewMCPServer("htn-mcp", strings.TrimSpace(htn.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, mainly for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_actions",
		mcp.WithDescription("List the names of the actions in the library."),
	), s.HandleListActions)

	s.mcpServer.AddTool(mcp.NewTool("describe_action",
		mcp.WithDescription("Describe the interface of an action, or of the plan composed from several."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Action name, or several separated by commas")),
		mcp.WithString("mode", mcp.Description("How to compose several actions: group (default) or sequence")),
	), s.HandleDescribeAction)

	s.mcpServer.AddTool(mcp.NewTool("run_scenario",
		mcp.WithDescription("Run a scenario (world, plan and inputs) and report the outcome and final world."),
		mcp.WithString("scenario", mcp.Required(), mcp.Description("Scenario document as JSON")),
		mcp.WithOutputSchema[scenario.Report](),
	), mcp.NewStructuredToolHandler(s.HandleRunScenario))
}

// HandleListActions implements the list_actions tool.
func (s *Server) HandleListActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.runner.Library().Names())
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// HandleDescribeAction implements the describe_action tool.
func (s *Server) HandleDescribeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	mode, err := dsl.ParseMode(request.GetString("mode", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p := dsl.New(s.runner.Library()).Plan("", mode)
	for _, part := range strings.Split(name, ",") {
		p.Do(strings.TrimSpace(part))
	}
	a, err := p.Build()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(dto.FromAction(a))
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// HandleRunScenario implements the run_scenario tool.
func (s *Server) HandleRunScenario(ctx context.Context, request mcp.CallToolRequest, args RunArgs) (scenario.Report, error) {
	sc, err := scenario.Decode(strings.NewReader(args.Scenario), "json")
	if err != nil {
		return scenario.Report{}, err
	}
	report, err := scenario.Run(ctx, s.runner, s.backend, sc)
	if err != nil {
		s.logger.WarnContext(ctx, "MCP run_scenario failed", "scenario", sc.Name, "error", err)
		return scenario.Report{}, fmt.Errorf("run failed: %w", err)
	}
	return *report, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(ActionsURI, "Action Library",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		lib := s.runner.Library()
		views := make([]dto.ActionView, 0, len(lib.Names()))
		for _, name := range lib.Names() {
			a, err := lib.Lookup(name)
			if err != nil {
				return nil, fmt.Errorf("failed to describe %s: %w", name, err)
			}
			views = append(views, dto.FromAction(a))
		}
		jsonBytes, err := json.Marshal(views)
		if err != nil {
			return nil, err
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      ActionsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
