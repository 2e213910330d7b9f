package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/louisbranch/launchboard/internal/launch/view"
	"github.com/louisbranch/launchboard/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "launchboard"
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Views     *view.Service
	Transport TransportKind
	HTTPAddr  string
	Logger    *log.Logger
}

// Server exposes the launch views over MCP.
type Server struct {
	mcpServer *mcp.Server
	views     *view.Service
}

type registrationModule struct {
	name     string
	register func(*mcp.Server, *view.Service)
}

var registrationModules = []registrationModule{
	{name: "launch-tools", register: registerLaunchTools},
	{name: "dataset-resources", register: registerDatasetResources},
}

func registerLaunchTools(server *mcp.Server, views *view.Service) {
	mcp.AddTool(server, domain.ListSitesTool(), domain.ListSitesHandler(views))
	mcp.AddTool(server, domain.ProportionViewTool(), domain.ProportionViewHandler(views))
	mcp.AddTool(server, domain.CorrelationViewTool(), domain.CorrelationViewHandler(views))
}

func registerDatasetResources(server *mcp.Server, views *view.Service) {
	server.AddResource(domain.DatasetSummaryResource(), domain.DatasetSummaryResourceHandler(views))
}

// NewServer builds an MCP server over views.
func NewServer(views *view.Service) (*Server, error) {
	if views == nil {
		return nil, errors.New("view service is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, module := range registrationModules {
		module.register(mcpServer, views)
	}
	return &Server{mcpServer: mcpServer, views: views}, nil
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	if s == nil {
		return nil
	}
	return s.mcpServer
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := NewServer(cfg.Views)
	if err != nil {
		return err
	}
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.Serve(ctx)
	case TransportHTTP:
		transport, err := NewHTTPTransport(cfg.HTTPAddr, server, cfg.Logger)
		if err != nil {
			return err
		}
		return transport.ListenAndServe(ctx)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}
