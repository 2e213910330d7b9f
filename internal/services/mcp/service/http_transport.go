package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/launchboard/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultHTTPAddr = "localhost:8051"
	mcpPath         = "/mcp"
	healthPath      = "/mcp/health"
)

// HTTPTransport serves MCP over streamable HTTP.
type HTTPTransport struct {
	addr       string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHTTPTransport builds an HTTP transport for server. A blank addr binds
// to localhost only.
func NewHTTPTransport(addr string, server *Server, logger *log.Logger) (*HTTPTransport, error) {
	if server == nil || server.mcpServer == nil {
		return nil, errors.New("MCP server is not configured")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = defaultHTTPAddr
	}
	if logger == nil {
		logger = log.Default()
	}
	return &HTTPTransport{
		addr:   addr,
		logger: logger,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewHTTPHandler(server),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// NewHTTPHandler routes MCP requests and the health check.
func NewHTTPHandler(server *Server) http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server.mcpServer
	}, nil)
	mux := http.NewServeMux()
	mux.Handle(mcpPath, streamable)
	mux.HandleFunc(http.MethodGet+" "+healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// ListenAndServe serves until ctx is cancelled.
func (t *HTTPTransport) ListenAndServe(ctx context.Context) error {
	if t == nil || t.httpServer == nil {
		return errors.New("http transport is not configured")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	t.logger.Printf("mcp http listening addr=%s", t.addr)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- t.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown mcp http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve mcp http: %w", err)
	}
}
