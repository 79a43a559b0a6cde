package numserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"mcpnum/internal/config"
	"mcpnum/internal/tools"
	"mcpnum/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// ServerName identifies the server toward MCP clients.
const ServerName = "mcpnum"

// Server hosts the numeric tool set behind an MCP transport. It owns the
// transport lifecycle; the tool handlers themselves are stateless and safe
// for concurrent invocations.
type Server struct {
	config  config.ServerConfig
	version string

	server           *server.MCPServer
	sseServer        *server.SSEServer
	streamableServer *server.StreamableHTTPServer

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
	mu         sync.RWMutex
}

// NewServer creates a numeric MCP server for the given configuration.
func NewServer(cfg config.ServerConfig, version string) *Server {
	if cfg.Host == "" {
		cfg.Host = "0.0.0.0"
	}
	if cfg.Port == 0 {
		cfg.Port = 9124
	}
	if cfg.Transport == "" {
		cfg.Transport = config.TransportStreamableHTTP
	}

	return &Server{
		config:  cfg,
		version: version,
	}
}

// Start starts the MCP server on the configured transport. It returns once
// the transport is serving; errors from the serving goroutine are logged.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("server already started")
	}
	if !config.ValidTransport(s.config.Transport) {
		return fmt.Errorf("unsupported transport %q (supported: streamable-http, sse, stdio)", s.config.Transport)
	}

	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	// Create MCP server with tool capabilities
	mcpServer := server.NewMCPServer(
		ServerName,
		s.version,
		server.WithToolCapabilities(true),
	)
	tools.NewNumericTools().RegisterAll(mcpServer)
	s.server = mcpServer

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case config.TransportStreamableHTTP:
		s.streamableServer = server.NewStreamableHTTPServer(
			s.server,
			server.WithEndpointPath("/mcp"),
			server.WithHeartbeatInterval(30*time.Second),
		)
		streamableServer := s.streamableServer
		logging.Info("Server", "Starting numeric MCP server on %s (streamable-http)", addr)
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
			}
		}()

	case config.TransportSSE:
		baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
		s.sseServer = server.NewSSEServer(
			s.server,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		logging.Info("Server", "Starting numeric MCP server on %s (sse)", addr)
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
			}
		}()

	case config.TransportStdio:
		mcpSrv := s.server
		logging.Info("Server", "Starting numeric MCP server on stdio")
		go func() {
			if err := server.ServeStdio(mcpSrv); err != nil {
				logging.Error("Server", err, "Stdio server error")
			}
		}()
	}

	return nil
}

// Stop stops the server and shuts down the transport.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.server == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping numeric MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableServer
	s.mu.Unlock()

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}
	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}

	s.mu.Lock()
	s.server = nil
	s.sseServer = nil
	s.streamableServer = nil
	s.mu.Unlock()

	return nil
}

// Addr returns the configured bind address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Transport returns the configured transport name.
func (s *Server) Transport() string {
	return s.config.Transport
}
