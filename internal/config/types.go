package config

const (
	// TransportStreamableHTTP is the streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
	// TransportStdio is the standard I/O transport.
	TransportStdio = "stdio"
)

// Config is the top-level configuration structure for mcpnum.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig defines how the numeric MCP server binds and serves.
type ServerConfig struct {
	Host      string `yaml:"host,omitempty"`      // Host to bind to (default: 0.0.0.0)
	Port      int    `yaml:"port,omitempty"`      // Port for the HTTP transports (default: 9124)
	Transport string `yaml:"transport,omitempty"` // Transport to use (default: streamable-http)
	LogLevel  string `yaml:"logLevel,omitempty"`  // Log level: debug, info, warn, error (default: info)
}

// ValidTransport reports whether name is a supported transport.
func ValidTransport(name string) bool {
	switch name {
	case TransportStreamableHTTP, TransportSSE, TransportStdio:
		return true
	default:
		return false
	}
}
