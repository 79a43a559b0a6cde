package config

// GetDefaultConfig returns the built-in configuration. The bind defaults
// match what clients of earlier releases expect: all interfaces, port 9124,
// streamable HTTP.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      9124,
			Transport: TransportStreamableHTTP,
			LogLevel:  "info",
		},
	}
}
