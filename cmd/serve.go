package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mcpnum/internal/config"
	"mcpnum/internal/numserver"
	"mcpnum/pkg/logging"

	"github.com/spf13/cobra"
)

// Flag values for the serve command. A flag only overrides the layered
// configuration when the user actually set it.
var (
	serveHost      string
	servePort      int
	serveTransport string
	serveLogLevel  string
)

// serveCmd defines the serve command structure. This is the main command of
// mcpnum: it starts the MCP server and blocks until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the numeric MCP server",
	Long: `Starts the mcpnum server and serves the numeric tool set over the
configured MCP transport.

Transports:
  streamable-http (default) - HTTP transport at /mcp
  sse                       - Server-Sent Events transport at /sse
  stdio                     - standard input/output, for direct embedding

Configuration:
  mcpnum loads configuration from ~/.config/mcpnum/config.yaml and
  ./.mcpnum/config.yaml, then applies MCPNUM_* environment variables
  (a .env file in the working directory is honored). Command-line flags
  override everything. The server runs until SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Flags win over config files and environment
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serveHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}
	if cmd.Flags().Changed("transport") {
		cfg.Server.Transport = serveTransport
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Server.LogLevel = serveLogLevel
	}

	logging.InitForCLI(logging.ParseLevel(cfg.Server.LogLevel), os.Stderr)

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(baseCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := numserver.NewServer(cfg.Server, rootCmd.Version)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logging.Info("Serve", "Shutdown signal received")

	return srv.Stop(context.Background())
}

// init registers the serve command and its flags with the root command.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveHost, "host", "H", "0.0.0.0", "Host/IP to bind")
	serveCmd.Flags().IntVarP(&servePort, "port", "P", 9124, "Port to bind")
	serveCmd.Flags().StringVar(&serveTransport, "transport", config.TransportStreamableHTTP, "Transport to use (streamable-http, sse, stdio)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
