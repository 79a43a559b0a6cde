// Package config provides configuration management for mcpnum.
//
// Configuration is loaded and merged in the following order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (embedded in the binary)
//  2. User configuration (~/.config/mcpnum/config.yaml)
//  3. Project configuration (./.mcpnum/config.yaml)
//  4. Environment variables (MCPNUM_HOST, MCPNUM_PORT, MCPNUM_TRANSPORT,
//     MCPNUM_LOG_LEVEL), with a .env file in the working directory honored
//     if present
//
// Command-line flags applied by the serve command override all of these.
package config
