package numserver

import (
	"context"
	"testing"

	"mcpnum/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerDefaults(t *testing.T) {
	s := NewServer(config.ServerConfig{}, "test")

	assert.Equal(t, "0.0.0.0:9124", s.Addr())
	assert.Equal(t, config.TransportStreamableHTTP, s.Transport())
}

func TestNewServerExplicitConfig(t *testing.T) {
	s := NewServer(config.ServerConfig{
		Host:      "127.0.0.1",
		Port:      7777,
		Transport: config.TransportSSE,
	}, "test")

	assert.Equal(t, "127.0.0.1:7777", s.Addr())
	assert.Equal(t, config.TransportSSE, s.Transport())
}

func TestStartRejectsUnknownTransport(t *testing.T) {
	s := NewServer(config.ServerConfig{Transport: "carrier-pigeon"}, "test")

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport")
}

// testServer builds a server bound to an ephemeral port so tests cannot
// collide with anything already listening.
func testServer() *Server {
	return &Server{
		config: config.ServerConfig{
			Host:      "127.0.0.1",
			Port:      0,
			Transport: config.TransportStreamableHTTP,
		},
		version: "test",
	}
}

func TestStartTwiceFails(t *testing.T) {
	s := testServer()

	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	defer func() { _ = s.Stop(ctx) }()

	err := s.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already started")
}

func TestStopWithoutStart(t *testing.T) {
	s := NewServer(config.ServerConfig{}, "test")

	err := s.Stop(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")
}

func TestStartStopCycle(t *testing.T) {
	s := testServer()

	ctx := context.Background()
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Stop(ctx))

	// A stopped server can be started again.
	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Stop(ctx))
}
