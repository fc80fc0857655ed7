package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "all interfaces", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		errorMsg string
		expected NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "IPv4", input: "0.0.0.0:3000", expected: NetAddress{Host: "0.0.0.0", Port: 3000}},
		{name: "empty host", input: ":8080", expected: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:http", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number is a positive integer"},
		{name: "hostname is not an IP", input: "example.com:80", errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *addr)
		})
	}
}

// ── parseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8081",
				"-c", "/path/to/config.json",
				"-version", "1.0.0",
				"-log-level", "warn",
				"-notification-ttl", "3s",
				"-request-timeout", "45s",
				"-session-ttl", "1h",
				"-fal-key", "flag-key",
				"-fal-url", "https://queue.example.com",
				"-fal-model", "owner/model",
				"-fal-timeout", "1m",
				"-fal-poll-interval", "100ms",
				"-sweep-interval", "30s",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "1.0.0", cfg.App.Version)
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, 3*time.Second, cfg.App.NotificationTTL)
				assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, time.Hour, cfg.Server.SessionTTL)
				assert.Equal(t, "flag-key", cfg.Adapter.Key)
				assert.Equal(t, "https://queue.example.com", cfg.Adapter.BaseURL)
				assert.Equal(t, "owner/model", cfg.Adapter.Model)
				assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
				assert.Equal(t, 100*time.Millisecond, cfg.Adapter.PollInterval)
				assert.Equal(t, 30*time.Second, cfg.Workers.SweepInterval)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid address format", args: []string{"-a", "invalid"}},
		{name: "invalid port", args: []string{"-a", "localhost:abc"}},
		{name: "invalid duration", args: []string{"-fal-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-grpc-address", "localhost:9090"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
