package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.ServiceURL != "http://127.0.0.1:9010" {
		t.Errorf("ServiceURL = %s", cfg.ServiceURL)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.ResizeWidth != 1024 {
		t.Errorf("ResizeWidth = %d", cfg.ResizeWidth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEGMENT_MCP_SERVICE_URL", "http://sam.internal:8080")
	t.Setenv("SEGMENT_MCP_TIMEOUT_SECONDS", "30")
	t.Setenv("SEGMENT_MCP_RESIZE_WIDTH", "2048")
	t.Setenv("SEGMENT_MCP_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.ServiceURL != "http://sam.internal:8080" {
		t.Errorf("ServiceURL = %s", cfg.ServiceURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %s", cfg.RequestTimeout)
	}
	if cfg.ResizeWidth != 2048 {
		t.Errorf("ResizeWidth = %d", cfg.ResizeWidth)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
}

func TestLoad_MalformedIntFallsBack(t *testing.T) {
	t.Setenv("SEGMENT_MCP_RESIZE_WIDTH", "not-a-number")

	cfg := Load()
	if cfg.ResizeWidth != 1024 {
		t.Errorf("ResizeWidth = %d, want default 1024", cfg.ResizeWidth)
	}
}
