package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/segmentkit/segment-mcp/internal/config"
	"github.com/segmentkit/segment-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("segment-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("segment-mcp - MCP server for SAM-backed image segmentation")
			fmt.Println()
			fmt.Println("Usage: segment-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  SEGMENT_MCP_SERVICE_URL        SAM inference service base URL (default http://127.0.0.1:9010)")
			fmt.Println("  SEGMENT_MCP_TIMEOUT_SECONDS    Inference request timeout (default 120)")
			fmt.Println("  SEGMENT_MCP_RESIZE_WIDTH       Default first-stage resize width (default 1024)")
			fmt.Println("  SEGMENT_MCP_LOG_LEVEL          Log level: debug, info, warn, error (default info)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Missing .env is fine, the environment alone is enough.
	_ = godotenv.Load()

	cfg := config.Load()

	// Log to stderr (stdout is for MCP protocol)
	log := logrus.New()
	log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"version":     Version,
		"service_url": cfg.ServiceURL,
	}).Debug("starting server")

	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
