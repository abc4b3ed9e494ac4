// ThinkLock: personal study planner backend.
//
// Serves the study store as a REST API for the dashboard, or as an MCP
// server so AI assistants can plan sessions and quiz flashcards.
//
// Usage:
//
//	thinklock serve     # Start the REST API
//	thinklock mcp       # Start the MCP server (stdio transport)
//	thinklock heatmap   # Print a folder's study heatmap
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eeshamoona/thinklock/internal/api"
	"github.com/eeshamoona/thinklock/internal/config"
	"github.com/eeshamoona/thinklock/internal/render"
	tlserver "github.com/eeshamoona/thinklock/internal/server"
	"github.com/eeshamoona/thinklock/internal/store"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "mcp":
		err = runMCP(os.Args[2:])
	case "heatmap":
		err = runHeatmap(os.Args[2:], os.Stdout)
	case "config":
		err = runConfig(os.Args[2:], os.Stdout)
	case "--help", "-h", "help":
		printUsage(os.Stdout)
		return
	case "--version", "-v", "version":
		fmt.Printf("thinklock v%s\n", tlserver.Version)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig parses the shared -config flag plus any command flags.
func loadConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	configPath := fs.String("config", "", "Path to config JSON (default: $THINKLOCK_CONFIG or ~/.thinklock/config.json)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	return config.Load(*configPath)
}

func openStore(cfg config.Config) (*store.Store, error) {
	sc := store.DefaultConfig()
	sc.DataDir = cfg.DataDir
	st, err := store.New(sc)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	return st, nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", "", "Listen address (overrides config)")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Printf("WARNING: store close: %v", err)
		}
	}()

	logger := log.New(os.Stderr, "thinklock: ", log.LstdFlags)
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.New(st, api.Options{CORSOrigin: cfg.CORSOrigin, Logger: logger}).Handler(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		ErrorLog:     logger,
	}

	// Graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s (data: %s)", cfg.Addr, st.Path())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runMCP(args []string) error {
	cfg, err := loadConfig(flag.NewFlagSet("mcp", flag.ContinueOnError), args)
	if err != nil {
		return err
	}

	sc := store.DefaultConfig()
	sc.DataDir = cfg.DataDir
	s, cleanup, err := tlserver.New(sc)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// stdout belongs to the stdio transport; diagnostics go to stderr.
	return server.ServeStdio(s)
}

func runHeatmap(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	folderID := fs.Int64("folder", 0, "Think folder ID (required)")
	year := fs.Int("year", time.Now().Year(), "Calendar year")
	plain := fs.Bool("plain", false, "Disable colors")
	cfg, err := loadConfig(fs, args)
	if err != nil {
		return err
	}
	if *folderID <= 0 {
		return errors.New("-folder is required")
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	folder, err := st.GetThinkFolder(*folderID)
	if err != nil {
		return err
	}
	cells, err := st.Heatmap(*folderID, *year)
	if err != nil {
		return err
	}
	return render.Heatmap(out, cells, *year, render.Options{
		Title: fmt.Sprintf("%s · %d", folder.Name, *year),
		Plain: *plain,
	})
}

func runConfig(args []string, out io.Writer) error {
	cfg, err := loadConfig(flag.NewFlagSet("config", flag.ContinueOnError), args)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, cfg.String())
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `ThinkLock v%s: study planner backend

Usage:
  thinklock serve   [-addr :8080] [-config path]   Start the REST API
  thinklock mcp     [-config path]                 Start the MCP server (stdio transport)
  thinklock heatmap -folder ID [-year Y] [-plain]  Print a folder's study heatmap
  thinklock config  [-config path]                 Show the resolved configuration
  thinklock version                                Print the version

Environment:
  THINKLOCK_CONFIG       Config file path
  THINKLOCK_DATA_DIR     Directory holding thinklock.db
  THINKLOCK_ADDR         REST API listen address
  THINKLOCK_CORS_ORIGIN  Allowed dashboard origin (empty disables CORS)

MCP configuration:

  {
    "mcpServers": {
      "thinklock": {
        "command": "thinklock",
        "args": ["mcp"]
      }
    }
  }
`, tlserver.Version)
}
