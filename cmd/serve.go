package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/config"
	"github.com/parleyhq/parley/internal/mcp"
)

func newServeCmd() *cobra.Command {
	var mode string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the workspace to host applications over MCP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			mode = resolveTransportMode(mode, cfg)

			// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
			logWriter := io.Writer(os.Stdout)
			if mode == "stdio" {
				logWriter = os.Stderr
			}
			if logPath := os.Getenv("PARLEY_LOG_PATH"); logPath != "" {
				fileWriter, file, err := newLogFileWriter(logPath)
				if err != nil {
					fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
				} else {
					defer file.Close()
					logWriter = fileWriter
				}
			}

			app, err := wireAppFrom(cfg, logWriter)
			if err != nil {
				return err
			}
			defer app.Close()

			server := mcp.NewServer(mcp.Config{
				Services: mcp.Services{
					Projects: app.projects,
					Sessions: app.sessions,
				},
				Logger: app.logger,
			})

			if mode == "stdio" {
				runStdioMode(app.logger, server)
				return nil
			}
			runHTTPMode(app.logger, server, app.cfg.Server.Host, app.cfg.Server.Port)
			return nil
		},
	}

	serveCmd.Flags().StringVar(&mode, "mode", "", "transport mode: stdio or http (defaults to config)")
	return serveCmd
}

// resolveTransportMode picks the transport: an explicit flag wins, then
// the loaded config (PARLEY_TRANSPORT_MODE already applied over the file).
func resolveTransportMode(flagMode string, cfg config.Config) string {
	if flagMode != "" {
		return flagMode
	}
	if cfg.Transport.Mode != "" {
		return cfg.Transport.Mode
	}
	return "stdio"
}

func runStdioMode(logger *slog.Logger, server *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := server.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, server *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.Handle("/mcp/", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

type logFileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{path: path, file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		return nil, nil, err
	}
	return writer, file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	if _, err := w.file.Seek(size-keepLogSizeBytes, io.SeekStart); err != nil {
		return err
	}
	n, err := w.file.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(buf); err != nil {
		return err
	}
	_, err = w.file.Seek(0, io.SeekEnd)
	return err
}
