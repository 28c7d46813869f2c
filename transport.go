package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "wordpress-blog-server"
	serverVersion = "1.0.0"
)

// newMCPServer はDispatcherのツール・プロンプトをMCPサーバーへ登録する
func newMCPServer(d *Dispatcher) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithPromptCapabilities(false),
		server.WithRecovery(),
	)

	for _, tool := range d.ListTools() {
		name := tool.Name
		s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return d.CallTool(ctx, name, request.GetArguments()), nil
		})
	}

	for _, prompt := range d.ListPrompts() {
		name := prompt.Name
		s.AddPrompt(prompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
			return d.GetPrompt(ctx, name, request.Params.Arguments)
		})
	}

	return s
}

// serveStdio はClaude Desktopなどから直接起動されるstdioモードで動かす
func serveStdio(s *server.MCPServer, logger *slog.Logger) error {
	logger.Info("starting server in stdio mode")
	return server.ServeStdio(s, server.WithErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)))
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type listChangedCapability struct {
	ListChanged bool `json:"listChanged"`
}

type capabilitiesResponse struct {
	Capabilities struct {
		Tools   listChangedCapability `json:"tools"`
		Prompts listChangedCapability `json:"prompts"`
	} `json:"capabilities"`
	ServerInfo serverInfo `json:"server_info"`
	Tools      []string   `json:"tools"`
	Prompts    []string   `json:"prompts"`
}

// newHTTPHandler は /health, /capabilities とMCPエンドポイント /mcp を提供する
func newHTTPHandler(s *server.MCPServer, d *Dispatcher, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, map[string]string{"status": "healthy", "server": "wordpress-mcp"})
	})

	mux.HandleFunc("GET /capabilities", func(w http.ResponseWriter, r *http.Request) {
		var resp capabilitiesResponse
		resp.ServerInfo = serverInfo{Name: serverName, Version: serverVersion}
		for _, t := range d.ListTools() {
			resp.Tools = append(resp.Tools, t.Name)
		}
		for _, p := range d.ListPrompts() {
			resp.Prompts = append(resp.Prompts, p.Name)
		}
		writeJSON(w, logger, resp)
	})

	mux.Handle("/mcp", server.NewStreamableHTTPServer(s))

	return mux
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}

// serveHTTP はctxがキャンセルされるまでHTTPサーバーを動かす
func serveHTTP(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP MCP server running", "addr", addr,
			"health", "http://"+addr+"/health",
			"capabilities", "http://"+addr+"/capabilities")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
