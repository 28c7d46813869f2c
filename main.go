package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errConnectionFailed は --test-connection が失敗したことを示す。詳細は出力済み
var errConnectionFailed = errors.New("connection test failed")

func main() {
	// .envがなくてもよい
	_ = godotenv.Load()

	cfg, err := ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCommand(cfg).Execute(); err != nil {
		if !errors.Is(err, errConnectionFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// newRootCommand は環境変数由来の設定をフラグのデフォルト値とするルートコマンドを返す
func newRootCommand(cfg Config) *cobra.Command {
	var testConnection bool

	cmd := &cobra.Command{
		Use:   "wordpress-mcp-server",
		Short: "WordPress MCP Server - Enable Claude AI to manage WordPress blogs",
		Example: `  wordpress-mcp-server --mode stdio                          # Run for Claude Desktop
  wordpress-mcp-server --mode http --mcp-port 9001          # Run HTTP server
  wordpress-mcp-server --wordpress-url http://localhost:8080 # Custom WordPress URL`,
		Version:       serverVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, testConnection)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.WordPressURL, "wordpress-url", cfg.WordPressURL, "WordPress site URL")
	flags.StringVar(&cfg.Username, "username", cfg.Username, "WordPress username")
	flags.StringVar(&cfg.Password, "password", cfg.Password, "WordPress password")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout for WordPress requests")
	flags.IntVar(&cfg.Port, "mcp-port", cfg.Port, "MCP server port (9000+ range recommended)")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "Server transport mode (stdio or http)")
	flags.StringVar(&cfg.Host, "host", cfg.Host, "Host to bind HTTP server to (only for http mode)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Logging level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log to file instead of stderr")
	flags.BoolVar(&testConnection, "test-connection", false, "Test WordPress connection and exit")

	return cmd
}

func run(ctx context.Context, stdout, stderr io.Writer, cfg Config, testConnection bool) error {
	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := cfg.Validate(logger); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	sessions := &DefaultSessionFactory{
		Credentials: cfg.Credentials(),
		Timeout:     cfg.Timeout,
		Logger:      logger,
	}

	if testConnection {
		return runConnectionTest(ctx, stdout, sessions, cfg)
	}

	logger.Info("starting WordPress MCP server", "wordpress_url", cfg.WordPressURL, "mode", cfg.Mode, "mcp_port", cfg.Port)

	dispatcher := NewDispatcher(sessions, cfg.WordPressURL, logger)
	mcpServer := newMCPServer(dispatcher)

	switch cfg.Mode {
	case ModeHTTP:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serveHTTP(ctx, cfg.Addr(), newHTTPHandler(mcpServer, dispatcher, logger), logger)
	default:
		return serveStdio(mcpServer, logger)
	}
}

// runConnectionTest は一度だけ認証を試して結果を表示する
func runConnectionTest(ctx context.Context, out io.Writer, sessions SessionFactory, cfg Config) error {
	fmt.Fprintf(out, "Testing WordPress connection to: %s\n", cfg.WordPressURL)
	fmt.Fprintf(out, "Username: %s\n", cfg.Username)
	fmt.Fprintln(out, strings.Repeat("-", 50))

	client, err := sessions.OpenSession(ctx)
	if err != nil {
		fmt.Fprintf(out, "❌ Connection test failed: %v\n", err)
		return errConnectionFailed
	}
	defer client.Close()

	user, err := client.Authenticate(ctx)
	if err != nil {
		fmt.Fprintf(out, "❌ Connection failed: %v\n", err)
		return errConnectionFailed
	}

	fmt.Fprintln(out, "✅ Connection successful!")
	fmt.Fprintf(out, "   Connected as: %s\n", orUnknown(user.Name))
	fmt.Fprintf(out, "   Username: %s\n", orUnknown(user.Username))
	fmt.Fprintf(out, "   Email: %s\n", orUnknown(user.Email))
	fmt.Fprintf(out, "   Roles: %s\n", strings.Join(user.Roles, ", "))
	return nil
}
