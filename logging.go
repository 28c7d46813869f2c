package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// levelCritical はCRITICAL指定時のレベル。slogに対応するレベルがないためERRORより上に置く
const levelCritical = slog.LevelError + 4

// parseLogLevel はLOG_LEVELの文字列をslogのレベルに変換する
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return levelCritical, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// newLogger はロガーを作成する。stdoutはstdioモードのプロトコルが使うため、
// ファイル指定がなければfallback（通常はstderr）へ出力する
func newLogger(level, file string, fallback io.Writer) (*slog.Logger, func() error, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, nil, err
	}

	out := fallback
	closeFn := func() error { return nil }
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("ログファイルを開けません: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("server", serverName), closeFn, nil
}
