package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// 起動モード
const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

// Config はサーバー全体の設定。環境変数（.envを含む）から読み込み、フラグで上書きする
type Config struct {
	WordPressURL string        `env:"WORDPRESS_URL,default=http://192.168.0.10:8888"`
	Username     string        `env:"WORDPRESS_USERNAME,default=admin"`
	Password     string        `env:"WORDPRESS_PASSWORD,default=admin"`
	Timeout      time.Duration `env:"WORDPRESS_TIMEOUT,default=30s,strict"`

	Mode string `env:"MCP_SERVER_MODE,default=stdio"`
	Host string `env:"MCP_SERVER_HOST,default=0.0.0.0"`
	Port int    `env:"MCP_SERVER_PORT,default=9001,strict"`

	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	LogFile  string `env:"LOG_FILE"`
}

// ConfigFromEnv は環境変数からConfigを生成する
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("環境変数の読み込みに失敗: %w", err)
	}
	return cfg, nil
}

// Credentials はWordPressの接続情報を返す
func (c Config) Credentials() Credentials {
	return Credentials{
		BaseURL:  c.WordPressURL,
		Username: c.Username,
		Password: c.Password,
	}
}

// Addr はHTTPモードで待ち受けるアドレスを返す
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate は設定を検証する。推奨範囲外のポートは警告のみ
func (c Config) Validate(logger *slog.Logger) error {
	var errs []error

	if !strings.HasPrefix(c.WordPressURL, "http://") && !strings.HasPrefix(c.WordPressURL, "https://") {
		errs = append(errs, errors.New("WordPress URL must start with http:// or https://"))
	} else if u, err := url.Parse(c.WordPressURL); err != nil {
		errs = append(errs, fmt.Errorf("invalid WordPress URL: %w", err))
	} else if p := u.Port(); p != "" {
		if port, err := strconv.Atoi(p); err == nil && (port < 8000 || port >= 9000) {
			logger.Warn("WordPress port is outside recommended 8000-8999 range", "port", port)
		}
	}

	if c.Mode != ModeStdio && c.Mode != ModeHTTP {
		errs = append(errs, fmt.Errorf("mode must be %s or %s", ModeStdio, ModeHTTP))
	}
	if c.Port < 9000 {
		logger.Warn("MCP port is below recommended 9000+ range", "port", c.Port)
	}

	if c.Username == "" || c.Password == "" {
		errs = append(errs, errors.New("WordPress username and password are required"))
	}

	return errors.Join(errs...)
}
