package main

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTool はカタログにないツールが呼ばれたことを示す
	ErrUnknownTool = errors.New("unknown tool")
	// ErrUnknownPrompt はカタログにないプロンプトが要求されたことを示す
	ErrUnknownPrompt = errors.New("unknown prompt")
)

// AuthenticationError は /users/me が200以外を返した場合のエラー
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("Authentication failed: %d", e.StatusCode)
}

// RequestError はコンテンツ・タクソノミーAPIが期待外のステータスを返した場合のエラー
type RequestError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("Failed to %s: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("Failed to %s: %d - %s", e.Op, e.StatusCode, e.Body)
}

// TransportError はDNS解決・接続拒否・タイムアウトなど通信自体の失敗
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError は引数が入力スキーマに違反している場合のエラー
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}
