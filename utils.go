package main

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
)

// コンテンツ形式
const (
	ContentFormatHTML     = "html"
	ContentFormatMarkdown = "markdown"
)

var markdown = goldmark.New()

// normalizeTermName はカテゴリー・タグ名の前後の空白類（Unicodeホワイトスペース）だけを除去し、他は一切変更しない
func normalizeTermName(name string) string {
	return strings.TrimFunc(name, unicode.IsSpace)
}

// truncateRunes は文字数がlimitを超える場合に先頭limit文字だけを返す
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}

// convertContent は指定された形式の本文をWordPressへ送るHTMLに変換する
func convertContent(content, format string) (string, error) {
	switch format {
	case "", ContentFormatHTML:
		return content, nil
	case ContentFormatMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("Markdownの変換に失敗: %w", err)
		}
		return buf.String(), nil
	default:
		return "", &ValidationError{Field: "content_format", Message: "must be one of html, markdown"}
	}
}
