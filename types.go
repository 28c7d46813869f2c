package main

import (
	"encoding/json"
	"fmt"
	"math"
)

// toolArguments はツール呼び出しの引数。JSONから復元された値を想定する
type toolArguments map[string]any

// RequireString は必須の文字列引数を取得する
func (a toolArguments) RequireString(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", &ValidationError{Field: key, Message: "is required"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: key, Message: "must be a string"}
	}
	return s, nil
}

// OptionalString は文字列引数を取得する。未指定の場合はdefを返す
func (a toolArguments) OptionalString(key, def string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: key, Message: "must be a string"}
	}
	return s, nil
}

// RequireInt は必須の整数引数を取得する
func (a toolArguments) RequireInt(key string) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, &ValidationError{Field: key, Message: "is required"}
	}
	return toInt(key, v)
}

// OptionalInt は整数引数を取得する。未指定の場合はdefを返す
func (a toolArguments) OptionalInt(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	return toInt(key, v)
}

// OptionalStringSlice は文字列配列の引数を取得する。未指定の場合は空を返す
func (a toolArguments) OptionalStringSlice(key string) ([]string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch items := v.(type) {
	case []string:
		return items, nil
	case []any:
		result := make([]string, 0, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Field: fmt.Sprintf("%s[%d]", key, i), Message: "must be a string"}
			}
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, &ValidationError{Field: key, Message: "must be an array of strings"}
	}
}

func toInt(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, &ValidationError{Field: key, Message: "must be an integer"}
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &ValidationError{Field: key, Message: "must be an integer"}
		}
		return int(i), nil
	default:
		return 0, &ValidationError{Field: key, Message: "must be an integer"}
	}
}
