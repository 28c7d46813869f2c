package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// taxonomy はカテゴリーとタグで共通の名前解決先
type taxonomy struct {
	kind     string
	endpoint string
}

var (
	categoryTaxonomy = taxonomy{kind: "category", endpoint: wpCategoriesEndpoint}
	tagTaxonomy      = taxonomy{kind: "tag", endpoint: wpTagsEndpoint}
)

// resolveTerms は名前のリストをIDのリストへ解決する。
// 名前ごとに独立して検索し、なければ作成する。
// 解決できなかった名前は投稿自体を止めずに破棄し、2つ目の戻り値で返す。
// 通信自体の失敗だけは呼び出し元へ返す
func (c *WordPressClient) resolveTerms(ctx context.Context, tax taxonomy, names []string) ([]int, []string, error) {
	var ids []int
	var unresolved []string

	for _, name := range names {
		id, err := c.resolveTerm(ctx, tax, name)
		if err != nil {
			var transportErr *TransportError
			if errors.As(err, &transportErr) {
				return nil, nil, err
			}
			// TODO: 破棄した名前を呼び出し側へ部分成功として通知するか検討する
			c.logger.Warn("taxonomy term dropped", "taxonomy", tax.kind, "name", name, "error", err)
			unresolved = append(unresolved, name)
			continue
		}
		ids = append(ids, id)
	}

	return ids, unresolved, nil
}

// resolveTerm は1つの名前を find-or-create で解決する
func (c *WordPressClient) resolveTerm(ctx context.Context, tax taxonomy, name string) (int, error) {
	name = normalizeTermName(name)
	if name == "" {
		return 0, errors.New("empty term name")
	}

	existing, err := c.findTerm(ctx, tax, name)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	created, err := c.createTerm(ctx, tax, name)
	if err != nil {
		return 0, err
	}
	c.logger.Info("taxonomy term created", "taxonomy", tax.kind, "name", name, "id", created.ID)
	return created.ID, nil
}

// findTerm は ?search= の結果から大文字小文字を無視して完全一致する最初の項目を返す。
// 見つからなければ nil を返す
func (c *WordPressClient) findTerm(ctx context.Context, tax taxonomy, name string) (*WPTerm, error) {
	query := url.Values{}
	query.Set("search", name)

	resp, err := c.send(ctx, http.MethodGet, tax.endpoint, query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Op: "search " + tax.kind, StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var terms []WPTerm
	if err := json.NewDecoder(resp.Body).Decode(&terms); err != nil {
		return nil, fmt.Errorf("%sの検索結果の解析に失敗: %w", tax.kind, err)
	}

	for i := range terms {
		if strings.EqualFold(terms[i].Name, name) {
			return &terms[i], nil
		}
	}
	return nil, nil
}

// createTerm は新しいカテゴリー・タグを作成する
func (c *WordPressClient) createTerm(ctx context.Context, tax taxonomy, name string) (*WPTerm, error) {
	resp, err := c.send(ctx, http.MethodPost, tax.endpoint, nil, createTermRequest{Name: name})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &RequestError{Op: "create " + tax.kind, StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var term WPTerm
	if err := json.NewDecoder(resp.Body).Decode(&term); err != nil {
		return nil, fmt.Errorf("%sの作成結果の解析に失敗: %w", tax.kind, err)
	}
	return &term, nil
}
