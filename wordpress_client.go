package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	// wpAPIPath はWordPress REST APIのルート
	wpAPIPath = "/wp-json/wp/v2"

	// エンドポイントのパス定義
	wpUsersMeEndpoint    = "/users/me"   // 認証ユーザー
	wpPostsEndpoint      = "/posts"      // 投稿一覧・作成
	wpPostEndpoint       = "/posts/%d"   // 特定の投稿
	wpCategoriesEndpoint = "/categories" // カテゴリー
	wpTagsEndpoint       = "/tags"       // タグ

	// errorBodyLimit はエラーメッセージに含めるレスポンスボディの上限
	errorBodyLimit = 4096
)

// listConfig は一覧取得オプションを保持する構造体
type listConfig struct {
	status  string
	perPage int
	orderBy string
	order   string
}

// ListOption は一覧取得設定を変更する関数型
type ListOption func(*listConfig)

// WithStatus はステータスで絞り込むオプションを返す
func WithStatus(status string) ListOption {
	return func(c *listConfig) {
		c.status = status
	}
}

// WithPerPage は取得件数のオプションを返す
func WithPerPage(perPage int) ListOption {
	return func(c *listConfig) {
		c.perPage = perPage
	}
}

// WithOrder はソートオプションを返す
func WithOrder(orderBy, order string) ListOption {
	return func(c *listConfig) {
		c.orderBy = orderBy
		c.order = order
	}
}

// WordPressClientInterface はWordPressとの通信を担当するインターフェース。
// 1回のツール呼び出しごとに生成され、最後に必ずCloseされる
type WordPressClientInterface interface {
	Authenticate(ctx context.Context) (*UserProfile, error)
	CreatePost(ctx context.Context, input PostInput) (*PostSummary, error)
	UpdatePost(ctx context.Context, postID int, update PostUpdate) (*PostSummary, error)
	ListPosts(ctx context.Context, options ...ListOption) ([]PostSummary, error)
	Close() error
}

// HTTPClientInterface はHTTPクライアントの操作をモック可能にするインターフェース
type HTTPClientInterface interface {
	Do(req *http.Request) (*http.Response, error)
	CloseIdleConnections()
}

// standardHTTPClient は標準のhttp.Clientをラップする構造体
type standardHTTPClient struct {
	client *http.Client
}

func (c *standardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

func (c *standardHTTPClient) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

// NewHTTPClient はセッション専用のコネクションプールを持つHTTPClientInterfaceを返す
func NewHTTPClient(timeout time.Duration) HTTPClientInterface {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &standardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// WordPressClient はWordPress REST APIのクライアント
type WordPressClient struct {
	httpClient  HTTPClientInterface
	credentials Credentials
	apiBase     string
	logger      *slog.Logger
}

// NewWordPressClient は新しいWordPressClientを作成する
func NewWordPressClient(httpClient HTTPClientInterface, credentials Credentials, logger *slog.Logger) *WordPressClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordPressClient{
		httpClient:  httpClient,
		credentials: credentials,
		apiBase:     strings.TrimRight(credentials.BaseURL, "/") + wpAPIPath,
		logger:      logger,
	}
}

// Close はセッションのコネクションを解放する
func (c *WordPressClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Authenticate は認証情報が有効かを /users/me で確認する
func (c *WordPressClient) Authenticate(ctx context.Context) (*UserProfile, error) {
	resp, err := c.send(ctx, http.MethodGet, wpUsersMeEndpoint, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drainBody(resp)
		return nil, &AuthenticationError{StatusCode: resp.StatusCode}
	}

	var user UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("ユーザー情報の解析に失敗: %w", err)
	}
	return &user, nil
}

// CreatePost は新しい投稿を作成する。カテゴリー・タグ名は先にIDへ解決する
func (c *WordPressClient) CreatePost(ctx context.Context, input PostInput) (*PostSummary, error) {
	if input.Title == "" {
		return nil, &ValidationError{Field: "title", Message: "must be a non-empty string"}
	}
	if input.Content == "" {
		return nil, &ValidationError{Field: "content", Message: "must be a non-empty string"}
	}
	status := input.Status
	if status == "" {
		status = PostStatusDraft
	}
	if err := validateStatus(status, postStatuses); err != nil {
		return nil, err
	}

	categoryIDs, unresolvedCategories, err := c.resolveTerms(ctx, categoryTaxonomy, input.Categories)
	if err != nil {
		return nil, err
	}
	tagIDs, unresolvedTags, err := c.resolveTerms(ctx, tagTaxonomy, input.Tags)
	if err != nil {
		return nil, err
	}

	reqBody := createPostRequest{
		Title:      input.Title,
		Content:    input.Content,
		Status:     status,
		Excerpt:    input.Excerpt,
		Format:     "standard",
		Categories: categoryIDs,
		Tags:       tagIDs,
	}

	resp, err := c.send(ctx, http.MethodPost, wpPostsEndpoint, nil, reqBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &RequestError{Op: "create post", StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var post WPPost
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("投稿の解析に失敗: %w", err)
	}

	summary := summarize(post)
	summary.UnresolvedTerms = append(unresolvedCategories, unresolvedTags...)
	return &summary, nil
}

// UpdatePost は既存の投稿を部分更新する。指定されたフィールドだけを送信する
func (c *WordPressClient) UpdatePost(ctx context.Context, postID int, update PostUpdate) (*PostSummary, error) {
	if postID <= 0 {
		return nil, &ValidationError{Field: "post_id", Message: "must be a positive integer"}
	}
	if update.Status != "" {
		if err := validateStatus(update.Status, postStatuses); err != nil {
			return nil, err
		}
	}

	reqBody := updatePostRequest{
		Title:   update.Title,
		Content: update.Content,
		Status:  update.Status,
	}

	resp, err := c.send(ctx, http.MethodPost, fmt.Sprintf(wpPostEndpoint, postID), nil, reqBody)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Op: "update post", StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var post WPPost
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		return nil, fmt.Errorf("投稿の解析に失敗: %w", err)
	}

	summary := summarize(post)
	return &summary, nil
}

// ListPosts は投稿を日付の新しい順に取得する
func (c *WordPressClient) ListPosts(ctx context.Context, options ...ListOption) ([]PostSummary, error) {
	// デフォルト設定
	config := &listConfig{
		status:  PostStatusAny,
		perPage: 10,
		orderBy: "date",
		order:   "desc",
	}
	for _, opt := range options {
		opt(config)
	}

	query := url.Values{}
	if config.status != "" {
		query.Set("status", config.status)
	}
	if config.perPage > 0 {
		query.Set("per_page", strconv.Itoa(config.perPage))
	}
	if config.orderBy != "" {
		query.Set("orderby", config.orderBy)
	}
	if config.order != "" {
		query.Set("order", config.order)
	}

	resp, err := c.send(ctx, http.MethodGet, wpPostsEndpoint, query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		drainBody(resp)
		return nil, &RequestError{Op: "list posts", StatusCode: resp.StatusCode}
	}

	var posts []WPPost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("投稿一覧の解析に失敗: %w", err)
	}

	summaries := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, summarize(p))
	}
	return summaries, nil
}

// send は認証付きのリクエストを組み立てて実行する。
// 通信自体の失敗はTransportErrorに変換する
func (c *WordPressClient) send(ctx context.Context, method, endpoint string, query url.Values, body any) (*http.Response, error) {
	apiURL := c.apiBase + endpoint
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("リクエストのJSON変換に失敗: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.credentials.Username, c.credentials.Password)

	c.logger.Debug("wordpress request", "method", method, "url", apiURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	c.logger.Debug("wordpress response", "method", method, "url", apiURL, "status", resp.StatusCode)
	return resp, nil
}

func validateStatus(status string, allowed []string) error {
	if slices.Contains(allowed, status) {
		return nil
	}
	return &ValidationError{Field: "status", Message: "must be one of " + strings.Join(allowed, ", ")}
}

// readErrorBody は診断用にレスポンスボディの先頭を読み出す
func readErrorBody(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, errorBodyLimit))
}
