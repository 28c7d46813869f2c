package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// excerptPreviewLength は一覧表示での抜粋の最大文字数
const excerptPreviewLength = 100

// SessionFactory はツール呼び出しごとにWordPressセッションを開く
type SessionFactory interface {
	OpenSession(ctx context.Context) (WordPressClientInterface, error)
}

// SessionFactoryFunc は関数をSessionFactoryとして扱うアダプター
type SessionFactoryFunc func(ctx context.Context) (WordPressClientInterface, error)

func (f SessionFactoryFunc) OpenSession(ctx context.Context) (WordPressClientInterface, error) {
	return f(ctx)
}

// DefaultSessionFactory は標準的なセッションを生成します
type DefaultSessionFactory struct {
	Credentials Credentials
	Timeout     time.Duration
	Logger      *slog.Logger
}

// OpenSession はセッション専用のHTTPクライアントを持つWordPressクライアントを生成します
func (f *DefaultSessionFactory) OpenSession(_ context.Context) (WordPressClientInterface, error) {
	if f.Credentials.BaseURL == "" || f.Credentials.Username == "" || f.Credentials.Password == "" {
		return nil, errors.New("WORDPRESS_URL, WORDPRESS_USERNAME または WORDPRESS_PASSWORD が設定されていません")
	}
	return NewWordPressClient(NewHTTPClient(f.Timeout), f.Credentials, f.Logger), nil
}

// Dispatcher はツール呼び出しをWordPressクライアントの操作へ振り分け、結果をテキストに整形する
type Dispatcher struct {
	sessions SessionFactory
	siteURL  string
	logger   *slog.Logger
}

// NewDispatcher は新しいDispatcherを作成する
func NewDispatcher(sessions SessionFactory, siteURL string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sessions: sessions,
		siteURL:  siteURL,
		logger:   logger,
	}
}

// ListTools はツールの一覧を返す。プロセス内で常に同じ内容・順序になる
func (d *Dispatcher) ListTools() []mcp.Tool {
	tools := make([]mcp.Tool, 0, len(toolCatalog))
	for _, t := range toolCatalog {
		tools = append(tools, t.tool)
	}
	return tools
}

// CallTool は名前に対応するツールを実行する。失敗はすべてIsErrorの結果として返し、errorは返さない
func (d *Dispatcher) CallTool(ctx context.Context, name string, arguments map[string]any) *mcp.CallToolResult {
	entry, ok := lookupTool(name)
	if !ok {
		d.logger.Warn("tool call rejected", "tool", name, "error", ErrUnknownTool)
		return mcp.NewToolResultError(fmt.Sprintf("Unknown tool: %s", name))
	}

	logger := d.logger.With("tool", name, "invocation_id", uuid.NewString())
	logger.Debug("tool call started")
	start := time.Now()

	result := entry.handle(d, ctx, toolArguments(arguments))

	logger.Info("tool call finished", "is_error", result.IsError, "duration", time.Since(start))
	return result
}

// withSession はセッションを開いてfnを実行し、どの経路でも必ずセッションを閉じる
func (d *Dispatcher) withSession(ctx context.Context, fn func(client WordPressClientInterface) error) error {
	client, err := d.sessions.OpenSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			d.logger.Warn("failed to close wordpress session", "error", cerr)
		}
	}()
	return fn(client)
}

func (d *Dispatcher) createBlogPost(ctx context.Context, args toolArguments) *mcp.CallToolResult {
	const action = "Failed to create blog post"

	input, err := postInputFromArguments(args)
	if err != nil {
		return failure(action, err)
	}

	var post *PostSummary
	err = d.withSession(ctx, func(client WordPressClientInterface) error {
		var err error
		post, err = client.CreatePost(ctx, input)
		return err
	})
	if err != nil {
		return failure(action, err)
	}
	if len(post.UnresolvedTerms) > 0 {
		d.logger.Warn("post created without some terms", "post_id", post.ID, "terms", post.UnresolvedTerms)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully created blog post!\n\nTitle: %s\nID: %d\nStatus: %s\nURL: %s\nDate: %s",
		post.Title, post.ID, post.Status, post.URL, post.Date,
	))
}

func (d *Dispatcher) updateBlogPost(ctx context.Context, args toolArguments) *mcp.CallToolResult {
	const action = "Failed to update blog post"

	postID, update, err := postUpdateFromArguments(args)
	if err != nil {
		return failure(action, err)
	}

	var post *PostSummary
	err = d.withSession(ctx, func(client WordPressClientInterface) error {
		var err error
		post, err = client.UpdatePost(ctx, postID, update)
		return err
	})
	if err != nil {
		return failure(action, err)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Successfully updated blog post!\n\nTitle: %s\nID: %d\nStatus: %s\nURL: %s",
		post.Title, post.ID, post.Status, post.URL,
	))
}

func (d *Dispatcher) listBlogPosts(ctx context.Context, args toolArguments) *mcp.CallToolResult {
	const action = "Failed to list posts"

	status, err := args.OptionalString("status", PostStatusAny)
	if err != nil {
		return failure(action, err)
	}
	if err := validateStatus(status, listStatuses); err != nil {
		return failure(action, err)
	}
	perPage, err := args.OptionalInt("per_page", defaultPerPage)
	if err != nil {
		return failure(action, err)
	}
	if perPage < minPerPage || perPage > maxPerPage {
		return failure(action, &ValidationError{
			Field:   "per_page",
			Message: fmt.Sprintf("must be between %d and %d", minPerPage, maxPerPage),
		})
	}

	var posts []PostSummary
	err = d.withSession(ctx, func(client WordPressClientInterface) error {
		var err error
		posts, err = client.ListPosts(ctx, WithStatus(status), WithPerPage(perPage))
		return err
	})
	if err != nil {
		return failure(action, err)
	}

	if len(posts) == 0 {
		return mcp.NewToolResultText("No posts found.")
	}

	var b strings.Builder
	b.WriteString("Blog Posts:\n\n")
	for _, p := range posts {
		fmt.Fprintf(&b, "ID: %d\nTitle: %s\nStatus: %s\nDate: %s\nURL: %s\nExcerpt: %s...\n\n",
			p.ID, p.Title, p.Status, p.Date, p.URL, truncateRunes(p.Excerpt, excerptPreviewLength))
	}
	return mcp.NewToolResultText(b.String())
}

func (d *Dispatcher) testConnection(ctx context.Context, _ toolArguments) *mcp.CallToolResult {
	var user *UserProfile
	err := d.withSession(ctx, func(client WordPressClientInterface) error {
		var err error
		user, err = client.Authenticate(ctx)
		return err
	})
	if err != nil {
		return failure("WordPress connection failed", err)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"WordPress connection successful!\n\nConnected as: %s\nUsername: %s\nEmail: %s\nRole: %s\nSite URL: %s",
		orUnknown(user.Name), orUnknown(user.Username), orUnknown(user.Email),
		strings.Join(user.Roles, ", "), d.siteURL,
	))
}

func postInputFromArguments(args toolArguments) (PostInput, error) {
	title, err := args.RequireString("title")
	if err != nil {
		return PostInput{}, err
	}
	content, err := args.RequireString("content")
	if err != nil {
		return PostInput{}, err
	}
	status, err := args.OptionalString("status", PostStatusDraft)
	if err != nil {
		return PostInput{}, err
	}
	excerpt, err := args.OptionalString("excerpt", "")
	if err != nil {
		return PostInput{}, err
	}
	categories, err := args.OptionalStringSlice("categories")
	if err != nil {
		return PostInput{}, err
	}
	tags, err := args.OptionalStringSlice("tags")
	if err != nil {
		return PostInput{}, err
	}
	format, err := args.OptionalString("content_format", ContentFormatHTML)
	if err != nil {
		return PostInput{}, err
	}
	if content, err = convertContent(content, format); err != nil {
		return PostInput{}, err
	}

	return PostInput{
		Title:      title,
		Content:    content,
		Status:     status,
		Excerpt:    excerpt,
		Categories: categories,
		Tags:       tags,
	}, nil
}

func postUpdateFromArguments(args toolArguments) (int, PostUpdate, error) {
	postID, err := args.RequireInt("post_id")
	if err != nil {
		return 0, PostUpdate{}, err
	}
	title, err := args.OptionalString("title", "")
	if err != nil {
		return 0, PostUpdate{}, err
	}
	content, err := args.OptionalString("content", "")
	if err != nil {
		return 0, PostUpdate{}, err
	}
	status, err := args.OptionalString("status", "")
	if err != nil {
		return 0, PostUpdate{}, err
	}
	format, err := args.OptionalString("content_format", ContentFormatHTML)
	if err != nil {
		return 0, PostUpdate{}, err
	}
	if content != "" {
		if content, err = convertContent(content, format); err != nil {
			return 0, PostUpdate{}, err
		}
	}

	return postID, PostUpdate{Title: title, Content: content, Status: status}, nil
}

// failure は失敗した操作名と原因を1行にまとめたエラー結果を返す
func failure(action string, err error) *mcp.CallToolResult {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", action, msg))
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
