package main

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ツール名
const (
	ToolCreateBlogPost = "create_blog_post"
	ToolUpdateBlogPost = "update_blog_post"
	ToolListBlogPosts  = "list_blog_posts"
	ToolTestConnection = "test_wordpress_connection"
)

// 一覧取得件数の範囲
const (
	defaultPerPage = 10
	minPerPage     = 1
	maxPerPage     = 100
)

type toolHandler func(d *Dispatcher, ctx context.Context, args toolArguments) *mcp.CallToolResult

type catalogTool struct {
	tool   mcp.Tool
	handle toolHandler
}

// integer はmcp.WithNumberのスキーマ型をintegerに置き換える
func integer() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["type"] = "integer"
	}
}

// defaultEmptyArray は配列引数のデフォルト値を空配列にする
func defaultEmptyArray() mcp.PropertyOption {
	return func(schema map[string]any) {
		schema["default"] = []any{}
	}
}

// toolCatalog はプロセス全体で共有する読み取り専用のツール一覧。順序は固定
var toolCatalog = []catalogTool{
	{
		tool: mcp.NewTool(ToolCreateBlogPost,
			mcp.WithDescription("Create a new blog post in WordPress"),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the blog post"),
			),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("The main content of the blog post (HTML or plain text)"),
			),
			mcp.WithString("status",
				mcp.Enum(postStatuses...),
				mcp.DefaultString(PostStatusDraft),
				mcp.Description("Post status"),
			),
			mcp.WithString("excerpt",
				mcp.DefaultString(""),
				mcp.Description("Short excerpt/summary of the post"),
			),
			mcp.WithArray("categories",
				mcp.Items(map[string]any{"type": "string"}),
				defaultEmptyArray(),
				mcp.Description("List of category names for the post"),
			),
			mcp.WithArray("tags",
				mcp.Items(map[string]any{"type": "string"}),
				defaultEmptyArray(),
				mcp.Description("List of tag names for the post"),
			),
			mcp.WithString("content_format",
				mcp.Enum(ContentFormatHTML, ContentFormatMarkdown),
				mcp.DefaultString(ContentFormatHTML),
				mcp.Description("Format of content; markdown is converted to HTML before posting"),
			),
		),
		handle: (*Dispatcher).createBlogPost,
	},
	{
		tool: mcp.NewTool(ToolUpdateBlogPost,
			mcp.WithDescription("Update an existing blog post in WordPress"),
			mcp.WithNumber("post_id",
				integer(),
				mcp.Required(),
				mcp.Description("The ID of the post to update"),
			),
			mcp.WithString("title",
				mcp.Description("New title for the post"),
			),
			mcp.WithString("content",
				mcp.Description("New content for the post"),
			),
			mcp.WithString("status",
				mcp.Enum(postStatuses...),
				mcp.Description("New status for the post"),
			),
			mcp.WithString("content_format",
				mcp.Enum(ContentFormatHTML, ContentFormatMarkdown),
				mcp.DefaultString(ContentFormatHTML),
				mcp.Description("Format of content; markdown is converted to HTML before posting"),
			),
		),
		handle: (*Dispatcher).updateBlogPost,
	},
	{
		tool: mcp.NewTool(ToolListBlogPosts,
			mcp.WithDescription("List existing blog posts from WordPress"),
			mcp.WithString("status",
				mcp.Enum(listStatuses...),
				mcp.DefaultString(PostStatusAny),
				mcp.Description("Filter posts by status"),
			),
			mcp.WithNumber("per_page",
				integer(),
				mcp.DefaultNumber(defaultPerPage),
				mcp.Min(minPerPage),
				mcp.Max(maxPerPage),
				mcp.Description("Number of posts to retrieve"),
			),
		),
		handle: (*Dispatcher).listBlogPosts,
	},
	{
		tool: mcp.NewTool(ToolTestConnection,
			mcp.WithDescription("Test the connection to WordPress and verify authentication"),
		),
		handle: (*Dispatcher).testConnection,
	},
}

func lookupTool(name string) (catalogTool, bool) {
	for _, t := range toolCatalog {
		if t.tool.Name == name {
			return t, true
		}
	}
	return catalogTool{}, false
}
