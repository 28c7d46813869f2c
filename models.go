package main

// Credentials はWordPressへの接続情報を保持する構造体
type Credentials struct {
	BaseURL  string
	Username string
	Password string
}

// 投稿ステータス
const (
	PostStatusDraft   = "draft"
	PostStatusPublish = "publish"
	PostStatusPrivate = "private"
	PostStatusAny     = "any"
)

// postStatuses は作成・更新時に指定可能なステータス
var postStatuses = []string{PostStatusDraft, PostStatusPublish, PostStatusPrivate}

// listStatuses は一覧取得時に指定可能なステータス
var listStatuses = []string{PostStatusDraft, PostStatusPublish, PostStatusPrivate, PostStatusAny}

// RenderedField はWordPressの {"rendered": "..."} 形式のフィールド
type RenderedField struct {
	Rendered string `json:"rendered"`
}

// WPPost はWordPress REST APIが返す投稿
type WPPost struct {
	ID         int           `json:"id"`
	Date       string        `json:"date"`
	Link       string        `json:"link"`
	Status     string        `json:"status"`
	Title      RenderedField `json:"title"`
	Content    RenderedField `json:"content"`
	Excerpt    RenderedField `json:"excerpt"`
	Categories []int         `json:"categories"`
	Tags       []int         `json:"tags"`
}

// WPTerm はカテゴリー・タグの共通表現
type WPTerm struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserProfile は /users/me から取得するユーザー情報
type UserProfile struct {
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// PostInput は投稿作成の入力
type PostInput struct {
	Title      string
	Content    string
	Status     string
	Excerpt    string
	Categories []string
	Tags       []string
}

// PostUpdate は部分更新の入力。空文字のフィールドは送信しない
type PostUpdate struct {
	Title   string
	Content string
	Status  string
}

// PostSummary は呼び出し側に返す投稿の要約
type PostSummary struct {
	ID      int
	Title   string
	URL     string
	Status  string
	Date    string
	Excerpt string

	// UnresolvedTerms は解決できずに破棄したカテゴリー・タグ名
	UnresolvedTerms []string
}

func summarize(p WPPost) PostSummary {
	return PostSummary{
		ID:      p.ID,
		Title:   p.Title.Rendered,
		URL:     p.Link,
		Status:  p.Status,
		Date:    p.Date,
		Excerpt: p.Excerpt.Rendered,
	}
}

// createPostRequest はPOST /posts のリクエストボディ
type createPostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	Excerpt    string `json:"excerpt"`
	Format     string `json:"format"`
	Categories []int  `json:"categories,omitempty"`
	Tags       []int  `json:"tags,omitempty"`
}

// updatePostRequest はPOST /posts/{id} のリクエストボディ
type updatePostRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
	Status  string `json:"status,omitempty"`
}

// createTermRequest はカテゴリー・タグ作成のリクエストボディ
type createTermRequest struct {
	Name string `json:"name"`
}
