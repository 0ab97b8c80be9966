package blog

import "time"

// Status governs an article's visibility in published queries.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is a known article status.
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article is a single content record. Content holds the canonical
// post-conversion HTML fragment; markdown only exists transiently at
// seed or ingest time and is never stored.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"coverImage"`
	Tags        []string   `json:"tags"`
	Status      Status     `json:"status"`
	Author      string     `json:"author"`
	ReadTime    int        `json:"readTime"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Clone returns a deep copy of the article. The store hands out clones
// so callers can never mutate its internal state directly.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Tags != nil {
		clone.Tags = make([]string, len(a.Tags))
		copy(clone.Tags, a.Tags)
	}
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		clone.PublishedAt = &t
	}
	return &clone
}

// Draft carries the caller-supplied fields for a new article. The ID
// and timestamps are assigned by the service. Content takes an HTML
// fragment; Markdown, when set and Content is empty, is rendered to
// HTML on ingest.
type Draft struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Markdown    string     `json:"markdown,omitempty"`
	Excerpt     string     `json:"excerpt"`
	CoverImage  string     `json:"coverImage"`
	Tags        []string   `json:"tags"`
	Status      Status     `json:"status"`
	Author      string     `json:"author"`
	ReadTime    int        `json:"readTime"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Patch holds a partial update. Nil fields are left unchanged.
type Patch struct {
	Title       *string    `json:"title,omitempty"`
	Content     *string    `json:"content,omitempty"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	CoverImage  *string    `json:"coverImage,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Author      *string    `json:"author,omitempty"`
	ReadTime    *int       `json:"readTime,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// Stats aggregates collection counts for the management dashboard.
// TotalTags counts distinct tag values across all records regardless
// of status.
type Stats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	TotalTags int `json:"totalTags"`
}
