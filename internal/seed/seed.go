// Package seed holds the bundled blog posts that populate an empty
// article store on first run.
package seed

import (
	"embed"
	"io/fs"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/denimatfire/warm-corporate-canvas/blog"
)

//go:embed posts/*.md
var postsFS embed.FS

// Post is the raw shape of a bundled source entry: frontmatter fields
// plus the markdown body with photo markers.
type Post struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Excerpt   string   `yaml:"excerpt"`
	Author    string   `yaml:"author"`
	Tags      []string `yaml:"tags"`
	Date      string   `yaml:"date"`      // e.g. "Dec 15, 2024"
	ReadTime  string   `yaml:"read_time"` // e.g. "8 min read"
	MainPhoto string   `yaml:"main_photo"`
	Markdown  string   `yaml:"-"`
}

// frontmatterRegexp matches YAML-style fences at document start.
var frontmatterRegexp = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n---(?:\r?\n|\z)`)

var readTimeRegexp = regexp.MustCompile(`(\d+)`)

const (
	fallbackReadTime   = 5
	fallbackCoverImage = "https://images.unsplash.com/photo-1501504905252-473c47e087f8?w=800&h=600&fit=crop"
)

// ParsePost splits frontmatter from the markdown body.
func ParsePost(raw string) (*Post, error) {
	match := frontmatterRegexp.FindStringSubmatch(raw)
	if match == nil {
		return nil, errors.New("missing frontmatter")
	}

	post := &Post{}
	if err := yaml.Unmarshal([]byte(match[1]), post); err != nil {
		return nil, errors.Wrap(err, "parse frontmatter")
	}

	post.Markdown = strings.TrimSpace(raw[len(match[0]):])
	return post, nil
}

// RenderFunc converts markdown to a sanitized HTML fragment.
type RenderFunc func(markdown string) (string, error)

// Articles converts every bundled post into an article record, in
// filename order. A post that fails to parse or render yields a
// placeholder record, so one bad entry never blocks the rest.
func Articles(render RenderFunc) []*blog.Article {
	entries, err := fs.ReadDir(postsFS, "posts")
	if err != nil {
		// The embedded directory always exists; treat a read failure
		// as an empty bundle.
		slog.Error("failed to read seed posts", "error", err)
		return nil
	}

	articles := make([]*blog.Article, 0, len(entries))
	for i, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		raw, err := fs.ReadFile(postsFS, "posts/"+entry.Name())
		if err != nil {
			slog.Warn("failed to read seed post", "file", entry.Name(), "error", err)
			articles = append(articles, placeholder(i, nil))
			continue
		}

		article, err := convert(string(raw), render)
		if err != nil {
			slog.Warn("failed to convert seed post", "file", entry.Name(), "error", err)
			post, _ := ParsePost(string(raw))
			articles = append(articles, placeholder(i, post))
			continue
		}

		articles = append(articles, article)
	}

	return articles
}

// convert transforms one raw post into a published article record.
func convert(raw string, render RenderFunc) (*blog.Article, error) {
	post, err := ParsePost(raw)
	if err != nil {
		return nil, err
	}

	html, err := render(post.Markdown)
	if err != nil {
		return nil, errors.Wrap(err, "render markdown")
	}

	id := post.ID
	if id == "" {
		id = uuid.NewString()
	}

	date := parseDate(post.Date)

	return &blog.Article{
		ID:          id,
		Title:       post.Title,
		Content:     html,
		Excerpt:     post.Excerpt,
		CoverImage:  post.MainPhoto,
		Tags:        post.Tags,
		Status:      blog.StatusPublished,
		Author:      post.Author,
		ReadTime:    parseReadTime(post.ReadTime),
		PublishedAt: &date,
		CreatedAt:   date,
		UpdatedAt:   date,
	}, nil
}

// placeholder builds a safe stand-in record for a post that could not
// be converted, reusing whatever raw fields survived.
func placeholder(index int, post *Post) *blog.Article {
	now := time.Now()

	article := &blog.Article{
		ID:          "fallback-" + strconv.Itoa(index),
		Title:       "Untitled Article",
		Content:     "<p>Content could not be loaded</p>",
		Excerpt:     "No excerpt available",
		CoverImage:  fallbackCoverImage,
		Tags:        []string{"General"},
		Status:      blog.StatusPublished,
		Author:      "Unknown Author",
		ReadTime:    fallbackReadTime,
		PublishedAt: &now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if post == nil {
		return article
	}
	if post.Title != "" {
		article.Title = post.Title
	}
	if post.Excerpt != "" {
		article.Excerpt = post.Excerpt
	}
	if post.MainPhoto != "" {
		article.CoverImage = post.MainPhoto
	}
	if len(post.Tags) > 0 {
		article.Tags = post.Tags
	}
	if post.Author != "" {
		article.Author = post.Author
	}
	return article
}

// parseReadTime extracts the minute count from strings like
// "8 min read".
func parseReadTime(s string) int {
	match := readTimeRegexp.FindString(s)
	if match == "" {
		return fallbackReadTime
	}
	minutes, err := strconv.Atoi(match)
	if err != nil || minutes < 1 {
		return fallbackReadTime
	}
	return minutes
}

// parseDate reads dates in the bundle's "Dec 15, 2024" format, falling
// back to now.
func parseDate(s string) time.Time {
	date, err := time.Parse("Jan 2, 2006", s)
	if err != nil {
		return time.Now()
	}
	return date
}
