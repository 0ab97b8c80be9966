package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/denimatfire/warm-corporate-canvas/blog"
	"github.com/denimatfire/warm-corporate-canvas/blog/repository"
)

// ArticleService defines the interface for article operations. All
// operations are synchronous and persist before returning.
type ArticleService interface {
	// GetAll returns a snapshot of every article, drafts included.
	GetAll() []*blog.Article

	// GetPublished returns only articles with status published.
	GetPublished() []*blog.Article

	// GetByID retrieves an article by its ID. Returns
	// blog.ErrArticleNotFound when absent.
	GetByID(id string) (*blog.Article, error)

	// Add creates a new article from the draft, assigning its ID and
	// timestamps and filling derived fields.
	Add(draft *blog.Draft) (*blog.Article, error)

	// Update merges the patch over the existing article and refreshes
	// UpdatedAt. Returns blog.ErrArticleNotFound when absent; it never
	// creates.
	Update(id string, patch *blog.Patch) (*blog.Article, error)

	// Delete removes the article. The boolean reports whether a
	// removal occurred; a missing ID is not an error.
	Delete(id string) (bool, error)

	// Search returns articles whose title, content, or tags contain
	// the query, ignoring case, in storage order.
	Search(query string) []*blog.Article

	// GetByTag returns articles carrying the tag, ignoring case.
	GetByTag(tag string) []*blog.Article

	// GetByAuthor returns articles by the author, ignoring case.
	GetByAuthor(author string) []*blog.Article

	// GetByStatus returns articles with the given status.
	GetByStatus(status blog.Status) []*blog.Article

	// Stats returns aggregate collection counts.
	Stats() blog.Stats
}

// articleService is the default implementation of ArticleService.
type articleService struct {
	repo      repository.ArticleRepository
	rendering RenderingService
	now       func() time.Time
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository, rendering RenderingService) ArticleService {
	return &articleService{
		repo:      repo,
		rendering: rendering,
		now:       time.Now,
	}
}

// GetAll returns a snapshot of every article, drafts included.
func (s *articleService) GetAll() []*blog.Article {
	return s.repo.SelectAll()
}

// GetPublished returns only articles with status published.
func (s *articleService) GetPublished() []*blog.Article {
	return s.filter(func(a *blog.Article) bool {
		return a.Status == blog.StatusPublished
	})
}

// GetByID retrieves an article by its ID.
func (s *articleService) GetByID(id string) (*blog.Article, error) {
	return s.repo.SelectByID(id)
}

// Add creates a new article from the draft.
func (s *articleService) Add(draft *blog.Draft) (*blog.Article, error) {
	strip := bluemonday.StrictPolicy()

	title := strings.TrimSpace(strip.Sanitize(draft.Title))
	if title == "" {
		return nil, blog.ErrEmptyTitle
	}

	status := draft.Status
	if status == "" {
		status = blog.StatusDraft
	}
	if !status.Valid() {
		return nil, blog.ErrInvalidStatus
	}

	content := draft.Content
	if content == "" && draft.Markdown != "" {
		html, err := s.rendering.Render(draft.Markdown)
		if err != nil {
			return nil, err
		}
		content = html
	}

	excerpt := draft.Excerpt
	if excerpt == "" {
		excerpt = GenerateExcerpt(content, DefaultExcerptLength)
	}

	readTime := draft.ReadTime
	if readTime < 1 {
		readTime = CalculateReadTime(content)
	}

	now := s.now()

	article := &blog.Article{
		ID:          uuid.NewString(),
		Title:       title,
		Content:     content,
		Excerpt:     excerpt,
		CoverImage:  draft.CoverImage,
		Tags:        draft.Tags,
		Status:      status,
		Author:      draft.Author,
		ReadTime:    readTime,
		PublishedAt: draft.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if article.Status == blog.StatusPublished && article.PublishedAt == nil {
		t := now
		article.PublishedAt = &t
	}

	if err := s.repo.Insert(article); err != nil {
		return nil, err
	}

	return article.Clone(), nil
}

// Update merges the patch over the existing article.
func (s *articleService) Update(id string, patch *blog.Patch) (*blog.Article, error) {
	article, err := s.repo.SelectByID(id)
	if err != nil {
		return nil, err
	}

	previousStatus := article.Status

	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.Excerpt != nil {
		article.Excerpt = *patch.Excerpt
	}
	if patch.CoverImage != nil {
		article.CoverImage = *patch.CoverImage
	}
	if patch.Tags != nil {
		article.Tags = *patch.Tags
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, blog.ErrInvalidStatus
		}
		article.Status = *patch.Status
	}
	if patch.Author != nil {
		article.Author = *patch.Author
	}
	if patch.ReadTime != nil {
		article.ReadTime = *patch.ReadTime
	}
	if patch.PublishedAt != nil {
		article.PublishedAt = patch.PublishedAt
	}

	article.UpdatedAt = s.now()

	// Stamp the publication time on a draft to published transition
	// unless the caller supplied one.
	if previousStatus != blog.StatusPublished &&
		article.Status == blog.StatusPublished &&
		article.PublishedAt == nil {
		t := article.UpdatedAt
		article.PublishedAt = &t
	}

	if err := s.repo.Update(article); err != nil {
		return nil, err
	}

	return article.Clone(), nil
}

// Delete removes the article.
func (s *articleService) Delete(id string) (bool, error) {
	err := s.repo.Delete(id)
	if err == blog.ErrArticleNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Search returns articles matching the query, ignoring case.
func (s *articleService) Search(query string) []*blog.Article {
	q := strings.ToLower(query)

	return s.filter(func(a *blog.Article) bool {
		if strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Content), q) {
			return true
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// GetByTag returns articles carrying the tag, ignoring case.
func (s *articleService) GetByTag(tag string) []*blog.Article {
	return s.filter(func(a *blog.Article) bool {
		for _, t := range a.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	})
}

// GetByAuthor returns articles by the author, ignoring case.
func (s *articleService) GetByAuthor(author string) []*blog.Article {
	return s.filter(func(a *blog.Article) bool {
		return strings.EqualFold(a.Author, author)
	})
}

// GetByStatus returns articles with the given status.
func (s *articleService) GetByStatus(status blog.Status) []*blog.Article {
	return s.filter(func(a *blog.Article) bool {
		return a.Status == status
	})
}

// Stats returns aggregate collection counts.
func (s *articleService) Stats() blog.Stats {
	stats := blog.Stats{}
	tags := make(map[string]struct{})

	for _, a := range s.repo.SelectAll() {
		stats.Total++
		switch a.Status {
		case blog.StatusPublished:
			stats.Published++
		case blog.StatusDraft:
			stats.Drafts++
		}
		for _, tag := range a.Tags {
			tags[tag] = struct{}{}
		}
	}

	stats.TotalTags = len(tags)
	return stats
}

// filter returns the articles satisfying keep, preserving storage
// order.
func (s *articleService) filter(keep func(*blog.Article) bool) []*blog.Article {
	matched := make([]*blog.Article, 0)
	for _, a := range s.repo.SelectAll() {
		if keep(a) {
			matched = append(matched, a)
		}
	}
	return matched
}
