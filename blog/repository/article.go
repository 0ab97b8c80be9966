package repository

import "github.com/denimatfire/warm-corporate-canvas/blog"

// ArticleRepository defines the interface for article persistence
// operations. Every read returns defensive copies; every mutation is
// durable before it returns.
type ArticleRepository interface {
	// SelectAll returns a snapshot copy of every article in storage order.
	SelectAll() []*blog.Article

	// SelectByID retrieves an article by its ID. Returns
	// blog.ErrArticleNotFound when absent.
	SelectByID(id string) (*blog.Article, error)

	// Insert appends a new article and persists the collection. Returns
	// blog.ErrArticleExists if the ID is already taken.
	Insert(article *blog.Article) error

	// Update replaces the stored article carrying the same ID and
	// persists the collection. Returns blog.ErrArticleNotFound when
	// absent; it never creates.
	Update(article *blog.Article) error

	// Delete removes the article and persists the collection. Returns
	// blog.ErrArticleNotFound when absent.
	Delete(id string) error
}
