package storage

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/denimatfire/warm-corporate-canvas/blog"
)

// ArticlesKey is the KV key holding the serialized article collection:
// a single JSON array of article records, ISO-8601 timestamps, no
// schema version field (absence means version 0).
const ArticlesKey = "articles"

// Seeder produces the initial article set for an empty store.
type Seeder func() []*blog.Article

// ArticleStore owns the authoritative article collection. It keeps the
// records in memory and writes the full serialized collection to the
// KV before any mutating call returns. Every read hands out clones, so
// callers cannot corrupt store state without going through it.
type ArticleStore struct {
	mu       sync.RWMutex
	kv       KV
	articles []*blog.Article
}

// NewArticleStore loads the collection from kv, seeding it on first
// run. Stored data that fails to decode is treated the same as no
// prior collection: the key is cleared and the store reseeds, at the
// cost of losing non-seed records.
func NewArticleStore(kv KV, seed Seeder) (*ArticleStore, error) {
	store := &ArticleStore{kv: kv}
	if err := store.initialize(seed); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *ArticleStore) initialize(seed Seeder) error {
	raw, ok, err := s.kv.Get(ArticlesKey)
	if err != nil {
		return errors.Wrap(err, "load articles")
	}

	if ok {
		var articles []*blog.Article
		decodeErr := json.Unmarshal([]byte(raw), &articles)
		if decodeErr == nil {
			s.articles = articles
			slog.Debug("loaded article collection", "count", len(articles))
			return nil
		}

		// Corrupt stored data. Clear it and fall through to seeding.
		slog.Warn("discarding corrupt article collection", "key", ArticlesKey, "error", decodeErr)
		if err := s.kv.Delete(ArticlesKey); err != nil {
			return errors.Wrap(err, "clear corrupt articles")
		}
	}

	if seed != nil {
		s.articles = seed()
	}

	slog.Info("seeded article collection", "count", len(s.articles))
	return s.persist()
}

// persist serializes the whole collection under ArticlesKey. Callers
// must hold the write lock.
func (s *ArticleStore) persist() error {
	raw, err := json.Marshal(s.articles)
	if err != nil {
		return errors.Wrap(err, "encode articles")
	}
	return errors.Wrap(s.kv.Set(ArticlesKey, string(raw)), "persist articles")
}

// SelectAll returns a snapshot copy of every article in storage order.
func (s *ArticleStore) SelectAll() []*blog.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]*blog.Article, len(s.articles))
	for i, a := range s.articles {
		snapshot[i] = a.Clone()
	}
	return snapshot
}

// SelectByID retrieves an article by its ID.
func (s *ArticleStore) SelectByID(id string) (*blog.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.articles[i].Clone(), nil
	}
	return nil, blog.ErrArticleNotFound
}

// Insert appends a new article and persists the collection.
func (s *ArticleStore) Insert(article *blog.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(article.ID) >= 0 {
		return blog.ErrArticleExists
	}

	s.articles = append(s.articles, article.Clone())
	if err := s.persist(); err != nil {
		s.articles = s.articles[:len(s.articles)-1]
		return err
	}
	return nil
}

// Update replaces the stored article carrying the same ID.
func (s *ArticleStore) Update(article *blog.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(article.ID)
	if i < 0 {
		return blog.ErrArticleNotFound
	}

	previous := s.articles[i]
	s.articles[i] = article.Clone()
	if err := s.persist(); err != nil {
		s.articles[i] = previous
		return err
	}
	return nil
}

// Delete removes the article and persists the collection.
func (s *ArticleStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return blog.ErrArticleNotFound
	}

	previous := s.articles
	s.articles = append(append([]*blog.Article{}, s.articles[:i]...), s.articles[i+1:]...)
	if err := s.persist(); err != nil {
		s.articles = previous
		return err
	}
	return nil
}

// indexOf returns the position of id, or -1. Callers must hold a
// lock.
func (s *ArticleStore) indexOf(id string) int {
	for i, a := range s.articles {
		if a.ID == id {
			return i
		}
	}
	return -1
}
