// Package testutil provides shared fixtures for canvas tests.
package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/michaeljs1990/sqlitestore"
	_ "modernc.org/sqlite"

	"github.com/denimatfire/warm-corporate-canvas/blog"
	"github.com/denimatfire/warm-corporate-canvas/blog/service"
	"github.com/denimatfire/warm-corporate-canvas/internal/seed"
	"github.com/denimatfire/warm-corporate-canvas/internal/server"
	"github.com/denimatfire/warm-corporate-canvas/internal/storage"
	"github.com/denimatfire/warm-corporate-canvas/render"
)

// NewRenderingService builds the production rendering pipeline.
func NewRenderingService() service.RenderingService {
	return service.NewRenderingService(render.NewHTMLRenderer(), service.DefaultPolicy())
}

// NewSeededStore creates an article store over a fresh in-memory KV,
// seeded with the bundled posts.
func NewSeededStore(t *testing.T) (*storage.ArticleStore, *storage.MemoryKV) {
	t.Helper()

	kv := storage.NewMemoryKV()
	rendering := NewRenderingService()

	store, err := storage.NewArticleStore(kv, func() []*blog.Article {
		return seed.Articles(rendering.Render)
	})
	if err != nil {
		t.Fatalf("failed to create article store: %v", err)
	}

	return store, kv
}

// NewEmptyStore creates an article store with no seed content.
func NewEmptyStore(t *testing.T) (*storage.ArticleStore, *storage.MemoryKV) {
	t.Helper()

	kv := storage.NewMemoryKV()
	store, err := storage.NewArticleStore(kv, nil)
	if err != nil {
		t.Fatalf("failed to create article store: %v", err)
	}

	return store, kv
}

// SetupTestApp creates a full application instance for integration
// tests: seeded store over a memory KV, sqlite-backed sessions over an
// in-memory database, and the demo credential.
func SetupTestApp(t *testing.T) (*server.App, func()) {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	// Each pooled connection to :memory: would get its own database.
	conn.SetMaxOpenConns(1)

	testSecret := []byte("test-secret-key-for-sessions-32b")
	sessionStore, err := sqlitestore.NewSqliteStoreFromConnection(conn, "sessions", "/", 86400, testSecret)
	if err != nil {
		conn.Close()
		t.Fatalf("failed to create session store: %v", err)
	}

	store, _ := NewSeededStore(t)
	rendering := NewRenderingService()

	auth, err := service.NewAuthService("")
	if err != nil {
		conn.Close()
		t.Fatalf("failed to create auth service: %v", err)
	}

	app := &server.App{
		Articles: service.NewArticleService(store, rendering),
		Auth:     auth,
		Sessions: sessionStore,
		Config: &blog.Config{
			DatabaseFile: ":memory:",
			Host:         "localhost:8080",
			CookieExpiry: 86400,
			CookieSecret: testSecret,
		},
	}

	cleanup := func() {
		conn.Close()
	}

	return app, cleanup
}

// CreateTestArticle adds an article through the service and returns
// the stored record.
func CreateTestArticle(t *testing.T, articles service.ArticleService, draft *blog.Draft) *blog.Article {
	t.Helper()

	article, err := articles.Add(draft)
	if err != nil {
		t.Fatalf("failed to create test article: %v", err)
	}
	return article
}
