package storage_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/denimatfire/warm-corporate-canvas/blog"
	"github.com/denimatfire/warm-corporate-canvas/internal/storage"
)

func newSQLiteKV(t *testing.T) (*storage.SQLiteKV, *sqlx.DB) {
	t.Helper()

	conn, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	// Each pooled connection to :memory: would get its own database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := storage.RunMigrations(conn); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	kv, err := storage.NewSQLiteKV(conn)
	if err != nil {
		t.Fatalf("failed to create KV: %v", err)
	}
	return kv, conn
}

func TestSQLiteKV(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		kv, _ := newSQLiteKV(t)

		value, ok, err := kv.Get("absent")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if ok || value != "" {
			t.Errorf("expected miss, got ok=%v value=%q", ok, value)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		kv, _ := newSQLiteKV(t)

		if err := kv.Set("greeting", "hello"); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		value, ok, err := kv.Get("greeting")
		if err != nil || !ok {
			t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
		}
		if value != "hello" {
			t.Errorf("expected %q, got %q", "hello", value)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		kv, _ := newSQLiteKV(t)

		if err := kv.Set("k", "one"); err != nil {
			t.Fatal(err)
		}
		if err := kv.Set("k", "two"); err != nil {
			t.Fatal(err)
		}

		value, _, err := kv.Get("k")
		if err != nil {
			t.Fatal(err)
		}
		if value != "two" {
			t.Errorf("expected overwrite, got %q", value)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		kv, _ := newSQLiteKV(t)

		if err := kv.Set("k", "v"); err != nil {
			t.Fatal(err)
		}
		if err := kv.Delete("k"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if err := kv.Delete("k"); err != nil {
			t.Fatalf("deleting an absent key errored: %v", err)
		}

		if _, ok, _ := kv.Get("k"); ok {
			t.Error("key survived delete")
		}
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		_, conn := newSQLiteKV(t)

		if err := storage.RunMigrations(conn); err != nil {
			t.Errorf("second migration run failed: %v", err)
		}
	})
}

func TestArticleStoreOverSQLite(t *testing.T) {
	kv, conn := newSQLiteKV(t)

	store, err := storage.NewArticleStore(kv, seedArticles)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Insert(&blog.Article{ID: "3", Title: "Third", Status: blog.StatusDraft}); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	// A second store over the same connection sees the full collection.
	secondKV, err := storage.NewSQLiteKV(conn)
	if err != nil {
		t.Fatalf("failed to create second KV: %v", err)
	}
	reopened, err := storage.NewArticleStore(secondKV, seedArticles)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	if n := len(reopened.SelectAll()); n != 3 {
		t.Errorf("expected 3 articles after reopen, got %d", n)
	}
	if _, err := reopened.SelectByID("3"); err != nil {
		t.Errorf("inserted article missing after reopen: %v", err)
	}
}
