package service_test

import (
	"strings"
	"testing"

	"github.com/denimatfire/warm-corporate-canvas/blog"
	"github.com/denimatfire/warm-corporate-canvas/blog/service"
	"github.com/denimatfire/warm-corporate-canvas/testutil"
)

func newEmptyService(t *testing.T) service.ArticleService {
	t.Helper()
	store, _ := testutil.NewEmptyStore(t)
	return service.NewArticleService(store, testutil.NewRenderingService())
}

func newSeededService(t *testing.T) service.ArticleService {
	t.Helper()
	store, _ := testutil.NewSeededStore(t)
	return service.NewArticleService(store, testutil.NewRenderingService())
}

func TestAddArticle(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		articles := newEmptyService(t)

		added := testutil.CreateTestArticle(t, articles, &blog.Draft{
			Title:   "A First Post",
			Content: "<p>Hello there.</p>",
			Tags:    []string{"Go", "Testing"},
			Author:  "admin",
		})

		if added.ID == "" {
			t.Fatal("expected generated ID")
		}
		if added.Status != blog.StatusDraft {
			t.Errorf("expected default status draft, got %q", added.Status)
		}
		if !added.CreatedAt.Equal(added.UpdatedAt) {
			t.Error("expected CreatedAt and UpdatedAt to match on insert")
		}
		if added.PublishedAt != nil {
			t.Error("draft should not carry a publication time")
		}

		got, err := articles.GetByID(added.ID)
		if err != nil {
			t.Fatalf("failed to get article back: %v", err)
		}
		if got.Title != added.Title || got.Content != added.Content {
			t.Errorf("stored article differs: got %+v", got)
		}
	})

	t.Run("derived fields are filled", func(t *testing.T) {
		articles := newEmptyService(t)

		added := testutil.CreateTestArticle(t, articles, &blog.Draft{
			Title:   "Derived",
			Content: "<p>" + strings.Repeat("filler ", 80) + "</p>",
		})

		if added.Excerpt == "" {
			t.Error("expected a generated excerpt")
		}
		if added.ReadTime < 1 {
			t.Errorf("expected positive read time, got %d", added.ReadTime)
		}
	})

	t.Run("markdown draft is rendered", func(t *testing.T) {
		articles := newEmptyService(t)

		added := testutil.CreateTestArticle(t, articles, &blog.Draft{
			Title:    "From Markdown",
			Markdown: "## Section\n\nSome **bold** text.",
		})

		if !strings.Contains(added.Content, "<h2>") {
			t.Errorf("expected rendered heading, got %q", added.Content)
		}
		if !strings.Contains(added.Content, "<strong>bold</strong>") {
			t.Errorf("expected rendered emphasis, got %q", added.Content)
		}
	})

	t.Run("publishing stamps the publication time", func(t *testing.T) {
		articles := newEmptyService(t)

		added := testutil.CreateTestArticle(t, articles, &blog.Draft{
			Title:  "Live",
			Status: blog.StatusPublished,
		})

		if added.PublishedAt == nil {
			t.Fatal("expected PublishedAt to be stamped")
		}
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		articles := newEmptyService(t)

		if _, err := articles.Add(&blog.Draft{Title: "   "}); err != blog.ErrEmptyTitle {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
		if _, err := articles.Add(&blog.Draft{Title: "<b></b>"}); err != blog.ErrEmptyTitle {
			t.Errorf("expected ErrEmptyTitle for markup-only title, got %v", err)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		articles := newEmptyService(t)

		_, err := articles.Add(&blog.Draft{Title: "Bad", Status: blog.Status("archived")})
		if err != blog.ErrInvalidStatus {
			t.Errorf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestUpdateArticle(t *testing.T) {
	t.Run("non-existent article", func(t *testing.T) {
		articles := newEmptyService(t)

		title := "Ghost"
		_, err := articles.Update("no-such-id", &blog.Patch{Title: &title})
		if err != blog.ErrArticleNotFound {
			t.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
		if n := len(articles.GetAll()); n != 0 {
			t.Errorf("update must never create: found %d articles", n)
		}
	})

	t.Run("partial patch keeps other fields", func(t *testing.T) {
		articles := newEmptyService(t)

		added := testutil.CreateTestArticle(t, articles, &blog.Draft{
			Title:   "Original",
			Content: "<p>body</p>",
			Author:  "admin",
		})

		title := "Renamed"
		updated, err := articles.Update(added.ID, &blog.Patch{Title: &title})
		if err != nil {
			t.Fatalf("failed to update: %v", err)
		}

		if updated.Title != "Renamed" {
			t.Errorf("expected new title, got %q", updated.Title)
		}
		if updated.Content != added.Content || updated.Author != added.Author {
			t.Error("untouched fields changed")
		}
		if !updated.CreatedAt.Equal(added.CreatedAt) {
			t.Error("CreatedAt must not change on update")
		}
		if updated.UpdatedAt.Before(added.UpdatedAt) {
			t.Error("UpdatedAt went backwards")
		}
	})

	t.Run("draft to published transition", func(t *testing.T) {
		articles := newEmptyService(t)

		added := testutil.CreateTestArticle(t, articles, &blog.Draft{Title: "Soon"})

		published := blog.StatusPublished
		updated, err := articles.Update(added.ID, &blog.Patch{Status: &published})
		if err != nil {
			t.Fatalf("failed to publish: %v", err)
		}
		if updated.PublishedAt == nil {
			t.Fatal("expected PublishedAt stamped on publish")
		}

		if n := len(articles.GetPublished()); n != 1 {
			t.Errorf("expected 1 published article, got %d", n)
		}
		if n := len(articles.GetByStatus(blog.StatusDraft)); n != 0 {
			t.Errorf("expected no drafts left, got %d", n)
		}
	})
}

func TestDeleteArticle(t *testing.T) {
	articles := newEmptyService(t)

	added := testutil.CreateTestArticle(t, articles, &blog.Draft{Title: "Short-lived"})

	removed, err := articles.Delete(added.ID)
	if err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if !removed {
		t.Error("expected first delete to report removal")
	}

	removed, err = articles.Delete(added.ID)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if removed {
		t.Error("second delete of the same ID must be a no-op")
	}

	if _, err := articles.GetByID(added.ID); err != blog.ErrArticleNotFound {
		t.Errorf("expected ErrArticleNotFound after delete, got %v", err)
	}
}

func TestSearch(t *testing.T) {
	articles := newSeededService(t)

	t.Run("matches title ignoring case", func(t *testing.T) {
		found := articles.Search("gate")
		if len(found) != 1 {
			t.Fatalf("expected 1 match, got %d", len(found))
		}
		if !strings.Contains(found[0].Title, "GATE") {
			t.Errorf("unexpected match: %q", found[0].Title)
		}
	})

	t.Run("matches tags", func(t *testing.T) {
		found := articles.Search("remote work")
		if len(found) == 0 {
			t.Fatal("expected a tag match")
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if found := articles.Search("zzz-no-such-term"); len(found) != 0 {
			t.Errorf("expected no matches, got %d", len(found))
		}
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		if got, want := len(articles.Search("")), len(articles.GetAll()); got != want {
			t.Errorf("expected %d articles, got %d", want, got)
		}
	})
}

func TestFilters(t *testing.T) {
	articles := newSeededService(t)

	t.Run("by tag ignoring case", func(t *testing.T) {
		if found := articles.GetByTag("leadership"); len(found) != 1 {
			t.Errorf("expected 1 article tagged leadership, got %d", len(found))
		}
		if found := articles.GetByTag("NoSuchTag"); len(found) != 0 {
			t.Errorf("expected no matches, got %d", len(found))
		}
	})

	t.Run("by author ignoring case", func(t *testing.T) {
		found := articles.GetByAuthor("dhrubajyoti das")
		if len(found) != len(articles.GetAll()) {
			t.Errorf("expected every seed article, got %d", len(found))
		}
	})
}

func TestStats(t *testing.T) {
	articles := newEmptyService(t)

	testutil.CreateTestArticle(t, articles, &blog.Draft{
		Title: "One", Status: blog.StatusPublished, Tags: []string{"a", "b"},
	})
	testutil.CreateTestArticle(t, articles, &blog.Draft{
		Title: "Two", Status: blog.StatusPublished, Tags: []string{"b", "c"},
	})
	testutil.CreateTestArticle(t, articles, &blog.Draft{
		Title: "Three", Status: blog.StatusDraft,
	})

	stats := articles.Stats()

	if stats.Total != 3 {
		t.Errorf("expected 3 total, got %d", stats.Total)
	}
	if stats.Published != 2 {
		t.Errorf("expected 2 published, got %d", stats.Published)
	}
	if stats.Drafts != 1 {
		t.Errorf("expected 1 draft, got %d", stats.Drafts)
	}
	if stats.TotalTags != 3 {
		t.Errorf("expected 3 distinct tags, got %d", stats.TotalTags)
	}
	if stats.Published+stats.Drafts != stats.Total {
		t.Error("status counts do not add up")
	}
}
