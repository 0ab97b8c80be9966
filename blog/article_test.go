package blog

import (
	"testing"
	"time"
)

func TestStatusValid(t *testing.T) {
	if !StatusDraft.Valid() || !StatusPublished.Valid() {
		t.Error("known statuses must validate")
	}
	if Status("archived").Valid() || Status("").Valid() {
		t.Error("unknown statuses must not validate")
	}
}

func TestArticleClone(t *testing.T) {
	published := time.Now()
	original := &Article{
		ID:          "a",
		Title:       "Original",
		Tags:        []string{"one", "two"},
		PublishedAt: &published,
	}

	clone := original.Clone()
	clone.Title = "Changed"
	clone.Tags[0] = "changed"
	*clone.PublishedAt = published.Add(time.Hour)

	if original.Title != "Original" {
		t.Error("clone shares the title")
	}
	if original.Tags[0] != "one" {
		t.Error("clone shares the tag slice")
	}
	if !original.PublishedAt.Equal(published) {
		t.Error("clone shares the publication time")
	}

	var nilArticle *Article
	if nilArticle.Clone() != nil {
		t.Error("cloning nil must return nil")
	}
}

func TestUserPermissions(t *testing.T) {
	anon := AnonymousUser()
	if !anon.IsAnonymous() || anon.CanEdit() || anon.CanPublish() {
		t.Error("anonymous users have no rights")
	}

	admin := &User{ID: "1", Username: "admin", Role: RoleAdmin}
	if admin.IsAnonymous() || !admin.CanEdit() || !admin.CanPublish() {
		t.Error("admin must have full rights")
	}

	writer := &User{ID: "2", Username: "w", Role: RoleWriter}
	if !writer.CanEdit() || writer.CanPublish() {
		t.Error("writers edit but do not publish")
	}

	viewer := &User{ID: "3", Username: "v", Role: RoleViewer}
	if viewer.CanEdit() {
		t.Error("viewers must not edit")
	}
}
