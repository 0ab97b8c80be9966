package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/denimatfire/warm-corporate-canvas/blog"
)

// ListArticlesHandler returns the collection. Anonymous visitors see
// published articles only; the editor sees everything and may filter
// by status.
func (a *App) ListArticlesHandler(rw http.ResponseWriter, req *http.Request) {
	user := CurrentUser(req)

	if user.IsAnonymous() {
		writeJSON(rw, http.StatusOK, a.Articles.GetPublished())
		return
	}

	if status := req.URL.Query().Get("status"); status != "" {
		s := blog.Status(status)
		if !s.Valid() {
			writeError(rw, http.StatusBadRequest, blog.ErrInvalidStatus.Error())
			return
		}
		writeJSON(rw, http.StatusOK, a.Articles.GetByStatus(s))
		return
	}

	writeJSON(rw, http.StatusOK, a.Articles.GetAll())
}

// GetArticleHandler returns a single article. Drafts are only visible
// to users with edit rights.
func (a *App) GetArticleHandler(rw http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	article, err := a.Articles.GetByID(id)
	if err == blog.ErrArticleNotFound {
		writeError(rw, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(rw, http.StatusInternalServerError, "failed to load article")
		return
	}

	if article.Status != blog.StatusPublished && !CurrentUser(req).CanEdit() {
		writeError(rw, http.StatusNotFound, blog.ErrArticleNotFound.Error())
		return
	}

	writeJSON(rw, http.StatusOK, article)
}

// CreateArticleHandler adds a new article from the posted draft.
func (a *App) CreateArticleHandler(rw http.ResponseWriter, req *http.Request) {
	var draft blog.Draft
	if err := json.NewDecoder(req.Body).Decode(&draft); err != nil {
		writeError(rw, http.StatusBadRequest, "malformed request body")
		return
	}

	if draft.Author == "" {
		draft.Author = CurrentUser(req).Username
	}

	article, err := a.Articles.Add(&draft)
	if err == blog.ErrEmptyTitle || err == blog.ErrInvalidStatus {
		writeError(rw, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(rw, http.StatusInternalServerError, "failed to save article")
		return
	}

	writeJSON(rw, http.StatusCreated, article)
}

// UpdateArticleHandler merges the posted patch over an existing
// article.
func (a *App) UpdateArticleHandler(rw http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	var patch blog.Patch
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		writeError(rw, http.StatusBadRequest, "malformed request body")
		return
	}

	article, err := a.Articles.Update(id, &patch)
	if err == blog.ErrArticleNotFound {
		writeError(rw, http.StatusNotFound, err.Error())
		return
	}
	if err == blog.ErrInvalidStatus {
		writeError(rw, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(rw, http.StatusInternalServerError, "failed to save article")
		return
	}

	writeJSON(rw, http.StatusOK, article)
}

// DeleteArticleHandler removes an article.
func (a *App) DeleteArticleHandler(rw http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	removed, err := a.Articles.Delete(id)
	if err != nil {
		writeError(rw, http.StatusInternalServerError, "failed to delete article")
		return
	}
	if !removed {
		writeError(rw, http.StatusNotFound, blog.ErrArticleNotFound.Error())
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}

// SearchArticlesHandler returns articles matching the q parameter.
func (a *App) SearchArticlesHandler(rw http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("q")
	writeJSON(rw, http.StatusOK, a.visible(req, a.Articles.Search(query)))
}

// ArticlesByTagHandler filters by tag.
func (a *App) ArticlesByTagHandler(rw http.ResponseWriter, req *http.Request) {
	tag := mux.Vars(req)["tag"]
	writeJSON(rw, http.StatusOK, a.visible(req, a.Articles.GetByTag(tag)))
}

// ArticlesByAuthorHandler filters by author.
func (a *App) ArticlesByAuthorHandler(rw http.ResponseWriter, req *http.Request) {
	author := mux.Vars(req)["author"]
	writeJSON(rw, http.StatusOK, a.visible(req, a.Articles.GetByAuthor(author)))
}

// StatsHandler returns aggregate collection counts.
func (a *App) StatsHandler(rw http.ResponseWriter, req *http.Request) {
	writeJSON(rw, http.StatusOK, a.Articles.Stats())
}

// visible narrows a result set to published articles for anonymous
// callers.
func (a *App) visible(req *http.Request, articles []*blog.Article) []*blog.Article {
	if CurrentUser(req).CanEdit() {
		return articles
	}

	published := make([]*blog.Article, 0, len(articles))
	for _, article := range articles {
		if article.Status == blog.StatusPublished {
			published = append(published, article)
		}
	}
	return published
}
