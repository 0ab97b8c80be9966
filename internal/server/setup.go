package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/michaeljs1990/sqlitestore"

	"github.com/denimatfire/warm-corporate-canvas/blog"
	"github.com/denimatfire/warm-corporate-canvas/blog/service"
	"github.com/denimatfire/warm-corporate-canvas/internal/config"
	"github.com/denimatfire/warm-corporate-canvas/internal/seed"
	"github.com/denimatfire/warm-corporate-canvas/internal/storage"
	"github.com/denimatfire/warm-corporate-canvas/render"
)

// Setup wires the full application: config, database, article store,
// and services. Fatal on any bootstrap failure.
func Setup() *App {
	conf := config.SetupConfig()

	conn, err := storage.Open(conf.DatabaseFile)
	if err != nil {
		slog.Error("failed to open database", "file", conf.DatabaseFile, "error", err)
		os.Exit(1)
	}

	kv, err := storage.NewSQLiteKV(conn)
	if err != nil {
		slog.Error("failed to initialize key/value store", "error", err)
		os.Exit(1)
	}

	sessionStore, err := sqlitestore.NewSqliteStoreFromConnection(conn, "sessions", "/", conf.CookieExpiry, conf.CookieSecret)
	if err != nil {
		slog.Error("failed to initialize session store", "error", err)
		os.Exit(1)
	}

	rendering := service.NewRenderingService(render.NewHTMLRenderer(), service.DefaultPolicy())

	store, err := storage.NewArticleStore(kv, func() []*blog.Article {
		return seed.Articles(rendering.Render)
	})
	if err != nil {
		slog.Error("failed to initialize article store", "error", err)
		os.Exit(1)
	}

	auth, err := service.NewAuthService(conf.AdminPasswordHash)
	if err != nil {
		slog.Error("failed to initialize auth service", "error", err)
		os.Exit(1)
	}

	return &App{
		Articles: service.NewArticleService(store, rendering),
		Auth:     auth,
		Sessions: sessionStore,
		Config:   conf,
	}
}

// NewRouter builds the API router. Specific article routes must be
// registered before the {id} catch-all.
func NewRouter(app *App) http.Handler {
	router := mux.NewRouter().StrictSlash(true)

	router.Use(app.SessionMiddleware)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/articles", app.ListArticlesHandler).Methods("GET")
	api.HandleFunc("/articles", app.RequireEditor(app.CreateArticleHandler)).Methods("POST")
	api.HandleFunc("/articles/search", app.SearchArticlesHandler).Methods("GET")
	api.HandleFunc("/articles/tag/{tag}", app.ArticlesByTagHandler).Methods("GET")
	api.HandleFunc("/articles/author/{author}", app.ArticlesByAuthorHandler).Methods("GET")
	api.HandleFunc("/articles/{id}", app.GetArticleHandler).Methods("GET")
	api.HandleFunc("/articles/{id}", app.RequireEditor(app.UpdateArticleHandler)).Methods("PUT")
	api.HandleFunc("/articles/{id}", app.RequireEditor(app.DeleteArticleHandler)).Methods("DELETE")
	api.HandleFunc("/stats", app.StatsHandler).Methods("GET")

	api.HandleFunc("/login", app.LoginHandler).Methods("POST")
	api.HandleFunc("/logout", app.LogoutHandler).Methods("POST")
	api.HandleFunc("/me", app.MeHandler).Methods("GET")

	return SlogLoggingMiddleware(router)
}
