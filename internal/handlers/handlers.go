package handlers

import (
	"context"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/database"
	"github.com/zoomie/transations/internal/middleware"
	"github.com/zoomie/transations/internal/storage"
	"github.com/zoomie/transations/internal/view"
)

// DefaultPageTimeout bounds how long the dashboard waits for its data.
const DefaultPageTimeout = 10 * time.Second

type Handler struct {
	repo         *database.Repository
	storage      *storage.LocalStorage
	fetcher      view.Fetcher
	templateDir  string
	mockDataPath string
	pageTimeout  time.Duration
	defaultUser  int64
}

// New wires the handlers. fetcher is the data client the dashboard page uses
// to load the transactions it renders.
func New(ctx context.Context, repo *database.Repository, storage *storage.LocalStorage, fetcher view.Fetcher, templateDir, mockDataPath string) (*Handler, error) {
	defaultUser, err := repo.EnsureDefaultUser(ctx)
	if err != nil {
		return nil, err
	}
	return &Handler{
		repo:         repo,
		storage:      storage,
		fetcher:      fetcher,
		templateDir:  templateDir,
		mockDataPath: mockDataPath,
		pageTimeout:  DefaultPageTimeout,
		defaultUser:  defaultUser,
	}, nil
}

// Routes returns the application router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.CorrelationID)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))

	// Pages
	r.Get("/", h.Index)

	// API - Transactions
	r.Get("/api/transactions", h.GetTransactions)
	r.Get("/api/transactions/test", h.GetTestTransactions)
	r.Post("/api/transactions/import", h.ImportStatement)

	// API - Users
	r.Get("/api/users", h.ListUsers)
	r.Post("/api/users", h.CreateUser)
	r.Get("/api/users/{id}", h.GetUser)

	// Health
	r.Get("/ping", h.Ping)
	r.Get("/healthz", h.Health)

	return r
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, page string, data interface{}) {
	tmpl, err := template.ParseFiles(
		filepath.Join(h.templateDir, "layout.html"),
		filepath.Join(h.templateDir, page),
	)
	if err != nil {
		middleware.Log(r.Context()).Error("failed to parse templates", zap.String("page", page), zap.Error(err))
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		middleware.Log(r.Context()).Error("failed to render page", zap.String("page", page), zap.Error(err))
	}
}

// currentUserID is the single account this service serves; sign-in is
// handled outside this service.
func (h *Handler) currentUserID() int64 {
	return h.defaultUser
}
