// Package admin exposes the registry's read-only reporting operations over
// HTTP for the admin dashboard.
package admin

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/drishya/internal/catalog"
	"github.com/dmitrijs2005/drishya/internal/httpx"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/users"
)

type Handlers struct {
	users  *users.Service
	logger logging.Logger
}

func NewHandlers(users *users.Service, logger logging.Logger) *Handlers {
	return &Handlers{users: users, logger: logger.With("module", "admin")}
}

// Register attaches all routes to the mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/stats", h.handleStats)
	mux.HandleFunc("GET /api/users", h.handleUsers)
	mux.HandleFunc("GET /api/emails", h.handleEmails)
	mux.HandleFunc("GET /api/testimonials", h.handleTestimonials)
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	httpx.JSONResponse(w, http.StatusOK, h.users.Stats())
}

// handleUsers lists registered users. An optional ?days=N query narrows the
// list to sign-ups within the last N days.
func (h *Handlers) handleUsers(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("days"); q != "" {
		days, err := strconv.Atoi(q)
		if err != nil || days < 0 {
			httpx.ErrorResponse(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		httpx.JSONResponse(w, http.StatusOK, h.users.RecentSignUps(days))
		return
	}
	httpx.JSONResponse(w, http.StatusOK, h.users.ListAll())
}

func (h *Handlers) handleEmails(w http.ResponseWriter, r *http.Request) {
	emails := h.users.ExportEmails()
	httpx.JSONResponse(w, http.StatusOK, map[string]any{
		"count":  len(emails),
		"emails": emails,
	})
}

func (h *Handlers) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	httpx.JSONResponse(w, http.StatusOK, catalog.Testimonials())
}
