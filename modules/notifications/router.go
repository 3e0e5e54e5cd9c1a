package notifications

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/notifykit/pkg/notification"
	"github.com/dmitrymomot/notifykit/pkg/notifier"
	"github.com/dmitrymomot/notifykit/pkg/preferences"
	"github.com/dmitrymomot/notifykit/pkg/query"
)

// Router mounts the notification engine's external interface as JSON
// endpoints.
//
//	r := chi.NewRouter()
//	r.Mount("/notifications", notifications.Router(manager))
func Router(m *notifier.Manager) chi.Router {
	h := &handlers{manager: m}

	r := chi.NewRouter()
	r.Post("/events", h.submit)
	r.Get("/", h.list)
	r.Get("/unread-count", h.unreadCount)
	r.Get("/export", h.export)
	r.Post("/read-all", h.markAllRead)
	r.Post("/{id}/read", h.markRead)
	r.Delete("/{id}", h.remove)
	r.Get("/preferences", h.getProfile)
	r.Put("/preferences", h.setProfile)
	return r
}

type handlers struct {
	manager *notifier.Manager
}

func (h *handlers) submit(w http.ResponseWriter, r *http.Request) {
	var e notification.Event
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	n, plan, err := h.manager.Submit(r.Context(), e)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"notification": n,
		"plan":         plan,
	})
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	f, v, ok := parseQuery(w, r)
	if !ok {
		return
	}

	items, err := h.manager.List(r.Context(), userID, f, v)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *handlers) unreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	count, err := h.manager.CountUnread(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *handlers) export(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	f, v, ok := parseQuery(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="notifications.csv"`)
	if err := h.manager.Export(r.Context(), w, userID, f, v); err != nil {
		// Headers are already out; nothing sensible left to report.
		return
	}
}

func (h *handlers) markRead(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"read": true})
}

func (h *handlers) markAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	f, v, ok := parseQuery(w, r)
	if !ok {
		return
	}

	marked, err := h.manager.MarkAllRead(r.Context(), userID, f, v)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"marked": marked})
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	p, err := h.manager.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *handlers) setProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var p preferences.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondBadRequest(w, "invalid JSON body")
		return
	}

	if err := h.manager.SetProfile(r.Context(), userID, p); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondBadRequest(w, "user_id query parameter is required")
		return "", false
	}
	return userID, true
}

// parseQuery builds the filter and view from query parameters. Unknown enum
// values are rejected rather than silently matching nothing.
func parseQuery(w http.ResponseWriter, r *http.Request) (query.Filter, query.View, bool) {
	q := r.URL.Query()
	var f query.Filter

	if s := q.Get("severity"); s != "" && s != "all" {
		sev, err := notification.ParseSeverity(s)
		if err != nil {
			respondBadRequest(w, "invalid severity")
			return f, "", false
		}
		f.Severity = sev
	}
	if c := q.Get("category"); c != "" && c != "all" {
		cat, err := notification.ParseCategory(c)
		if err != nil {
			respondBadRequest(w, "invalid category")
			return f, "", false
		}
		f.Category = cat
	}
	f.Text = q.Get("q")

	if from := q.Get("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			respondBadRequest(w, "invalid from timestamp, expected RFC3339")
			return f, "", false
		}
		f.From = &t
	}
	if to := q.Get("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			respondBadRequest(w, "invalid to timestamp, expected RFC3339")
			return f, "", false
		}
		f.To = &t
	}

	view := query.ViewRealtime
	switch q.Get("view") {
	case "", string(query.ViewRealtime):
	case string(query.ViewHistorical):
		view = query.ViewHistorical
	default:
		respondBadRequest(w, "invalid view, expected realtime or historical")
		return f, "", false
	}

	return f, view, true
}
