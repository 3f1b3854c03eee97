package web

import (
	"encoding/json"
	"net/http"

	"restaurant-loader/internal/logging"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecentOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.store.RecentOrders(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleMenuPrices(w http.ResponseWriter, r *http.Request) {
	menu, err := s.store.MenuPrices(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, menu)
}

func (s *Server) handleEmployeeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.EmployeeStats(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleEmployeeDistribution(w http.ResponseWriter, r *http.Request) {
	headcount, err := s.store.EmployeeDistribution(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, headcount)
}

func (s *Server) handleInventoryLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := s.store.InventoryLevels(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, levels)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError logs the technical error server-side and returns a
// generic message; query internals stay out of responses.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("report query failed",
		"path", r.URL.Path,
		"error", err.Error(),
	)
	respondJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "report query failed",
	})
}
