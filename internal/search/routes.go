package search

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// searchResponse is the body of GET /api/search.
type searchResponse struct {
	Query   string        `json:"query"`
	Status  string        `json:"status"`
	Results []SearchEntry `json:"results"`
}

// RegisterRoutes mounts the search API routes.
func RegisterRoutes(r chi.Router, idx *Index) {
	r.Route("/api/search", func(r chi.Router) {
		r.Get("/", handleSearch(idx))
		r.Get("/sections", handleSections(idx))
		r.Get("/entries/{id}", handleGetByID(idx))
	})
}

func handleSearch(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		results, err := FilterSections(idx.Search(q), r.URL.Query()["section"]...)
		if err != nil {
			http.Error(w, `{"error":"invalid section pattern"}`, http.StatusBadRequest)
			return
		}
		if results == nil {
			results = []SearchEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{
			Query:   q,
			Status:  statusFor(q, results).String(),
			Results: results,
		})
	}
}

func handleSections(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(idx.Sections())
	}
}

func handleGetByID(idx *Index) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := idx.Lookup(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, `{"error":"entry not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(e)
	}
}
