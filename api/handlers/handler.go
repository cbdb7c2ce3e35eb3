package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/jusunglee/pathboard/pkg/path"
)

// Handler handles HTTP requests
type Handler struct {
	client path.Client
}

// NewHandler creates a new HTTP handler
func NewHandler(client path.Client) *Handler {
	return &Handler{client: client}
}

// RegisterRoutes registers all routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.handleIndex).Methods("GET")
	r.HandleFunc("/arrivals", h.handleArrivals).Methods("GET")
	r.HandleFunc("/status", h.handleStatus).Methods("GET")
}

// Response wraps API responses
type Response struct {
	Data    interface{} `json:"data"`
	Updated string      `json:"updated,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"title":  "pathboard",
		"readme": "Visit https://github.com/jusunglee/pathboard for more info",
	}
	h.writeJSON(w, response)
}

func (h *Handler) handleArrivals(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := h.client.Latest()
	if !ok {
		h.writeError(w, "No data yet", http.StatusServiceUnavailable)
		return
	}

	messages := snapshot.Messages
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.writeError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		messages = snapshot.Top(limit)
	}

	response := Response{Data: messages}
	if snapshot.LastUpdated != nil {
		response.Updated = snapshot.LastUpdated.Format(time.RFC3339)
	}
	h.writeJSON(w, response)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := h.client.Status(time.Now().UTC())

	response := Response{Data: status}
	if lastUpdate := h.client.LastUpdate(); !lastUpdate.IsZero() {
		response.Updated = lastUpdate.Format(time.RFC3339)
	}
	h.writeJSON(w, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.writeError(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
