package routes

import (
	"net/http"

	"clementus360/propalyst/api"
	"clementus360/propalyst/handlers"
)

// RegisterRoutes registers the frontend's browser-facing routes. Every route
// proxies the shared Propalyst API client.
func RegisterRoutes(mux *http.ServeMux, client *api.Client) {
	mux.HandleFunc("POST /api/chat", handlers.ChatHandler(client))
	mux.HandleFunc("POST /api/summary", handlers.SummaryHandler(client))
	mux.HandleFunc("POST /api/areas", handlers.AreasHandler(client))
}
