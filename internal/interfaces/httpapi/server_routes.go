package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /health", handler.Health)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerHeadToHeadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/head-to-head/{player1}/{player2}", handler.GetHeadToHead)
	mux.HandleFunc("GET /api/headtohead/{player1}/{player2}", handler.GetHeadToHead)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{name}", handler.GetPlayerByName)
	mux.HandleFunc("GET /api/players", handler.ListPlayers)
	mux.HandleFunc("GET /api/player/{name}", handler.GetPlayerByName)
}
