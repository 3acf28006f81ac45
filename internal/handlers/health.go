package handlers

import (
	"encoding/json"
	"net/http"
)

// NewHealthHandler returns the index/health handler with an endpoint map.
// @Summary Health check
// @Description Reports that the API is running and lists the available endpoints.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "API status"
// @Router / [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Lost & Found API is running",
			"endpoints": map[string]any{
				"items": map[string]string{
					"getAll": "GET /api/items",
					"add":    "POST /api/items",
					"getOne": "GET /api/items/{id}",
					"delete": "DELETE /api/items/{id}",
					"return": "PUT /api/items/{id}/return",
				},
				"users": map[string]string{
					"register": "POST /api/users/register",
					"login":    "POST /api/users/login",
				},
			},
		})
	}
}
