package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/models"
)

// ItemLister defines the interface that the item service must implement.
type ItemLister interface {
	List(ctx context.Context, status string) ([]models.ItemDB, error)
}

// NewListItemsHandler returns an HTTP handler for listing items.
// @Summary List items
// @Description Returns all items newest first. An optional status query parameter (active|returned) filters the listing.
// @Tags items
// @Produce json
// @Param status query string false "Status filter" Enums(active, returned)
// @Success 200 {array} models.ItemDB "Items"
// @Failure 400 {object} handlers.ErrorResponse "Invalid status filter"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items [get]
func NewListItemsHandler(svc ItemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		if status != "" && status != models.StatusActive && status != models.StatusReturned {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Invalid status filter",
			})
			return
		}

		items, err := svc.List(r.Context(), status)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
