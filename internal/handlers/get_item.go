package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/models"
	"github.com/lostfound-project/lostfound-api/internal/services"
)

// ItemGetter defines the interface that the item service must implement.
type ItemGetter interface {
	Get(ctx context.Context, id int64) (*models.ItemDB, error)
}

// parseID extracts and parses the {id} path parameter.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// NewGetItemHandler returns an HTTP handler for fetching a single item.
// @Summary Get an item
// @Description Returns a single item by its id.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.ItemDB "Item"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items/{id} [get]
func NewGetItemHandler(svc ItemGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid id: must be an integer",
			})
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Item not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(item)
	}
}
