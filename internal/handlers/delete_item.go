package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/services"
)

// ItemDeleter defines the interface that the item service must implement.
type ItemDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteItemHandler returns an HTTP handler for deleting an item.
// @Summary Delete an item
// @Description Removes an item report regardless of its status.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.MessageResponse "Item deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items/{id} [delete]
func NewDeleteItemHandler(svc ItemDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid id: must be an integer",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
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
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Item deleted successfully",
		})
	}
}
