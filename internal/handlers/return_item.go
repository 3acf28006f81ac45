package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/services"
)

// ItemReturner defines the interface that the item service must implement.
type ItemReturner interface {
	MarkReturned(ctx context.Context, id int64) error
}

// NewReturnItemHandler returns an HTTP handler for marking an item returned.
// @Summary Mark an item as returned
// @Description Transitions an active item to returned. The transition is one-way; a second call answers 409.
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} handlers.MessageResponse "Item marked as returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Item not found"
// @Failure 409 {object} handlers.ErrorResponse "Item already returned"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items/{id}/return [put]
func NewReturnItemHandler(svc ItemReturner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid id: must be an integer",
			})
			return
		}

		if err := svc.MarkReturned(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrItemNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Item not found",
				})
			case errors.Is(err, services.ErrItemAlreadyReturned):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Item already returned",
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
			Message: "Item marked as returned successfully",
		})
	}
}
