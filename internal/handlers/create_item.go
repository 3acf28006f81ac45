package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lostfound-project/lostfound-api/internal/logger"
	"github.com/lostfound-project/lostfound-api/internal/models"
)

// ItemCreator defines the interface that the item service must implement.
type ItemCreator interface {
	Create(ctx context.Context, itemName, category, description, itemType, location, contact string) (*models.ItemDB, error)
}

// CreateItemRequest represents the JSON body for reporting a lost or found item
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// What was lost or found
	// required: true
	// example: Black Wallet
	ItemName string `json:"itemName" validate:"required"`

	// Optional category
	// example: Accessories
	Category string `json:"category"`

	// Optional description
	// example: Leather wallet with student ID inside
	Description string `json:"description"`

	// Report type
	// required: true
	// example: lost
	Type string `json:"type" validate:"required,oneof=lost found"`

	// Where it was lost or found
	// required: true
	// example: Library
	Location string `json:"location" validate:"required"`

	// Optional contact info
	// example: jane@example.com
	Contact string `json:"contact"`
}

// CreateItemResponse is the created item plus a confirmation message
// swagger:model CreateItemResponse
type CreateItemResponse struct {
	models.ItemDB
	// Confirmation message
	// example: Item added successfully
	Message string `json:"message"`
}

// NewCreateItemHandler returns an HTTP handler for reporting an item.
// @Summary Report a lost or found item
// @Description Creates a new item report. Requires itemName, type (lost|found) and location; the store assigns id, active status and timestamp.
// @Tags items
// @Accept json
// @Produce json
// @Param createItemRequest body handlers.CreateItemRequest true "Item report"
// @Success 200 {object} handlers.CreateItemResponse "Created item"
// @Failure 400 {object} handlers.ErrorResponse "Missing required fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /items [post]
func NewCreateItemHandler(svc ItemCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateItemRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Missing required fields",
			})
			return
		}

		if err := validator.New().Struct(req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Missing required fields",
			})
			return
		}

		item, err := svc.Create(r.Context(), req.ItemName, req.Category, req.Description, req.Type, req.Location, req.Contact)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CreateItemResponse{
			ItemDB:  *item,
			Message: "Item added successfully",
		})
	}
}
