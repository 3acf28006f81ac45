package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lostfound-project/lostfound-api/internal/models"
)

func TestCreateItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockItemCreator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"itemName":"Wallet","type":"lost","location":"Library"}`,
			mockSetup: func(m *MockItemCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Wallet", "", "", "lost", "Library", "").
					Return(&models.ItemDB{
						ID:       1,
						ItemName: "Wallet",
						Type:     models.TypeLost,
						Location: "Library",
						Status:   models.StatusActive,
					}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"id":       float64(1),
				"itemName": "Wallet",
				"status":   "active",
				"message":  "Item added successfully",
			},
		},
		{
			name:         "missing itemName",
			body:         `{"type":"lost","location":"Library"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name:         "missing location",
			body:         `{"itemName":"Wallet","type":"lost"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name:         "unknown type",
			body:         `{"itemName":"Wallet","type":"stolen","location":"Library"}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name:         "invalid JSON",
			body:         `{invalid`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Missing required fields"},
		},
		{
			name: "internal server error",
			body: `{"itemName":"Wallet","type":"lost","location":"Library"}`,
			mockSetup: func(m *MockItemCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Wallet", "", "", "lost", "Library", "").
					Return(nil, errors.New("db failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateItemHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var respBody map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
			for key, want := range tt.expectedBody {
				assert.Equal(t, want, respBody[key])
			}
		})
	}
}
