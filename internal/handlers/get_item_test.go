package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lostfound-project/lostfound-api/internal/models"
	"github.com/lostfound-project/lostfound-api/internal/services"
)

// serveWithID routes the request through chi so {id} is populated.
func serveWithID(method, pattern, target string, handler http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, handler)

	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestGetItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockItemGetter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "found",
			target: "/api/items/1",
			mockSetup: func(m *MockItemGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(&models.ItemDB{
					ID:       1,
					ItemName: "Wallet",
					Status:   models.StatusActive,
				}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"id": float64(1), "itemName": "Wallet"},
		},
		{
			name:   "not found",
			target: "/api/items/42",
			mockSetup: func(m *MockItemGetter) {
				m.EXPECT().Get(gomock.Any(), int64(42)).Return(nil, services.ErrItemNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "Item not found"},
		},
		{
			name:         "invalid id",
			target:       "/api/items/abc",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid id: must be an integer"},
		},
		{
			name:   "internal server error",
			target: "/api/items/1",
			mockSetup: func(m *MockItemGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("db failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serveWithID(http.MethodGet, "/api/items/{id}", tt.target, NewGetItemHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)

			var respBody map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
			for key, want := range tt.expectedBody {
				assert.Equal(t, want, respBody[key])
			}
		})
	}
}
