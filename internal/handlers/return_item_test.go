package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lostfound-project/lostfound-api/internal/services"
)

func TestReturnItemHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockItemReturner)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "success",
			target: "/api/items/1/return",
			mockSetup: func(m *MockItemReturner) {
				m.EXPECT().MarkReturned(gomock.Any(), int64(1)).Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"message": "Item marked as returned successfully"},
		},
		{
			name:   "not found",
			target: "/api/items/42/return",
			mockSetup: func(m *MockItemReturner) {
				m.EXPECT().MarkReturned(gomock.Any(), int64(42)).Return(services.ErrItemNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"error": "Item not found"},
		},
		{
			name:   "already returned",
			target: "/api/items/1/return",
			mockSetup: func(m *MockItemReturner) {
				m.EXPECT().MarkReturned(gomock.Any(), int64(1)).Return(services.ErrItemAlreadyReturned)
			},
			expectedCode: 409,
			expectedBody: map[string]any{"error": "Item already returned"},
		},
		{
			name:         "invalid id",
			target:       "/api/items/abc/return",
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid id: must be an integer"},
		},
		{
			name:   "internal server error",
			target: "/api/items/1/return",
			mockSetup: func(m *MockItemReturner) {
				m.EXPECT().MarkReturned(gomock.Any(), int64(1)).Return(errors.New("db failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemReturner(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := serveWithID(http.MethodPut, "/api/items/{id}/return", tt.target, NewReturnItemHandler(mockSvc))

			assert.Equal(t, tt.expectedCode, rr.Code)

			var respBody map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respBody))
			for key, want := range tt.expectedBody {
				assert.Equal(t, want, respBody[key])
			}
		})
	}
}
