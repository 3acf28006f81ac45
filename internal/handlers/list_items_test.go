package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lostfound-project/lostfound-api/internal/models"
)

func TestListItemsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	items := []models.ItemDB{
		{ID: 2, ItemName: "Keys", Status: models.StatusActive},
		{ID: 1, ItemName: "Wallet", Status: models.StatusActive},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockItemLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "all items",
			target: "/api/items",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().List(gomock.Any(), "").Return(items, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name:   "active filter",
			target: "/api/items?status=active",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().List(gomock.Any(), "active").Return(items, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name:   "returned filter",
			target: "/api/items?status=returned",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().List(gomock.Any(), "returned").Return([]models.ItemDB{}, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name:         "unknown filter",
			target:       "/api/items?status=pending",
			expectedCode: 400,
		},
		{
			name:   "internal server error",
			target: "/api/items",
			mockSetup: func(m *MockItemLister) {
				m.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockItemLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListItemsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var got []models.ItemDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Len(t, got, tt.expectedLen)
			}
		})
	}
}
