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
	"github.com/lostfound-project/lostfound-api/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jane@example.com", "secret123").
					Return(&models.UserDB{ID: 1, Name: "Jane Doe", Email: "jane@example.com"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{
				"user": map[string]any{
					"id":    float64(1),
					"name":  "Jane Doe",
					"email": "jane@example.com",
				},
				"message": "Login successful",
			},
		},
		{
			name: "wrong password",
			body: `{"email":"jane@example.com","password":"nope"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jane@example.com", "nope").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Invalid email or password"},
		},
		{
			name: "unknown email",
			body: `{"email":"nobody@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "nobody@example.com", "secret123").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]any{"error": "Invalid email or password"},
		},
		{
			name:         "invalid JSON",
			body:         `{invalid`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
		{
			name: "internal server error",
			body: `{"email":"jane@example.com","password":"secret123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "jane@example.com", "secret123").
					Return(nil, errors.New("db failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewBufferString(tt.body))
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
