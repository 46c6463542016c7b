package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

func TestTokenHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockTokenExchanger)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"username":"john","confirmation_code":"abc123"}`,
			mockSetup: func(m *MockTokenExchanger) {
				m.EXPECT().
					ExchangeToken(gomock.Any(), "john", "abc123").
					Return("sometoken", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "sometoken"},
		},
		{
			name: "unknown username",
			body: `{"username":"ghost","confirmation_code":"abc123"}`,
			mockSetup: func(m *MockTokenExchanger) {
				m.EXPECT().
					ExchangeToken(gomock.Any(), "ghost", "abc123").
					Return("", services.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "wrong code",
			body: `{"username":"john","confirmation_code":"wrong"}`,
			mockSetup: func(m *MockTokenExchanger) {
				m.EXPECT().
					ExchangeToken(gomock.Any(), "john", "wrong").
					Return("", services.ErrInvalidConfirmationCode)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"confirmation_code": "invalid"},
		},
		{
			name:         "missing code",
			body:         `{"username":"john"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "invalid json",
			body:         `{"username":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTokenExchanger(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}
			handler := NewTokenHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedBody != nil {
				var resp map[string]string
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}
