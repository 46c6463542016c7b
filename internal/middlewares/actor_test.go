package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/jwt"
	"github.com/sbilibin2017/gw-review-platform/internal/models"
)

func TestActorMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	stored := &models.UserDB{UserID: userID, Username: "alice", Role: models.RoleUser, IsActive: true}

	tests := []struct {
		name         string
		mockSetup    func(tokener *MockClaimsGetter, users *MockActorReader)
		expectedCode int
		expectActor  *models.UserDB
	}{
		{
			name: "no credentials passes anonymously",
			mockSetup: func(tokener *MockClaimsGetter, users *MockActorReader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusOK,
			expectActor:  nil,
		},
		{
			name: "valid token resolves actor",
			mockSetup: func(tokener *MockClaimsGetter, users *MockActorReader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(&jwt.Claims{UserID: userID, Username: "alice", Role: models.RoleUser}, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(stored, nil)
			},
			expectedCode: http.StatusOK,
			expectActor:  stored,
		},
		{
			name: "bad token is rejected",
			mockSetup: func(tokener *MockClaimsGetter, users *MockActorReader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("garbage", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "garbage").
					Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "deleted subject is rejected",
			mockSetup: func(tokener *MockClaimsGetter, users *MockActorReader) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokener := NewMockClaimsGetter(ctrl)
			users := NewMockActorReader(ctrl)
			tt.mockSetup(tokener, users)

			var gotActor *models.UserDB
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				gotActor = ActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			ActorMiddleware(tokener, users)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.True(t, called)
				assert.Equal(t, tt.expectActor, gotActor)
			} else {
				assert.False(t, called)
			}
		})
	}
}
