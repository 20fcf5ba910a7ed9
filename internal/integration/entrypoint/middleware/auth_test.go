package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/receivables/internal/application/adapter"
	"github.com/ledgerline/receivables/internal/application/adapter/mocks"
	domainerror "github.com/ledgerline/receivables/internal/domain/error"
	"github.com/ledgerline/receivables/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(tokens adapter.TokenService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		tenantID, _ := GetTenantIDFromContext(c)
		c.String(http.StatusOK, tenantID.String())
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tenantID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mocks.MockTokenService)
		wantStatus int
		wantCode   domainerror.AuthErrorCode
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateAccessToken(gomock.Any(), "good").Return(&adapter.TokenClaims{
					Subject:   "scheduler",
					TenantID:  tenantID,
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeMissingToken,
		},
		{
			name:       "not bearer",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeInvalidToken,
		},
		{
			name:   "expired",
			header: "Bearer old",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateAccessToken(gomock.Any(), "old").Return(nil, domainerror.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeExpiredToken,
		},
		{
			name:   "no tenant",
			header: "Bearer anon",
			setup: func(m *mocks.MockTokenService) {
				m.EXPECT().ValidateAccessToken(gomock.Any(), "anon").Return(nil, domainerror.ErrMissingTenant)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   domainerror.ErrCodeMissingTenant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := mocks.NewMockTokenService(ctrl)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			newAuthRouter(tokens).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tenantID.String(), rec.Body.String())
				return
			}
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.wantCode), body.Code)
		})
	}
}
