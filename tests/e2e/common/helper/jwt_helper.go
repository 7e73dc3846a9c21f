//go:build e2e

package helper

import (
	"net/http"
	"testing"
	"time"

	"github.com/manojshendge/gym-class-booking/internal/handler/dto/request"
	"github.com/manojshendge/gym-class-booking/internal/pkg/config"
	"github.com/manojshendge/gym-class-booking/internal/pkg/jwt"
	"github.com/manojshendge/gym-class-booking/tests/common/dbtest"
	"github.com/manojshendge/gym-class-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email string) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email)
}

func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie instead of JSON response
	cookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, cookie, "Access token not found in cookies")
	require.NotEmpty(t, cookie.Value, "Access token not found in cookies")

	return cookie.Value
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	h.CreateTestUser(t, email)
	return h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	duration, _ := time.ParseDuration(h.cfg.Duration)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(userID, email)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
