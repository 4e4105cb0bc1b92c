package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"afiyazone/internal/logger"
	"afiyazone/internal/models"
	"afiyazone/internal/repositories"
	"afiyazone/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeVerifier struct {
	tokens   map[string]string
	users    map[string]*models.User
	failures map[string]error
}

func (f *fakeVerifier) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", services.ErrTokenMissing
	}
	if token == "expired" {
		return "", services.ErrTokenExpired
	}
	id, ok := f.tokens[token]
	if !ok {
		return "", services.ErrTokenInvalid
	}
	return id, nil
}

func (f *fakeVerifier) CurrentUser(_ context.Context, userID string) (*models.User, error) {
	if err, ok := f.failures[userID]; ok {
		return nil, err
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func newAuthApp(role string) *fiber.App {
	verifier := &fakeVerifier{
		tokens: map[string]string{"user-token": "u1", "admin-token": "a1", "ghost-token": "gone", "db-down-token": "d1"},
		users: map[string]*models.User{
			"u1": {ID: "u1", Role: models.RoleUser},
			"a1": {ID: "a1", Role: models.RoleAdmin},
		},
		failures: map[string]error{"d1": errors.New("connection refused")},
	}
	app := fiber.New()
	app.Get("/", RequireAuth(verifier, role), func(c *fiber.Ctx) error {
		resp := fiber.Map{"userId": UserIDFrom(c)}
		if user := UserFrom(c); user != nil {
			resp["role"] = user.Role
		}
		return c.JSON(resp)
	})
	return app
}

func authRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestRequireAuth_User(t *testing.T) {
	app := newAuthApp("")

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"NoToken", "", fiber.StatusUnauthorized},
		{"Expired", "expired", fiber.StatusUnauthorized},
		{"Invalid", "garbage", fiber.StatusUnauthorized},
		{"Valid", "user-token", fiber.StatusOK},
		{"DeletedUserStillPasses", "ghost-token", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(authRequest(tt.token), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestRequireAuth_Messages(t *testing.T) {
	app := newAuthApp("")

	for token, message := range map[string]string{
		"":        "No token, authorization denied",
		"expired": "Token expired, please login again",
		"garbage": "Invalid token",
	} {
		resp, err := app.Test(authRequest(token), -1)
		require.NoError(t, err)
		assert.Contains(t, readBody(t, resp), message)
	}
}

func TestRequireAuth_Admin(t *testing.T) {
	app := newAuthApp(models.RoleAdmin)

	t.Run("Admin", func(t *testing.T) {
		resp, err := app.Test(authRequest("admin-token"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), `"role":"admin"`)
	})

	t.Run("NonAdmin", func(t *testing.T) {
		resp, err := app.Test(authRequest("user-token"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "Access denied. Admin only.")
	})

	t.Run("DeletedUser", func(t *testing.T) {
		resp, err := app.Test(authRequest("ghost-token"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, readBody(t, resp), "User not found")
	})

	t.Run("LookupFailure", func(t *testing.T) {
		resp, err := app.Test(authRequest("db-down-token"), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		body := readBody(t, resp)
		assert.Contains(t, body, "Server error")
		assert.NotContains(t, body, "connection refused")
	})
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := NewRateLimiter(ctx, 0.001, 2)
	app := fiber.New()
	app.Post("/login", rl.Handler(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	var codes []int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil), -1)
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.Set(zap.New(core))
	defer logger.Set(zap.NewNop())

	app := fiber.New()
	app.Use(requestid.New(), RequestContext(), RequestLogger())
	app.Get("/api/orders/my-orders", func(c *fiber.Ctx) error {
		c.Locals(localUserID, "u1")
		return c.SendStatus(fiber.StatusCreated)
	})
	app.Post("/xx", func(c *fiber.Ctx) error { return errors.New("boom") })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/orders/my-orders", nil), -1)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodPost, "/xx", nil), -1)
	require.NoError(t, err)

	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	// Fields must survive fasthttp reusing the request buffer.
	assert.Equal(t, "/api/orders/my-orders", first["path"])
	assert.Equal(t, http.MethodGet, first["method"])
	assert.Equal(t, int64(fiber.StatusCreated), first["status"])
	assert.Equal(t, "u1", first["user_id"])
	assert.NotEmpty(t, first["request_id"])

	second := entries[1].ContextMap()
	assert.Equal(t, "/xx", second["path"])
	assert.Equal(t, http.MethodPost, second["method"])
	assert.Equal(t, int64(fiber.StatusInternalServerError), second["status"])
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.String()
}
