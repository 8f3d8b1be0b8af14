package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhijeet5642/propertyadded/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuthAcceptsValidBearer(t *testing.T) {
	manager := utils.JWTManager{Secret: []byte("secret"), TokenTTL: time.Hour}
	userID := uuid.New()
	token, _, err := manager.IssueSessionToken(userID.String(), "admin")
	require.NoError(t, err)

	c, _ := newTestContext("Bearer " + token)
	called := false
	handler := AuthMiddleware{JWT: &manager}.RequireAuth(func(c echo.Context) error {
		called = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)

	gotID, ok := UserIDFromContext(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	role, ok := RoleFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "admin", role)
}

func TestRequireAuthRejectsMissingOrBadToken(t *testing.T) {
	manager := utils.JWTManager{Secret: []byte("secret"), TokenTTL: time.Hour}
	handler := AuthMiddleware{JWT: &manager}.RequireAuth(func(c echo.Context) error {
		t.Fatal("handler should not run")
		return nil
	})

	for _, authorization := range []string{"", "Bearer garbage", "Basic abc", "Bearer"} {
		c, _ := newTestContext(authorization)
		err := handler(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	}
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	issuer := utils.JWTManager{Secret: []byte("other"), TokenTTL: time.Hour}
	token, _, err := issuer.IssueSessionToken(uuid.NewString(), "user")
	require.NoError(t, err)

	manager := utils.JWTManager{Secret: []byte("secret"), TokenTTL: time.Hour}
	handler := AuthMiddleware{JWT: &manager}.RequireAuth(func(c echo.Context) error { return nil })

	c, _ := newTestContext("Bearer " + token)
	err = handler(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireRole(t *testing.T) {
	guard := RequireRole("admin")(func(c echo.Context) error { return nil })

	c, _ := newTestContext("")
	SetAuthContext(c, uuid.New(), "admin")
	assert.NoError(t, guard(c))

	c, _ = newTestContext("")
	SetAuthContext(c, uuid.New(), "user")
	err := guard(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)

	// No auth context at all is forbidden as well.
	c, _ = newTestContext("")
	err = guard(c)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
