package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookmarks/config"
	apimiddleware "bookmarks/internal/delivery/api/middleware"
	"bookmarks/internal/delivery/api/router"
	"bookmarks/internal/delivery/api/router/handler"
	"bookmarks/internal/infra/auth"
	"bookmarks/internal/infra/persistence/memory"
	"bookmarks/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

// newTestEcho wires the real services over the in-memory store the same way
// cmd/bookmarks wires them over Postgres.
func newTestEcho(t testing.TB) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewArgon2Hasher(auth.Argon2Params{Time: 1, MemoryKiB: 1024, Threads: 1}),
		Policy:       auth.NewPasswordPolicy(cfg),
		TokenService: tokenService,
		Logger:       logger,
	})
	sessionUC := impl.NewSessionService(userRepo, tokenService, logger)
	profileUC := impl.NewProfileService(userRepo, logger)
	bookmarkUC := impl.NewBookmarkService(
		memory.NewTransactionManager(store),
		memory.NewBookmarkRepository(store),
		logger,
	)

	r := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(authUC),
		UserHandler:     handler.NewUserHandler(profileUC),
		BookmarkHandler: handler.NewBookmarkHandler(bookmarkUC),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(sessionUC),
	})

	return NewEcho(cfg, logger, r)
}

type apiResponse struct {
	Status int
	Body   map[string]any
}

func (r apiResponse) data() map[string]any {
	data, _ := r.Body["data"].(map[string]any)

	return data
}

func (r apiResponse) list() []any {
	list, _ := r.Body["data"].([]any)

	return list
}

func (r apiResponse) errorCode() string {
	errInfo, _ := r.Body["error"].(map[string]any)
	code, _ := errInfo["code"].(string)

	return code
}

func (r apiResponse) errorMessage() string {
	errInfo, _ := r.Body["error"].(map[string]any)
	msg, _ := errInfo["message"].(string)

	return msg
}

// do sends one request through the echo instance. body may be nil, a string
// sent verbatim, or any value encoded as JSON.
func do(e *echo.Echo, method, path, token string, body any) (apiResponse, error) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return apiResponse{}, err
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	res := apiResponse{Status: rec.Code}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &res.Body); err != nil {
			return res, err
		}
	}

	return res, nil
}

func mustDo(t *testing.T, e *echo.Echo, method, path, token string, body any) apiResponse {
	t.Helper()

	res, err := do(e, method, path, token, body)
	require.NoError(t, err)

	return res
}

func credentials(email, password string) map[string]string {
	return map[string]string{"email": email, "password": password}
}

// signup registers a user and returns the access token.
func signup(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()

	res := mustDo(t, e, http.MethodPost, "/auth/signup", "", credentials(email, "secret1"))
	require.Equal(t, http.StatusCreated, res.Status)

	token, _ := res.data()["access_token"].(string)
	require.NotEmpty(t, token)

	return token
}
