package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	e := newTestEcho(t)

	res := mustDo(t, e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "ok", res.data()["status"])
}

func TestAuth_SignupThenSignin(t *testing.T) {
	e := newTestEcho(t)

	res := mustDo(t, e, http.MethodPost, "/auth/signup", "", credentials("a@x.com", "secret1"))
	require.Equal(t, http.StatusCreated, res.Status)
	signupToken, _ := res.data()["access_token"].(string)

	res = mustDo(t, e, http.MethodPost, "/auth/signin", "", credentials("a@x.com", "secret1"))
	require.Equal(t, http.StatusOK, res.Status)
	signinToken, _ := res.data()["access_token"].(string)

	for _, token := range []string{signupToken, signinToken} {
		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims["email"])

		sub, _ := claims["sub"].(string)
		_, err = uuid.Parse(sub)
		assert.NoError(t, err)

		me := mustDo(t, e, http.MethodGet, "/user/me", token, nil)
		require.Equal(t, http.StatusOK, me.Status)
		assert.Equal(t, sub, me.data()["id"])
		assert.Equal(t, "a@x.com", me.data()["email"])
		assert.NotContains(t, me.data(), "passwordHash")
	}
}

func TestAuth_SignupRejections(t *testing.T) {
	e := newTestEcho(t)
	signup(t, e, "taken@x.com")

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantCode   string
	}{
		{name: "duplicate email", body: credentials("taken@x.com", "other-password"), wantStatus: http.StatusConflict, wantCode: "USER_ALREADY_EXISTS"},
		{name: "malformed email", body: credentials("not-an-email", "secret1"), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "empty password", body: credentials("new@x.com", ""), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "email too long", body: credentials(strings.Repeat("a", 60)+"@"+strings.Repeat(strings.Repeat("b", 60)+".", 4)+"com", "secret1"), wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_FAILED"},
		{name: "malformed json", body: `{"email":`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustDo(t, e, http.MethodPost, "/auth/signup", "", tt.body)

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantCode, res.errorCode())
		})
	}
}

func TestAuth_SigninFailuresAreIndistinguishable(t *testing.T) {
	e := newTestEcho(t)
	signup(t, e, "a@x.com")

	wrongPassword := mustDo(t, e, http.MethodPost, "/auth/signin", "", credentials("a@x.com", "wrong"))
	unknownEmail := mustDo(t, e, http.MethodPost, "/auth/signin", "", credentials("nobody@x.com", "secret1"))

	for _, res := range []apiResponse{wrongPassword, unknownEmail} {
		assert.Equal(t, http.StatusForbidden, res.Status)
		assert.Equal(t, "CREDENTIALS_INCORRECT", res.errorCode())
		assert.Equal(t, "Credentials Incorrect", res.errorMessage())
	}
	assert.Equal(t, wrongPassword.Body["error"], unknownEmail.Body["error"])
}

func TestSession_RejectsBadTokens(t *testing.T) {
	e := newTestEcho(t)
	token := signup(t, e, "a@x.com")

	sign := func(secret string, issuedAt time.Time, sub string) string {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   sub,
			"email": "a@x.com",
			"iat":   issuedAt.Unix(),
			"exp":   issuedAt.Add(30 * time.Minute).Unix(),
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		return signed
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	sub, _ := claims["sub"].(string)

	for name, bad := range map[string]string{
		"garbage":         "not-a-token",
		"foreign secret":  sign("another-secret", time.Now(), sub),
		"expired":         sign(testSecret, time.Now().Add(-31*time.Minute), sub),
		"unknown subject": sign(testSecret, time.Now(), uuid.NewString()),
		"tampered":        tamperEmail(t, token, "evil@x.com"),
	} {
		t.Run(name, func(t *testing.T) {
			res := mustDo(t, e, http.MethodGet, "/user/me", bad, nil)

			assert.Equal(t, http.StatusUnauthorized, res.Status)
			assert.Equal(t, "UNAUTHORIZED", res.errorCode())
		})
	}

	t.Run("missing header", func(t *testing.T) {
		res := mustDo(t, e, http.MethodGet, "/bookmarks", "", nil)

		assert.Equal(t, http.StatusUnauthorized, res.Status)
	})

	t.Run("still valid near expiry", func(t *testing.T) {
		res := mustDo(t, e, http.MethodGet, "/user/me", sign(testSecret, time.Now().Add(-29*time.Minute), sub), nil)

		assert.Equal(t, http.StatusOK, res.Status)
	})
}

func TestUser_EditProfile(t *testing.T) {
	e := newTestEcho(t)
	token := signup(t, e, "a@x.com")
	signup(t, e, "b@x.com")

	res := mustDo(t, e, http.MethodPatch, "/user", token, map[string]string{"firstName": "Ada", "lastName": "Lovelace"})
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Ada", res.data()["firstName"])
	assert.Equal(t, "Lovelace", res.data()["lastName"])
	assert.Equal(t, "a@x.com", res.data()["email"])

	res = mustDo(t, e, http.MethodPatch, "/user", token, map[string]string{"email": "b@x.com"})
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", res.errorCode())

	res = mustDo(t, e, http.MethodPatch, "/user", token, map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusBadRequest, res.Status)

	res = mustDo(t, e, http.MethodPatch, "/user", token, map[string]string{"email": "c@x.com"})
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "c@x.com", res.data()["email"])

	// The old token still names the same user, so the profile follows the edit.
	me := mustDo(t, e, http.MethodGet, "/user/me", token, nil)
	assert.Equal(t, "c@x.com", me.data()["email"])

	res = mustDo(t, e, http.MethodPost, "/auth/signin", "", credentials("c@x.com", "secret1"))
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestBookmarks_CRUD(t *testing.T) {
	e := newTestEcho(t)
	token := signup(t, e, "a@x.com")

	res := mustDo(t, e, http.MethodGet, "/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Empty(t, res.list())

	res = mustDo(t, e, http.MethodPost, "/bookmarks", token, map[string]string{
		"title":       "Go",
		"description": "The Go site",
		"link":        "https://go.dev",
	})
	require.Equal(t, http.StatusCreated, res.Status)
	firstID, _ := res.data()["id"].(string)
	require.NotEmpty(t, firstID)

	res = mustDo(t, e, http.MethodPost, "/bookmarks", token, map[string]string{
		"title": "Echo",
		"link":  "https://echo.labstack.com",
	})
	require.Equal(t, http.StatusCreated, res.Status)
	secondID, _ := res.data()["id"].(string)
	assert.Nil(t, res.data()["description"])

	res = mustDo(t, e, http.MethodGet, "/bookmarks", token, nil)
	require.Len(t, res.list(), 2)
	newest, _ := res.list()[0].(map[string]any)
	assert.Equal(t, secondID, newest["id"])

	res = mustDo(t, e, http.MethodGet, "/bookmarks/"+firstID, token, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Go", res.data()["title"])

	res = mustDo(t, e, http.MethodPatch, "/bookmarks/"+firstID, token, map[string]string{"title": "Go home"})
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "Go home", res.data()["title"])
	assert.Equal(t, "https://go.dev", res.data()["link"])

	res = mustDo(t, e, http.MethodDelete, "/bookmarks/"+firstID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.Status)

	res = mustDo(t, e, http.MethodGet, "/bookmarks/"+firstID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "BOOKMARK_NOT_FOUND", res.errorCode())

	res = mustDo(t, e, http.MethodDelete, "/bookmarks/"+firstID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestBookmarks_Validation(t *testing.T) {
	e := newTestEcho(t)
	token := signup(t, e, "a@x.com")

	res := mustDo(t, e, http.MethodPost, "/bookmarks", token, map[string]string{"title": "x", "link": "not a url"})
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "VALIDATION_FAILED", res.errorCode())

	res = mustDo(t, e, http.MethodPost, "/bookmarks", token, map[string]string{"link": "https://go.dev"})
	assert.Equal(t, http.StatusBadRequest, res.Status)

	res = mustDo(t, e, http.MethodGet, "/bookmarks/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "INVALID_ID", res.errorCode())
}

func TestBookmarks_OwnerIsolation(t *testing.T) {
	e := newTestEcho(t)
	owner := signup(t, e, "owner@x.com")
	other := signup(t, e, "other@x.com")

	res := mustDo(t, e, http.MethodPost, "/bookmarks", owner, map[string]string{"title": "mine", "link": "https://go.dev"})
	require.Equal(t, http.StatusCreated, res.Status)
	id, _ := res.data()["id"].(string)

	res = mustDo(t, e, http.MethodGet, "/bookmarks", other, nil)
	assert.Empty(t, res.list())

	res = mustDo(t, e, http.MethodGet, "/bookmarks/"+id, other, nil)
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = mustDo(t, e, http.MethodPatch, "/bookmarks/"+id, other, map[string]string{"title": "stolen"})
	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t, "FORBIDDEN", res.errorCode())

	res = mustDo(t, e, http.MethodDelete, "/bookmarks/"+id, other, nil)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = mustDo(t, e, http.MethodGet, "/bookmarks/"+id, owner, nil)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "mine", res.data()["title"])
}

// tamperEmail rewrites the payload of token and keeps the original signature.
func tamperEmail(t *testing.T, token, email string) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	claims := map[string]any{}
	require.NoError(t, json.Unmarshal(payload, &claims))
	claims["email"] = email

	payload, err = json.Marshal(claims)
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(payload)

	return strings.Join(parts, ".")
}
