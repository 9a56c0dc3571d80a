package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"microblog/app/repositories"
	"microblog/config"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *mux.Router {
	db, err := repositories.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	cfg := &config.Config{
		Port:      "0",
		JWTSecret: "test-secret",
		TokenTTL:  30 * time.Minute,
	}
	return SetupRoutes(db, cfg)
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded response body into out.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerAndLogin creates a user and returns a valid bearer token.
func registerAndLogin(t *testing.T, router *mux.Router, username, email, password string) string {
	w := doJSON(t, router, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, w, &token)
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

type postBody struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Author        string `json:"author"`
	LikesCount    int    `json:"likes_count"`
	CommentsCount int    `json:"comments_count"`
}
