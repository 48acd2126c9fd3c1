package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bukukas/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer wires the real routes against a per-test in-memory
// SQLite database, so the whole suite runs without external services.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// cache=shared keeps the database alive across pooled connections;
	// the test name keeps databases isolated between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	db = gdb
	autoMigrate()

	r := gin.New()
	setupRoutes(r)
	return r
}

// performRequest issues a request with optional JSON body and bearer token.
func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

const testPassword = "secret123"

func createTestUser(t *testing.T, name, email string, role models.Role) models.User {
	t.Helper()
	hpw, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Name: name, Email: email, HashedPassword: hpw, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := issueToken(&user)
	require.NoError(t, err)
	return token
}
