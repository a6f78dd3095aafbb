package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/layout"
)

func TestServer_Ping(t *testing.T) {
	srv := newTestServer(t, Config{Version: "test"})

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
	assert.Equal(t, "shade", rec.Header().Get("App-Name"))
	assert.Equal(t, "test", rec.Header().Get("App-Version"))
}

func TestServer_Index(t *testing.T) {
	srv := newTestServer(t, Config{})

	t.Run("system dark", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="en" class="dark">`)
		assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", rec.Header().Get("Accept-CH"))
		assert.Contains(t, rec.Header().Values("Vary"), "Cookie")
	})

	t.Run("stored light", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="en">`)
	})
}

func TestServer_Toggle(t *testing.T) {
	srv := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/web/theme", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "light", cookies[0].Value)
}

func TestServer_Static(t *testing.T) {
	srv := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/static/css/shade.css", http.NoBody)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "html.dark")
	assert.Empty(t, rec.Header().Get("Accept-CH"), "static files don't ask for hints")
}

func TestServer_BaseURL(t *testing.T) {
	srv := newTestServer(t, Config{BaseURL: "/shade"})
	handler := srv.handler()

	tests := []struct {
		name     string
		method   string
		path     string
		code     int
		location string
	}{
		{name: "redirect to slash", method: http.MethodGet, path: "/shade", code: http.StatusMovedPermanently, location: "/shade/"},
		{name: "index", method: http.MethodGet, path: "/shade/", code: http.StatusOK},
		{name: "static", method: http.MethodGet, path: "/shade/static/css/shade.css", code: http.StatusOK},
		{name: "toggle", method: http.MethodPost, path: "/shade/web/theme", code: http.StatusSeeOther, location: "/shade/"},
		{name: "outside base", method: http.MethodGet, path: "/", code: http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, http.NoBody)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tc.code, rec.Code)
			if tc.location != "" {
				assert.Equal(t, tc.location, rec.Header().Get("Location"))
			}
		})
	}
}

func TestServer_BodySizeLimit(t *testing.T) {
	srv := newTestServer(t, Config{BodySizeLimit: 16})

	req := httptest.NewRequest(http.MethodPost, "/web/theme", strings.NewReader(strings.Repeat("x", 1024)))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_Defaults(t *testing.T) {
	srv := newTestServer(t, Config{})
	assert.Equal(t, int64(64*1024), srv.bodySizeLimit())
	assert.Equal(t, int64(1000), srv.requestsPerSec())
	assert.Equal(t, 5*time.Second, srv.shutdownTimeout())

	srv = newTestServer(t, Config{BodySizeLimit: 10, RequestsPerSec: 5, ShutdownTimeout: time.Second})
	assert.Equal(t, int64(10), srv.bodySizeLimit())
	assert.Equal(t, int64(5), srv.requestsPerSec())
	assert.Equal(t, time.Second, srv.shutdownTimeout())
}

func TestServer_Run(t *testing.T) {
	srv := newTestServer(t, Config{Address: "127.0.0.1:18391", ReadTimeout: time.Second, WriteTimeout: time.Second,
		ShutdownTimeout: time.Second, Version: "test"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:18391/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	layouts, err := layout.NewStore("")
	require.NoError(t, err)
	srv, err := New(layouts, cfg)
	require.NoError(t, err)
	return srv
}
