package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/shade/app/layout"
)

func TestCookiePrefs(t *testing.T) {
	h, err := New(newLayoutMock(layout.Default()), Config{CookieMaxAge: time.Hour, CookieSecure: true, BaseURL: "/base"})
	require.NoError(t, err)

	t.Run("get absent", func(t *testing.T) {
		p := h.newCookiePrefs(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		v, ok := p.Get("theme")
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("get from request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
		p := h.newCookiePrefs(httptest.NewRecorder(), req)
		v, ok := p.Get("theme")
		assert.True(t, ok)
		assert.Equal(t, "dark", v)
	})

	t.Run("set replaces earlier value on the response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
		p := h.newCookiePrefs(rec, req)

		http.SetCookie(rec, &http.Cookie{Name: "other", Value: "keep"})
		require.NoError(t, p.Set("theme", "dark"))
		require.NoError(t, p.Set("theme", "light"))
		require.NoError(t, p.Set("theme", "dark"))

		v, ok := p.Get("theme")
		assert.True(t, ok)
		assert.Equal(t, "dark", v, "pending value wins over request cookie")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "other", cookies[0].Name)
		c := cookies[1]
		assert.Equal(t, "theme", c.Name)
		assert.Equal(t, "dark", c.Value)
		assert.Equal(t, "/base/", c.Path)
		assert.Equal(t, 3600, c.MaxAge)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	})

	t.Run("invalid cookie rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		p := h.newCookiePrefs(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		require.Error(t, p.Set("theme", "bad;value"))
		require.Error(t, p.Set("bad name", "dark"))
		assert.Empty(t, rec.Result().Cookies())
		_, ok := p.Get("theme")
		assert.False(t, ok)
	})
}

func TestClientHint_PrefersDark(t *testing.T) {
	tests := []struct {
		hint     string
		expected bool
	}{
		{hint: "", expected: false},
		{hint: "dark", expected: true},
		{hint: `"dark"`, expected: true},
		{hint: " Dark ", expected: true},
		{hint: "light", expected: false},
		{hint: "no-preference", expected: false},
	}
	for _, tc := range tests {
		t.Run(tc.hint, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.hint != "" {
				req.Header.Set(colorSchemeHint, tc.hint)
			}
			assert.Equal(t, tc.expected, clientHint{r: req}.PrefersDark())
		})
	}
}

func TestClientHints(t *testing.T) {
	called := false
	handler := ClientHints(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.True(t, called)
	assert.Equal(t, colorSchemeHint, rec.Header().Get("Accept-CH"))
	assert.Equal(t, colorSchemeHint, rec.Header().Get("Critical-CH"))
	assert.ElementsMatch(t, []string{colorSchemeHint, "Cookie"}, rec.Header().Values("Vary"))
}
