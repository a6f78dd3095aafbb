package web

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// colorSchemeHint is the client hint carrying the browser's preferred color scheme.
const colorSchemeHint = "Sec-CH-Prefers-Color-Scheme"

// cookiePrefs stores preferences in client cookies for a single request.
// Values set during the request are visible to later Get calls.
type cookiePrefs struct {
	r       *http.Request
	w       http.ResponseWriter
	path    string
	maxAge  time.Duration
	secure  bool
	pending map[string]string
}

// newCookiePrefs makes a cookie-backed preference store for the request.
func (h *Handler) newCookiePrefs(w http.ResponseWriter, r *http.Request) *cookiePrefs {
	return &cookiePrefs{r: r, w: w, path: h.cookiePath(), maxAge: h.cookieMaxAge, secure: h.cookieSecure,
		pending: map[string]string{}}
}

// Get returns the cookie value, ok is false if the cookie isn't set.
func (c *cookiePrefs) Get(key string) (string, bool) {
	if v, ok := c.pending[key]; ok {
		return v, true
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

// Set writes the cookie, replacing one already set on this response.
func (c *cookiePrefs) Set(key, value string) error {
	cookie := &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     c.path,
		MaxAge:   int(c.maxAge.Seconds()),
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("invalid cookie %q: %w", key, err)
	}

	hdr := c.w.Header()
	var kept []string
	for _, v := range hdr.Values("Set-Cookie") {
		if !strings.HasPrefix(v, key+"=") {
			kept = append(kept, v)
		}
	}
	hdr.Del("Set-Cookie")
	for _, v := range kept {
		hdr.Add("Set-Cookie", v)
	}
	http.SetCookie(c.w, cookie)
	c.pending[key] = value
	return nil
}

// clientHint reads the system color scheme from the request's client hint.
type clientHint struct {
	r *http.Request
}

// PrefersDark is true only for an explicit "dark" hint.
func (c clientHint) PrefersDark() bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(c.r.Header.Get(colorSchemeHint)), `"`), "dark")
}

// ClientHints asks the browser to send its preferred color scheme and marks
// responses as varying by it.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", colorSchemeHint)
		w.Header().Set("Critical-CH", colorSchemeHint)
		w.Header().Add("Vary", colorSchemeHint)
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}
