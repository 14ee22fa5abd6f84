package httpx_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/democat/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func hit(h http.Handler, remote string, body string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodPost, "/", rdr)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}, "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.168.1.1:12345"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestJSONFieldKeyExtractorRestoresBody(t *testing.T) {
	body := `{"email":" Ana@Example.com ","password":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	require.Equal(t, "ana@example.com", httpx.JSONFieldKeyExtractor("email")(req))

	rest, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	require.Equal(t, body, string(rest))
}

func TestJSONFieldKeyExtractorIgnoresBadBodies(t *testing.T) {
	for _, body := range []string{"", "not json", `{"email":42}`, `[]`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		require.Empty(t, httpx.JSONFieldKeyExtractor("email")(req), "body %q", body)
	}
}

func TestCompositeKeyExtractorSkipsEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	ex := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.UserIDKeyExtractor)
	require.Equal(t, "192.168.1.1", ex(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("blocks over limit", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 3, Window: time.Minute, Burst: 3})(okHandler)

		for i := range 3 {
			require.Equal(t, http.StatusOK, hit(h, "192.168.1.1:1", "").Code, "request %d", i+1)
		}

		rec := hit(h, "192.168.1.1:1", "")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("keys tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})(okHandler)

		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1", "").Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1", "").Code)
	})

	t.Run("login attempts keyed by ip and email", func(t *testing.T) {
		h := httpx.RateLimitByIPAndJSONField(httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}, "email")(okHandler)

		ana := `{"email":"ana@example.com"}`
		for range 2 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", ana).Code)
		}
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1", ana).Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", `{"email":"rui@example.com"}`).Code)
	})

	t.Run("empty key passes", func(t *testing.T) {
		h := httpx.RateLimitMiddleware(
			httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1},
			func(*http.Request) string { return "" },
		)(okHandler)

		for range 3 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "").Code)
		}
	})
}

func TestRateLimitProfilesAreOrdered(t *testing.T) {
	for name, cfg := range map[string]httpx.RateLimitConfig{
		"strict":   httpx.StrictLimit,
		"moderate": httpx.ModerateLimit,
		"lenient":  httpx.LenientLimit,
		"public":   httpx.PublicLimit,
	} {
		require.Positive(t, cfg.RequestsPerWindow, name)
		require.Positive(t, cfg.Window, name)
		require.Positive(t, cfg.Burst, name)
	}
	require.Less(t, httpx.StrictLimit.RequestsPerWindow, httpx.ModerateLimit.RequestsPerWindow)
	require.Less(t, httpx.ModerateLimit.RequestsPerWindow, httpx.LenientLimit.RequestsPerWindow)
	require.Less(t, httpx.LenientLimit.RequestsPerWindow, httpx.PublicLimit.RequestsPerWindow)
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, def, httpx.ParseRateLimitFromEnv("UNSET", def))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("RATELIMIT_TEST_REQUESTS", "200")
		t.Setenv("RATELIMIT_TEST_WINDOW_SEC", "30")
		t.Setenv("RATELIMIT_TEST_BURST", "250")

		require.Equal(t,
			httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250},
			httpx.ParseRateLimitFromEnv("TEST", def))
	})

	t.Run("invalid values keep defaults", func(t *testing.T) {
		t.Setenv("RATELIMIT_BAD_REQUESTS", "invalid")
		t.Setenv("RATELIMIT_BAD_WINDOW_SEC", "-10")
		t.Setenv("RATELIMIT_BAD_BURST", "0")

		require.Equal(t, def, httpx.ParseRateLimitFromEnv("BAD", def))
	})
}

func BenchmarkRateLimitManyIPs(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1_000_000, Window: time.Minute, Burst: 1000})(okHandler)

	for i := 0; b.Loop(); i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = fmt.Sprintf("192.168.%d.%d:12345", i%255, (i/255)%255)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
}
