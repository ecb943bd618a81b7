package ports_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smashlog/smashlog/internal/ports"
	"github.com/stretchr/testify/require"
)

const PROD_DOMAIN_SUFFIX = "smashlog.app"
const STAGING_DOMAIN_SUFFIX = "smashlog.pages.dev"

type originRule struct {
	origin  string
	allowed bool
}

func TestCORS(t *testing.T) {
	t.Parallel()
	allowedOrigins, err := ports.NewDomainSuffixes(
		PROD_DOMAIN_SUFFIX,
		STAGING_DOMAIN_SUFFIX,
	)
	require.NoError(t, err)

	cases := []originRule{
		// Prod
		{
			origin:  "https://smashlog.app",
			allowed: true,
		},
		{
			origin:  "https://www.smashlog.app",
			allowed: true,
		},
		// Staging
		{
			origin:  "https://53bcd591.smashlog.pages.dev",
			allowed: true,
		},
		{
			origin:  "https://smashlog.pages.dev",
			allowed: true,
		},
		// Other pages
		{
			origin:  "example.com",
			allowed: false,
		},
		{
			origin:  "https://example.com",
			allowed: false,
		},
		{
			origin:  "https://smashlog.app.evil.com",
			allowed: false,
		},
		{
			origin:  "https://evilsmashlog.app",
			allowed: false,
		},
		// Wrong scheme
		{
			origin:  "http://smashlog.app",
			allowed: false,
		},
		{
			origin:  "http://www.smashlog.app",
			allowed: false,
		},
		// Empty
		{
			origin:  "",
			allowed: false,
		},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("origin %q", c.origin), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, c.allowed, allowedOrigins.AnyMatch(c.origin))
		})
	}

	t.Run("preflight", func(t *testing.T) {
		t.Parallel()
		handler := ports.BuildCORSHandler(allowedOrigins)

		t.Run("allowed origin", func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
			req.Header.Set("Origin", "https://smashlog.app")
			w := httptest.NewRecorder()

			handler(w, req)

			resp := w.Result()
			require.Equal(t, http.StatusNoContent, resp.StatusCode)
			require.Equal(t, "https://smashlog.app", resp.Header.Get("Access-Control-Allow-Origin"))
		})

		t.Run("disallowed origin", func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
			req.Header.Set("Origin", "https://example.com")
			w := httptest.NewRecorder()

			handler(w, req)

			resp := w.Result()
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Empty(t, body)
			require.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
		})
	})
}

func TestNewDomainSuffixes(t *testing.T) {
	t.Parallel()

	t.Run("rejects leading dots", func(t *testing.T) {
		t.Parallel()
		_, err := ports.NewDomainSuffixes(".smashlog.app")
		require.Error(t, err)
	})

	t.Run("rejects schemes", func(t *testing.T) {
		t.Parallel()
		_, err := ports.NewDomainSuffixes("https://smashlog.app")
		require.Error(t, err)
	})
}
