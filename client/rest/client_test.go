package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bloodhoundad/pimhound/client/config"
)

func testJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return fmt.Sprintf("%s.%s.sig", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestRestClient_Send(t *testing.T) {
	t.Run("acquires a token and sets the authorization header", func(t *testing.T) {
		var (
			tokenRequests  int
			seenAuthHeader string
		)

		mux := http.NewServeMux()
		mux.HandleFunc("/tenant/oauth2/v2.0/token", func(w http.ResponseWriter, r *http.Request) {
			tokenRequests++
			require.NoError(t, r.ParseForm())
			require.Equal(t, "client_credentials", r.Form.Get("grant_type"))
			require.Equal(t, "sekrit", r.Form.Get("client_secret"))
			json.NewEncoder(w).Encode(Token{AccessToken: "tok", ExpiresIn: 3600, TokenType: "Bearer"})
		})
		mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
			seenAuthHeader = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		})

		server := httptest.NewServer(mux)
		defer server.Close()

		client, err := NewRestClient(server.URL, config.Config{
			Authority:    server.URL,
			Tenant:       "tenant",
			ClientSecret: "sekrit",
		})
		require.NoError(t, err)

		res, err := client.Get(context.Background(), "/ok", nil, nil)
		require.NoError(t, err)
		defer res.Body.Close()

		require.Equal(t, 1, tokenRequests)
		require.Equal(t, "Bearer tok", seenAuthHeader)

		// a second request reuses the cached token
		res, err = client.Get(context.Background(), "/ok", nil, nil)
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 1, tokenRequests)
	})

	t.Run("retries 429 responses honoring retry-after", func(t *testing.T) {
		requestCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			if requestCount < 3 {
				w.Header().Set("Retry-After", "0")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client, err := NewRestClient(server.URL, config.Config{JWT: testJWT(t, map[string]interface{}{"oid": "id"})})
		require.NoError(t, err)

		res, err := client.Get(context.Background(), "/throttled", nil, nil)
		require.NoError(t, err)
		defer res.Body.Close()
		require.Equal(t, 3, requestCount)
	})

	t.Run("surfaces decoded resource manager errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":"AuthorizationFailed","message":"nope"}}`))
		}))
		defer server.Close()

		client, err := NewRestClient(server.URL, config.Config{JWT: testJWT(t, map[string]interface{}{"oid": "id"})})
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/denied", nil, nil)
		require.Error(t, err)

		azErr, ok := err.(AzureError)
		require.True(t, ok)
		require.Equal(t, http.StatusForbidden, azErr.StatusCode)
		require.Equal(t, "AuthorizationFailed", azErr.Code)
		require.Equal(t, "nope", azErr.Message)
	})
}

func TestRestClient_Authenticate(t *testing.T) {
	jwt := testJWT(t, map[string]interface{}{
		"oid": "11111111-2222-3333-4444-555555555555",
		"upn": "alice@contoso.com",
		"tid": "tenant-id",
	})

	client, err := NewRestClient("https://management.azure.com", config.Config{JWT: jwt})
	require.NoError(t, err)

	claims, err := client.Authenticate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "11111111-2222-3333-4444-555555555555", claims.PrincipalId)
	require.Equal(t, "alice@contoso.com", claims.UserPrincipalName)
	require.Equal(t, "tenant-id", claims.TenantId)
}
