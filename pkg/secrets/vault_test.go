package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiii0209/Yatraa-sub000/pkg/retry"
)

func testConfig(addr string) VaultConfig {
	return VaultConfig{
		Enabled:   true,
		Addr:      addr,
		Token:     "dev-token",
		Mount:     "secret",
		Path:      "yatraa/api",
		KVVersion: 2,
		Timeout:   time.Second,
		Retry: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  time.Millisecond,
			MaxDelay:      time.Millisecond,
			BackoffFactor: 1,
		},
	}
}

func TestApplyVault_KVv2(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/yatraa/api", r.URL.Path)
		assert.Equal(t, "dev-token", r.Header.Get("X-Vault-Token"))
		w.Write([]byte(`{"data":{"data":{"YATRAA_TEST_REDIS_PASSWORD":"s3cret","YATRAA_TEST_REDIS_DB":2}}}`))
	}))
	defer srv.Close()

	t.Setenv("YATRAA_TEST_REDIS_PASSWORD", "")
	t.Setenv("YATRAA_TEST_REDIS_DB", "")

	result, err := ApplyVault(context.Background(), testConfig(srv.URL))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"YATRAA_TEST_REDIS_PASSWORD", "YATRAA_TEST_REDIS_DB"}, result.Loaded)
	assert.Equal(t, "s3cret", os.Getenv("YATRAA_TEST_REDIS_PASSWORD"))
	assert.Equal(t, "2", os.Getenv("YATRAA_TEST_REDIS_DB"))
}

func TestApplyVault_KeepsExistingUnlessOverwrite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/kv/yatraa/api", r.URL.Path)
		w.Write([]byte(`{"data":{"YATRAA_TEST_TYPESENSE_API_KEY":"from-vault"}}`))
	}))
	defer srv.Close()

	t.Setenv("YATRAA_TEST_TYPESENSE_API_KEY", "from-env")

	cfg := testConfig(srv.URL)
	cfg.Mount = "kv"
	cfg.KVVersion = 1

	result, err := ApplyVault(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"YATRAA_TEST_TYPESENSE_API_KEY"}, result.Skipped)
	assert.Equal(t, "from-env", os.Getenv("YATRAA_TEST_TYPESENSE_API_KEY"))

	cfg.Overwrite = true
	_, err = ApplyVault(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "from-vault", os.Getenv("YATRAA_TEST_TYPESENSE_API_KEY"))
}

func TestApplyVault_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"data":{"data":{}}}`))
	}))
	defer srv.Close()

	_, err := ApplyVault(context.Background(), testConfig(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestApplyVault_ForbiddenIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"errors":["permission denied"]}`))
	}))
	defer srv.Close()

	_, err := ApplyVault(context.Background(), testConfig(srv.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestApplyVault_Disabled(t *testing.T) {
	result, err := ApplyVault(context.Background(), VaultConfig{})
	require.NoError(t, err)
	assert.Empty(t, result.Loaded)

	_, err = ApplyVault(context.Background(), VaultConfig{Enabled: true})
	assert.Error(t, err)
}

func TestVaultConfigFromEnv(t *testing.T) {
	t.Setenv("VAULT_ENABLED", "TRUE")
	t.Setenv("VAULT_ADDR", "http://vault:8200")
	t.Setenv("VAULT_KV_VERSION", "7")
	t.Setenv("VAULT_TIMEOUT_MS", "250")

	cfg := VaultConfigFromEnv()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://vault:8200", cfg.Addr)
	assert.Equal(t, "secret", cfg.Mount)
	assert.Equal(t, 2, cfg.KVVersion)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}
