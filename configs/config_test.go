package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config := LoadConfig()

	assert.Equal(t, "http://localhost:8080/api", config.API.BaseURL)
	assert.Equal(t, 30, config.API.TimeoutSeconds)
	assert.Equal(t, "file", config.State.Backend)
	assert.Equal(t, "default", config.State.Profile)
	assert.Equal(t, "localhost:6379", config.Redis.URL)
	assert.Equal(t, "8080", config.DevServer.Port)
	assert.Equal(t, 24, config.DevServer.ExpiryHours)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SHOP_API_URL", "https://shop.example.com/api")
	t.Setenv("SHOP_HTTP_TIMEOUT", "5")
	t.Setenv("SHOP_STORAGE", "redis")
	t.Setenv("SHOP_PROFILE", "alice")
	t.Setenv("SHOP_REDIS_DB", "3")

	config := LoadConfig()

	assert.Equal(t, "https://shop.example.com/api", config.API.BaseURL)
	assert.Equal(t, 5, config.API.TimeoutSeconds)
	assert.Equal(t, "redis", config.State.Backend)
	assert.Equal(t, "alice", config.State.Profile)
	assert.Equal(t, 3, config.Redis.DB)
}

func TestLoadConfigYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://yaml.example.com/api
state:
  backend: redis
  profile: from-file
`), 0o600))
	t.Setenv("SHOP_CONFIG", path)

	config := LoadConfig()

	assert.Equal(t, "http://yaml.example.com/api", config.API.BaseURL)
	assert.Equal(t, "redis", config.State.Backend)
	assert.Equal(t, "from-file", config.State.Profile)
	// Values the file does not mention keep their defaults.
	assert.Equal(t, 30, config.API.TimeoutSeconds)
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://yaml.example.com/api\n"), 0o600))
	t.Setenv("SHOP_CONFIG", path)
	t.Setenv("SHOP_API_URL", "http://env.example.com/api")

	config := LoadConfig()
	assert.Equal(t, "http://env.example.com/api", config.API.BaseURL)
}

func TestGetEnvIntIgnoresGarbage(t *testing.T) {
	t.Setenv("SHOP_HTTP_TIMEOUT", "not-a-number")

	config := LoadConfig()
	assert.Equal(t, 30, config.API.TimeoutSeconds)
}
