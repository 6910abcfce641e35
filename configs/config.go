package configs

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API       APIConfig       `yaml:"api"`
	State     StateConfig     `yaml:"state"`
	Redis     RedisConfig     `yaml:"redis"`
	DevServer DevServerConfig `yaml:"devserver"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// StateConfig selects where the client persists its cart and session.
// Backend is "file" or "redis".
type StateConfig struct {
	Backend string `yaml:"backend"`
	Dir     string `yaml:"dir"`
	Profile string `yaml:"profile"`
}

type RedisConfig struct {
	URL      string `yaml:"url"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DevServerConfig struct {
	Port        string `yaml:"port"`
	Mode        string `yaml:"mode"`
	JWTSecret   string `yaml:"jwt_secret"`
	ExpiryHours int    `yaml:"jwt_expiry_hours"`
}

// LoadConfig builds configuration from defaults, an optional YAML file
// named by SHOP_CONFIG, and finally environment variables, in that order.
func LoadConfig() *Config {
	config := &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api",
			TimeoutSeconds: 30,
		},
		State: StateConfig{
			Backend: "file",
			Dir:     defaultStateDir(),
			Profile: "default",
		},
		Redis: RedisConfig{
			URL: "localhost:6379",
		},
		DevServer: DevServerConfig{
			Port:        "8080",
			Mode:        "debug",
			JWTSecret:   "dev-secret-key",
			ExpiryHours: 24,
		},
	}

	if path := os.Getenv("SHOP_CONFIG"); path != "" {
		if err := loadFile(config, path); err != nil {
			log.Printf("Failed to load config file %s: %v", path, err)
		}
	}

	config.API.BaseURL = getEnv("SHOP_API_URL", config.API.BaseURL)
	config.API.TimeoutSeconds = getEnvInt("SHOP_HTTP_TIMEOUT", config.API.TimeoutSeconds)
	config.State.Backend = getEnv("SHOP_STORAGE", config.State.Backend)
	config.State.Dir = getEnv("SHOP_STATE_DIR", config.State.Dir)
	config.State.Profile = getEnv("SHOP_PROFILE", config.State.Profile)
	config.Redis.URL = getEnv("SHOP_REDIS_URL", config.Redis.URL)
	config.Redis.Password = getEnv("SHOP_REDIS_PASSWORD", config.Redis.Password)
	config.Redis.DB = getEnvInt("SHOP_REDIS_DB", config.Redis.DB)
	config.DevServer.Port = getEnv("SERVER_PORT", config.DevServer.Port)
	config.DevServer.Mode = getEnv("GIN_MODE", config.DevServer.Mode)
	config.DevServer.JWTSecret = getEnv("JWT_SECRET", config.DevServer.JWTSecret)
	config.DevServer.ExpiryHours = getEnvInt("JWT_EXPIRY_HOURS", config.DevServer.ExpiryHours)

	return config
}

func loadFile(config *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shopclient"
	}
	return filepath.Join(home, ".shopclient")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
