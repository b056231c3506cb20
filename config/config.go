package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultAdminPassword is the fallback admin secret. Startup warns when it
// is still in use.
const DefaultAdminPassword = "admin123"

type Config struct {
	Server   ServerConfig
	Supabase SupabaseConfig
	Admin    AdminConfig
	Redis    RedisConfig
	App      AppConfig
}

type ServerConfig struct {
	Port      string
	AdminPort string
}

type SupabaseConfig struct {
	URL string
	Key string
}

type AdminConfig struct {
	Password      string
	SessionSecret string
}

type RedisConfig struct {
	Addr string
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8080"),
			AdminPort: getEnv("ADMIN_PORT", "8081"),
		},
		Supabase: SupabaseConfig{
			URL: getEnv("SUPABASE_URL", ""),
			Key: getEnv("SUPABASE_KEY", ""),
		},
		Admin: AdminConfig{
			Password:      getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
			SessionSecret: getEnv("SECRET_KEY", "your-secret-key-change-in-production"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}

	if c.Supabase.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
