// README: Config loader with env defaults for HTTP, Redis, LLM, and Places settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Session struct {
		TTL time.Duration
	}
	LLM struct {
		// Provider selects the chat backend, "gemini" or "openai".
		Provider  string
		GeminiKey string
		OpenAIKey string
	}
	Places struct {
		// Key may be empty, place enhancement is then skipped.
		Key string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("NOMADDAY_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("NOMADDAY_REDIS_ADDR", "localhost:6379")
	cfg.Session.TTL = time.Duration(envOrDefaultInt("NOMADDAY_SESSION_TTL_HOURS", 24)) * time.Hour
	cfg.LLM.Provider = envOrDefault("NOMADDAY_LLM_PROVIDER", "gemini")
	cfg.LLM.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.LLM.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Places.Key = os.Getenv("GOOGLE_PLACES_API_KEY")

	switch cfg.LLM.Provider {
	case "gemini":
		if cfg.LLM.GeminiKey == "" {
			return cfg, fmt.Errorf("GEMINI_API_KEY is required when NOMADDAY_LLM_PROVIDER=gemini")
		}
	case "openai":
		if cfg.LLM.OpenAIKey == "" {
			return cfg, fmt.Errorf("OPENAI_API_KEY is required when NOMADDAY_LLM_PROVIDER=openai")
		}
	default:
		return cfg, fmt.Errorf("unknown NOMADDAY_LLM_PROVIDER %q", cfg.LLM.Provider)
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
