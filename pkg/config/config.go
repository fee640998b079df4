package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Backend base URLs selected when API_BASE_URL is not set explicitly.
const (
	defaultLocalAPI    = "http://localhost:5000/api"
	defaultDeployedAPI = "https://eduplatform-backend-k9fr.onrender.com"
)

type Config struct {
	Env  string
	Port int

	API           APIConfig
	Log           LogConfig
	UI            UIConfig
	State         StateConfig
	Announcements AnnouncementsConfig
	Exports       ExportsConfig
}

// APIConfig points the transport client at the backend.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// UIConfig tunes the served front end.
type UIConfig struct {
	SessionSecret  string
	SearchDebounce time.Duration
}

// StateConfig locates the durable client state file (token, theme).
type StateConfig struct {
	Dir string
}

// AnnouncementsConfig governs the unread-count poll.
type AnnouncementsConfig struct {
	PollInterval time.Duration
}

// ExportsConfig toggles the teacher-side PDF/CSV exports.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	baseURL := strings.TrimRight(v.GetString("API_BASE_URL"), "/")
	if baseURL == "" {
		if cfg.Env == EnvProduction {
			baseURL = defaultDeployedAPI
		} else {
			baseURL = defaultLocalAPI
		}
	}
	cfg.API = APIConfig{
		BaseURL: baseURL,
		Timeout: parseDuration(v.GetString("API_TIMEOUT"), 30*time.Second),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.UI = UIConfig{
		SessionSecret:  v.GetString("SESSION_SECRET"),
		SearchDebounce: parseDuration(v.GetString("SEARCH_DEBOUNCE"), 300*time.Millisecond),
	}

	cfg.State = StateConfig{
		Dir: v.GetString("STATE_DIR"),
	}

	cfg.Announcements = AnnouncementsConfig{
		PollInterval: parseDuration(v.GetString("UNREAD_POLL_INTERVAL"), 30*time.Second),
	}

	cfg.Exports = ExportsConfig{
		Enabled: v.GetBool("ENABLE_EXPORTS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("API_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SESSION_SECRET", "dev-session-secret")
	v.SetDefault("SEARCH_DEBOUNCE", "300ms")
	v.SetDefault("STATE_DIR", ".eduplatform")
	v.SetDefault("UNREAD_POLL_INTERVAL", "30s")
	v.SetDefault("ENABLE_EXPORTS", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
