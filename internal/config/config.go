package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Logger LoggerConfig
	Engine EngineConfig
	Auth   AuthConfig
	Essay  EssayConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DBConfig points at the SQLite question bank.
type DBConfig struct {
	Path string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// EngineConfig carries the evaluation engine defaults. Tone is one of
// encouraging, neutral or strict.
type EngineConfig struct {
	MaxHints            int
	Tone                string
	EnableEncouragement bool
	EnableAdaptive      bool
	SessionTTL          time.Duration
}

// AuthConfig configures the anonymous learner-session tokens.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// EssayConfig configures the optional LLM essay-grading collaborator.
type EssayConfig struct {
	Enabled   bool
	ServerURL string
	Model     string
}

// LoadConfig reads config.yaml via viper and applies environment overrides.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine: defaults plus env cover every field.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Path: viper.GetString("db.path"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Engine: EngineConfig{
			MaxHints:            viper.GetInt("engine.max_hints"),
			Tone:                viper.GetString("engine.tone"),
			EnableEncouragement: viper.GetBool("engine.enable_encouragement"),
			EnableAdaptive:      viper.GetBool("engine.enable_adaptive"),
			SessionTTL:          viper.GetDuration("engine.session_ttl"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("auth.jwt_secret"),
			TokenTTL:  viper.GetDuration("auth.token_ttl"),
		},
		Essay: EssayConfig{
			Enabled:   viper.GetBool("essay.enabled"),
			ServerURL: viper.GetString("essay.server_url"),
			Model:     viper.GetString("essay.model"),
		},
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("db.path", "grammarlab.db")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("engine.max_hints", 3)
	viper.SetDefault("engine.tone", "encouraging")
	viper.SetDefault("engine.enable_encouragement", false)
	viper.SetDefault("engine.enable_adaptive", true)
	viper.SetDefault("engine.session_ttl", 2*time.Hour)
	viper.SetDefault("auth.token_ttl", 24*time.Hour)
	viper.SetDefault("essay.enabled", false)
	viper.SetDefault("essay.model", "qwen3:0.6b")
}

func applyEnvOverrides(cfg *Config) {
	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DB.Path = path
	}
	if address := os.Getenv("REDIS_ADDRESS"); address != "" {
		cfg.Redis.Address = address
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if server := os.Getenv("ESSAY_SERVER_URL"); server != "" {
		cfg.Essay.ServerURL = server
	}
}

// DSN returns the SQLite connection string for the question bank.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", c.DB.Path)
}
