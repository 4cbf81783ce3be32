package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DBConfig struct {
	DSN string `yaml:"dsn"`
}

type SessionConfig struct {
	Secret string `yaml:"secret"`
	// TTLHours bounds how long an auth session stays valid. Default 72.
	TTLHours int `yaml:"ttl_hours"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type MQConfig struct {
	URL string `yaml:"url"`
}

type StorageConfig struct {
	Dir     string `yaml:"dir"`
	BaseURL string `yaml:"base_url"`
}

type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Session SessionConfig `yaml:"session"`
	Redis   RedisConfig   `yaml:"redis"`
	MQ      MQConfig      `yaml:"mq"`
	Storage StorageConfig `yaml:"storage"`
	Admin   AdminConfig   `yaml:"admin"`
}

// Load reads config.yaml when present, then lets environment variables
// override it. A .env file is folded into the environment first.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	if f, err := os.Open("config.yaml"); err == nil {
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			log.Fatalf("failed to decode config.yaml: %v", err)
		}
		_ = f.Close()
	}

	overrideFromEnv(cfg)
	applyDefaults(cfg)

	if cfg.DB.DSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.Session.Secret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}

func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.DB.DSN = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("MQ_URL"); v != "" {
		cfg.MQ.URL = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("UPLOAD_BASE_URL"); v != "" {
		cfg.Storage.BaseURL = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = 72
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = "./data/uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/uploads"
	}
}
