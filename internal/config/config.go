package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	// Two independent token classes: a leaked admin secret must not be
	// usable to forge user tokens and vice versa.
	UserJWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"user_jwt"`

	AdminJWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"admin_jwt"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		BasePath   string `yaml:"base_path"`
		BaseURL    string `yaml:"base_url"`
		MaxSize    int64  `yaml:"max_size"`
		HostKey    string `yaml:"host_key"`    // image-host credential
		HostSecret string `yaml:"host_secret"` // image-host credential
	} `yaml:"storage"`

	SiteURL string `yaml:"site_url"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. When DATABASE_URL is present the whole
// configuration comes from the environment (container and test mode);
// otherwise it is read from CONFIG_PATH (default config/config.yaml).
func LoadConfig() {
	var cfg Config

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.UserJWT.Secret = os.Getenv("USER_JWT_SECRET")
	cfg.AdminJWT.Secret = os.Getenv("ADMIN_JWT_SECRET")

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("SMTP_FROM")

	cfg.Storage.BasePath = os.Getenv("STORAGE_PATH")
	cfg.Storage.HostKey = os.Getenv("IMAGE_HOST_KEY")
	cfg.Storage.HostSecret = os.Getenv("IMAGE_HOST_SECRET")

	cfg.SiteURL = os.Getenv("SITE_URL")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.UserJWT.TTLHours == 0 {
		cfg.UserJWT.TTLHours = 7 * 24
	}
	if cfg.AdminJWT.TTLHours == 0 {
		cfg.AdminJWT.TTLHours = 12
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploads"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/api/v1/files"
	}
	if cfg.Storage.MaxSize == 0 {
		cfg.Storage.MaxSize = 5 * 1024 * 1024
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "Apna Journey"
	}
}

// Validate checks the settings the service cannot run without. A missing
// token secret must stop startup: a blank secret would make every signed
// token forgeable.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database DSN is not configured")
	}
	if c.UserJWT.Secret == "" {
		return errors.New("user JWT secret is not configured")
	}
	if c.AdminJWT.Secret == "" {
		return errors.New("admin JWT secret is not configured")
	}
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
