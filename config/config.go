package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type FirebaseConfig struct {
	ProjectID   string `yaml:"project_id" env:"FIREBASE_PROJECT_ID"`
	PrivateKey  string `yaml:"private_key" env:"FIREBASE_PRIVATE_KEY"`
	ClientEmail string `yaml:"client_email" env:"FIREBASE_CLIENT_EMAIL"`
	// CredentialsFile is used instead of the three fields above when set.
	CredentialsFile string `yaml:"credentials_file" env:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Key returns the private key with escaped "\n" sequences expanded.
func (f FirebaseConfig) Key() string {
	return strings.ReplaceAll(f.PrivateKey, `\n`, "\n")
}

func (f FirebaseConfig) Validate() error {
	if f.CredentialsFile != "" {
		return nil
	}
	if f.ProjectID == "" || f.PrivateKey == "" || f.ClientEmail == "" {
		return errors.New("FIREBASE_PROJECT_ID, FIREBASE_PRIVATE_KEY and FIREBASE_CLIENT_EMAIL must be set (or GOOGLE_APPLICATION_CREDENTIALS)")
	}
	return nil
}

type Config struct {
	Port         string         `yaml:"port" env:"PORT" env-default:"3000"`
	LogLevel     string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogPretty    bool           `yaml:"log_pretty" env:"LOG_PRETTY" env-default:"false"`
	JWTSecret    string         `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration  `yaml:"jwt_ttl" env:"JWT_TTL" env-default:"10m"`
	AuthRequired bool           `yaml:"auth_required" env:"AUTH_REQUIRED" env-default:"false"`
	CORSOrigins  []string       `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
	Firebase     FirebaseConfig `yaml:"firebase"`
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env (if any), then the YAML file at configPath, then the environment.
// A missing config file is not an error.
func Load(configPath string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load")
	}

	var cfg Config
	if configPath != "" {
		err := cleanenv.ReadConfig(configPath, &cfg)
		if err == nil {
			return cfg, nil
		}
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot read env: %w", err)
	}
	return cfg, nil
}
