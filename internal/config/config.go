package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Auth       Auth       `yaml:"auth"`
	Payments   Payments   `yaml:"payments"`
}

// Storage selects the backend: "postgres" or "sqlite".
type Storage struct {
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"postgres"`
	SQLitePath string `yaml:"sqlite_path" env:"STORAGE_SQLITE_PATH" env-default:"./storage/event-hub.db"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"event_hub"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Auth struct {
	JWTSecret      string         `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	TokenTTL       time.Duration  `yaml:"token_ttl" env:"AUTH_TOKEN_TTL" env-default:"24h"`
	CookieName     string         `yaml:"cookie_name" env:"AUTH_COOKIE_NAME" env-default:"event_hub_token"`
	BootstrapAdmin BootstrapAdmin `yaml:"bootstrap_admin"`
}

// BootstrapAdmin is the administrator ensured at startup. An empty Username skips it.
type BootstrapAdmin struct {
	Username string `yaml:"username" env:"AUTH_ADMIN_USERNAME"`
	Email    string `yaml:"email" env:"AUTH_ADMIN_EMAIL"`
	Password string `yaml:"password" env:"AUTH_ADMIN_PASSWORD"`
}

// Payments configures the simulated bank. A zero PendingTTL disables the stale payment sweeper.
type Payments struct {
	Currency      string        `yaml:"currency" env:"PAYMENTS_CURRENCY" env-default:"RUB"`
	BankName      string        `yaml:"bank_name" env:"PAYMENTS_BANK_NAME" env-default:"Demo Bank MIR"`
	PendingTTL    time.Duration `yaml:"pending_ttl" env:"PAYMENTS_PENDING_TTL" env-default:"0s"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"PAYMENTS_SWEEP_INTERVAL" env-default:"1m"`
	CancelCutoff  time.Duration `yaml:"cancel_cutoff" env:"PAYMENTS_CANCEL_CUTOFF" env-default:"24h"`
}

// MustLoad reads the config file named by -config or CONFIG_PATH and exits on failure.
func MustLoad() *Config {
	// .env is optional
	_ = godotenv.Load()

	path := fetchConfigPath()
	if path == "" {
		log.Fatal("config path is not set")
	}

	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, err
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fetchConfigPath: flag > env.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
