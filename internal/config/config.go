package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	EscrowDB   `yaml:"escrow_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      KafkaConfig    `yaml:"kafka"`
	Auth       AuthConfig     `yaml:"auth"`
	Escrow     EscrowParams   `yaml:"escrow"`
	Pricing    PricingParams  `yaml:"pricing"`
	Notifier   NotifierConfig `yaml:"notifier"`
	Metrics    MetricsConfig  `yaml:"metrics"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn" env:"ESCROW_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel   string `yaml:"log_level" env-default:"info"`
	LogFormat  string `yaml:"log_format" env-default:"text"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb" env-default:"100"`
	MaxBackups int    `yaml:"max_backups" env-default:"3"`
	MaxAgeDays int    `yaml:"max_age_days" env-default:"28"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic" env-default:"escrow-events"`
}

type AuthConfig struct {
	HMACSecret string `yaml:"hmac_secret" env:"AUTH_HMAC_SECRET"`
	Issuer     string `yaml:"issuer" env-default:"dinepay"`
}

type EscrowParams struct {
	TokenSecret          string        `yaml:"token_secret" env:"ESCROW_TOKEN_SECRET"`
	GeofenceRadiusMeters float64       `yaml:"geofence_radius_meters" env-default:"50"`
	CommissionRate       float64       `yaml:"commission_rate" env-default:"0.15"`
	PackageDiscount      float64       `yaml:"package_discount" env-default:"0.15"`
	HoldTTL              time.Duration `yaml:"hold_ttl" env-default:"4h"`
	ReaperInterval       time.Duration `yaml:"reaper_interval" env-default:"30s"`
}

type PricingParams struct {
	Benchmarks    map[string]float64 `yaml:"benchmarks"`
	PercentOfMeal float64            `yaml:"percent_of_meal" env-default:"0.08"`
	MinimumFee    float64            `yaml:"minimum_fee" env-default:"5.00"`
	MaximumFee    float64            `yaml:"maximum_fee" env-default:"25.00"`
}

type NotifierConfig struct {
	CallbackURL string `yaml:"callback_url"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr" env-default:":9091"`
}

func MustLoad() *EscrowConfig {
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
