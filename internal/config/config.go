package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type MarketConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	MarketDB     `yaml:"market_db"`
	LogConfig    `yaml:"log_config"`
	Auth         `yaml:"auth"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MarketDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Auth struct {
	JWTSecret   string `yaml:"jwt_secret" env:"JWT_SECRET"`
	EmailDomain string `yaml:"email_domain"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic"`
}

func MustLoad() *MarketConfig {

	// Processing env config variable and file
	configPath := os.Getenv("MARKET_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("MARKET_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg MarketConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
