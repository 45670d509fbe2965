package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SalesConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	SalesDB      `yaml:"sales_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SalesDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func MustLoad() *SalesConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SALES_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SALES_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SalesConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
