package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress       string `env:"RUN_ADDRESS"`
	DatabaseDSN      string `env:"DATABASE_URI"`
	MigrationsDir    string `env:"MIGRATIONS_DIR"`
	JWTProfileSecret string `env:"JWT_PROFILE_SECRET"`
}

func LoadConfig() (*Config, error) {
	// .env не обязателен: в проде переменные приходят из окружения.
	_ = godotenv.Load()

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTProfileSecret == "" {
		return nil, errors.New("JWT profile secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTProfileSecret, "j", "", "JWT signing secret for profile tokens")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTProfileSecret: defaultIfBlank(envConfig.JWTProfileSecret, flagsConfig.JWTProfileSecret),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
