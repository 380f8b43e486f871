package config

import (
	"flag"
	"os"
)

type Config struct {
	Addr        string
	DatabaseDSN string
	LogLevel    string
	LogFormat   string
}

// Parse lee flags y después env (env gana, para despliegues).
// Sin DSN el servicio corre con storage in-memory.
func Parse() Config {
	var cfg Config

	flag.StringVar(&cfg.Addr, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseDSN, "d", "", "postgres dsn (empty = in-memory storage)")
	flag.StringVar(&cfg.LogLevel, "l", "info", "log level")
	flag.StringVar(&cfg.LogFormat, "log-format", "text", "log format (text|json)")
	flag.Parse()

	if v := os.Getenv("SERVER_ADDRESS"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}
