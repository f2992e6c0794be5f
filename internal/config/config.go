// Package config define la configuración ambiental de la CLI (logging).
// La carga (flags, env, archivo) la hace internal/cli con viper.
package config

import (
	"fmt"
	"io"

	"animal-registry/internal/platform/logger"
)

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	AppName   string `mapstructure:"app_name"`
}

// Defaults mantiene el logging en warn para que una sesión interactiva
// normal no vea nada en stderr.
func Defaults() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		AppName:   "animal-registry",
	}
}

func (c Config) Validate() error {
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want debug|info|warn|error)", c.LogLevel)
	}
	if !logger.ValidFormat(c.LogFormat) {
		return fmt.Errorf("invalid log_format %q (want text|json)", c.LogFormat)
	}
	return nil
}

func (c Config) LoggerOptions(out io.Writer) logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.LogLevel),
		Format: logger.ParseFormat(c.LogFormat),
		App:    c.AppName,
		Out:    out,
	}
}
