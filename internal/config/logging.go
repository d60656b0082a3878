package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// ConfigureLogging applies the logging section to the standard logrus logger
func ConfigureLogging(cfg LoggingConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return &ConfigError{Op: "parse logging level", Err: err}
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
