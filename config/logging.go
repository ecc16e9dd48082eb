package config

import "os"

import "github.com/pkg/errors"
import "github.com/sirupsen/logrus"

// Validate validates logging configuration
func (l *LoggingConfig) Validate() error {
	if _, err := logrus.ParseLevel(l.Level); err != nil {
		return err
	}
	switch l.Format {
	case "text", "json":
		return nil
	}
	return errors.Errorf("format must be 'text' or 'json', got '%s'", l.Format)
}

// NewLogger creates a logger writing to stderr
func NewLogger(l LoggingConfig) (*logrus.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	level, _ := logrus.ParseLevel(l.Level)
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	if l.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
