package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/habitual/internal/config"
)

func newLogger(settings config.Settings) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)

	if settings.Environment == config.EnvironmentDevelopment {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
