package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func Init() {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func Env() string {
	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		return "development"
	}
	return env
}

func IsDevelopment() bool {
	return Env() == "development"
}
