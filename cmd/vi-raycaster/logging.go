package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "vi-raycaster.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate above 10MB
)

// setupLogging routes logrus to logs/vi-raycaster.log when debug is on, otherwise discards
// The terminal owns stdout and stderr while the game runs, so logs never go there
// Level comes from LOG_LEVEL (default debug), format from LOG_FORMAT (json|text)
func setupLogging(debug bool) *os.File {
	logger := logrus.StandardLogger()

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.PanicLevel)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logLevel())
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
	return f
}

func logLevel() logrus.Level {
	name, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

// rotateLog renames an oversized log with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s-%s%s", strings.TrimSuffix(logPath, ext), time.Now().Format("20060102-150405"), ext)
	os.Rename(logPath, rotated)
}
