package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "grid-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging points the standard logger at logs/grid-snake.log when debug is set
// Otherwise all output is discarded since the screen owns stdout
// The returned file is nil when logging is disabled or the file could not be opened
func setupLogging(debug bool) *os.File {
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if !debug {
		log.SetOutput(io.Discard)
		log.SetLevel(log.PanicLevel)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("grid-snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotate: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.WithField("pid", os.Getpid()).Info("logging started")
	return f
}
