package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "colorcycle.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/colorcycle.log when debug is set
// Otherwise output is discarded since the screen belongs to the renderer
// A log over maxLogSize is moved aside under a timestamped name first
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog renames logPath to colorcycle-<timestamp>.log once it exceeds maxLogSize
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}

	base := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", base, stamp))
	if err := os.Rename(logPath, rotated); err != nil {
		// Start over rather than keep growing the old file
		os.Truncate(logPath, 0)
	}
}
