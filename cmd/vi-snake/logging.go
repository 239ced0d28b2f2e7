package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

const (
	logDir      = "logs"
	logFileName = "vi-snake.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate above 10 MiB
)

// setupLogging routes the standard logger to logs/vi-snake.log when debug is set
// Logging is discarded otherwise; the terminal is owned by the game
// Returns the open log file, nil when disabled or on failure
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := archiveLog(logPath); err != nil {
			// Keep going with a truncated file rather than an unbounded one
			_ = os.Truncate(logPath, 0)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix(fmt.Sprintf("[%s] ", uuid.New().String()[:8]))
	return f
}

// archiveLog compresses logPath into a timestamped .log.zst next to it and removes the original
func archiveLog(logPath string) error {
	stamp := time.Now().Format("20060102-150405")
	archived := filepath.Join(filepath.Dir(logPath), fmt.Sprintf("vi-snake-%s.log.zst", stamp))

	src, err := os.Open(logPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(archived)
	if err != nil {
		return err
	}

	if err := compressTo(dst, src); err != nil {
		_ = os.Remove(archived)
		return fmt.Errorf("compress %s: %w", logPath, err)
	}

	return os.Remove(logPath)
}

// compressTo writes src to dst as a zstd stream and closes dst
func compressTo(dst *os.File, src io.Reader) error {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = dst.Close()
		return err
	}
	if _, err := io.Copy(enc, src); err != nil {
		_ = enc.Close()
		_ = dst.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
