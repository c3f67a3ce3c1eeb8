// Package logger builds the file-backed zap logger
// The terminal owns stdout and stderr, so log output only ever goes to a file
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultDir is used when Config.Dir is empty
	DefaultDir = "logs"
	// FileName is the active log file inside the log directory
	FileName = "bird-shooter.log"
	// MaxSize is the size above which the previous log is rotated aside on startup
	MaxSize = 10 * 1024 * 1024
)

// Config selects whether and where to log
type Config struct {
	Enabled bool
	Level   string // debug, info, warn, error
	Dir     string
}

// Setup returns a logger and a close function
// Disabled logging returns a no-op logger
func Setup(cfg Config) (*zap.Logger, func() error, error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: level %q: %w", cfg.Level, err)
	}

	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logger: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if err := rotate(path, time.Now()); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: open %s: %w", path, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.Lock(f), level)
	log := zap.New(core, zap.AddCaller()).With(zap.String("session", uuid.NewString()))

	closer := func() error {
		_ = log.Sync()
		return f.Close()
	}
	return log, closer, nil
}

// rotate moves an oversized log aside, suffixed with its rotation time
func rotate(path string, now time.Time) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("logger: stat %s: %w", path, err)
	}
	if info.Size() <= MaxSize {
		return nil
	}

	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], now.Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("logger: rotate %s: %w", path, err)
	}
	return nil
}
