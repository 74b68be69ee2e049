// Package common provides shared constants, types, and utilities
// used across the Greeter application.
package common

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// AppLogger writes leveled, timestamped lines tagged with a per-process
// session ID. File output is rotated and gzipped once it grows past
// maxFileSize.
type AppLogger struct {
	mu          sync.Mutex
	level       LogLevel
	out         io.Writer
	logFile     *os.File
	filePath    string
	session     string
	maxFileSize int64
	maxBackups  int
}

var _ Logger = (*AppLogger)(nil)

// LogConfig holds configuration options for the logger.
type LogConfig struct {
	Level       LogLevel
	EnableFile  bool
	Dir         string // defaults to ~/.config/greeter/logs
	MaxFileSize int64  // in bytes, default 5MB
	MaxBackups  int    // number of rotated files to keep, default 5
}

var (
	defaultLogger *AppLogger
	loggerOnce    sync.Once
)

const (
	defaultMaxFileSize = 5 * 1024 * 1024
	defaultMaxBackups  = 5
)

// NewLogger returns a logger writing to w at the given level.
func NewLogger(w io.Writer, level LogLevel) *AppLogger {
	return &AppLogger{
		level:       level,
		out:         w,
		session:     uuid.NewString()[:8],
		maxFileSize: defaultMaxFileSize,
		maxBackups:  defaultMaxBackups,
	}
}

// GetLogger returns the process-wide logger. It writes to stderr until
// InitLogger enables file output.
func GetLogger() *AppLogger {
	loggerOnce.Do(func() {
		defaultLogger = NewLogger(os.Stderr, LevelInfo)
	})
	return defaultLogger
}

// InitLogger configures the process-wide logger.
// Should be called early in application startup.
func InitLogger(config LogConfig) error {
	logger := GetLogger()
	logger.SetLevel(config.Level)

	logger.mu.Lock()
	if config.MaxFileSize > 0 {
		logger.maxFileSize = config.MaxFileSize
	}
	if config.MaxBackups > 0 {
		logger.maxBackups = config.MaxBackups
	}
	logger.mu.Unlock()

	if !config.EnableFile {
		return nil
	}

	dir := config.Dir
	if dir == "" {
		dir = GetLogDir()
		if dir == "" {
			return fmt.Errorf("cannot resolve log directory")
		}
	}
	return logger.OpenFile(filepath.Join(dir, LogFileName))
}

// SetLevel sets the minimum log level.
func (l *AppLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput replaces the console destination. File output, when enabled,
// keeps receiving every line.
func (l *AppLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// Session returns the short session ID stamped on every line.
func (l *AppLogger) Session() string {
	return l.session
}

// OpenFile mirrors log output into path, rotating it first if it is
// already over the size limit.
func (l *AppLogger) OpenFile(path string) error {
	dir := filepath.Dir(path)
	if isSymlink(dir) || isSymlink(path) {
		return fmt.Errorf("refusing to log through a symlink: %s", path)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	if l.needsRotation(path) {
		l.rotate(path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		l.logFile.Close()
	}
	l.logFile = file
	l.filePath = path
	return nil
}

func isSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

func (l *AppLogger) needsRotation(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Size() >= l.maxFileSize
}

// rotate moves path to path.<timestamp>.gz and prunes old archives.
// The live file handle, if it points at path, is closed first.
func (l *AppLogger) rotate(path string) {
	l.mu.Lock()
	if l.logFile != nil && l.filePath == path {
		l.logFile.Close()
		l.logFile = nil
	}
	l.mu.Unlock()

	archive := fmt.Sprintf("%s.%s.gz", path, time.Now().Format("20060102-150405.000"))
	if err := gzipFile(path, archive); err != nil {
		os.Rename(path, archive[:len(archive)-len(".gz")])
	} else {
		os.Remove(path)
	}

	l.pruneArchives(path)
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// pruneArchives keeps only the newest maxBackups archives of path.
func (l *AppLogger) pruneArchives(path string) {
	matches, err := filepath.Glob(path + ".*")
	if err != nil || len(matches) <= l.maxBackups {
		return
	}

	modTime := func(p string) time.Time {
		info, err := os.Stat(p)
		if err != nil {
			return time.Time{}
		}
		return info.ModTime()
	}
	sort.Slice(matches, func(i, j int) bool {
		return modTime(matches[i]).Before(modTime(matches[j]))
	})

	for _, old := range matches[:len(matches)-l.maxBackups] {
		os.Remove(old)
	}
}

// GetLogDir returns the default log directory path.
func GetLogDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", ConfigDirName, "logs")
}

func (l *AppLogger) log(level LogLevel, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	caller := "???"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	line := fmt.Sprintf("%s [%s] %s %s: %s\n",
		time.Now().Format("2006/01/02 15:04:05"), level, l.session, caller, msg)

	if l.out != nil {
		io.WriteString(l.out, line)
	}
	if l.logFile != nil {
		l.logFile.WriteString(line)
	}
}

// Debug logs a debug message.
func (l *AppLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *AppLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *AppLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *AppLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// Shorthand functions for the default logger.

// LogDebug logs a debug message to the default logger.
func LogDebug(msg string, args ...interface{}) {
	GetLogger().log(LevelDebug, msg, args...)
}

// LogInfo logs an info message to the default logger.
func LogInfo(msg string, args ...interface{}) {
	GetLogger().log(LevelInfo, msg, args...)
}

// LogWarn logs a warning message to the default logger.
func LogWarn(msg string, args ...interface{}) {
	GetLogger().log(LevelWarn, msg, args...)
}

// LogError logs an error message to the default logger.
func LogError(msg string, args ...interface{}) {
	GetLogger().log(LevelError, msg, args...)
}

// Close closes the log file. Should be called on application shutdown.
func (l *AppLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	return err
}

// CloseLogger closes the default logger.
func CloseLogger() error {
	return GetLogger().Close()
}
