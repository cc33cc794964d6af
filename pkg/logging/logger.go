/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger.go
Description: Logging system for the Akaylee feature engine. Provides structured
logging with timestamped files, multiple output formats, and pipeline-specific
helpers for fit, transform, and dataset events.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"`
	MaxFiles  int       `json:"max_files"`
	Timestamp bool      `json:"timestamp"`
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid or missing values
func (c *LoggerConfig) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.MaxFiles <= 0 {
		return fmt.Errorf("max_files must be positive")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides structured logging for the feature pipeline
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
}

// NewLogger creates a new logger instance
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:     LogLevelInfo,
			Format:    LogFormatText,
			OutputDir: "./logs",
			MaxFiles:  10,
			Timestamp: true,
			Colors:    true,
		}
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return l, nil
}

// setup configures the logger with the given configuration
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   l.config.Timestamp,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})
	case LogFormatCustom:
		l.logger.SetFormatter(&PipelineFormatter{
			Timestamp: l.config.Timestamp,
			Colors:    l.config.Colors,
		})
	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}

	return l.setupFileOutput()
}

// setupFileOutput configures file-based logging alongside the console
func (l *Logger) setupFileOutput() error {
	if l.config.OutputDir == "" {
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("akaylee-features_%s.log", timestamp)
	path := filepath.Join(l.config.OutputDir, filename)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stdout, file))

	l.logger.WithFields(logrus.Fields{
		"start_time": l.startTime.Format(time.RFC3339),
		"log_file":   path,
		"level":      l.config.Level,
		"format":     l.config.Format,
	}).Info("Akaylee feature engine logging initialized")

	return nil
}

// cleanup removes old log files beyond the retention limit
func (l *Logger) cleanup() error {
	if l.config.OutputDir == "" {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(l.config.OutputDir, "akaylee-features_*.log"))
	if err != nil {
		return err
	}
	if len(files) <= l.config.MaxFiles {
		return nil
	}

	sort.Slice(files, func(i, j int) bool {
		statI, _ := os.Stat(files[i])
		statJ, _ := os.Stat(files[j])
		return statI.ModTime().Before(statJ.ModTime())
	})

	for i := 0; i < len(files)-l.config.MaxFiles; i++ {
		os.Remove(files[i])
	}
	return nil
}

// Pipeline-specific logging methods

// LogFit logs the completion of a generator fit
func (l *Logger) LogFit(generator string, generatorID string, featuresIn, featuresOut int, duration time.Duration) {
	l.logger.WithFields(logrus.Fields{
		"generator":    generator,
		"generator_id": generatorID,
		"features_in":  featuresIn,
		"features_out": featuresOut,
		"duration":     duration,
	}).Info("Generator fit")
}

// LogTransform logs a transform application
func (l *Logger) LogTransform(generator string, generatorID string, rows, columns int, duration time.Duration) {
	l.logger.WithFields(logrus.Fields{
		"generator":    generator,
		"generator_id": generatorID,
		"rows":         rows,
		"columns":      columns,
		"duration":     duration,
	}).Info("Frame transformed")
}

// LogDataset logs a dataset load
func (l *Logger) LogDataset(source string, rows, columns int, duration time.Duration) {
	l.logger.WithFields(logrus.Fields{
		"source":   source,
		"rows":     rows,
		"columns":  columns,
		"duration": duration,
	}).Info("Dataset loaded")
}

// Close closes the logger and performs cleanup
func (l *Logger) Close() error {
	if l.fileHandle != nil {
		l.fileHandle.Close()
	}
	if err := l.cleanup(); err != nil {
		return fmt.Errorf("failed to cleanup log files: %w", err)
	}
	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
