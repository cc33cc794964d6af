/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logging_test.go
Description: Tests for the logging system. Covers configuration validation
and pipeline-specific formatter output.
*/

package logging

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggerConfigValidate tests configuration validation
func TestLoggerConfigValidate(t *testing.T) {
	valid := &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatCustom,
		OutputDir: t.TempDir(),
		MaxFiles:  5,
	}
	assert.NoError(t, valid.Validate())

	missing := &LoggerConfig{Level: LogLevelInfo, Format: LogFormatText, MaxFiles: 5}
	assert.Error(t, missing.Validate())

	badFormat := &LoggerConfig{Level: LogLevelInfo, Format: "xml", OutputDir: "./logs", MaxFiles: 5}
	assert.Error(t, badFormat.Validate())

	badLevel := &LoggerConfig{Level: "trace", Format: LogFormatText, OutputDir: "./logs", MaxFiles: 5}
	assert.Error(t, badLevel.Validate())
}

// TestNewLoggerWritesFile tests logger creation with file output
func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(&LoggerConfig{
		Level:     LogLevelDebug,
		Format:    LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  3,
		Timestamp: true,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.LogFit("TextSpecialGenerator", "gen-1", 2, 68, 5*time.Millisecond)
	logger.LogTransform("TextSpecialGenerator", "gen-1", 100, 68, 2*time.Millisecond)
	logger.LogDataset("./data.csv", 100, 3, time.Millisecond)
	assert.NotNil(t, logger.GetLogger())
}

// TestPipelineFormatterPrefixes tests message-based prefix selection
func TestPipelineFormatterPrefixes(t *testing.T) {
	formatter := &PipelineFormatter{Timestamp: false, Colors: false}

	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Level:   logrus.InfoLevel,
		Message: "Generator fit",
		Data:    logrus.Fields{"rows": 10},
	}
	out, err := formatter.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[FIT]")
	assert.Contains(t, string(out), "rows=10")

	entry.Message = "Frame transformed"
	out, err = formatter.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[TRANSFORM]")

	entry.Message = "Dataset loaded"
	out, err = formatter.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[DATASET]")
}
