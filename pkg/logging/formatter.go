/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: formatter.go
Description: Custom log formatter for the Akaylee feature engine. Provides
structured logging output with colors and pipeline-specific prefixes for fit,
transform, and dataset events.
*/

package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// PipelineFormatter provides structured logging output with pipeline prefixes
type PipelineFormatter struct {
	Timestamp bool
	Colors    bool
}

// Format formats a log entry with pipeline-specific decoration
func (f *PipelineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var output strings.Builder

	if f.Timestamp {
		timestamp := entry.Time.Format("2006-01-02 15:04:05.000")
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[36m%s\033[0m ", timestamp)) // Cyan
		} else {
			output.WriteString(fmt.Sprintf("%s ", timestamp))
		}
	}

	level := strings.ToUpper(entry.Level.String())
	if f.Colors {
		output.WriteString(fmt.Sprintf("\033[%dm%s\033[0m ", f.getLevelColor(entry.Level), level))
	} else {
		output.WriteString(fmt.Sprintf("%s ", level))
	}

	if prefix := f.getPipelinePrefix(entry.Message); prefix != "" {
		if f.Colors {
			output.WriteString(fmt.Sprintf("\033[35m[%s]\033[0m ", prefix)) // Magenta
		} else {
			output.WriteString(fmt.Sprintf("[%s] ", prefix))
		}
	}

	output.WriteString(entry.Message)

	if len(entry.Data) > 0 {
		output.WriteString(" ")
		output.WriteString(f.formatFields(entry.Data))
	}

	output.WriteString("\n")
	return []byte(output.String()), nil
}

// getLevelColor returns the ANSI color code for a log level
func (f *PipelineFormatter) getLevelColor(level logrus.Level) int {
	switch level {
	case logrus.DebugLevel:
		return 37 // White
	case logrus.InfoLevel:
		return 32 // Green
	case logrus.WarnLevel:
		return 33 // Yellow
	case logrus.ErrorLevel:
		return 31 // Red
	case logrus.FatalLevel, logrus.PanicLevel:
		return 35 // Magenta
	default:
		return 37 // White
	}
}

// getPipelinePrefix returns a prefix based on the log message
func (f *PipelineFormatter) getPipelinePrefix(message string) string {
	switch {
	case strings.Contains(message, "Generator fit"):
		return "FIT"
	case strings.Contains(message, "Frame transformed"):
		return "TRANSFORM"
	case strings.Contains(message, "Dataset loaded"):
		return "DATASET"
	case strings.Contains(message, "logging initialized"):
		return "INIT"
	default:
		return ""
	}
}

// formatFields formats structured fields in a readable way
func (f *PipelineFormatter) formatFields(fields logrus.Fields) string {
	var parts []string

	for key, value := range fields {
		formattedValue := f.formatValue(value)
		if f.Colors {
			parts = append(parts, fmt.Sprintf("\033[34m%s\033[0m=\033[32m%s\033[0m", key, formattedValue)) // Blue key, Green value
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", key, formattedValue))
		}
	}

	return strings.Join(parts, " ")
}

// formatValue formats a field value appropriately
func (f *PipelineFormatter) formatValue(value interface{}) string {
	switch v := value.(type) {
	case time.Duration:
		return v.String()
	case time.Time:
		return v.Format("15:04:05.000")
	case string:
		if len(v) > 50 {
			return fmt.Sprintf("%s...", v[:50])
		}
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
