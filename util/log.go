package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jww "github.com/spf13/jwalterweatherman"
)

var (
	loggers = map[string]*Logger{}
	levels  = map[string]jww.Threshold{}

	// OutThreshold is the default console log level
	OutThreshold = jww.LevelError
)

// Logger wraps a jww notepad to avoid leaking implementation detail
type Logger struct {
	*jww.Notepad
	name string
}

// NewLogger creates a logger with the given log area and adds it to the registry
func NewLogger(area string) *Logger {
	if logger, ok := loggers[area]; ok {
		return logger
	}

	level := LogLevelForArea(area)
	notepad := jww.NewNotepad(level, level, os.Stdout, io.Discard, area, log.Ldate|log.Ltime)

	logger := &Logger{
		Notepad: notepad,
		name:    area,
	}
	loggers[area] = logger

	return logger
}

// Name returns the log area
func (l *Logger) Name() string {
	return l.name
}

// Loggers invokes callback for each configured logger
func Loggers(cb func(string, *Logger)) {
	for name, logger := range loggers {
		cb(name, logger)
	}
}

// LogLevelForArea gets the log level for given log area
func LogLevelForArea(area string) jww.Threshold {
	level, ok := levels[strings.ToLower(area)]
	if !ok {
		level = OutThreshold
	}
	return level
}

// LogLevel sets log level for all loggers
func LogLevel(defaultLevel string, areaLevels map[string]string) {
	OutThreshold = LogLevelToThreshold(defaultLevel)

	for area, level := range areaLevels {
		levels[strings.ToLower(area)] = LogLevelToThreshold(level)
	}

	Loggers(func(name string, logger *Logger) {
		logger.SetStdoutThreshold(LogLevelForArea(name))
	})
}

// LogLevelToThreshold converts log level string to a jww Threshold
func LogLevelToThreshold(level string) jww.Threshold {
	switch strings.ToUpper(level) {
	case "FATAL":
		return jww.LevelFatal
	case "ERROR":
		return jww.LevelError
	case "WARN":
		return jww.LevelWarn
	case "INFO":
		return jww.LevelInfo
	case "DEBUG":
		return jww.LevelDebug
	case "TRACE":
		return jww.LevelTrace
	default:
		panic(fmt.Sprintf("invalid log level %s", level))
	}
}
