package log

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"sync"
	"time"
)

var logger = zerolog.Nop()
var once sync.Once

type LoggerOption func(*LoggerConfig)

type LoggerConfig struct {
	fileName string
	console  bool
	level    zerolog.Level
	writer   io.Writer
}

func WithFileLogger(fileName string) LoggerOption {
	return func(l *LoggerConfig) {
		l.fileName = fileName
	}
}

func WithConsoleLogger() LoggerOption {
	return func(l *LoggerConfig) {
		l.console = true
	}
}

// WithLogLevel sets the minimum level by name ("debug", "info", ...). Unknown names keep the default.
func WithLogLevel(level string) LoggerOption {
	return func(l *LoggerConfig) {
		if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
			l.level = parsed
		}
	}
}

// WithWriter sends JSON output to w instead of stdout.
func WithWriter(w io.Writer) LoggerOption {
	return func(l *LoggerConfig) {
		l.writer = w
	}
}

// Init builds the process-wide logger. Only the first call has an effect.
func Init(serviceName string, opts ...LoggerOption) {
	once.Do(func() {
		logger = New(serviceName, opts...)
	})
}

// New builds a logger without touching the process-wide one.
func New(serviceName string, opts ...LoggerOption) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := &LoggerConfig{level: zerolog.InfoLevel}

	for _, opt := range opts {
		opt(l)
	}

	output := make([]io.Writer, 0, 3)
	defaultOutput := io.Writer(os.Stdout)
	if l.writer != nil {
		output = append(output, l.writer)
	}
	if l.console {
		consoleOutput := zerolog.ConsoleWriter{
			Out:        defaultOutput,
			TimeFormat: time.RFC3339,
		}
		output = append(output, consoleOutput)
	}
	if l.fileName != "" {
		fileOutput := &lumberjack.Logger{
			Filename:   l.fileName,
			MaxSize:    5,
			MaxBackups: 10,
			MaxAge:     14,
			Compress:   true,
		}
		output = append(output, fileOutput)
	}

	if len(output) == 0 {
		output = append(output, defaultOutput)
	}

	multiWriter := zerolog.MultiLevelWriter(output...)

	return zerolog.New(multiWriter).
		Level(l.level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

func GetLogger() zerolog.Logger {
	return logger
}
