// Package logger builds the application's root zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Service names the root logger and tags every entry.
const Service = "jobfit"

// New returns the root logger. Entries go as JSON to a rotated file at
// logFilePath and also to stdout, where non-production environments get the
// console encoder and debug level. Every entry carries the service and env
// fields.
func New(logFilePath, env string) *zap.Logger {
	production := env == "production"

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)

	files := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	cores := []zapcore.Core{zapcore.NewCore(jsonEncoder, zapcore.AddSync(files), zap.InfoLevel)}

	if production {
		cores = append(cores, zapcore.NewCore(jsonEncoder, zapcore.Lock(os.Stdout), zap.InfoLevel))
	} else {
		console := zap.NewDevelopmentEncoderConfig()
		console.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(console), zapcore.Lock(os.Stdout), zap.DebugLevel))
	}

	opts := []zap.Option{zap.AddCaller()}
	if production {
		opts = append(opts, zap.AddStacktrace(zap.ErrorLevel))
	}
	return zap.New(zapcore.NewTee(cores...), opts...).
		Named(Service).
		With(zap.String("service", Service), zap.String("env", env))
}
