package logging

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the error sink. An empty ErrorFile disables it.
type Config struct {
	ErrorFile       string
	ErrorMaxSizeMB  int
	ErrorMaxBackups int
}

var (
	mu       sync.RWMutex
	errorLog *zap.Logger
)

// Init sets up the shared go-utils logger and, when configured, a rotating
// JSON file that receives ERROR-level entries only.
func Init(cfg Config) error {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 2,
	})

	if cfg.ErrorFile == "" {
		setErrorLog(nil)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.ErrorFile), 0o755); err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.CallerKey = "file"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.ErrorFile,
		MaxSize:    cfg.ErrorMaxSizeMB,
		MaxBackups: cfg.ErrorMaxBackups,
		Compress:   true,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, zapcore.ErrorLevel)
	setErrorLog(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

func setErrorLog(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if errorLog != nil {
		_ = errorLog.Sync()
	}
	errorLog = l
}

// Sync flushes the error sink.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if errorLog != nil {
		_ = errorLog.Sync()
	}
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Error logs to the shared logger and to the rotating error file.
func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)

	mu.RLock()
	defer mu.RUnlock()
	if errorLog != nil {
		errorLog.Error(msg, fields...)
	}
}
