package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/d60-Lab/comedor/config"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init 根据配置初始化全局 logger
func Init(cfg config.LogConfig) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// New 构建 zap logger；format=console 时使用开发模式输出
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	var zc zap.Config
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// Set 替换全局 logger（测试中可注入 zaptest/observer）
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// L 返回全局 logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

// Sync 刷新缓冲
func Sync() error { return L().Sync() }
