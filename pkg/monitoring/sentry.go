package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/d60-Lab/comedor/config"
)

// InitSentry DSN 为空时不启用，返回 false
func InitSentry(cfg config.SentryConfig) (bool, error) {
	if cfg.DSN == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		SampleRate:       cfg.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return false, fmt.Errorf("sentry init: %w", err)
	}
	return true, nil
}

// Flush 退出前发送剩余事件
func Flush() {
	sentry.Flush(2 * time.Second)
}
