// internal/logger/logger.go
//
// zap 的建構與服務層使用的 Logger 介面。
// 日誌一律寫往 stderr，stdout 保留給對帳單輸出。

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 為服務層依賴的最小介面，*zap.Logger 直接滿足。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Sync() error
}

// New 依等級建立 console 格式的 zap logger。
func New(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Development = false
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Nop 回傳不輸出任何內容的 Logger，供未注入 logger 的呼叫端使用。
func Nop() Logger {
	return zap.NewNop()
}
