// internal/config/config.go
//
// 示範程式的固定設定。本系統不讀取環境變數、設定檔或命令列旗標，
// 所有值皆為編譯期預設。

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	CurrencySymbol string
	StatementWidth int
	MaxWithdrawal  decimal.Decimal
	MaxWithdrawals int
	LogLevel       string
}

// Default 回傳示範程式使用的設定。
func Default() Config {
	return Config{
		CurrencySymbol: "R$",
		StatementWidth: 30,
		MaxWithdrawal:  decimal.NewFromInt(500),
		MaxWithdrawals: 3,
		LogLevel:       "info",
	}
}

// Validate 一次回報所有不合法的欄位。
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.CurrencySymbol) == "" {
		problems = append(problems, "currency symbol is empty")
	}
	if c.StatementWidth <= 0 {
		problems = append(problems, "statement width must be > 0")
	}
	if !c.MaxWithdrawal.IsPositive() {
		problems = append(problems, "max withdrawal must be > 0")
	}
	if c.MaxWithdrawals <= 0 {
		problems = append(problems, "max withdrawals must be > 0")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, ", "))
	}
	return nil
}
