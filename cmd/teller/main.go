// cmd/teller/main.go

// 單一帳戶的示範程式：經由 Teller 套用單筆提款上限與每 session 提款次數上限。

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banksim/internal/bank"
	"banksim/internal/config"
	"banksim/internal/logger"
	"banksim/internal/statement"
)

func main() {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	owner, err := bank.NewClient("Titular")
	if err != nil {
		zl.Fatal("failed to create client", zap.Error(err))
	}
	acct, err := bank.NewRegistry(bank.WithLogger(zl)).Open(owner)
	if err != nil {
		zl.Fatal("failed to open account", zap.Error(err))
	}
	teller := bank.NewTeller(acct, bank.Limits{
		MaxWithdrawal:  cfg.MaxWithdrawal,
		MaxWithdrawals: cfg.MaxWithdrawals,
	}, zl)

	if err := teller.Deposit(decimal.NewFromInt(1000)); err != nil {
		fmt.Printf("error: %v\n", err)
	}
	// 第二筆超過單筆上限，最後一筆超過次數上限
	for _, amt := range []int64{50, 600, 100, 20, 10} {
		if err := teller.Withdraw(decimal.NewFromInt(amt)); err != nil {
			fmt.Printf("error: withdraw %d: %v\n", amt, err)
		}
	}

	p := statement.NewPrinter(os.Stdout, statement.Options{Currency: cfg.CurrencySymbol, Width: cfg.StatementWidth})
	_ = p.PrintStatement(acct)
	fmt.Printf("Withdrawals left this session: %d\n", teller.WithdrawalsLeft())
}
