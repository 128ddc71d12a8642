// cmd/bank/main.go

// 多客戶、多帳戶的示範程式：建立客戶與帳戶、執行固定的存提款序列，
// 最後印出帳戶列表與對帳單。本程式不讀取任何旗標、環境變數或檔案。

package main

import (
	"errors"
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

type op struct {
	account int
	deposit bool
	amount  string
}

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

	reg := bank.NewRegistry(bank.WithLogger(zl))
	p := statement.NewPrinter(os.Stdout, statement.Options{Currency: cfg.CurrencySymbol, Width: cfg.StatementWidth})

	var clients []*bank.Client
	for _, name := range []string{"Ana", "Bruno"} {
		c, err := bank.NewClient(name)
		if err != nil {
			zl.Fatal("failed to create client", zap.String("name", name), zap.Error(err))
		}
		clients = append(clients, c)
	}
	// Ana 有兩個帳戶，Bruno 一個
	for _, owner := range []*bank.Client{clients[0], clients[1], clients[0]} {
		if _, err := reg.Open(owner); err != nil {
			zl.Fatal("failed to open account", zap.Error(err))
		}
	}

	ops := []op{
		{1, true, "100"},
		{1, false, "150"},
		{1, false, "50"},
		{2, true, "320.75"},
		{2, false, "0"},
		{2, false, "20.75"},
		{1, true, "-10"},
	}
	for _, o := range ops {
		apply(reg, zl, o)
	}

	_ = p.PrintListing(reg)
	fmt.Println()

	for a := range reg.Accounts() {
		if err := p.PrintStatement(a); err != nil && !errors.Is(err, bank.ErrEmptyHistory) {
			zl.Error("failed to print statement", zap.Int("accountID", a.ID()), zap.Error(err))
		}
		fmt.Println()
	}

	a1, _ := reg.Get(1)
	a2, _ := reg.Get(2)
	if gt, err := a2.Greater(a1); err == nil {
		fmt.Printf("Account #2 has a greater balance than #1: %t\n", gt)
	}
}

func apply(reg *bank.Registry, zl *zap.Logger, o op) {
	acct, err := reg.Get(o.account)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	amount := decimal.RequireFromString(o.amount)
	verb := "withdraw"
	if o.deposit {
		verb = "deposit"
		err = acct.Deposit(amount)
	} else {
		err = acct.Withdraw(amount)
	}
	if err != nil {
		fmt.Printf("error: %s %s on account #%d: %v\n", verb, amount.StringFixed(2), acct.ID(), err)
		zl.Warn("operation refused", zap.String("op", verb), zap.Int("accountID", acct.ID()), zap.Error(err))
	}
}
