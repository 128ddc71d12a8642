// internal/bank/teller.go
//
// Teller 為單一帳戶版本的服務物件：在 Account 的規則之上，
// 再加上單筆提款上限與每個 session 的提款次數上限。
// 次數計數只存在於 Teller 的生命週期內，不會依日期自動歸零。

package bank

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"banksim/internal/logger"
)

// Limits 為提款限制。
type Limits struct {
	MaxWithdrawal  decimal.Decimal
	MaxWithdrawals int
}

// DefaultLimits 單筆 500、每 session 3 次。
func DefaultLimits() Limits {
	return Limits{
		MaxWithdrawal:  decimal.NewFromInt(500),
		MaxWithdrawals: 3,
	}
}

type Teller struct {
	acct        *Account
	limits      Limits
	withdrawals int
	log         logger.Logger
}

// NewTeller 以 acct 建立 Teller；log 為 nil 時不輸出日誌。
func NewTeller(acct *Account, limits Limits, log logger.Logger) *Teller {
	if log == nil {
		log = logger.Nop()
	}
	return &Teller{acct: acct, limits: limits, log: log}
}

func (t *Teller) Account() *Account { return t.acct }

// Deposit 直接交由帳戶處理。
func (t *Teller) Deposit(amount decimal.Decimal) error {
	if err := t.acct.Deposit(amount); err != nil {
		t.log.Warn("deposit refused", zap.Int("accountID", t.acct.id), zap.String("amount", amount.String()), zap.Error(err))
		return err
	}
	return nil
}

// Withdraw 依序檢查：次數上限 → 金額範圍 → 餘額。任一失敗皆不改變狀態與計數。
func (t *Teller) Withdraw(amount decimal.Decimal) error {
	err := t.check(amount)
	if err == nil {
		err = t.acct.Withdraw(amount)
	}
	if err != nil {
		t.log.Warn("withdrawal refused",
			zap.Int("accountID", t.acct.id),
			zap.String("amount", amount.String()),
			zap.Int("withdrawals", t.withdrawals),
			zap.Error(err))
		return err
	}
	t.withdrawals++
	t.log.Info("withdrawal accepted",
		zap.Int("accountID", t.acct.id),
		zap.String("amount", amount.String()),
		zap.Int("withdrawalsLeft", t.WithdrawalsLeft()))
	return nil
}

func (t *Teller) check(amount decimal.Decimal) error {
	if t.withdrawals >= t.limits.MaxWithdrawals {
		return ErrWithdrawalLimitExceeded
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(t.limits.MaxWithdrawal) {
		return ErrWithdrawalLimitExceeded
	}
	return nil
}

// WithdrawalsLeft 回傳本 session 剩餘可提款次數。
func (t *Teller) WithdrawalsLeft() int {
	if left := t.limits.MaxWithdrawals - t.withdrawals; left > 0 {
		return left
	}
	return 0
}
