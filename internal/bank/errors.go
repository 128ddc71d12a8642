// internal/bank/errors.go
//
// 本檔集中定義領域錯誤（domain errors）。
// 除 ErrTypeMismatch 外皆為可恢復的業務失敗：操作失敗時不會改動任何狀態，
// 由上層（console driver）印出訊息即可。

package bank

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount 代表金額 <= 0。
	ErrInvalidAmount = errors.New("amount must be > 0")

	// ErrInsufficientFunds 代表提款金額超過目前餘額。
	ErrInsufficientFunds = errors.New("insufficient balance")

	// ErrWithdrawalLimitExceeded 代表超過單筆上限或本次 session 的提款次數。
	ErrWithdrawalLimitExceeded = errors.New("withdrawal limit exceeded")

	// ErrEmptyHistory 代表帳戶尚無任何交易，無法產生對帳單。
	ErrEmptyHistory = errors.New("no transactions recorded")

	// ErrTypeMismatch 代表以非 Account 的值進行比較，屬於呼叫端的程式錯誤。
	ErrTypeMismatch = errors.New("unsupported comparison operand")

	ErrNotFound  = errors.New("account not found")
	ErrEmptyName = errors.New("client name must not be empty")
	ErrNilOwner  = errors.New("account owner must not be nil")
)

// ComparisonError 描述一次不合法的比較：Operand 為實際傳入的型別名稱。
type ComparisonError struct {
	Operand string
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("cannot compare *bank.Account with %s", e.Operand)
}

// Unwrap 讓 errors.Is(err, ErrTypeMismatch) 成立。
func (e *ComparisonError) Unwrap() error { return ErrTypeMismatch }
