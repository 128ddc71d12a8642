// Package bank 定義核心領域模型與業務規則：客戶、帳戶、交易歷史與帳戶登錄表。
// 本套件不含任何輸出格式或 I/O 細節；對帳單的呈現交由 internal/statement。
// 金額一律使用 decimal.Decimal，避免浮點誤差。

package bank

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account.
// 不變量：balance 恆等於 history 中存款總額減提款總額，且永不為負。
// Account 本身不加鎖；若在並發環境使用，呼叫端需自行序列化同一帳戶的變更。
type Account struct {
	id      int
	owner   *Client
	balance decimal.Decimal
	history *History
}

func newAccount(id int, owner *Client, now func() time.Time) *Account {
	return &Account{
		id:      id,
		owner:   owner,
		balance: decimal.Zero,
		history: newHistory(now),
	}
}

func (a *Account) ID() int                  { return a.id }
func (a *Account) Owner() *Client           { return a.owner }
func (a *Account) Balance() decimal.Decimal { return a.balance }
func (a *Account) History() *History        { return a.history }

// Deposit 存款：金額需 > 0。驗證失敗時不改動餘額與歷史。
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.history.add(Deposit, amount)
	return nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額（維持非負）。
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	a.history.add(Withdraw, amount)
	return nil
}

// Statement 為對帳單的唯讀檢視。
type Statement struct {
	AccountID int
	Owner     string
	Records   []Record
	Balance   decimal.Decimal
}

// Statement 回傳目前的對帳單；歷史為空時回傳 ErrEmptyHistory。
func (a *Account) Statement() (Statement, error) {
	if a.history.Len() == 0 {
		return Statement{}, ErrEmptyHistory
	}
	st := Statement{
		AccountID: a.id,
		Owner:     a.owner.Name(),
		Records:   make([]Record, 0, a.history.Len()),
		Balance:   a.balance,
	}
	for r := range a.history.Records() {
		st.Records = append(st.Records, r)
	}
	return st, nil
}

// Compare 依餘額比較兩個帳戶，回傳 -1、0 或 1。
// other 為 nil 時回傳 *ComparisonError。
func (a *Account) Compare(other *Account) (int, error) {
	if other == nil {
		return 0, &ComparisonError{Operand: "nil *bank.Account"}
	}
	return a.balance.Cmp(other.balance), nil
}

// CompareValue 接受任意運算元；非 *Account 一律視為型別不符。
func (a *Account) CompareValue(v any) (int, error) {
	other, ok := v.(*Account)
	if !ok {
		return 0, &ComparisonError{Operand: fmt.Sprintf("%T", v)}
	}
	return a.Compare(other)
}

func (a *Account) Equal(other *Account) (bool, error) {
	c, err := a.Compare(other)
	return c == 0 && err == nil, err
}

func (a *Account) Less(other *Account) (bool, error) {
	c, err := a.Compare(other)
	return c < 0 && err == nil, err
}

func (a *Account) Greater(other *Account) (bool, error) {
	c, err := a.Compare(other)
	return c > 0 && err == nil, err
}

// String 回傳帳戶摘要，例如 "#1 Ana balance 50.00"。
func (a *Account) String() string {
	return fmt.Sprintf("#%d %s balance %s", a.id, a.owner.Name(), a.balance.StringFixed(2))
}
