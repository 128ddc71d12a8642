// internal/bank/history.go
//
// 交易紀錄 (Record) 與只增不減的交易歷史 (History)。
// History 由單一 Account 獨佔；Record 為值型別，一經建立即不可變。

package bank

import (
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind 為交易種類。
type Kind int

const (
	Deposit Kind = iota + 1
	Withdraw
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// Record represents one completed transaction.
type Record struct {
	ID     uuid.UUID       `json:"id"`
	Kind   Kind            `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Time   time.Time       `json:"time"`
}

// History 為單一帳戶的交易日誌，依寫入順序保存。
type History struct {
	records []Record
	now     func() time.Time
}

func newHistory(now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{now: now}
}

// add 以目前 UTC 時間追加一筆紀錄；不會失敗。
func (h *History) add(kind Kind, amount decimal.Decimal) Record {
	r := Record{
		ID:     uuid.New(),
		Kind:   kind,
		Amount: amount,
		Time:   h.now().UTC(),
	}
	h.records = append(h.records, r)
	return r
}

// Records 回傳依時間順序的紀錄序列。
// 每次 range 都會從頭開始，且 yield 出去的是值拷貝，外部無法改寫內部切片。
func (h *History) Records() iter.Seq[Record] {
	return slices.Values(h.records[:len(h.records):len(h.records)])
}

// Len 回傳目前紀錄筆數。
func (h *History) Len() int {
	return len(h.records)
}

// Totals 回傳存款與提款的累計金額。
func (h *History) Totals() (deposits, withdrawals decimal.Decimal) {
	for _, r := range h.records {
		switch r.Kind {
		case Deposit:
			deposits = deposits.Add(r.Amount)
		case Withdraw:
			withdrawals = withdrawals.Add(r.Amount)
		}
	}
	return deposits, withdrawals
}
