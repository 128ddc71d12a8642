// internal/bank/registry.go

package bank

import (
	"iter"
	"slices"
	"time"

	"go.uber.org/zap"

	"banksim/internal/logger"
)

// Registry 為程序範圍內所有帳戶的登錄表：依建立順序保存，只增不減。
// 由呼叫端持有單一實例，取代全域清單。
type Registry struct {
	accts []*Account
	now   func() time.Time
	log   logger.Logger
}

// Option 調整 Registry 的可選設定。
type Option func(*Registry)

// WithClock 替換交易時間來源，主要供測試使用。
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

func WithLogger(l logger.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// NewRegistry 建立空白登錄表。
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{now: time.Now, log: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open 為 owner 開立新帳戶並登錄。
// 帳戶 ID 於建立時決定，為插入前的長度 + 1。
func (r *Registry) Open(owner *Client) (*Account, error) {
	if owner == nil {
		return nil, ErrNilOwner
	}
	a := newAccount(len(r.accts)+1, owner, r.now)
	r.accts = append(r.accts, a)
	r.log.Info("account opened", zap.Int("accountID", a.id), zap.String("owner", owner.Name()))
	return a, nil
}

// Get 依 ID 取得帳戶；不存在則回傳 ErrNotFound。
func (r *Registry) Get(id int) (*Account, error) {
	if id < 1 || id > len(r.accts) {
		return nil, ErrNotFound
	}
	return r.accts[id-1], nil
}

// Accounts 依建立順序列出所有帳戶。
func (r *Registry) Accounts() iter.Seq[*Account] {
	return slices.Values(r.accts[:len(r.accts):len(r.accts)])
}

// Summaries 依建立順序產出每個帳戶的摘要字串。
func (r *Registry) Summaries() iter.Seq[string] {
	return func(yield func(string) bool) {
		for a := range r.Accounts() {
			if !yield(a.String()) {
				return
			}
		}
	}
}

// OwnedBy 回傳 c 名下的所有帳戶。
func (r *Registry) OwnedBy(c *Client) []*Account {
	var out []*Account
	for _, a := range r.accts {
		if a.owner == c {
			out = append(out, a)
		}
	}
	return out
}

// Len 回傳至今建立的帳戶總數。
func (r *Registry) Len() int {
	return len(r.accts)
}
